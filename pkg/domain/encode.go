package domain

import "github.com/go-faster/jx"

// Encode writes c as a JSON object. Optional fields are omitted when empty.
func (c EnrichedCategory) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.Field("id", func(e *jx.Encoder) { e.Int64(int64(c.ID)) })
	e.Field("slug", func(e *jx.Encoder) { e.Str(c.Slug) })
	e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
	e.Field("icon", func(e *jx.Encoder) { e.Str(c.Icon.String()) })
	e.Field("href", func(e *jx.Encoder) { e.Str(c.Href) })
	e.Field("count", func(e *jx.Encoder) { e.Int(c.Count) })

	optional := []struct {
		key, value string
	}{
		{"description", c.Description},
		{"meta_title", c.MetaTitle},
		{"meta_description", c.MetaDescription},
		{"meta_keywords", c.MetaKeywords},
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		e.Field(f.key, func(e *jx.Encoder) { e.Str(f.value) })
	}
	e.ObjEnd()
}

// EncodeEnrichedCategories writes cs as a JSON array. A nil slice is written
// as an empty array.
func EncodeEnrichedCategories(e *jx.Encoder, cs []EnrichedCategory) {
	e.ArrStart()
	for i := range cs {
		cs[i].Encode(e)
	}
	e.ArrEnd()
}
