package restapi

import (
	"browse/pkg/domain"
	"browse/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func decodeCategories(b []byte) ([]domain.Category, error) {
	out := make([]domain.Category, 0)
	err := decodeArray(b, func(d *jx.Decoder) error {
		var c domain.Category
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "id":
				var id int64
				id, err = d.Int64()
				c.ID = domain.CategoryID(id)
			case "slug":
				c.Slug, err = optStr(d)
			case "name":
				c.Name, err = optStr(d)
			case "description":
				c.Description, err = optStr(d)
			case "meta_title":
				c.MetaTitle, err = optStr(d)
			case "meta_description":
				c.MetaDescription, err = optStr(d)
			case "meta_keywords":
				c.MetaKeywords, err = optStr(d)
			default:
				err = d.Skip()
			}

			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}

			return nil
		}); err != nil {
			return err
		}
		out = append(out, c)

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode categories")
	}

	return out, nil
}

func decodeItems(b []byte) ([]domain.Item, error) {
	out := make([]domain.Item, 0)
	err := decodeArray(b, func(d *jx.Decoder) error {
		var it domain.Item
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "id":
				var id int64
				id, err = d.Int64()
				it.ID = domain.ItemID(id)
			case "category_id":
				var id int64
				id, err = optInt64(d)
				it.CategoryID = domain.CategoryID(id)
			case "is_active":
				it.Active, err = flag(d)
			default:
				err = d.Skip()
			}

			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}

			return nil
		}); err != nil {
			return err
		}
		out = append(out, it)

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode items")
	}

	return out, nil
}

// decodeArray calls elem for every element of the top-level JSON array in b.
// Any other top-level value, and anything but whitespace after the array, is
// an error.
func decodeArray(b []byte, elem func(d *jx.Decoder) error) error {
	if !jx.Valid(b) {
		return errors.New("body is not a single JSON value")
	}

	d := jx.DecodeBytes(b)
	if tt := d.Next(); tt != jx.Array {
		return errors.Errorf("expected array, got %v", tt)
	}
	if err := d.Arr(elem); err != nil {
		return err
	}
	if tt := d.Next(); tt != jx.Invalid {
		return errors.Errorf("unexpected %v after array", tt)
	}

	return nil
}

func optStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func optInt64(d *jx.Decoder) (int64, error) {
	if d.Next() == jx.Null {
		return 0, d.Null()
	}

	return d.Int64()
}

// flag reads a boolean that some upstreams send as 0/1.
func flag(d *jx.Decoder) (bool, error) {
	switch d.Next() {
	case jx.Null:
		return false, d.Null()
	case jx.Number:
		n, err := d.Float64()

		return n != 0, err
	default:
		return d.Bool()
	}
}
