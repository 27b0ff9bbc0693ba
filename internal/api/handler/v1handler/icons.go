package v1handler

import (
	"browse/pkg/controller"
	"browse/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

const maxSlugLength = 128

func (h *Handler) icon(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := validateSlug(slug); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	icon, mapped := h.Aggregator.Icon(slug)

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("slug", func(e *jx.Encoder) { e.Str(slug) })
			e.Field("icon", func(e *jx.Encoder) { e.Str(icon.String()) })
			e.Field("mapped", func(e *jx.Encoder) { e.Bool(mapped) })
		})
	})
}

// validateSlug accepts lowercase ASCII letters, digits and hyphens.
func validateSlug(slug string) error {
	if slug == "" || len(slug) > maxSlugLength {
		return serrors.With(serrors.ErrBadRequest, "slug must be 1 to %d characters", maxSlugLength)
	}
	for _, c := range slug {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return serrors.With(serrors.ErrBadRequest, "invalid character %q in slug", c)
		}
	}

	return nil
}
