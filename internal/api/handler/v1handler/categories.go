package v1handler

import (
	"browse/pkg/controller"
	"browse/pkg/domain"
	"context"
	"net/http"

	"github.com/go-faster/jx"
)

// categories serves one category view. The views never fail, so the answer is
// always 200 with a JSON array.
func (h *Handler) categories(view func(ctx context.Context) []domain.EnrichedCategory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cs := view(r.Context())
		controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
			domain.EncodeEnrichedCategories(e, cs)
		})
	}
}
