// Package v1handler implements the v1 HTTP routes of the browse API.
package v1handler

import (
	"browse/internal/aggregator"
	"browse/pkg/controller"
	"browse/pkg/logger"
	"browse/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 routes read from.
type Deps struct {
	Aggregator aggregator.Aggregator
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// Register adds the v1 routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/categories", h.categories(h.Aggregator.Enriched))
	mux.HandleFunc("GET /v1/categories/main", h.categories(h.Aggregator.Main))
	mux.HandleFunc("GET /v1/categories/other", h.categories(h.Aggregator.Other))
	mux.HandleFunc("GET /v1/icons/{slug}", h.icon)
}

// ErrorResponse is the body and status written for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// Encode writes the JSON body of r.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(r.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(r.Message) })
	})
}

var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrBadRequest:  {http.StatusBadRequest, "bad request"},
	serrors.ErrNotFound:    {http.StatusNotFound, "resource not found"},
	serrors.ErrRateLimited: {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:     {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable: {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrInternal:    {http.StatusInternalServerError, "internal error"},
}

// NewError maps err to a response by its semantic kind. Messages of internal
// errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		kind = serrors.ErrInternal
		mapped = kindStatus[kind]
	}

	message := mapped.message
	var sErr *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &sErr) && sErr.Message() != "" {
		message = sErr.Message()
	}

	if mapped.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: mapped.status,
		Code:       kind.Error(),
		Message:    message,
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	controller.WriteJSON(w, res.StatusCode, res.Encode)
}
