package controller

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

// WriteJSON encodes the body with enc and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, enc func(e *jx.Encoder)) {
	var e jx.Encoder
	enc(&e)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Bytes())))
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
