package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cardnight/ledger/internal/api/apierr"
	"github.com/cardnight/ledger/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Panics are answered with a JSON internal error.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
