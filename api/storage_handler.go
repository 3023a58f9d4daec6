package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type storageHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reconciler *services.Reconciler
}

func newStorageHandler(reconciler *services.Reconciler) storageHandler {
	logger := log.With().Str("handlerName", "storageHandler").Logger()

	return storageHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reconciler: reconciler,
	}
}

// reconcile sweeps journaled storage keys that no live row references:
// leftovers of aborted uploads and of delete cleanups that failed partway.
func (h storageHandler) reconcile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := h.reconciler.Sweep(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("reconcile", "storage", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"removed": removed,
		})
	}
}
