package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// entityHandler is the one CRUD handler behind every portfolio entity. It is
// instantiated per entity with that entity's repository; field constraints
// live on the model's Validate method. Entities with upload side effects
// (projects, certificates, contact info) wrap or replace individual
// operations with their own handlers.
type entityHandler[T any] struct {
	responder Responder
	logger    zerolog.Logger
	repo      *database.Repo[T]
	name      string // singular entity name, used in error messages
}

func newEntityHandler[T any](repo *database.Repo[T], name string) entityHandler[T] {
	logger := log.With().Str("handlerName", name+"Handler").Logger()

	return entityHandler[T]{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		name:      name,
	}
}

// entityCollection is the list response shape.
type entityCollection[T any] struct {
	Items []*T `json:"items"`
	Total int  `json:"total"`
}

// list retrieves all rows in the entity's display order.
func (h entityHandler[T]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.repo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name+"s", err))
			return
		}
		if rows == nil {
			rows = []*T{}
		}

		h.responder.WriteJSON(w, entityCollection[T]{Items: rows, Total: len(rows)})
	}
}

// get retrieves a single row by id.
func (h entityHandler[T]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		row, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}

		h.responder.WriteJSON(w, row)
	}
}

// create validates and inserts a new row. Validation failures block the
// insert; nothing reaches the database.
func (h entityHandler[T]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var row T
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := h.prepare(&row); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Add(r.Context(), &row); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", h.name, err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &row)
	}
}

// update loads the existing row, overlays the provided fields and saves.
// Fields absent from the body keep their stored values; updated_at is
// refreshed by the store on every save.
func (h entityHandler[T]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		row, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.name, err))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(row); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		// The URL owns the identity; a body can never move a row.
		any(row).(models.Entity).SetEntityID(id)

		if err := h.prepare(row); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Update(r.Context(), row); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.name, err))
			return
		}

		h.responder.WriteJSON(w, row)
	}
}

// remove deletes a row by id. A missing id is an error, not a silent
// success.
func (h entityHandler[T]) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", h.name, err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": h.name + " deleted successfully",
		})
	}
}

func (h entityHandler[T]) parseID(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing id")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid id")
	}
	return id, nil
}

// prepare normalizes array fields and runs the model's own validation.
func (h entityHandler[T]) prepare(row *T) error {
	if n, ok := any(row).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	return any(row).(models.Validatable).Validate()
}
