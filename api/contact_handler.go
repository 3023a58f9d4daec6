package api

import (
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// contactHandler serves the singleton contact info record. There is no
// create/delete pair; a put writes into the one row, creating it on first
// use. The optional "photo" multipart file lands under
// "profile/<random>.<ext>".
type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      *database.ContactInfoRepo
	uploader  *services.Uploader
}

func newContactHandler(repo *database.ContactInfoRepo, uploader *services.Uploader) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		uploader:  uploader,
	}
}

func (h contactHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.repo.Get(r.Context())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.responder.WriteError(w, errs.NewNotFound("contact info"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// update overlays the provided fields onto the stored record (if any),
// validates, uploads the optional photo and upserts.
func (h contactHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.repo.Get(r.Context())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			info = &models.ContactInfo{}
		} else if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact info", err))
			return
		}

		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
				return
			}
			overlayContactForm(r, info)
		} else if err := decodeJSON(r, info); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := info.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if isMultipart(r) {
			photoURL, err := h.uploadPhoto(r)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if photoURL != "" {
				info.Photo = photoURL
			}
		}

		if err := h.repo.Upsert(r.Context(), info); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

func (h contactHandler) uploadPhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		return "", nil
	}
	defer file.Close()

	return h.uploader.UploadProfilePhoto(r.Context(), &services.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
}

func overlayContactForm(r *http.Request, info *models.ContactInfo) {
	if v, ok := formValue(r, "email"); ok {
		info.Email = v
	}
	if v, ok := formValue(r, "phone"); ok {
		info.Phone = v
	}
	if v, ok := formValue(r, "location"); ok {
		info.Location = v
	}
	if v, ok := formValue(r, "github"); ok {
		info.Github = v
	}
	if v, ok := formValue(r, "linkedin"); ok {
		info.Linkedin = v
	}
	if v, ok := formValue(r, "portfolio"); ok {
		info.Portfolio = v
	}
	if v, ok := formValue(r, "photo"); ok {
		info.Photo = v
	}
}
