package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

// certificateHandler adds the image upload side effect to certificate writes.
// Certificate images land under random names ("certificates/<random>.<ext>"),
// so unlike projects there is no derivable path to clean up on delete; the
// reconciler handles abandoned ones.
type certificateHandler struct {
	entityHandler[models.Certificate]
	uploader *services.Uploader
}

func newCertificateHandler(repo *database.Repo[models.Certificate], uploader *services.Uploader) certificateHandler {
	return certificateHandler{
		entityHandler: newEntityHandler(repo, "certificate"),
		uploader:      uploader,
	}
}

// create inserts a certificate. A multipart body may carry an "image" file;
// the text fields are checked before the upload runs, and the row is written
// only once the upload succeeded.
func (h certificateHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isMultipart(r) {
			h.entityHandler.create()(w, r)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		certificate := certificateFromForm(r)
		if err := h.checkBeforeUpload(&certificate, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := h.uploadImage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imageURL != "" {
			certificate.Image = imageURL
		}

		if err := certificate.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Add(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &certificate)
	}
}

// update edits a certificate; a multipart body overlays only the fields it
// carries, and a new "image" file replaces the stored URL.
func (h certificateHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isMultipart(r) {
			h.entityHandler.update()(w, r)
			return
		}

		id, err := h.parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		if v, ok := formValue(r, "title"); ok {
			certificate.Title = v
		}
		if v, ok := formValue(r, "issuer"); ok {
			certificate.Issuer = v
		}
		if v, ok := formValue(r, "image"); ok {
			certificate.Image = v
		}
		if v, ok := formValue(r, "credential_link"); ok {
			certificate.CredentialLink = v
		}
		if err := h.checkBeforeUpload(certificate, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := h.uploadImage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imageURL != "" {
			certificate.Image = imageURL
		}

		if err := certificate.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Update(r.Context(), certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, certificate)
	}
}

// checkBeforeUpload enforces the field constraints that can be known before
// the upload runs, so an invalid submission never touches storage.
func (h certificateHandler) checkBeforeUpload(certificate *models.Certificate, r *http.Request) error {
	if strings.TrimSpace(certificate.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(certificate.Issuer) == "" {
		return errs.NewMissingRequiredFieldError("issuer")
	}
	if certificate.Image == "" && !hasFormFile(r, "image") {
		return errs.NewMissingRequiredFieldError("image")
	}
	return nil
}

// uploadImage uploads the optional "image" file and returns its public URL,
// or "" when the form carried no file.
func (h certificateHandler) uploadImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil
	}
	defer file.Close()

	return h.uploader.UploadCertificateImage(r.Context(), &services.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
}

func certificateFromForm(r *http.Request) models.Certificate {
	return models.Certificate{
		Title:          r.FormValue("title"),
		Issuer:         r.FormValue("issuer"),
		Image:          r.FormValue("image"),
		CredentialLink: r.FormValue("credential_link"),
	}
}

func hasFormFile(r *http.Request, key string) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.File[key]) > 0
}
