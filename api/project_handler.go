package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 32 << 20

// projectHandler owns the project operations that have storage side effects:
// multipart create/edit with image uploads and delete with best-effort
// storage cleanup. Plain reads come from the embedded generic handler.
type projectHandler struct {
	entityHandler[models.Project]
	uploader *services.Uploader
}

func newProjectHandler(repo *database.Repo[models.Project], uploader *services.Uploader) projectHandler {
	return projectHandler{
		entityHandler: newEntityHandler(repo, "project"),
		uploader:      uploader,
	}
}

// create inserts a new project. A multipart body may carry a "cover" file and
// repeated "images" files; validation runs before any upload, and every
// upload must succeed before the row is written. A submission without a cover
// file keeps the caller-supplied cover_image value, empty included.
func (h projectHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isMultipart(r) {
			h.entityHandler.create()(w, r)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		project := projectFromForm(r)
		project.Normalize()
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cover, gallery, cleanup, err := h.openUploads(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		coverURL, galleryURLs, err := h.uploader.UploadProjectImages(r.Context(), project.Title, cover, gallery, false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if coverURL != "" {
			project.CoverImage = coverURL
		}
		project.Images = galleryURLs

		if err := h.repo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &project)
	}
}

// update edits a project. Multipart bodies overlay only the fields they
// carry; newly uploaded gallery files get timestamped names and are appended
// after whatever "existing_images" the form kept.
func (h projectHandler) update() http.HandlerFunc {
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

		project, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		overlayProjectForm(r, project)
		project.Normalize()
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cover, gallery, cleanup, err := h.openUploads(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		coverURL, galleryURLs, err := h.uploader.UploadProjectImages(r.Context(), project.Title, cover, gallery, true)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if coverURL != "" {
			project.CoverImage = coverURL
		}
		project.Images = append(project.Images, galleryURLs...)

		if err := h.repo.Update(r.Context(), project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// remove deletes a project: the row is fetched for its stored image URLs,
// each derived storage object is removed best-effort, then the row goes.
// Storage cleanup failing never blocks the delete; a failed row delete leaves
// the row in place and surfaces the error, with no way to restore objects
// already removed.
func (h projectHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.uploader.RemoveProjectImages(r.Context(), project)

		if err := h.repo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// openUploads opens the optional cover file and gallery files from a parsed
// multipart form. The returned cleanup closes every opened file.
func (h projectHandler) openUploads(r *http.Request) (*services.UploadFile, []services.UploadFile, func(), error) {
	var closers []multipart.File
	cleanup := func() {
		for _, f := range closers {
			f.Close()
		}
	}

	var cover *services.UploadFile
	if file, header, err := r.FormFile("cover"); err == nil {
		closers = append(closers, file)
		cover = &services.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	var gallery []services.UploadFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				cleanup()
				return nil, nil, func() {}, errs.NewBadRequestError("unreadable image file: " + header.Filename)
			}
			closers = append(closers, file)
			gallery = append(gallery, services.UploadFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			})
		}
	}

	return cover, gallery, cleanup, nil
}

func projectFromForm(r *http.Request) models.Project {
	return models.Project{
		Title:          r.FormValue("title"),
		ShortDesc:      r.FormValue("short_desc"),
		FullDesc:       r.FormValue("full_desc"),
		CoverImage:     r.FormValue("cover_image"),
		DemoLink:       r.FormValue("demo_link"),
		RepositoryLink: r.FormValue("repository_link"),
		TechStack:      formValues(r, "tech_stack"),
		Features:       formValues(r, "features"),
	}
}

// overlayProjectForm applies only the fields the form actually carries.
// "existing_images" replaces the kept gallery list when present; images the
// form dropped become orphans for the reconciler.
func overlayProjectForm(r *http.Request, project *models.Project) {
	if v, ok := formValue(r, "title"); ok {
		project.Title = v
	}
	if v, ok := formValue(r, "short_desc"); ok {
		project.ShortDesc = v
	}
	if v, ok := formValue(r, "full_desc"); ok {
		project.FullDesc = v
	}
	if v, ok := formValue(r, "cover_image"); ok {
		project.CoverImage = v
	}
	if v, ok := formValue(r, "demo_link"); ok {
		project.DemoLink = v
	}
	if v, ok := formValue(r, "repository_link"); ok {
		project.RepositoryLink = v
	}
	if values, ok := r.MultipartForm.Value["tech_stack"]; ok {
		project.TechStack = values
	}
	if values, ok := r.MultipartForm.Value["features"]; ok {
		project.Features = values
	}
	if values, ok := r.MultipartForm.Value["existing_images"]; ok {
		project.Images = values
	}
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func formValues(r *http.Request, key string) []string {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.Value[key]
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// decodeJSON is shared by the auth and contact handlers.
func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
