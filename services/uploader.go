package services

import (
	"context"
	"io"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// UploadFile is one file selected for upload.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Uploader performs the image upload side effects of admin submissions.
// Uploads within one submission run strictly in order (cover first, then
// gallery files one at a time, each awaited) so a failure is attributable to
// a specific file. The first failure aborts the submission; files uploaded
// earlier in the same submission are not rolled back. Every key is journaled
// before its upload so the reconciler can sweep orphans later.
type Uploader struct {
	storage ObjectStorage
	journal *IntentJournal
	logger  zerolog.Logger
}

func NewUploader(storage ObjectStorage, journal *IntentJournal) *Uploader {
	return &Uploader{
		storage: storage,
		journal: journal,
		logger:  log.With().Str("serviceName", "uploader").Logger(),
	}
}

// UploadProjectImages uploads an optional cover and the gallery files for the
// project titled title, returning the public URLs. A nil cover returns an
// empty coverURL so the caller can fall back to whatever value the form
// supplied. When timestamped is set (edit flow), new gallery names mix in a
// timestamp to reduce collisions with files already in the folder.
func (u *Uploader) UploadProjectImages(ctx context.Context, title string, cover *UploadFile, gallery []UploadFile, timestamped bool) (string, []string, error) {
	folder := ProjectFolder(title)

	coverURL := ""
	if cover != nil {
		key := CoverKey(folder, cover.Name)
		url, err := u.upload(ctx, key, cover)
		if err != nil {
			return "", nil, err
		}
		coverURL = url
	}

	galleryURLs := []string{}
	now := time.Now()
	for i, file := range gallery {
		key := GalleryKey(folder, file.Name, i+1)
		if timestamped {
			key = TimestampedGalleryKey(folder, file.Name, i+1, now)
		}
		url, err := u.upload(ctx, key, &file)
		if err != nil {
			return "", nil, err
		}
		galleryURLs = append(galleryURLs, url)
	}

	return coverURL, galleryURLs, nil
}

// UploadCertificateImage stores a certificate image under a random name.
func (u *Uploader) UploadCertificateImage(ctx context.Context, file *UploadFile) (string, error) {
	return u.upload(ctx, RandomKey("certificates", file.Name), file)
}

// UploadProfilePhoto stores the contact photo under a random name.
func (u *Uploader) UploadProfilePhoto(ctx context.Context, file *UploadFile) (string, error) {
	return u.upload(ctx, RandomKey("profile", file.Name), file)
}

func (u *Uploader) upload(ctx context.Context, key string, file *UploadFile) (string, error) {
	u.journal.Record(key)
	url, err := u.storage.Upload(ctx, key, file.ContentType, file.Body)
	if err != nil {
		return "", errs.NewUploadError(key, err)
	}
	u.logger.Info().Str("key", key).Msg("Uploaded object")
	return url, nil
}

// RemoveProjectImages best-effort deletes the storage objects referenced by a
// project's stored cover and gallery URLs. Keys are reconstructed from the
// URLs' filenames and the folder rule. Failures are logged and swallowed; the
// project delete proceeds regardless.
func (u *Uploader) RemoveProjectImages(ctx context.Context, project *models.Project) {
	folder := ProjectFolder(project.Title)

	urls := make([]string, 0, len(project.Images)+1)
	if project.CoverImage != "" {
		urls = append(urls, project.CoverImage)
	}
	urls = append(urls, project.Images...)

	for _, imageURL := range urls {
		key := KeyFromImageURL(folder, imageURL)
		if err := u.storage.Remove(ctx, key); err != nil {
			// An earlier sweep may have cleared this key's entry as
			// committed; re-journal it or no sweep will ever find it.
			u.journal.Record(key)
			u.logger.Error().Err(err).Str("key", key).Msg("Failed to remove object, leaving it for the reconciler")
			continue
		}
		u.journal.Forget(key)
	}
}
