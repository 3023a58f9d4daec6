package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

func TestSkillLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/admin/skill", map[string]any{
		"category": "Backend",
		"items":    []string{"Go", "Postgres"},
	}, true)
	requireStatus(t, rec, http.StatusCreated)
	var skill models.Skill
	decodeBody(t, rec, &skill)
	if skill.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("create must assign an id")
	}

	rec = env.doJSON(t, http.MethodPut, "/admin/skill/"+skill.ID.String(), map[string]any{
		"category": "Backend",
		"items":    []string{"Go", "Postgres", "Redis"},
	}, true)
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, "/skill/"+skill.ID.String(), nil, "", false)
	requireStatus(t, rec, http.StatusOK)
	var fetched models.Skill
	decodeBody(t, rec, &fetched)
	if len(fetched.Items) != 3 {
		t.Fatalf("items = %v, want 3 entries", fetched.Items)
	}

	rec = env.do(t, http.MethodDelete, "/admin/skill/"+skill.ID.String(), nil, "", true)
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, "/skill/"+skill.ID.String(), nil, "", false)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestSkillMissingCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/admin/skill", map[string]any{"items": []string{"Go"}}, true)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateMissingEntity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPut, "/admin/experience/20000000-0000-0000-0000-000000000002", map[string]any{
		"title": "Ghost",
	}, true)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteMissingEntity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/admin/education/20000000-0000-0000-0000-000000000002", nil, "", true)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestInvalidIDRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/project/not-a-uuid", nil, "", false)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateCertificateWithImageFile(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t,
		map[string][]string{"title": {"Cloud Cert"}, "issuer": {"Acme"}},
		[]multipartFile{{field: "image", name: "badge.png", content: "badge-bytes"}},
	)
	rec := env.do(t, http.MethodPost, "/admin/certificate", body, contentType, true)
	requireStatus(t, rec, http.StatusCreated)

	var cert models.Certificate
	decodeBody(t, rec, &cert)
	if !strings.Contains(cert.Image, "/certificates/") || !strings.HasSuffix(cert.Image, ".png") {
		t.Fatalf("image = %q, want a random certificates/ key with the original extension", cert.Image)
	}
	if got := env.storage.UploadOrder(); len(got) != 1 {
		t.Fatalf("uploads = %v, want exactly one", got)
	}
}

func TestCreateCertificateWithoutImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t,
		map[string][]string{"title": {"Cloud Cert"}, "issuer": {"Acme"}},
		nil,
	)
	rec := env.do(t, http.MethodPost, "/admin/certificate", body, contentType, true)
	requireStatus(t, rec, http.StatusBadRequest)

	if got := env.storage.UploadOrder(); len(got) != 0 {
		t.Fatalf("rejected create must not upload, got %v", got)
	}
}

func TestExperienceListNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	for _, title := range []string{"First", "Second"} {
		rec := env.doJSON(t, http.MethodPost, "/admin/experience", map[string]any{
			"title":       title,
			"description": "d",
			"date_range":  "2024",
			"location":    "Remote",
			"image":       "https://example.com/logo.png",
		}, true)
		requireStatus(t, rec, http.StatusCreated)
		time.Sleep(10 * time.Millisecond)
	}

	rec := env.do(t, http.MethodGet, "/experience", nil, "", false)
	requireStatus(t, rec, http.StatusOK)
	var list entityCollection[models.Experience]
	decodeBody(t, rec, &list)
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	if list.Items[0].Title != "Second" {
		t.Fatalf("first item = %q, newest row must sort first", list.Items[0].Title)
	}
}
