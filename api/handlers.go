package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	projectHandler     projectHandler
	experienceHandler  entityHandler[models.Experience]
	educationHandler   entityHandler[models.Education]
	certificateHandler certificateHandler
	skillHandler       entityHandler[models.Skill]
	contactHandler     contactHandler
	storageHandler     storageHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, sessions *services.SessionManager, uploader *services.Uploader, reconciler *services.Reconciler) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(sessions),
		projectHandler:     newProjectHandler(db.ProjectRepo(), uploader),
		experienceHandler:  newEntityHandler(db.ExperienceRepo(), "experience"),
		educationHandler:   newEntityHandler(db.EducationRepo(), "education"),
		certificateHandler: newCertificateHandler(db.CertificateRepo(), uploader),
		skillHandler:       newEntityHandler(db.SkillRepo(), "skill"),
		contactHandler:     newContactHandler(db.ContactInfoRepo(), uploader),
		storageHandler:     newStorageHandler(reconciler),
	}
}
