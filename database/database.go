package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// Database aggregates one repository per portfolio entity over a shared GORM
// connection. Listing order follows the public site: newest first everywhere
// except skills, which sort by category name.
type Database struct {
	projectRepo     *Repo[models.Project]
	experienceRepo  *Repo[models.Experience]
	educationRepo   *Repo[models.Education]
	certificateRepo *Repo[models.Certificate]
	skillRepo       *Repo[models.Skill]
	contactInfoRepo *ContactInfoRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewRepo[models.Project](db, "created_at DESC"),
		experienceRepo:  NewRepo[models.Experience](db, "created_at DESC"),
		educationRepo:   NewRepo[models.Education](db, "created_at DESC"),
		certificateRepo: NewRepo[models.Certificate](db, "created_at DESC"),
		skillRepo:       NewRepo[models.Skill](db, "category ASC"),
		contactInfoRepo: NewContactInfoRepo(db),
	}
}

// Migrate creates or updates the six entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
		&models.Skill{},
		&models.ContactInfo{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *Repo[models.Project] {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *Repo[models.Experience] {
	return d.experienceRepo
}

func (d Database) EducationRepo() *Repo[models.Education] {
	return d.educationRepo
}

func (d Database) CertificateRepo() *Repo[models.Certificate] {
	return d.certificateRepo
}

func (d Database) SkillRepo() *Repo[models.Skill] {
	return d.skillRepo
}

func (d Database) ContactInfoRepo() *ContactInfoRepo {
	return d.contactInfoRepo
}
