package models

// Project represents a portfolio project with its gallery and metadata.
// Array columns are stored as JSON so the same model works on Postgres in
// production and sqlite in tests; insertion order is preserved.
type Project struct {
	Base
	Title          string   `json:"title" gorm:"type:text;not null"`
	ShortDesc      string   `json:"short_desc" gorm:"type:text;not null"`
	FullDesc       string   `json:"full_desc" gorm:"type:text;not null"`
	CoverImage     string   `json:"cover_image" gorm:"type:text;not null"`
	DemoLink       string   `json:"demo_link,omitempty" gorm:"type:text"`
	RepositoryLink string   `json:"repository_link,omitempty" gorm:"type:text"`
	TechStack      []string `json:"tech_stack" gorm:"serializer:json"`
	Features       []string `json:"features" gorm:"serializer:json"`
	Images         []string `json:"images" gorm:"serializer:json"`
}

func (Project) TableName() string {
	return "projects"
}

// Normalize replaces nil array fields with empty slices so a project without
// gallery data still serializes as [] rather than null.
func (p *Project) Normalize() {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

func (p *Project) Validate() error {
	if err := requireField("title", p.Title); err != nil {
		return err
	}
	if err := requireField("short_desc", p.ShortDesc); err != nil {
		return err
	}
	if err := requireField("full_desc", p.FullDesc); err != nil {
		return err
	}
	if err := validateURLField("demo_link", p.DemoLink); err != nil {
		return err
	}
	if err := validateURLField("repository_link", p.RepositoryLink); err != nil {
		return err
	}
	return noDuplicates("tech_stack", p.TechStack)
}
