package models

// Skill groups an ordered list of skill names under a category.
type Skill struct {
	Base
	Category string   `json:"category" gorm:"type:text;not null"`
	Items    []string `json:"items" gorm:"serializer:json"`
}

func (Skill) TableName() string {
	return "skills"
}

func (s *Skill) Normalize() {
	if s.Items == nil {
		s.Items = []string{}
	}
}

func (s *Skill) Validate() error {
	return requireField("category", s.Category)
}
