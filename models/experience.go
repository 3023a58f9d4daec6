package models

// Experience is a single work-history entry.
type Experience struct {
	Base
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	DateRange   string `json:"date_range" gorm:"type:text;not null"`
	Location    string `json:"location" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"type:text;not null"`
}

func (Experience) TableName() string {
	return "experience"
}

func (e *Experience) Validate() error {
	if err := requireField("title", e.Title); err != nil {
		return err
	}
	if err := requireField("description", e.Description); err != nil {
		return err
	}
	if err := requireField("date_range", e.DateRange); err != nil {
		return err
	}
	if err := requireField("location", e.Location); err != nil {
		return err
	}
	return validateURLField("image", e.Image)
}
