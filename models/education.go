package models

// Education is a single study-history entry.
type Education struct {
	Base
	Institution string `json:"institution" gorm:"type:text;not null"`
	Degree      string `json:"degree" gorm:"type:text;not null"`
	DateRange   string `json:"date_range" gorm:"type:text;not null"`
	Location    string `json:"location" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"type:text;not null"`
}

func (Education) TableName() string {
	return "education"
}

func (e *Education) Validate() error {
	if err := requireField("institution", e.Institution); err != nil {
		return err
	}
	if err := requireField("degree", e.Degree); err != nil {
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
