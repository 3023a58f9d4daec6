package models

// ContactInfo holds the site owner's contact details. The table is a
// singleton by convention: the application reads a single row and updates the
// same one on every write. Nothing at the store level enforces uniqueness.
type ContactInfo struct {
	Base
	Email     string `json:"email" gorm:"type:text;not null"`
	Phone     string `json:"phone,omitempty" gorm:"type:text"`
	Location  string `json:"location,omitempty" gorm:"type:text"`
	Github    string `json:"github,omitempty" gorm:"type:text"`
	Linkedin  string `json:"linkedin,omitempty" gorm:"type:text"`
	Portfolio string `json:"portfolio,omitempty" gorm:"type:text"`
	Photo     string `json:"photo,omitempty" gorm:"type:text"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

func (c *ContactInfo) Validate() error {
	if err := requireField("email", c.Email); err != nil {
		return err
	}
	if err := validateEmailField("email", c.Email); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"github":    c.Github,
		"linkedin":  c.Linkedin,
		"portfolio": c.Portfolio,
		"photo":     c.Photo,
	} {
		if err := validateURLField(field, value); err != nil {
			return err
		}
	}
	return nil
}
