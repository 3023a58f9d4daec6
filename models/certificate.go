package models

// Certificate is an earned credential, optionally linking to its verification
// page.
type Certificate struct {
	Base
	Title          string `json:"title" gorm:"type:text;not null"`
	Issuer         string `json:"issuer" gorm:"type:text;not null"`
	Image          string `json:"image" gorm:"type:text;not null"`
	CredentialLink string `json:"credential_link,omitempty" gorm:"type:text"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) Validate() error {
	if err := requireField("title", c.Title); err != nil {
		return err
	}
	if err := requireField("issuer", c.Issuer); err != nil {
		return err
	}
	if err := requireField("image", c.Image); err != nil {
		return err
	}
	return validateURLField("credential_link", c.CredentialLink)
}
