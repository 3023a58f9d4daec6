package models

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
)

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewMissingRequiredFieldError(name)
	}
	return nil
}

// validateURLField rejects non-empty values that do not parse as absolute
// URLs. Empty is fine: URL-shaped fields are optional unless requireField says
// otherwise. No reachability check is performed.
func validateURLField(name, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errs.NewInvalidFieldError(name, "must be an absolute URL")
	}
	return nil
}

func validateEmailField(name, value string) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return errs.NewInvalidFieldError(name, "must be a valid email address")
	}
	return nil
}

func noDuplicates(name string, items []string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return errs.NewInvalidFieldError(name, "duplicate entry: "+item)
		}
		seen[item] = struct{}{}
	}
	return nil
}
