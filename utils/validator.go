package utils

import (
	"time"

	"newsroom/models"
)

// Validator holds the field rules for a News post. It has no state; the
// zero value is ready to use. Only the empty string counts as missing;
// whitespace is left to the caller.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateTitle(title string) (string, error) {
	if title == "" {
		return "", models.NewInvalidInputError("The title can not be empty.")
	}
	return title, nil
}

func (v *Validator) ValidateDescription(description string) (string, error) {
	if description == "" {
		return "", models.NewInvalidInputError("The description can not be empty.")
	}
	return description, nil
}

// ValidateDate accepts only an exact YYYY-MM-DD calendar date. The value
// must survive a parse and reformat unchanged.
func (v *Validator) ValidateDate(date string) (string, error) {
	if date == "" {
		return "", models.NewInvalidInputError("The date can not be empty.")
	}

	d, err := time.Parse(models.DateLayout, date)
	if err != nil || d.Format(models.DateLayout) != date {
		return "", models.NewInvalidFormatError("Is invalid date format. (Y-m-d)")
	}
	return date, nil
}
