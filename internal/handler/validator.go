package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for upgrade tracks
	_ = v.RegisterValidation("track", validateTrack)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "track":
			errs[field] = "Invalid upgrade track"
		case "uuid4":
			errs[field] = "Must be a valid UUID"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "dive":
			errs[field] = "Invalid list entry"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validTracks defines the upgrade tracks accepted by the API
var validTracks = map[string]bool{
	string(domain.TrackSpinSpeed):     true,
	string(domain.TrackRarityOdds):    true,
	string(domain.TrackFluxCost):      true,
	string(domain.TrackMutationSlots): true,
}

// Custom validation function for upgrade tracks
func validateTrack(fl validator.FieldLevel) bool {
	track := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if track == "" {
		return true
	}
	return validTracks[strings.ToLower(track)]
}
