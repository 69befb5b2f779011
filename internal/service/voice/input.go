package voice

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// ProcessInput is one spoken utterance, already transcribed.
type ProcessInput struct {
	Text     string
	AudioURL string
	Location *domain.GeoPoint
}

// Validate checks all fields and collects all errors.
func (i ProcessInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if maxLen > 0 && utf8.RuneCountInString(text) > maxLen {
		errs = append(errs, domain.FieldError{Field: "command_text", Message: "too long"})
	}
	if p := i.Location; p != nil {
		if p.Latitude < -90 || p.Latitude > 90 {
			errs = append(errs, domain.FieldError{Field: "location.latitude", Message: "must be between -90 and 90"})
		}
		if p.Longitude < -180 || p.Longitude > 180 {
			errs = append(errs, domain.FieldError{Field: "location.longitude", Message: "must be between -180 and 180"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows the command history.
type ListInput struct {
	Type  string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != "" && !domain.CommandType(i.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown command type"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProcessResult is the reply to one utterance.
type ProcessResult struct {
	Response string
	Intent   domain.CommandType
	Action   string
}
