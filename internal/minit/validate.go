package minit

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Input bounds enforced at the form boundary and re-checked here.
const (
	MaxAgendaItems  = 30
	MaxAttendeeRows = 40
)

// Validate checks one record against its template's required-field set.
// It is pure and returns every failure at once; optional fields (letterhead,
// open matters) never fail. An empty slice means the record is acceptable.
func Validate(r *Record, t *Template) []FieldError {
	var errs []FieldError

	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				errs = append(errs, FieldError{Field: ve.Field(), Reason: "failed rule " + ve.Tag()})
			}
		}
	}

	if r.Date != "" {
		if _, err := time.Parse(DateLayout, r.Date); err != nil {
			errs = append(errs, FieldError{Field: "date", Reason: "not a valid date (want YYYY-MM-DD)"})
		}
	}

	for _, field := range []struct{ name, value string }{
		{"sequence_number", r.SequenceNumber},
		{"time", r.Time},
		{"venue", r.Venue},
		{"chair", r.Chair},
	} {
		if t.requires(field.name) && strings.TrimSpace(field.value) == "" {
			errs = append(errs, FieldError{Field: field.name, Reason: "required"})
		}
	}

	if len(r.AgendaItems) > MaxAgendaItems {
		errs = append(errs, FieldError{Field: "agenda_items", Reason: fmt.Sprintf("at most %d items", MaxAgendaItems)})
	}

	if len(r.Attendees) == 0 {
		errs = append(errs, FieldError{Field: "attendees", Reason: "roster must not be empty"})
	}
	if len(r.Attendees) > MaxAttendeeRows {
		errs = append(errs, FieldError{Field: "attendees", Reason: fmt.Sprintf("at most %d rows", MaxAttendeeRows)})
	}
	seen := make(map[string]bool, len(r.Attendees))
	for i, a := range r.Attendees {
		if !a.Presence.Valid() {
			errs = append(errs, FieldError{
				Field:  fmt.Sprintf("attendees[%d].presence", i),
				Reason: fmt.Sprintf("must be %q or %q", Present, Absent),
			})
		}
		if a.Name != "" {
			if seen[a.Name] {
				errs = append(errs, FieldError{
					Field:  fmt.Sprintf("attendees[%d].name", i),
					Reason: "duplicate attendee name",
				})
			}
			seen[a.Name] = true
		}
	}

	return errs
}
