package minit

import (
	"fmt"
	"strings"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// ValidationError carries every field failure of one record. Recoverable:
// the user corrects the form and resubmits.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AssetError marks an uploaded asset that could not be used. Recoverable:
// composition proceeds without the asset and the caller is warned.
type AssetError struct {
	Asset string
	Err   error
}

func (e *AssetError) Error() string { return fmt.Sprintf("asset %s unusable: %v", e.Asset, e.Err) }
func (e *AssetError) Unwrap() error { return e.Err }

// ConfigurationError marks a malformed template registry entry or an unknown
// template id. Fatal: a deployment defect, not user-correctable.
type ConfigurationError struct {
	TemplateID string
	Reason     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("template %q: %s", e.TemplateID, e.Reason)
}

// RenderError marks a failure inside the rendering collaborator. Terminal for
// the request; no partial document is returned.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }
