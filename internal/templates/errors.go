package templates

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTranslatorRequired indicates the service cannot operate without a translator.
	ErrTranslatorRequired = errors.New("templates: translator is required")
	// ErrRendererConfig indicates the template renderer was misconfigured.
	ErrRendererConfig = errors.New("templates: renderer configuration is incomplete")
	// ErrViewNotFound is returned when a block/view/locale combination has no template.
	ErrViewNotFound = errors.New("templates: view not found")
	// ErrInvalidRenderRequest is returned when mandatory render inputs are missing.
	ErrInvalidRenderRequest = errors.New("templates: invalid render request")
)

// SchemaError surfaces missing keys in the render payload.
type SchemaError struct {
	View    string
	Missing []string
}

func (e SchemaError) Error() string {
	if len(e.Missing) == 0 {
		return "templates: schema validation failed"
	}
	if e.View != "" {
		return fmt.Sprintf("templates: view %s missing data: %s", e.View, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("templates: missing data: %s", strings.Join(e.Missing, ", "))
}
