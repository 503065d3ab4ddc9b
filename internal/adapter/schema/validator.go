// Package schema validates request documents against embedded JSON schemas
// using kin-openapi.
package schema

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// Schema names known to the validator.
const (
	Discussion       = "discussion"
	DiscussionUpdate = "discussion_update"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator checks documents against named schemas.
type Validator struct {
	schemas map[string]*openapi3.Schema
}

// New loads and checks every embedded schema.
func New() (*Validator, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*openapi3.Schema, len(entries))}
	for _, e := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", e.Name(), err)
		}

		var s openapi3.Schema
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", e.Name(), err)
		}
		if err := s.Validate(context.Background()); err != nil {
			return nil, fmt.Errorf("invalid schema %s: %w", e.Name(), err)
		}

		v.schemas[strings.TrimSuffix(e.Name(), ".json")] = &s
	}
	return v, nil
}

// Validate checks doc against the named schema. A violation returns a
// *domain.ValidationError listing every failing field.
func (v *Validator) Validate(name string, doc map[string]any) error {
	s, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("schema %q is not registered", name)
	}

	value, err := jsonValue(doc)
	if err != nil {
		return domain.NewValidationError("payload", err.Error())
	}

	err = s.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return toValidationError(err)
}

// jsonValue normalizes doc into the types produced by encoding/json
// (map[string]any, []any, float64) which VisitJSON expects.
func jsonValue(doc map[string]any) (any, error) {
	if doc == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return out, nil
}

func toValidationError(err error) error {
	var fields []domain.FieldError
	collect(err, &fields)
	if len(fields) == 0 {
		return domain.NewValidationError("payload", err.Error())
	}
	return domain.NewValidationErrors(fields)
}

func collect(err error, out *[]domain.FieldError) {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi {
			collect(e, out)
		}
		return
	}

	var se *openapi3.SchemaError
	if errors.As(err, &se) {
		field := strings.Join(se.JSONPointer(), ".")
		if field == "" {
			field = "payload"
		}
		*out = append(*out, domain.FieldError{Field: field, Message: se.Reason})
		return
	}

	*out = append(*out, domain.FieldError{Field: "payload", Message: err.Error()})
}
