package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "confgen.manifest.json"

// GenerateSchema returns the JSON Schema of the manifest, reflected from
// the Manifest type.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		Anonymous:                 true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Manifest{})
	schema.Title = "confgen manifest"
	schema.Description = "Entity sources and generator settings of a confgen run."

	return json.MarshalIndent(schema, "", "  ")
}

// Validator checks raw manifest data against the manifest schema.
type Validator struct {
	schema *santhosh.Schema
}

var (
	validatorOnce sync.Once
	validator     *Validator
	validatorErr  error
)

// NewValidator compiles the manifest schema. The compiled schema is shared.
func NewValidator() (*Validator, error) {
	validatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			validatorErr = fmt.Errorf("failed to generate manifest schema: %w", err)
			return
		}

		compiler := santhosh.NewCompiler()
		if err := compiler.AddResource(schemaResource, strings.NewReader(string(data))); err != nil {
			validatorErr = fmt.Errorf("failed to add manifest schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile(schemaResource)
		if err != nil {
			validatorErr = fmt.Errorf("failed to compile manifest schema: %w", err)
			return
		}

		validator = &Validator{schema: schema}
	})

	return validator, validatorErr
}

// Validate validates data, which must marshal to a JSON object.
func (v *Validator) Validate(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest for validation: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal manifest for validation: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		if verr, ok := err.(*santhosh.ValidationError); ok {
			var messages []string
			collectErrors(verr, &messages)

			return fmt.Errorf("schema validation failed:\n%s", strings.Join(messages, "\n"))
		}

		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

func collectErrors(err *santhosh.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}

		*messages = append(*messages, fmt.Sprintf("- %s: %s", loc, err.Message))
	}

	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
