// Package definition loads declarative item definitions and binds their
// mechanic sections to registered mechanic factories.
package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/emberworks/itemforge/internal/validation"
)

// Sentinel errors for the definition loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")

	ErrUnknownItem = errors.New("unknown item")
)

// Config represents the JSON configuration for item definitions
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON. Mechanics holds one
// raw section per declared mechanic type; each registered factory parses only
// the section matching its name.
type Def struct {
	InternalName string                     `json:"internal_name" validate:"required"`
	PublicName   string                     `json:"public_name" validate:"required"`
	Description  string                     `json:"description"`
	MaxStack     int                        `json:"max_stack" validate:"gte=0"`
	WearMax      int                        `json:"wear_max" validate:"gte=0"`
	Mechanics    map[string]json.RawMessage `json:"mechanics,omitempty"`
}

// Loader handles loading and validating item definition configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type defLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &defLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
	}
}

// Load reads and parses an item definition JSON file
func (l *defLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item definition configuration for errors
func (l *defLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	// Track internal names for duplicate detection
	internalNames := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]

		if def.InternalName == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if internalNames[def.InternalName] {
			return fmt.Errorf("%w: %q", ErrDuplicateInternalName, def.InternalName)
		}
		internalNames[def.InternalName] = true

		if err := l.validateDef(def); err != nil {
			return err
		}
	}

	return nil
}

// validateDef runs the struct-level validation rules on one definition.
func (l *defLoader) validateDef(def *Def) error {
	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, def.InternalName, err)
	}
	return nil
}
