package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/validation"
)

//go:embed file.schema.json
var fileSchema []byte

const fileSchemaName = "card-file.schema.json"

var fileValidator = sync.OnceValues(func() (*validation.SchemaValidator, error) {
	v := validation.NewSchemaValidator()
	return v, v.AddSchema(fileSchemaName, fileSchema)
})

// File is the on-disk shape of a card list
//
//	version: "1"
//	cards:
//	  - name: Ember Fox
//	    type: fire
//	    hp: 75
//	    attack_name: Cinder Dash
//	    damage: 38
//	    energy_cost: 2
type File struct {
	Version string        `yaml:"version"`
	Cards   []domain.Card `yaml:"cards"`
}

// LoadFile reads extra cards from a YAML file. A missing file is not an
// error and yields no cards, so the path can be configured unconditionally.
func LoadFile(path string) ([]domain.Card, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read card file %s: %w", path, err)
	}
	cards, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("card file %s: %w", path, err)
	}
	return cards, nil
}

// Parse decodes, normalizes, and validates a card list. The document shape
// is checked against the card file schema first (unknown keys, wrong types),
// then each card's values. Either every card is valid and returned, or an
// error listing each bad entry is.
func Parse(data []byte) ([]domain.Card, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	if err := checkShape(raw); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if f.Version != "" && f.Version != CatalogFileVersion {
		return nil, fmt.Errorf("unsupported card file version %q (expected %q)", f.Version, CatalogFileVersion)
	}

	staging := New()
	if err := staging.AddAll(f.Cards); err != nil {
		return nil, err
	}
	return staging.Cards(), nil
}

func checkShape(raw any) error {
	v, err := fileValidator()
	if err != nil {
		return err
	}
	doc, err := validation.ToJSONValue(raw)
	if err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if err := v.Validate(fileSchemaName, doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCard, err)
	}
	return nil
}
