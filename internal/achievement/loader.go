package achievement

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/validation"
)

// Loader reads achievement catalogs from JSON
type Loader interface {
	Load(path string) (*Catalog, error)
	LoadOrDefault(path string) (*Catalog, error)
	Parse(data []byte) (*Catalog, error)
}

type loader struct {
	schemas  validation.SchemaValidator
	validate *validator.Validate
}

// NewLoader creates a catalog loader backed by the bundled JSON schema
func NewLoader(schemas validation.SchemaValidator) Loader {
	if schemas == nil {
		schemas = validation.NewSchemaValidator()
	}
	return &loader{
		schemas:  schemas,
		validate: validator.New(),
	}
}

// Load reads and validates the catalog at path
func (l *loader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadCatalog, path, err)
	}
	cat, err := l.Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgCatalogLoaded, "path", path, "version", cat.Version, "count", len(cat.Achievements))
	return cat, nil
}

// LoadOrDefault behaves like Load but falls back to the default catalog when
// the file does not exist. Any other failure is returned.
func (l *loader) LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	cat, err := l.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgCatalogFallback, "path", path)
		return DefaultCatalog(), nil
	}
	return cat, err
}

// Parse validates raw catalog JSON against the schema, then the struct rules
func (l *loader) Parse(data []byte) (*Catalog, error) {
	if err := l.schemas.ValidateBytes(data, validation.SchemaAchievements); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalog, err)
	}

	if err := Validate(l.validate, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks struct rules and id uniqueness
func Validate(v *validator.Validate, cat *Catalog) error {
	if cat == nil {
		return fmt.Errorf("%w: catalog is nil", domain.ErrInvalidCatalog)
	}
	if err := v.Struct(cat); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(cat.Achievements))
	for _, def := range cat.Achievements {
		if seen[def.ID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCatalogID, def.ID)
		}
		seen[def.ID] = true
	}
	return nil
}
