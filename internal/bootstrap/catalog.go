package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/fragrewards/internal/achievement"
)

// LoadCatalog reads the achievement catalog at path, validating it against
// the bundled JSON schema. A missing file falls back to the compiled-in
// catalog; an invalid one is an error.
func LoadCatalog(path string) (*achievement.Catalog, error) {
	cat, err := achievement.NewLoader(nil).LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogReady, "version", cat.Version, "achievements", len(cat.Achievements))
	return cat, nil
}
