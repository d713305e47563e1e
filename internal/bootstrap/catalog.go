package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/config"
)

// LoadCatalog builds the base catalog: the built-in cards followed by any
// from cfg.CatalogPath. A bad file fails startup rather than being skipped.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	extra, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	base := catalog.Default()
	if err := base.AddAll(extra); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedExtendCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "extra_cards", len(extra), "total_cards", base.Len())
	return base, nil
}
