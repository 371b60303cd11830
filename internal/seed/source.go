package seed

import (
	"context"

	"menu-service/internal/config"

	"github.com/rs/zerolog"
)

// Catalogs resolves the configured seed sources. Without any files the
// bundled sample menu is used. With S3 enabled each file is fetched from the
// bucket first and read from disk if that fails.
func Catalogs(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) ([]*Catalog, error) {
	if len(cfg.Files) == 0 {
		logger.Info().Msg("no seed files configured, using bundled sample menu")
		return []*Catalog{Sample()}, nil
	}

	fileLoader := NewFileLoader(logger)
	var s3Loader Loader

	if cfg.S3.Enabled {
		l, err := NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for seed files (S3 disabled)")
	}

	loader := NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)
	return LoadAll(ctx, loader, cfg.Files, logger)
}
