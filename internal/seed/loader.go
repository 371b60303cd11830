package seed

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading seed catalogs.
type Loader interface {
	// Load reads the catalog stored under path.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// fileLoader implements Loader for catalogs on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON catalog file, gunzipping it when the name ends in .gz.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	catalog, err := Decode(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("categories", len(catalog.Categories)).
		Int("menu_items", catalog.ItemCount()).
		Msg("seed file loaded successfully")

	return catalog, nil
}

// LoadAll loads every path concurrently and returns the catalogs in the order
// of paths. The first failure, in path order, is returned.
func LoadAll(ctx context.Context, loader Loader, paths []string, logger zerolog.Logger) ([]*Catalog, error) {
	type loadResult struct {
		index   int
		catalog *Catalog
		err     error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			catalog, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, catalog: catalog, err: err}
		}(i, path)
	}

	// Wait for all loads to complete
	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	catalogs := make([]*Catalog, 0, len(paths))
	for i, result := range results {
		if result.err != nil {
			logger.Error().Err(result.err).Str("file", paths[i]).Msg("failed to load seed file")
			return nil, fmt.Errorf("failed to load seed file %s: %w", paths[i], result.err)
		}
		catalogs = append(catalogs, result.catalog)
	}

	return catalogs, nil
}
