package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"menu-service/internal/config"
	"menu-service/internal/database"
	"menu-service/internal/repository"
	"menu-service/internal/seed"
	"menu-service/internal/service"
)

// migrate applies the schema and optionally loads the configured seed data,
// then exits.
func main() {
	withSeed := flag.Bool("seed", false, "load seed data after migrating")
	flag.Parse()

	if err := run(*withSeed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(withSeed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if !withSeed {
		return nil
	}

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	menuItemRepo := repository.NewMenuItemRepository(pool, logger)

	catalogs, err := seed.Catalogs(ctx, cfg.Seed, logger)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	seeder := seed.NewSeeder(
		service.NewCategoryService(categoryRepo, menuItemRepo, logger),
		service.NewMenuItemService(menuItemRepo, categoryRepo, logger),
		logger,
	)
	result, err := seeder.Apply(ctx, catalogs...)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Printf("Seeded %d categories (%d skipped) and %d menu items\n",
		result.CategoriesCreated, result.CategoriesSkipped, result.ItemsCreated)
	return nil
}
