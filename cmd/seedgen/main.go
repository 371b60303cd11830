package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"menu-service/internal/seed"
)

// seedgen writes the bundled sample menu to a file that can be uploaded to
// S3 or listed in SEED_FILES. Names ending in .gz are gzipped.
func main() {
	out := flag.String("out", "data/seed/sample_menu.json.gz", "output file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	catalog := seed.Sample()
	if err := seed.Encode(file, catalog, strings.HasSuffix(*out, ".gz")); err != nil {
		file.Close()
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d categories and %d menu items\n",
		*out, len(catalog.Categories), catalog.ItemCount())
}
