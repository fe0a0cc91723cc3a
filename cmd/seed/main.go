package main

import (
	"context"
	"flag"
	"os"

	"shelf/internal/config"
	"shelf/internal/platform/logging"
	"shelf/internal/source"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seed copies the text data files into the publications and clients tables.
func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	log, _ := logging.New("info", "text", os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	files := source.Files{PublicationsPath: cfg.PublicationsFile, ClientsPath: cfg.ClientsFile}

	pubs, err := files.Publications(ctx)
	if err != nil {
		log.Fatalf("Failed to read publications: %v", err)
	}
	clients, err := files.Clients(ctx)
	if err != nil {
		log.Fatalf("Failed to read clients: %v", err)
	}
	for _, err := range append(pubs.Skipped, clients.Skipped...) {
		log.Warn(err)
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	log.Printf("Importing %d publications and %d clients...", len(pubs.Items), len(clients.Items))
	if err := source.NewPostgres(pool).Import(ctx, pubs.Items, clients.Items); err != nil {
		log.Fatalf("Failed to import: %v", err)
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM publications").Scan(&total); err != nil {
		log.Fatalf("Failed to count publications: %v", err)
	}
	log.Printf("Database now contains %d publications", total)
}
