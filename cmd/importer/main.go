package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"coffeesaf/internal/config"
	"coffeesaf/internal/db"
	"coffeesaf/internal/importer"
	catalogrepo "coffeesaf/internal/repository/catalog"
)

func main() {
	_ = godotenv.Load()

	path := flag.String("file", "", "path to the menu CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatal("usage: importer -file menu.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := catalogrepo.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, repo)

	n, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}
	logger.Printf("imported %d menu items", n)
}
