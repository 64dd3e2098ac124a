package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"coffeesaf/internal/config"
	"coffeesaf/internal/db"
	catalogrepo "coffeesaf/internal/repository/catalog"
	"coffeesaf/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := catalogrepo.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, repo); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
