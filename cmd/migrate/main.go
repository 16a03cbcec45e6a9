package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"book-catalog/db"
	"book-catalog/pkg/database"
	"book-catalog/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, status, version")
	flag.Parse()

	loadEnvFiles()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, database.ConnString(config.Database))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := configureGoose(); err != nil {
		log.Fatalf("Failed to configure goose: %v", err)
	}

	if err := run(ctx, *command, sqlDB); err != nil {
		log.Fatalf("Migration %s failed: %v", *command, err)
	}
}

func configureGoose() error {
	goose.SetBaseFS(db.Migrations)
	return goose.SetDialect("postgres")
}

func run(ctx context.Context, command string, sqlDB *sql.DB) error {
	switch command {
	case "up":
		if err := goose.UpContext(ctx, sqlDB, db.MigrationsDir); err != nil {
			return err
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, sqlDB, db.MigrationsDir); err != nil {
			return err
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		return goose.StatusContext(ctx, sqlDB, db.MigrationsDir)
	case "version":
		return goose.VersionContext(ctx, sqlDB, db.MigrationsDir)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, version", command)
	}
	return nil
}
