package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Show usage if no arguments provided
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	dbPath := cmd.String("db", "", "Path to SQLite database (defaults to DATA_DIR/blackjack.db)")
	verbose := cmd.Bool("v", false, "Log every migration step")

	switch os.Args[1] {
	case "up", "down", "version":
		cmd.Parse(os.Args[2:])
	case "help":
		printUsage()
		return
	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	level := logging.WARN
	if *verbose {
		level = logging.INFO
	}
	logger := logging.NewLogger(level)

	path := *dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		path = cfg.SQLitePath()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		logger.Error("Error opening database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db, logger)

	switch os.Args[1] {
	case "up":
		err = migrator.MigrateUp()
	case "down":
		err = migrator.MigrateDown()
	}
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	version, err := migrator.Version()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	fmt.Printf("%s: schema version %d\n", path, version)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run cmd/migration/main.go up [-db PATH]       - Apply pending migrations")
	fmt.Println("  go run cmd/migration/main.go down [-db PATH]     - Roll back the latest migration")
	fmt.Println("  go run cmd/migration/main.go version [-db PATH]  - Show the current schema version")
	fmt.Println("  go run cmd/migration/main.go help                - Show this help")
	fmt.Println("\nExamples:")
	fmt.Println("  go run cmd/migration/main.go up -db data/blackjack.db")
	fmt.Println("  go run cmd/migration/main.go version")
}
