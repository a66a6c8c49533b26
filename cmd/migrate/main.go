package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/warehousing/fulfilment-api/internal/infrastructure/postgres"
	"github.com/warehousing/fulfilment-api/pkg/config"
)

// Runs embedded schema migrations: `migrate [up|down|status|version ...]`.
// Defaults to "up" when no command is given.
func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := postgres.MigrateCommand(cfg.DB.ConnectionString(), command, args...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
