package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/peoplecore/employee-records/internal/bootstrap"
	"github.com/peoplecore/employee-records/internal/config"
	"github.com/peoplecore/employee-records/internal/logger"
	"github.com/peoplecore/employee-records/internal/storage"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear")
	preset := flag.String("preset", "small", "Data preset: small, medium, large")
	employees := flag.Int("employees", 0, "Number of employees (overrides preset)")
	records := flag.Int("records", 0, "Number of records per collection (overrides preset)")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Employee Record Seeder")
	fmt.Println(strings.Repeat("=", 50))

	if err := config.LoadEnvConfig(); err != nil {
		log.Fatalf("failed to load env config: %v", err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	store, err := bootstrap.OpenStorage(config.DefaultEnvConfig.STORAGE_DRIVER, config.DefaultEnvConfig.DATA_DIR)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	defer func() {
		if closer, ok := store.(io.Closer); ok {
			closer.Close()
		}
	}()

	seeder := storage.NewDataSeeder(store)

	switch *action {
	case "seed":
		numEmployees, perCollection := storage.GetPresetConfig(storage.SeedPreset(*preset))
		if *employees > 0 {
			numEmployees = *employees
		}
		if *records > 0 {
			perCollection = *records
		}

		fmt.Printf("🌱 Seeding %d employees with ~%d records per collection...\n", numEmployees, perCollection)
		if err := seeder.SeedData(ctx, numEmployees, perCollection); err != nil {
			log.Fatalf("seed failed: %v", err)
		}

	case "clear":
		fmt.Println("🧹 Clearing all records...")
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("clear failed: %v", err)
		}

	default:
		fmt.Printf("❌ Unknown action: %s\n", *action)
		flag.PrintDefaults()
		return
	}

	fmt.Println("\n✅ Done!")
}
