package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/puantaj-hr/attendance-backend-go/internal/config"
	"github.com/puantaj-hr/attendance-backend-go/internal/fixtures"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
	"github.com/puantaj-hr/attendance-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ctx := context.Background()
	if err := postgresql.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if ownerPassword == "" {
		ownerPassword = "admin123"
	}

	seeder := fixtures.NewSeeder(
		postgresql.NewAdminRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewPunchRepository(db),
	)

	if err := seeder.Run(ctx, cfg.App.OwnerEmail, ownerPassword); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	fmt.Println("Seeding complete")
}
