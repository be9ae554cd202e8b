// Package main provides data seeding for the shop management backend.
//
// Seeds a starter service catalog, a small parts inventory, and a
// default admin login. Every insert is idempotent so the command can be
// re-run safely against a populated database.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/part"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/internal/config"
	"github.com/dediamond1/mechanic/internal/infrastructure"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedCatalog(ctx, client); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := seedParts(ctx, client); err != nil {
		return fmt.Errorf("seed parts: %w", err)
	}
	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// catalogItem defines a starter catalog entry for seeding.
type catalogItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
}

func starterCatalog() []catalogItem {
	return []catalogItem{
		{ID: "svc-oil-change", Name: "Oil Change", Description: "Engine oil and filter replacement", Price: 49.99, Category: "Engine"},
		{ID: "svc-tire-rotation", Name: "Tire Rotation", Description: "Rotate all four tires", Price: 29.99, Category: "Tires"},
		{ID: "svc-brake-inspection", Name: "Brake Inspection", Description: "Full brake system inspection", Price: 39.99, Category: "Brakes"},
		{ID: "svc-brake-pads", Name: "Brake Pad Replacement", Description: "Replace front or rear brake pads", Price: 149.99, Category: "Brakes"},
		{ID: "svc-battery-check", Name: "Battery Check", Description: "Battery load test and terminal cleaning", Price: 19.99, Category: "Electrical"},
		{ID: "svc-diagnostics", Name: "Engine Diagnostics", Description: "OBD-II scan and fault analysis", Price: 89.99, Category: "Engine"},
		{ID: "svc-general-inspection", Name: "General Inspection", Description: "Multi-point vehicle inspection", Price: 59.99, Category: "General"},
	}
}

// seedCatalog creates the starter service catalog. Existing names are skipped.
func seedCatalog(ctx context.Context, client *ent.Client) error {
	for _, item := range starterCatalog() {
		_, err := client.ServiceCatalogItem.Create().
			SetID(item.ID).
			SetName(item.Name).
			SetDescription(item.Description).
			SetPrice(item.Price).
			SetCategory(servicecatalogitem.Category(item.Category)).
			SetIsActive(true).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Catalog item already exists, skipping", zap.String("name", item.Name))
				continue
			}
			return fmt.Errorf("create catalog item %s: %w", item.Name, err)
		}
		logger.Info("Seeded catalog item", zap.String("name", item.Name))
	}
	return nil
}

// starterPart defines a starter inventory part for seeding.
type starterPart struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Supplier string
}

func starterParts() []starterPart {
	return []starterPart{
		{ID: "part-oil-filter", Name: "Oil Filter", Price: 12.50, Quantity: 40, Supplier: "FiltersCo"},
		{ID: "part-engine-oil-5w30", Name: "Engine Oil 5W-30 (1L)", Price: 9.99, Quantity: 120, Supplier: "LubeWorks"},
		{ID: "part-brake-pad-set", Name: "Brake Pad Set", Price: 45.00, Quantity: 24, Supplier: "StopRight"},
		{ID: "part-wiper-blade", Name: "Wiper Blade", Price: 8.75, Quantity: 60, Supplier: "ClearView"},
		{ID: "part-battery-12v", Name: "12V Battery", Price: 110.00, Quantity: 10, Supplier: "VoltMax"},
	}
}

// seedParts creates the starter parts inventory. Existing ids are skipped.
func seedParts(ctx context.Context, client *ent.Client) error {
	for _, p := range starterParts() {
		_, err := client.Part.Create().
			SetID(p.ID).
			SetName(p.Name).
			SetCondition(part.ConditionNew).
			SetPrice(p.Price).
			SetQuantity(p.Quantity).
			SetSupplier(p.Supplier).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Part already exists, skipping", zap.String("name", p.Name))
				continue
			}
			return fmt.Errorf("create part %s: %w", p.Name, err)
		}
		logger.Info("Seeded part", zap.String("name", p.Name))
	}
	return nil
}

// seedDefaultAdmin creates the default admin login. The password comes
// from SEED_ADMIN_PASSWORD and falls back to "change-me-now" for local
// development only.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-now"
		logger.Warn("SEED_ADMIN_PASSWORD not set, using development default")
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID("user-default-admin").
		SetEmail("admin@localhost").
		SetName("Default Administrator").
		SetPasswordHash(string(hashBytes)).
		SetEmailVerified(true).
		SetEnabled(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("email", "admin@localhost"))
	return nil
}
