package main

import (
	"testing"
)

func TestStarterCatalog_UniqueIDsAndNames(t *testing.T) {
	t.Parallel()

	items := starterCatalog()
	if len(items) == 0 {
		t.Fatal("starterCatalog is empty")
	}

	ids := make(map[string]bool, len(items))
	names := make(map[string]bool, len(items))
	for _, item := range items {
		if ids[item.ID] {
			t.Fatalf("duplicate catalog id: %s", item.ID)
		}
		if names[item.Name] {
			t.Fatalf("duplicate catalog name: %s", item.Name)
		}
		ids[item.ID] = true
		names[item.Name] = true

		if item.Price <= 0 {
			t.Fatalf("catalog item %s has non-positive price %v", item.Name, item.Price)
		}
	}
}

func TestStarterCatalog_KnownCategoriesOnly(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{
		"Engine": true, "Tires": true, "Brakes": true, "Electrical": true, "General": true,
	}
	for _, item := range starterCatalog() {
		if !valid[item.Category] {
			t.Fatalf("catalog item %s has unknown category %q", item.Name, item.Category)
		}
	}
}

func TestStarterParts_UniqueIDsAndPositiveStock(t *testing.T) {
	t.Parallel()

	parts := starterParts()
	if len(parts) == 0 {
		t.Fatal("starterParts is empty")
	}

	ids := make(map[string]bool, len(parts))
	for _, p := range parts {
		if ids[p.ID] {
			t.Fatalf("duplicate part id: %s", p.ID)
		}
		ids[p.ID] = true

		if p.Quantity < 0 {
			t.Fatalf("part %s has negative quantity %d", p.Name, p.Quantity)
		}
		if p.Price <= 0 {
			t.Fatalf("part %s has non-positive price %v", p.Name, p.Price)
		}
	}
}
