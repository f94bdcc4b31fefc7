package services

import (
	"context"
	"testing"

	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
)

func TestDarkModeDefaultsToFalse(t *testing.T) {
	svc := NewProfileService(memstore.New(), nopLogger{})

	darkMode, err := svc.DarkMode(context.Background())
	if err != nil {
		t.Fatalf("DarkMode() error = %v", err)
	}
	if darkMode {
		t.Error("DarkMode() = true on fresh store, want false")
	}
}

func TestSetDarkModeRoundTrip(t *testing.T) {
	svc := NewProfileService(memstore.New(), nopLogger{})
	ctx := context.Background()

	if err := svc.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("SetDarkMode() error = %v", err)
	}
	darkMode, err := svc.DarkMode(ctx)
	if err != nil {
		t.Fatalf("DarkMode() error = %v", err)
	}
	if !darkMode {
		t.Error("DarkMode() = false after SetDarkMode(true)")
	}

	if err := svc.SetDarkMode(ctx, false); err != nil {
		t.Fatalf("SetDarkMode() error = %v", err)
	}
	darkMode, err = svc.DarkMode(ctx)
	if err != nil {
		t.Fatalf("DarkMode() error = %v", err)
	}
	if darkMode {
		t.Error("DarkMode() = true after SetDarkMode(false)")
	}
}
