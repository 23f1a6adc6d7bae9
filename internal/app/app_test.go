package app

import (
	"testing"
	"time"

	"github.com/crickstack/scorecard-api/internal/config"
)

func TestNewServesMemoryModeWithoutDB(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:           ":0",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       30 * time.Second,
	}

	application, err := New(t.Context(), cfg, nil)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer application.Close()

	if application.Server() == nil {
		t.Fatal("expected a configured http server")
	}
	if application.Server().Addr != cfg.HTTPAddr {
		t.Fatalf("unexpected server addr: %q", application.Server().Addr)
	}
}

func TestNewRejectsEmptyAddr(t *testing.T) {
	cfg := config.Config{
		CORSAllowedOrigins: []string{"*"},
	}

	if _, err := New(t.Context(), cfg, nil); err == nil {
		t.Fatal("expected error for empty http addr")
	}
}
