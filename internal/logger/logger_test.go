package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDefaultsToInfo(t *testing.T) {
	t.Setenv("ENV", "")

	log := New()
	if got := log.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", got)
	}
}

func TestNewDevelopmentEnablesDebug(t *testing.T) {
	t.Setenv("ENV", "development")

	log := New()
	if got := log.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %s", got)
	}
}
