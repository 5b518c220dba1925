package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("warn", &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	log.Info().Msg("dropped")
	log.Warn().Str("texture", "cat.png").Msg("fallback")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["texture"] != "cat.png" || entry["message"] != "fallback" {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup("loud", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown level")
	}
}
