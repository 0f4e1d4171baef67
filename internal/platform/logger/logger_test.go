package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"nope":    Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSONFormat_IncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Debug, Format: FormatJSON, App: "pettrack", Output: &buf})

	log.With(map[string]any{"request_id": "r-1"}).Info("pet created", map[string]any{
		"pet_id": "p-1",
		"err":    errors.New("boom"),
		"":       "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet created", entry["msg"])
	assert.Equal(t, "pettrack", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "p-1", entry["pet_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	log.Debug("hidden", nil)
	log.Info("hidden too", nil)
	log.Warn("visible", map[string]any{"n": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "visible"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("x", nil)
	_ = l.Sync()
}
