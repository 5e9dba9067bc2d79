package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"words.txt"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "words.txt", cfg.Args.Input)
	assert.Equal(t, 1, cfg.PronunciationOffset)
	assert.Equal(t, 2, cfg.DefinitionOffset)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, "", cfg.TestData)
	assert.False(t, cfg.Console)
	assert.False(t, cfg.Raw)
	assert.Equal(t, "https://www.edrdg.org/cgi-bin/wwwjdic/wwwjdic?1ZEU", cfg.WWWJDICURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-n", "2", "-p", "3", "-d", "4", "-t", "fixture.yml", "-c", "-r", "list.txt"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "list.txt", cfg.Args.Input)
	assert.Equal(t, 2, cfg.Count)
	assert.Equal(t, 3, cfg.PronunciationOffset)
	assert.Equal(t, 4, cfg.DefinitionOffset)
	assert.Equal(t, "fixture.yml", cfg.TestData)
	assert.True(t, cfg.Console)
	assert.True(t, cfg.Raw)
}

func TestLoad_LongFlags(t *testing.T) {
	cfg, err := Load([]string{"list.txt", "--testdata", "f.yml", "--console", "--count=1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "f.yml", cfg.TestData)
	assert.True(t, cfg.Console)
	assert.Equal(t, 1, cfg.Count)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SENTENCER_WWWJDIC_URL", "http://localhost:9999/?1ZEU")
	t.Setenv("SENTENCER_HTTP_TIMEOUT", "5s")
	t.Setenv("SENTENCER_LOG_LEVEL", "debug")
	t.Setenv("SENTENCER_LOG_FORMAT", "json")

	cfg, err := Load([]string{"words.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/?1ZEU", cfg.WWWJDICURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(nil, io.Discard)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = Load([]string{"a.txt", "b.txt"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra arguments")

	_, err = Load([]string{"-n", "0", "a.txt"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be at least 1")

	_, err = Load([]string{"-n", "many", "a.txt"}, io.Discard)
	require.Error(t, err)

	_, err = Load([]string{"--bogus", "a.txt"}, io.Discard)
	require.Error(t, err)
}

func TestLoad_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := Load([]string{"-h"}, &out)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, out.String(), "--testdata")
	assert.Contains(t, out.String(), "SENTENCER_WWWJDIC_URL")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Env{LogLevel: tt.level, LogFormat: "text"}, &buf)

			logger.Log(context.TODO(), tt.want, "should appear")
			assert.NotZero(t, buf.Len())

			buf.Reset()
			logger.Log(context.TODO(), tt.want-1, "should be suppressed")
			assert.Zero(t, buf.Len(), buf.String())
		})
	}
}

func TestNewLogger_Formats(t *testing.T) {
	var textBuf, jsonBuf bytes.Buffer

	NewLogger(Env{LogLevel: "info", LogFormat: "text"}, &textBuf).Info("hello")
	NewLogger(Env{LogLevel: "info", LogFormat: "JSON"}, &jsonBuf).Info("hello")

	assert.True(t, strings.Contains(textBuf.String(), "source="))

	var m map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &m))
	assert.Equal(t, "hello", m["msg"])
	_, hasSource := m["source"]
	assert.False(t, hasSource)
}
