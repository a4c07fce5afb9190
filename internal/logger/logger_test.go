package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestInitWithFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	file := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, Init("debug", file))

	id := WithRunID()
	Debug().Str("path", "/tmp").Msg("测试日志")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "测试日志")
	assert.Contains(t, string(data), id)
}

func TestInitBadFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	err := Init("info", filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	Logger = New(&buf, zerolog.InfoLevel)

	Progress(5, 10, "处理进度")
	assert.Contains(t, buf.String(), `"percentage":50`)

	buf.Reset()
	Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
