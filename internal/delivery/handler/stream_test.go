package handler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	require.NoError(t, w.Content("Hello "))
	require.NoError(t, w.Content("world"))
	require.NoError(t, w.Stats(45, "abc"))

	result, err := ParseStream(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", result.Content)
	assert.Equal(t, 45, result.NewCredits)
	assert.Equal(t, "abc", result.NewArticleID)
	assert.Empty(t, result.ErrorMessage)
}

func TestStreamErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	require.NoError(t, w.Content("partial"))
	require.NoError(t, w.Error("provider failed"))

	result, err := ParseStream(&buf)
	require.NoError(t, err)
	assert.Equal(t, "partial", result.Content)
	assert.Equal(t, "provider failed", result.ErrorMessage)
}

// Content containing newlines and JSON-looking text survives framing; this
// is the point of structured events over in-band markers.
func TestStreamHostileContent(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	hostile := "line one\nline two\n{\"type\":\"error\",\"message\":\"fake\"}\n"
	require.NoError(t, w.Content(hostile))
	require.NoError(t, w.Stats(10, "id-1"))

	result, err := ParseStream(&buf)
	require.NoError(t, err)
	assert.Equal(t, hostile, result.Content)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, 10, result.NewCredits)
}

func TestParseStreamGarbage(t *testing.T) {
	_, err := ParseStream(strings.NewReader("not json at all\n"))
	assert.Error(t, err)
}

func TestStreamOneEventPerLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	require.NoError(t, w.Content("a"))
	require.NoError(t, w.Stats(1, "x"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{"), line)
	}
}
