package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		expected    bool
	}{
		{contentType: "text/html", expected: true},
		{contentType: "text/html; charset=UTF-8", expected: true},
		{contentType: "application/xml", expected: true},
		{contentType: "application/xml; charset=utf-8", expected: true},
		{contentType: "application/soap+xml", expected: true},
		{contentType: "application/json", expected: true},
		{contentType: "application/x-www-form-urlencoded", expected: true},
		{contentType: "text/xml; charset=iso-8859-1", expected: false},
		{contentType: "image/png", expected: false},
		{contentType: "application/octet-stream", expected: false},
		{contentType: "", expected: false},
		{contentType: "not a media type;;", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router_url: x"), 0o600))

	exists, err := IsFileExist(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = IsFileExist(dir)
	require.NoError(t, err)
	assert.False(t, exists, "directories are not files")

	exists, err = IsFileExist(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestTruncate tests the Truncate function.
func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Truncate([]byte("short"), 10))
	assert.Equal(t, "exact", Truncate([]byte("exact"), 5))

	truncated := Truncate([]byte(strings.Repeat("a", 20)), 4)
	assert.Equal(t, "aaaa... [truncated]", truncated)
}
