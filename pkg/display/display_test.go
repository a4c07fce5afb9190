package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size))
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{-5, "0s"},
		{45, "45s"},
		{125, "2m 5s"},
		{600, "10m"},
		{2*3600 + 5*60, "2h 5m"},
		{7 * 3600, "7h"},
		{86400, "1 day"},
		{2*86400 + 3*3600, "2 days 3h"},
		{10 * 86400, "10 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAge(tt.secs), "seconds %d", tt.secs)
	}
}

func TestAgeRange(t *testing.T) {
	assert.Equal(t, "All ages", AgeRange(0, 0))
	assert.Equal(t, "older than 7 days", AgeRange(7, 0))
	assert.Equal(t, "newer than 12h", AgeRange(0, 0.5))
	assert.Equal(t, "between 1 day and 3 days old", AgeRange(1, 3))
	// 最大值不大于最小值时忽略
	assert.Equal(t, "older than 3 days", AgeRange(3, 1))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "file", Pluralize("file", "s", 1))
	assert.Equal(t, "files", Pluralize("file", "s", 3))
	assert.Equal(t, "subdirectories", Pluralize("subdirectory", "subdirectories", 0))
}

func TestShortPattern(t *testing.T) {
	assert.Equal(t, "*.log", ShortPattern("*.log"))
	long := "(alpha|beta|gamma|delta|epsilon|zeta)"
	assert.Equal(t, "(alpha|beta|...)", ShortPattern(long))
}
