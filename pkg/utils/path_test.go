package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		scriptPath   string
		relativePath string
		expected     string
	}{
		{
			scriptPath:   "dir/script.gl",
			relativePath: "items.html",
			expected:     "dir/items.html",
		},
		{
			scriptPath:   "script.gl",
			relativePath: "items.txt",
			expected:     "items.txt",
		},
		{
			scriptPath:   "dir/script.gl",
			relativePath: "../items.txt",
			expected:     "items.txt",
		},
		{
			scriptPath:   "dir/subdir/script.gl",
			relativePath: "../items.txt",
			expected:     "dir/items.txt",
		},
		{
			scriptPath:   "dir/script.gl",
			relativePath: "data/items.txt",
			expected:     "dir/data/items.txt",
		},
		{
			scriptPath:   "dir/script.gl",
			relativePath: "/abs/items.txt",
			expected:     "/abs/items.txt",
		},
		{
			scriptPath:   "",
			relativePath: "items.txt",
			expected:     "items.txt",
		},
	}

	for _, test := range tests {
		result := ResolvePath(test.scriptPath, test.relativePath)
		if result != test.expected {
			t.Errorf("ResolvePath(%q, %q) = %q, expected %q",
				test.scriptPath, test.relativePath, result, test.expected)
		}
	}
}

func TestResolvePathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	result := ResolvePath("dir/script.gl", "~/items.txt")
	if expected := filepath.Join(home, "items.txt"); result != expected {
		t.Errorf("ResolvePath(~/items.txt) = %q, expected %q", result, expected)
	}
}

func TestRenderWidthFallback(t *testing.T) {
	// go test does not attach stdout to a terminal
	if width, _ := GetTermSize(); width > 0 {
		t.Skip("stdout is a terminal")
	}
	if got := RenderWidth(72); got != 72 {
		t.Errorf("RenderWidth(72) = %d, expected 72", got)
	}
}

func TestDebugLogWithoutInit(t *testing.T) {
	// must be a no-op before InitDebugLogger
	DebugLog("[INFO:test] %d", 1)
}
