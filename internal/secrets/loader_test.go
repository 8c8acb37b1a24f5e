package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("RESUME_ANALYZER_TEST_KEY", " from-env ")

	cases := []struct {
		name string
		src  Source
		want string
	}{
		{name: "file wins", src: Source{File: keyFile, Value: "inline", Env: "RESUME_ANALYZER_TEST_KEY"}, want: "from-file"},
		{name: "inline before env", src: Source{Value: " inline ", Env: "RESUME_ANALYZER_TEST_KEY"}, want: "inline"},
		{name: "env fallback", src: Source{Env: "RESUME_ANALYZER_TEST_KEY"}, want: "from-env"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}
	t.Setenv("RESUME_ANALYZER_UNSET_KEY", "")

	cases := []struct {
		name    string
		src     Source
		message string
	}{
		{name: "missing file", src: Source{Name: "gemini api key", File: filepath.Join(dir, "nope")}, message: "reading gemini api key"},
		{name: "empty file", src: Source{File: empty}, message: "is empty"},
		{name: "empty env", src: Source{Name: "key", Env: "RESUME_ANALYZER_UNSET_KEY"}, message: "$RESUME_ANALYZER_UNSET_KEY"},
		{name: "nothing set", src: Source{}, message: "secret is not configured"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.src)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("expected error to mention %q, got %v", tc.message, err)
			}
		})
	}
}
