package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	s := string(b)
	for _, w := range []string{"# workoutlog", ".workoutlog/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "node_modules/\ndist/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.HasPrefix(s, "node_modules/\ndist/\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if !strings.Contains(s, ".workoutlog/") {
		t.Fatalf("expected .workoutlog/ entry, got:\n%s", s)
	}
}

func TestEnsureGitignore_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	for i := 0; i < 3; i++ {
		if err := ensureGitignore(tmp); err != nil {
			t.Fatalf("ensureGitignore error: %v", err)
		}
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)
	if strings.Count(s, "# workoutlog") != 1 || strings.Count(s, ".workoutlog/") != 1 {
		t.Fatalf("expected single entries, got:\n%s", s)
	}
}
