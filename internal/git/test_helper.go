//go:build !prod

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// NewTestRepo creates an isolated repository under t.TempDir() and returns its
// path. Tests are skipped when git is not installed.
func NewTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}

	dir := t.TempDir()
	RunTestGit(t, dir, "init", "-b", "main")
	RunTestGit(t, dir, "config", "user.name", "Test")
	RunTestGit(t, dir, "config", "user.email", "test@example.com")
	RunTestGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

// RunTestGit runs a git command inside dir and fails the test on error.
func RunTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "HOME="+dir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// WriteTestFile writes content to a path relative to dir, creating parents.
func WriteTestFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
