package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validBlueprint = `title: Greeter
rows:
  - - kind: text
      label: "What's your name?"
  - - kind: input
  - - kind: button
      label: Ok
`

const invalidBlueprint = `title: Broken
rows:
  - - kind: button
`

func writeBlueprint(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runLintOn(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	lintCmd.SetOut(&out)
	defer lintCmd.SetOut(nil)
	err := runLint(lintCmd, args)
	return out.String(), err
}

func TestLintValidBlueprint(t *testing.T) {
	path := writeBlueprint(t, validBlueprint)

	out, err := runLintOn(t, path)
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	for _, want := range []string{"ok", `"Greeter"`, "rows:    3", "widgets: 3", "inputs:  1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestLintInvalidBlueprint(t *testing.T) {
	path := writeBlueprint(t, invalidBlueprint)

	_, err := runLintOn(t, path)
	if err == nil {
		t.Fatal("expected error for button without label")
	}
}

func TestLintMissingFile(t *testing.T) {
	_, err := runLintOn(t, filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLintVerbose(t *testing.T) {
	path := writeBlueprint(t, validBlueprint)

	lintVerbose = true
	defer func() { lintVerbose = false }()

	out, err := runLintOn(t, path)
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	for _, want := range []string{"[0,0] text", "[1,0] input (input)", "[2,0] button"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}
