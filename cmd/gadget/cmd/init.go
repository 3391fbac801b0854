package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
)

var initCmd = &cobra.Command{
	Use:   "init <directory> [module-path]",
	Short: "Create a new gadget project",
	Long: `Init creates a new gadget project in a new directory:

  - go.mod with the module path
  - main.go with a starter window
  - layout.yaml with the starter window's blueprint

The project name is derived from the directory basename. The module
path defaults to <parent module>/<project name> when run inside an
existing Go module, and to the project name otherwise.

Examples:
  gadget init myapp
  gadget init myapp github.com/username/myapp
  gadget init ./projects/myapp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by gadget; use an absolute path or $HOME instead")
	}
	dir := filepath.Clean(raw)

	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	modulePath := ""
	if len(args) > 1 {
		modulePath = args[1]
	}
	if modulePath == "" {
		modulePath = defaultModulePath(projectName)
	}

	if err := scaffoldProject(cmd, dir, modulePath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Project created successfully!")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
	fmt.Fprintf(cmd.OutOrStdout(), "  cd %s\n", dir)
	fmt.Fprintln(cmd.OutOrStdout(), "  go mod tidy")
	fmt.Fprintln(cmd.OutOrStdout(), "  go run .")
	return nil
}

// defaultModulePath derives a module path for a new project. Inside an
// existing Go module the project nests under that module's path, which
// keeps scaffolded examples importable; otherwise the bare project name
// serves until the user picks a real path.
func defaultModulePath(projectName string) string {
	data, err := os.ReadFile("go.mod")
	if err != nil {
		return projectName
	}
	parent := modfile.ModulePath(data)
	if parent == "" {
		return projectName
	}
	return parent + "/" + projectName
}

// scaffoldProject creates the project directory and writes the starter
// files. It has no side effects beyond the filesystem, so tests can call
// it without network access.
func scaffoldProject(cmd *cobra.Command, dir, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Creating new gadget project: %s\n", filepath.Base(dir))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{"go.mod", fmt.Sprintf(goModTemplate, modulePath)},
		{"main.go", starterMain},
		{"layout.yaml", starterBlueprint},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			safeRemoveAll(dir)
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", f.name)
	}
	return nil
}

const goModTemplate = `module %s

go 1.24.0

require github.com/go-gadget/gadget v0.1.0
`

const starterMain = `package main

import (
	"fmt"
	"log"

	"github.com/go-gadget/gadget/pkg/blueprint"
	"github.com/go-gadget/gadget/pkg/gadget"
)

func main() {
	doc, err := blueprint.Load("layout.yaml")
	if err != nil {
		log.Fatal(err)
	}
	win, err := gadget.Window(doc.Title, doc.Layout)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	for {
		event, values, err := win.Read()
		if err != nil {
			log.Fatal(err)
		}
		if event == gadget.Closed {
			return
		}
		fmt.Printf("%s: %v\n", event, values)
	}
}
`

const starterBlueprint = `title: Greeter
rows:
  - - kind: text
      label: "What's your name?"
  - - kind: input
  - - kind: button
      label: Ok
`

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths (e.g. /etc).
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is
// "/", on Windows this covers drive roots like "C:\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It no-ops for dangerous paths rather than returning
// an error, since it runs on cleanup paths where the original error should
// not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name is a valid identifier:
// starts with a letter, contains only letters, digits, underscores, and
// hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with a hyphen")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("project name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}
