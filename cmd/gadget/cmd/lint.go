package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-gadget/gadget/pkg/backend/headless"
	"github.com/go-gadget/gadget/pkg/blueprint"
	"github.com/go-gadget/gadget/pkg/window"
)

var lintVerbose bool

var lintCmd = &cobra.Command{
	Use:   "lint <blueprint.yaml>",
	Short: "Validate a layout blueprint",
	Long: `Lint parses a blueprint file and builds it against the headless
backend, exactly as window.Build would on a real toolkit. It catches
unknown widget kinds, invalid widget configuration (missing labels,
inverted slider ranges, negative sizes), and bad colors, and reports
the window's shape on success.`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "list every widget with its grid cell")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	doc, err := blueprint.Load(args[0])
	if err != nil {
		return err
	}

	b := headless.New()
	win, err := window.Build(doc.Title, doc.Layout, b)
	if err != nil {
		return err
	}
	defer win.Close()

	widgetCount := 0
	for _, row := range doc.Layout {
		widgetCount += len(row)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "  window:  %q\n", doc.Title)
	fmt.Fprintf(cmd.OutOrStdout(), "  rows:    %d\n", len(doc.Layout))
	fmt.Fprintf(cmd.OutOrStdout(), "  widgets: %d\n", widgetCount)
	fmt.Fprintf(cmd.OutOrStdout(), "  inputs:  %d\n", win.InputCount())

	if lintVerbose {
		if err := printWidgets(cmd, b, win); err != nil {
			return err
		}
	}
	return nil
}

func printWidgets(cmd *cobra.Command, b *headless.Backend, win *window.Window) error {
	placed, err := b.Widgets(win.Handle())
	if err != nil {
		return err
	}
	for _, pw := range placed {
		line := fmt.Sprintf("  [%d,%d] %s", pw.Pos.Row, pw.Pos.Col, pw.Desc.Kind())
		if pw.Desc.InputCapable() {
			line += " (input)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
