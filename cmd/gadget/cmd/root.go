// Package cmd implements the gadget CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version, commit, date string

// SetVersionInfo sets version information from ldflags.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "gadget",
	Short: "Tooling for gadget layout blueprints",
	Long: `gadget is the companion tool for the gadget GUI library. It validates
layout blueprint files against the headless backend and scaffolds new
projects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
	return err
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gadget %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gadget %s\n", version)
}
