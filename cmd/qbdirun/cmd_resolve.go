package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveLibraryFlag string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved binding library path",
	Args:  cobra.NoArgs,
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveLibraryFlag, "library", "", "path to the binding shared object (bypasses resolution)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, m, err := resolveLibrary(resolveLibraryFlag)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	if m != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "manifest: %s\n", m.Path)
		if m.Version != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "engine version: %s\n", m.Version)
		}
	}
	return nil
}
