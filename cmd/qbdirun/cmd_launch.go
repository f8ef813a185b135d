package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qbdi-tools/qbdirun/pkg/launch"
	"github.com/qbdi-tools/qbdirun/pkg/preloadenv"
)

var (
	launchLibrary string
	launchExec    bool
	launchDryRun  bool
)

// runner and exit are swapped out in tests.
var (
	runner launch.Runner = &launch.RealRunner{}
	exit                 = os.Exit
)

func init() {
	rootCmd.Flags().StringVar(&launchLibrary, "library", "", "path to the binding shared object (bypasses resolution)")
	rootCmd.Flags().BoolVar(&launchExec, "exec", false, "replace the launcher with the target instead of spawning a child")
	rootCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "print the environment overlay and command line without launching")
	// Flags after the first positional argument belong to the target.
	rootCmd.Flags().SetInterspersed(false)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		// Bare usage exits 0: callers have historically probed the
		// launcher this way.
		return cmd.Help()
	}
	script, target, targetArgs := args[0], args[1], args[2:]

	libraryPath, _, err := resolveLibrary(launchLibrary)
	if err != nil {
		return err
	}

	scriptPath, err := filepath.Abs(script)
	if err != nil {
		return fmt.Errorf("failed to resolve script path: %w", err)
	}

	env := preloadenv.NewBuilder()
	if err := env.ApplyPreload(libraryPath); err != nil {
		return err
	}
	env.Set(preloadenv.ScriptVar, scriptPath)

	if launchDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "library: %s\n", libraryPath)
		for _, kv := range env.Overlay() {
			fmt.Fprintf(cmd.OutOrStdout(), "env: %s\n", kv)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "command: %s\n", commandLine(target, targetArgs))
		return nil
	}

	if launchExec {
		// Does not return on success.
		return launch.Exec(target, targetArgs, env.Environ())
	}

	code, err := runner.Run(launch.Spec{
		Target: target,
		Args:   targetArgs,
		Env:    env.Environ(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		exit(code)
	}
	return nil
}

func commandLine(target string, args []string) string {
	line := target
	for _, arg := range args {
		line += " " + arg
	}
	return line
}
