package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "qbdirun <script> <target> [args...]",
	Short:   "Run a target executable under qbdpy dynamic instrumentation",
	Long:    "qbdirun preloads the qbdpy instrumentation binding into a freshly spawned\ntarget process and hands it the user script to drive the engine with.",
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runLaunch,

	SilenceUsage: true,
}
