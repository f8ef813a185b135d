package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/qbdi-tools/qbdirun/pkg/check"
	"github.com/qbdi-tools/qbdirun/pkg/output"
	"github.com/qbdi-tools/qbdirun/pkg/setupcheck"
)

var (
	checkLibraryFlag string
	checkMinEngine   string
	checkMaxEngine   string
)

// ErrCheckFailed is returned when any preflight check fails.
var ErrCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check <script> <target>",
	Short: "Run preflight checks for an instrumented launch",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecks,
}

func init() {
	checkCmd.Flags().StringVar(&checkLibraryFlag, "library", "", "path to the binding shared object (bypasses resolution)")
	checkCmd.Flags().StringVar(&checkMinEngine, "min-engine", "", "minimum engine version required (inclusive)")
	checkCmd.Flags().StringVar(&checkMaxEngine, "max-engine", "", "maximum engine version allowed (exclusive)")
	rootCmd.AddCommand(checkCmd)
}

func runChecks(cmd *cobra.Command, args []string) error {
	script, target := args[0], args[1]

	var results []check.Result

	path, m, err := resolveLibrary(checkLibraryFlag)
	if err != nil {
		r := check.Result{Name: "library"}
		results = append(results, r.Failf("%v", err))
	} else {
		libraryCheck := &setupcheck.LibraryCheck{
			Path:      path,
			Manifest:  m,
			MinEngine: checkMinEngine,
			MaxEngine: checkMaxEngine,
			FS:        &setupcheck.RealFileSystem{},
		}
		results = append(results, libraryCheck.Run())
	}

	scriptCheck := &setupcheck.ScriptCheck{Path: script, FS: &setupcheck.RealFileSystem{}}
	results = append(results, scriptCheck.Run())

	targetCheck := &setupcheck.TargetCheck{Name: target, Looker: &setupcheck.RealPathLooker{}}
	results = append(results, targetCheck.Run())

	failed := false
	for _, result := range results {
		output.PrintResult(result)
		if !result.OK() {
			failed = true
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
