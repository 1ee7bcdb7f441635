package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("tagcheck")

type globalFlags struct {
	configFile string
	verbose    int
	logFile    string
}

// exitError ends the process with code without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "tagcheck",
		Short:         "Check that markup tags are balanced",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if globals.logFile == "" {
				commonlog.Configure(globals.verbose, nil)
			} else {
				commonlog.Configure(globals.verbose, &globals.logFile)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globals.configFile, "config", "", "config file (default .tagcheck.yaml in the working directory or $HOME)")
	flags.CountVarP(&globals.verbose, "verbose", "v", "log more; repeat for debug output")
	flags.StringVar(&globals.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newCheckCmd(globals))
	rootCmd.AddCommand(newTokensCmd(globals))
	rootCmd.AddCommand(newLSPCmd(globals))
	rootCmd.AddCommand(newServeCmd(globals))

	return rootCmd
}

// exitCode maps an error returned by a command to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	return 1
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		var exit *exitError
		if !errors.As(err, &exit) {
			fmt.Fprintf(os.Stderr, "tagcheck: %s\n", err)
		}
	}
	os.Exit(exitCode(err))
}
