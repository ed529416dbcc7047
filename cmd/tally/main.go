// cmd/tally/main.go
//
// This is the entry point for the tally CLI.
//
// Flow:
// 1. `tally` with no command opens the interactive list in the alt screen
// 2. `tally <command> ...` runs one change against the same list and exits

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/cli"
	"github.com/kingrea/tally/internal/commands"
	"github.com/kingrea/tally/internal/config"
	"github.com/kingrea/tally/internal/exitcode"
	"github.com/kingrea/tally/internal/tui"
	"github.com/kingrea/tally/internal/workspace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var dir string
	var showVersion bool
	flagSet := pflag.NewFlagSet("tally", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	// Stop at the first command name so its own flags reach the dispatcher.
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&dir, "dir", "", "project directory holding .tally/")
	flagSet.BoolVar(&showVersion, "version", false, "print version")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(out, commands.HelpText(commands.DefaultRegistry))
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if showVersion {
		fmt.Fprintf(out, "tally %s\n", commands.Version)
		return exitcode.Success
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)
		dispatcher.SetDefaultDir(dir)
		return dispatcher.Run(rest, out, errOut)
	}
	return runUI(dir, errOut)
}

// runUI opens the workspace and blocks until the user quits the TUI.
func runUI(dir string, errOut io.Writer) int {
	projectDir, err := config.ResolveProjectDir(dir)
	if err != nil {
		fmt.Fprintf(errOut, "Error resolving project directory: %v\n", err)
		return exitcode.ConfigError
	}
	ws, err := workspace.Open(projectDir)
	if err != nil {
		fmt.Fprintf(errOut, "Error opening %s: %v\n", config.Dir, err)
		return exitcode.ConfigError
	}
	defer ws.Close()

	p := tea.NewProgram(
		tui.NewApp(ws),
		tea.WithAltScreen(),   // Use alternate screen buffer (like vim does)
		tea.WithReportFocus(), // Deliver tea.BlurMsg so an open edit commits on focus loss
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(errOut, "Error running TUI: %v\n", err)
		return exitcode.UIError
	}
	return exitcode.Success
}
