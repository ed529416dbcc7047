package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
	Register(&VersionCmd{})
}

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "0.1.0"

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string                    { return "help" }
func (c *HelpCmd) Aliases() []string               { return nil }
func (c *HelpCmd) Synopsis() string                { return "Print usage" }
func (c *HelpCmd) Usage() string                   { return "tally help" }
func (c *HelpCmd) NeedsWorkspace() bool            { return false }
func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText(DefaultRegistry))
	return exitcode.Success
}

// HelpText builds the usage printed by `tally help` and `tally --help`
// from the commands in reg.
func HelpText(reg *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %-32s %s\n", "tally [--dir <path>]", "Open the interactive list")
	for _, cmd := range reg.All() {
		fmt.Fprintf(&b, "  %-32s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	b.WriteString(helpFooter)
	return b.String()
}

const helpFooter = `
<ref> is a position from 'tally list' or a task id.

Common flags:
  --dir <path>   Project directory holding .tally/ (default: $TALLY_DIR or cwd)
  -q, --quiet    Suppress "ok" after changes
`

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string                    { return "version" }
func (c *VersionCmd) Aliases() []string               { return nil }
func (c *VersionCmd) Synopsis() string                { return "Print version" }
func (c *VersionCmd) Usage() string                   { return "tally version" }
func (c *VersionCmd) NeedsWorkspace() bool            { return false }
func (c *VersionCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *VersionCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "tally %s\n", Version)
	return exitcode.Success
}
