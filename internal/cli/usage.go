package cli

import (
	"fmt"
	"io"
	"strings"
)

func (c *CLI) printRootUsage(w io.Writer) {
	commands := []string{
		"  new               Materialize a project layout",
		"  blueprints        List built-in blueprints",
		"  history           Show recent materialization runs",
		"  version           Print version",
		"  help              Show this help",
	}

	fmt.Fprintf(
		w,
		"Usage:\n  skel <command> [args]\n  skel --version\n\nCommands:\n%s\n\nRun:\n  skel <command> --help\n",
		strings.Join(commands, "\n"),
	)
}

func (c *CLI) printNewUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  skel new [name] [--blueprint <name>] [--manifest <path>] [--out <dir>] [--git]

Materialize a project layout under --out (default: current directory).

Flags:
  --blueprint <name>  Use a built-in blueprint (see: skel blueprints)
  --manifest <path>   Use an external YAML layout manifest
  --out <dir>         Parent directory for the project root
  --git               Run git init in the materialized root

Notes:
  - [name] overrides the layout's root directory name
  - existing directories and files are never modified; only missing
    entries are created
  - without --blueprint/--manifest, the configured default blueprint is
    used (interactive picker on a TTY)
`)
}

func (c *CLI) printBlueprintsUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  skel blueprints

List the built-in blueprints with their root names and entry counts.
`)
}

func (c *CLI) printHistoryUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  skel history [--limit N]

Show recent materialization runs (default limit: 20).
`)
}
