package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	exitOK    = 0
	exitUsage = 2
	exitError = 3
)

type CLI struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Version string
	Commit  string
	Date    string
}

func New(out io.Writer, err io.Writer) *CLI {
	return &CLI{
		In:      os.Stdin,
		Out:     out,
		Err:     err,
		Version: "dev",
	}
}

func (c *CLI) Run(args []string) int {
	var versionFlag bool
	args, versionFlag = consumeGlobalFlags(args)

	if versionFlag {
		fmt.Fprintln(c.Out, c.versionLine())
		return exitOK
	}

	if len(args) == 0 {
		c.printRootUsage(c.Err)
		return exitUsage
	}

	switch args[0] {
	case "-h", "--help", "help":
		c.printRootUsage(c.Out)
		return exitOK
	case "version":
		fmt.Fprintln(c.Out, c.versionLine())
		return exitOK
	case "new":
		return c.runNew(args[1:])
	case "blueprints":
		return c.runBlueprints(args[1:])
	case "history":
		return c.runHistory(args[1:])
	default:
		fmt.Fprintf(c.Err, "unknown command: %q\n", args[0])
		c.printRootUsage(c.Err)
		return exitUsage
	}
}

func (c *CLI) versionLine() string {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = "dev"
	}
	parts := []string{version}
	if commit := strings.TrimSpace(c.Commit); commit != "" {
		parts = append(parts, commit)
	}
	if date := strings.TrimSpace(c.Date); date != "" {
		parts = append(parts, date)
	}
	return strings.Join(parts, " ")
}

func consumeGlobalFlags(args []string) ([]string, bool) {
	filtered := make([]string, 0, len(args))
	versionFlag := false
	for _, arg := range args {
		switch arg {
		case "--version":
			versionFlag = true
		default:
			filtered = append(filtered, arg)
		}
	}
	return filtered, versionFlag
}
