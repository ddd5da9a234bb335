package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/skelkit/skel/internal/paths"
	"github.com/skelkit/skel/internal/statestore"
)

func (c *CLI) runHistory(args []string) int {
	limit := 20
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "-h", "--help", "help":
			c.printHistoryUsage(c.Out)
			return exitOK
		case "--limit":
			if len(args) < 2 {
				fmt.Fprintln(c.Err, "--limit requires a value")
				c.printHistoryUsage(c.Err)
				return exitUsage
			}
			n, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || n <= 0 {
				fmt.Fprintf(c.Err, "--limit must be a positive integer, got %q\n", args[1])
				c.printHistoryUsage(c.Err)
				return exitUsage
			}
			limit = n
			args = args[2:]
		default:
			fmt.Fprintf(c.Err, "unknown flag for history: %q\n", args[0])
			c.printHistoryUsage(c.Err)
			return exitUsage
		}
	}
	if len(args) > 0 {
		fmt.Fprintf(c.Err, "unexpected args for history: %q\n", strings.Join(args, " "))
		c.printHistoryUsage(c.Err)
		return exitUsage
	}

	dbPath, err := paths.HistoryDBPath()
	if err != nil {
		fmt.Fprintf(c.Err, "resolve history db path: %v\n", err)
		return exitError
	}

	ctx := context.Background()
	db, err := statestore.Open(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(c.Err, "open history store: %v\n", err)
		return exitError
	}
	defer func() { _ = db.Close() }()

	runs, err := statestore.ListRuns(ctx, db, limit)
	if err != nil {
		fmt.Fprintf(c.Err, "list runs: %v\n", err)
		return exitError
	}

	useColor := writerSupportsColor(c.Out)
	if len(runs) == 0 {
		fmt.Fprintln(c.Out, styleMuted("no runs recorded yet", useColor))
		return exitOK
	}

	fmt.Fprintln(c.Out, styleBold("History:", useColor))
	for _, r := range runs {
		fmt.Fprintf(c.Out, "%s%s  %s  %s  %s\n",
			uiIndent,
			styleMuted(r.CreatedAt.Format("2006-01-02 15:04"), useColor),
			styleAccent(r.Source, useColor),
			r.RootPath,
			styleMuted(fmt.Sprintf("(%d dirs, %d files)", r.DirsCreated, r.FilesCreated), useColor),
		)
	}
	return exitOK
}
