package cli

import (
	"fmt"
	"strings"

	"github.com/skelkit/skel/internal/blueprint"
)

func (c *CLI) runBlueprints(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			c.printBlueprintsUsage(c.Out)
			return exitOK
		default:
			fmt.Fprintf(c.Err, "unexpected args for blueprints: %q\n", strings.Join(args, " "))
			c.printBlueprintsUsage(c.Err)
			return exitUsage
		}
	}

	bps, err := blueprint.All()
	if err != nil {
		fmt.Fprintf(c.Err, "list blueprints: %v\n", err)
		return exitError
	}

	useColor := writerSupportsColor(c.Out)
	nameWidth := len("blueprint")
	for _, bp := range bps {
		if n := len(bp.Name); n > nameWidth {
			nameWidth = n
		}
	}

	fmt.Fprintln(c.Out, styleBold("Blueprints:", useColor))
	for _, bp := range bps {
		dirs, files := bp.Manifest.Root.Count()
		fmt.Fprintf(c.Out, "%s%-*s  %s\n",
			uiIndent,
			nameWidth, styleAccent(bp.Name, useColor),
			styleMuted(fmt.Sprintf("root=%s  %d dirs  %d files", bp.Manifest.Name, dirs, files), useColor),
		)
	}
	return exitOK
}
