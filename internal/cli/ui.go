package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
	ansiMuted = "\x1b[90m"

	uiIndent = "  "
)

func writerSupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func stylize(text string, ansi string, useColor bool) string {
	if !useColor {
		return text
	}
	return ansi + text + ansiReset
}

func styleBold(text string, useColor bool) string {
	return stylize(text, ansiBold, useColor)
}

func styleMuted(text string, useColor bool) string {
	return stylize(text, ansiMuted, useColor)
}

func styleAccent(text string, useColor bool) string {
	return stylize(text, ansiCyan, useColor)
}

func styleError(text string, useColor bool) string {
	return stylize(text, ansiRed, useColor)
}

func styleSuccess(text string, useColor bool) string {
	return stylize(text, ansiGreen, useColor)
}

func printResultSection(out io.Writer, useColor bool, lines ...string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, styleBold("Result:", useColor))
	for _, line := range lines {
		fmt.Fprintf(out, "%s%s\n", uiIndent, line)
	}
}
