package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/skelkit/skel/internal/blueprint"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/gitutil"
	"github.com/skelkit/skel/internal/manifest"
	"github.com/skelkit/skel/internal/paths"
	"github.com/skelkit/skel/internal/scaffold"
	"github.com/skelkit/skel/internal/statestore"
)

const defaultBlueprintName = "webclone"

func (c *CLI) runNew(args []string) int {
	var blueprintFlag string
	var manifestFlag string
	var outFlag string
	var gitFlag bool
	var nameArg string
	for len(args) > 0 {
		if !strings.HasPrefix(args[0], "-") {
			if nameArg != "" {
				fmt.Fprintf(c.Err, "unexpected args for new: %q\n", strings.Join(args, " "))
				c.printNewUsage(c.Err)
				return exitUsage
			}
			nameArg = strings.TrimSpace(args[0])
			args = args[1:]
			continue
		}
		switch args[0] {
		case "-h", "--help", "help":
			c.printNewUsage(c.Out)
			return exitOK
		case "--blueprint":
			if len(args) < 2 {
				fmt.Fprintln(c.Err, "--blueprint requires a value")
				c.printNewUsage(c.Err)
				return exitUsage
			}
			blueprintFlag = strings.TrimSpace(args[1])
			args = args[2:]
		case "--manifest":
			if len(args) < 2 {
				fmt.Fprintln(c.Err, "--manifest requires a value")
				c.printNewUsage(c.Err)
				return exitUsage
			}
			manifestFlag = strings.TrimSpace(args[1])
			args = args[2:]
		case "--out":
			if len(args) < 2 {
				fmt.Fprintln(c.Err, "--out requires a value")
				c.printNewUsage(c.Err)
				return exitUsage
			}
			outFlag = strings.TrimSpace(args[1])
			args = args[2:]
		case "--git":
			gitFlag = true
			args = args[1:]
		default:
			fmt.Fprintf(c.Err, "unknown flag for new: %q\n", args[0])
			c.printNewUsage(c.Err)
			return exitUsage
		}
	}

	if blueprintFlag != "" && manifestFlag != "" {
		fmt.Fprintln(c.Err, "--blueprint cannot be combined with --manifest")
		c.printNewUsage(c.Err)
		return exitUsage
	}

	cfg, err := loadUserConfig()
	if err != nil {
		fmt.Fprintf(c.Err, "load config: %v\n", err)
		return exitError
	}

	m, source, code := c.resolveLayout(blueprintFlag, manifestFlag, cfg)
	if code != exitOK {
		return code
	}

	name := nameArg
	if name == "" && c.stdinIsTTY() {
		name, err = runInlineTextInput(c.In, c.Err, "Project name: ", m.Name)
		if err != nil {
			if errors.Is(err, errInputCanceled) {
				fmt.Fprintln(c.Err, "canceled")
				return exitError
			}
			fmt.Fprintf(c.Err, "read project name: %v\n", err)
			return exitError
		}
	}
	if name == "" {
		name = m.Name
	}
	if err := scaffold.ValidateName(name); err != nil {
		fmt.Fprintf(c.Err, "invalid project name: %v\n", err)
		return exitUsage
	}

	outDir := outFlag
	if outDir == "" {
		outDir = "."
	}
	outDir, err = filepath.Abs(outDir)
	if err != nil {
		fmt.Fprintf(c.Err, "resolve out dir: %v\n", err)
		return exitError
	}
	if err := os.MkdirAll(outDir, cfg.DirMode()); err != nil {
		fmt.Fprintf(c.Err, "create out dir: %v\n", err)
		return exitError
	}

	materializer := scaffold.Materializer{
		DirMode:  cfg.DirMode(),
		FileMode: cfg.FileMode(),
	}
	tree := map[string]*scaffold.Node{name: m.Root}
	res, err := materializer.Materialize(outDir, tree)
	if err != nil {
		useColor := writerSupportsColor(c.Err)
		fmt.Fprintf(c.Err, "%s %v\n", styleError("materialize:", useColor), err)
		return exitError
	}
	rootPath := filepath.Join(outDir, name)

	if gitFlag {
		if _, err := gitutil.InitRepo(rootPath); err != nil {
			fmt.Fprintf(c.Err, "git init: %v\n", err)
			return exitError
		}
	}

	if err := recordRun(rootPath, source, res); err != nil {
		// The scaffold is already on disk; history is best-effort.
		fmt.Fprintf(c.Err, "record history: %v\n", err)
	}

	useColorOut := writerSupportsColor(c.Out)
	printResultSection(c.Out, useColorOut,
		styleSuccess(fmt.Sprintf("Created: %s", rootPath), useColorOut),
		styleMuted(fmt.Sprintf("source: %s", source), useColorOut),
		styleMuted(fmt.Sprintf("created: %d directories, %d files", res.DirsCreated, res.FilesCreated), useColorOut),
	)
	return exitOK
}

// resolveLayout picks the layout to materialize: an explicit manifest, an
// explicit blueprint, the configured default, or an interactive pick.
func (c *CLI) resolveLayout(blueprintFlag string, manifestFlag string, cfg config.Config) (manifest.Manifest, string, int) {
	if manifestFlag != "" {
		m, err := manifest.Load(manifestFlag)
		if err != nil {
			fmt.Fprintf(c.Err, "%v\n", err)
			return manifest.Manifest{}, "", exitError
		}
		return m, "manifest:" + filepath.Base(manifestFlag), exitOK
	}

	name := blueprintFlag
	if name == "" {
		name = cfg.Defaults.Blueprint
	}
	if name == "" && c.stdinIsTTY() {
		candidates, err := blueprintCandidates()
		if err != nil {
			fmt.Fprintf(c.Err, "list blueprints: %v\n", err)
			return manifest.Manifest{}, "", exitError
		}
		picked, err := c.promptBlueprintSelector(candidates)
		if err != nil {
			if errors.Is(err, errSelectorCanceled) {
				fmt.Fprintln(c.Err, "canceled")
				return manifest.Manifest{}, "", exitError
			}
			fmt.Fprintf(c.Err, "select blueprint: %v\n", err)
			return manifest.Manifest{}, "", exitError
		}
		name = picked
	}
	if name == "" {
		name = defaultBlueprintName
	}

	bp, err := blueprint.Find(name)
	if err != nil {
		fmt.Fprintf(c.Err, "%v\n", err)
		return manifest.Manifest{}, "", exitError
	}
	return bp.Manifest, "blueprint:" + bp.Name, exitOK
}

func (c *CLI) stdinIsTTY() bool {
	f, ok := c.In.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func blueprintCandidates() ([]blueprintCandidate, error) {
	bps, err := blueprint.All()
	if err != nil {
		return nil, err
	}
	out := make([]blueprintCandidate, 0, len(bps))
	for _, bp := range bps {
		dirs, files := bp.Manifest.Root.Count()
		out = append(out, blueprintCandidate{
			Name:        bp.Name,
			Description: fmt.Sprintf("root=%s  %d dirs  %d files", bp.Manifest.Name, dirs, files),
		})
	}
	return out, nil
}

func loadUserConfig() (config.Config, error) {
	cfgPath, err := paths.ConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadFile(cfgPath)
}

func recordRun(rootPath string, source string, res scaffold.Result) error {
	dbPath, err := paths.HistoryDBPath()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := statestore.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return statestore.RecordRun(ctx, db, statestore.Run{
		RootPath:     rootPath,
		Source:       source,
		DirsCreated:  res.DirsCreated,
		FilesCreated: res.FilesCreated,
	})
}
