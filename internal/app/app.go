// Package app validates a run configuration and drives the overwrite
// sequence: confirm, scan, distribute, copy.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"xreplace/internal/cli"
	"xreplace/internal/confirm"
	"xreplace/internal/distribute"
	"xreplace/internal/fsutil"
	"xreplace/internal/ui"
)

// ErrDeclined reports that the user answered no at a confirmation
// prompt. The run stops where it is; files overwritten before the
// decline stay overwritten.
var ErrDeclined = errors.New("operation declined")

// App drives one replacement run.
type App struct {
	cfg  *cli.Config
	gate *confirm.Gate
}

// New creates an App for the given configuration. The gate supplies
// the interactive streams so tests can script the answers.
func New(cfg *cli.Config, gate *confirm.Gate) *App {
	return &App{cfg: cfg, gate: gate}
}

// Run validates the configuration, builds the distribution plan and
// executes it. It returns the number of files overwritten before the
// run ended, whether it ended in success or not. There is no rollback:
// a failure or decline part way through leaves earlier overwrites in
// place.
func (a *App) Run() (int, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}

	if !a.cfg.SkipConfirm {
		prompt := fmt.Sprintf("Target directory: %s\n", a.cfg.DestDir) + ui.Prompt("Continue? (y/n): ")
		if !a.gate.Confirm(prompt) {
			return 0, ErrDeclined
		}
	}

	plan, err := a.buildPlan()
	if err != nil {
		return 0, err
	}

	return a.execute(plan)
}

// validate runs the precondition checks in a fixed order and reports
// the first failure.
func (a *App) validate() error {
	cfg := a.cfg
	if cfg.Source == "" || cfg.DestDir == "" || cfg.Extension == "" {
		return errors.New("source, destination directory and extension must all be given")
	}
	if cfg.FromFile && cfg.FromDir {
		return errors.New("cannot specify both --file and --dir")
	}
	if !cfg.FromFile && !cfg.FromDir {
		return errors.New("either --file or --dir is required")
	}
	if cfg.FromFile && !fsutil.IsRegularFile(cfg.Source) {
		return fmt.Errorf("not a regular file: %s", cfg.Source)
	}
	if cfg.FromDir && !fsutil.IsDir(cfg.Source) {
		return fmt.Errorf("not a directory: %s", cfg.Source)
	}
	if !fsutil.IsDir(cfg.DestDir) {
		return fmt.Errorf("not a directory: %s", cfg.DestDir)
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return errors.New("extension must start with a dot, e.g. .txt")
	}
	return nil
}

func (a *App) buildPlan() (distribute.Plan, error) {
	dests, err := fsutil.ScanDir(a.cfg.DestDir, a.cfg.Extension)
	if err != nil {
		return nil, err
	}

	if a.cfg.FromFile {
		return distribute.Single(a.cfg.Source, dests)
	}

	sources, err := fsutil.ScanDir(a.cfg.Source, a.cfg.Extension)
	if err != nil {
		return nil, err
	}
	return distribute.Multi(sources, dests)
}

func (a *App) execute(plan distribute.Plan) (int, error) {
	var bar *ui.ProgressBar
	if !a.cfg.ConfirmEach {
		bar = ui.NewProgressBar(len(plan), "Overwriting")
		bar.Start()
	}

	overwritten := 0
	for _, as := range plan {
		if a.cfg.ConfirmEach {
			prompt := fmt.Sprintf("Target: %s\n", filepath.Base(as.Dest)) + ui.Prompt("Continue? (y/n): ")
			if !a.gate.Confirm(prompt) {
				return overwritten, ErrDeclined
			}
		}

		if err := fsutil.CopyContents(as.Source, as.Dest); err != nil {
			return overwritten, err
		}
		overwritten++

		if bar != nil {
			bar.Increment()
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return overwritten, nil
}
