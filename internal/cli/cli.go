package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const (
	versionMajor = 0
	versionMinor = 6
	versionPatch = 10
)

// Config holds the parsed command-line options for one run. It is
// built once at startup and passed around by value reference; nothing
// mutates it afterwards.
type Config struct {
	Source    string
	DestDir   string
	Extension string

	FromFile bool
	FromDir  bool

	SkipConfirm bool
	ConfirmEach bool

	ShowHelp    bool
	ShowVersion bool
}

const usageText = `xreplace - batch file content replacer

Usage:
  xreplace [flags] --file <source_file> <destination_directory> <extension>
  xreplace [flags] --dir  <source_directory> <destination_directory> <extension>

Arguments:
  -f, --file <path>   Use a single file as the replacement source.
  -d, --dir  <path>   Use all files with the fitting extension in a directory
                      as sources. Targets are assigned to sources in a fair,
                      even split.

  <destination_directory>
                      Path to the folder containing files to be overwritten.

  <extension>         Extension (with dot) of files to replace and read from.
                      Example: .obj

Flags:
  -y, --yes           Skip the initial confirmation.
  -a, --ask           Ask before overwriting each target file.
  -h, --help          Show this help text and exit.
  -v, --version       Show program version and exit.

Behavior:
  - In --file mode: the same source file is copied into every matching target.
  - In --dir mode: target files are distributed evenly among the source files.
    Example: 3 sources and 200 targets split into 67, 67, and 66 targets each.
  - Only files with the specified extension are replaced or read.

WARNING:
  This program overwrites files permanently. There is no undo.`

// Usage returns the full help text.
func Usage() string {
	return usageText
}

// Version returns the version line.
func Version() string {
	return fmt.Sprintf("xreplace is running version %d.%d.%d", versionMajor, versionMinor, versionPatch)
}

// ParseFlags parses args (the command line without the program name)
// into a Config. Help and version requests short-circuit the
// positional-argument check so they work on an otherwise incomplete
// command line.
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("xreplace", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var file, dir string
	fs.StringVarP(&file, "file", "f", "", "Use a single file as the replacement source.")
	fs.StringVarP(&dir, "dir", "d", "", "Use all matching files in a directory as sources.")
	fs.BoolVarP(&cfg.SkipConfirm, "yes", "y", false, "Skip the initial confirmation.")
	fs.BoolVarP(&cfg.ConfirmEach, "ask", "a", false, "Ask before overwriting each target file.")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "Show this help text and exit.")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "Show program version and exit.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.FromFile = fs.Changed("file")
	cfg.FromDir = fs.Changed("dir")
	if cfg.FromFile {
		cfg.Source = file
	} else if cfg.FromDir {
		cfg.Source = dir
	}

	if cfg.ShowHelp || cfg.ShowVersion {
		return cfg, nil
	}

	if fs.NArg() != 2 {
		return nil, fmt.Errorf("expected exactly two arguments: <destination_directory> <extension>")
	}
	cfg.DestDir = fs.Arg(0)
	cfg.Extension = fs.Arg(1)

	return cfg, nil
}
