package main

import (
	"errors"
	"fmt"
	"os"

	"xreplace/internal/app"
	"xreplace/internal/cli"
	"xreplace/internal/confirm"
	"xreplace/internal/ui"
)

// main is the only place in the program that terminates the process.
func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fail(err)
	}

	if cfg.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}
	if cfg.ShowVersion {
		fmt.Println(cli.Version())
		return
	}

	gate := confirm.New(os.Stdin, os.Stdout)
	overwritten, err := app.New(cfg, gate).Run()
	if err != nil {
		if errors.Is(err, app.ErrDeclined) {
			os.Exit(1)
		}
		fail(err)
	}

	ui.Success("INFO: Overwritten files: %d", overwritten)
}

func fail(err error) {
	ui.Error("ERROR: %v", err)
	ui.Info("INFO: Try --help")
	os.Exit(1)
}
