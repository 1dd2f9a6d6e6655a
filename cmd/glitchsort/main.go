package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/maax3v3/glitchsort"
	"github.com/maax3v3/glitchsort/internal/cli"
	"github.com/maax3v3/glitchsort/internal/pipeline"
)

func main() {
	cfg, err := cli.Parse(os.Args[1:], os.Stderr)
	if cli.IsHelp(err) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Verbose {
		glitchsort.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := pipeline.Run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
