package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/passforge/passforge-go/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	cli, err := parseFlags(flag.CommandLine, cfg, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if cli.Interactive {
		cli = runInteractive(os.Stdin, os.Stdout, cli)
	}

	if err := run(cli, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", renderError(err))
		os.Exit(1)
	}
}
