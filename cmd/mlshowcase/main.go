package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/mlshowcase/internal/config"
	"github.com/jask/mlshowcase/internal/database"
	"github.com/jask/mlshowcase/internal/tui"
)

func main() {
	ctx := context.Background()

	var configPath, catalogPath, writeConfig string
	flags := pflag.NewFlagSet("mlshowcase", pflag.ContinueOnError)
	flags.StringVar(&configPath, "config", "", "config file (default $MLSHOWCASE_CONFIG or ~/.config/mlshowcase/config.toml)")
	flags.StringVar(&catalogPath, "catalog", "", "sqlite catalog path, overrides catalog.path (\":memory:\" for built-in records only)")
	flags.StringVar(&writeConfig, "write-config", "", "write the effective configuration to this path and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if writeConfig != "" {
		if err := config.Save(cfg, writeConfig); err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Printf("wrote %s\n", writeConfig)
		return
	}

	cat, err := database.Bootstrap(ctx, cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	// the terminal belongs to the program from here on
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "mlshowcase")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("catalog loaded: %d projects from %s", cat.Len(), cfg.Catalog.Path)

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(tui.New(cat, cfg), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
