package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/ui"
)

const farewell = "\n✨ Thanks for visiting! ✨\n"

func main() {
	os.Exit(run())
}

// run starts the viewer and returns the process exit code
func run() int {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.Parse()

	cfg, cfgErr := loadConfig(configPath)

	// Set up logging; nothing is written unless a log file is configured
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		logFile, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
		}
	}
	if cfgErr != nil {
		log.Printf("Using default config: %v", cfgErr)
	}

	log.Printf("Creating UI model...")
	model := ui.NewModel(cfg, content.Default())

	p := tea.NewProgram(model, tea.WithAltScreen())

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")

	fmt.Print(farewell)
	return 0
}

// loadConfig reads the config file, falling back to defaults when it cannot be used
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.NewConfigServiceAt(path).Load()
	} else {
		cfg, err = config.NewConfigService().Load()
	}
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}
