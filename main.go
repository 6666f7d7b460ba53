package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/config"
	"github.com/danielagv/tablero/internal/logging"
	"github.com/danielagv/tablero/internal/registry"
	"github.com/danielagv/tablero/internal/services/project"
	"github.com/danielagv/tablero/internal/tui/components"
	"github.com/danielagv/tablero/internal/tui/core"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize styles and theme colors from config
	components.InitStyles(cfg.ColorScheme)

	// The one registry for the life of the process; every view reaches
	// it through the service handed to the TUI.
	reg := registry.New()
	svc := project.NewService(reg, cfg.Limits)

	app := core.New(context.Background(), svc, cfg)

	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
