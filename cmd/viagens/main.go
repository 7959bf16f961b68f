package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/viagens/internal/config"
	"github.com/jask/viagens/internal/destinations"
	"github.com/jask/viagens/internal/logging"
	"github.com/jask/viagens/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.OpenFile(cfg.Log, "viagens")
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	client := destinations.NewClient(cfg.API.BaseURL, destinations.WithTimeout(cfg.API.Timeout))
	logger.Info("starting", "base_url", client.BaseURL())

	shell := tui.NewHomeShell(tui.HomeDeps{Ctx: ctx, Source: client, Logger: logger})
	p := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
