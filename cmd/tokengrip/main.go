package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"tokengrip/internal/clock"
	"tokengrip/internal/config"
	"tokengrip/internal/eventbus"
	"tokengrip/internal/history"
	"tokengrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, rawToken, secret string
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&rawToken, "token", "", "Token to decode on startup")
	flag.StringVar(&rawToken, "t", "", "Token to decode on startup (shorthand)")
	flag.StringVar(&secret, "secret", "", "HMAC secret used to verify the token (prefix with b64: for base64)")
	flag.Parse()

	// A token may also be given as the first argument
	if rawToken == "" && flag.NArg() > 0 {
		rawToken = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, history.NewMemoryStore(cfg.HistoryLimit))
	uiModel.LoadToken(rawToken, secret)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Persist settings changed from the UI
	settings := config.NewUpdater(configSvc, cfg)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		changed := e.(eventbus.ConfigChangedEvent)
		if err := settings.SetLightTheme(changed.Revision, changed.LightTheme); err != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "Could not save settings", Err: err})
		}
	})

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventClockTick,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Refresh time based claim notes
	clockSvc := clock.NewClockService(bus, cfg.Interval())
	if err := clockSvc.Start(ctx); err != nil {
		log.Printf("Could not start refresh clock: %v", err)
	}

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	cancel()
	clockSvc.Stop()
}
