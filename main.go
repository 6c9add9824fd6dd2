package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"checkgrip/internal/config"
	"checkgrip/internal/eventbus"
	"checkgrip/internal/history"
	"checkgrip/internal/ids"
	"checkgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, layoutPath string
	flag.StringVar(&configPath, "config", "", "Settings file")
	flag.StringVar(&configPath, "c", "", "Settings file (shorthand)")
	flag.StringVar(&layoutPath, "layout", "", "Layout file to show")
	flag.StringVar(&layoutPath, "l", "", "Layout file to show (shorthand)")
	flag.Parse()

	if layoutPath == "" && flag.NArg() > 0 {
		layoutPath = flag.Arg(0)
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if layoutPath == "" {
		layoutPath = settings.Layout
	}

	// Set up logging
	if settings.LogFile != "" {
		logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventLayoutSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LayoutSavedEvent); ok {
			log.Printf("Layout saved to %s", event.Path)
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("%s: %v", event.Message, event.Err)
		}
	})

	recorder := history.NewRecorder(settings.HistorySize)

	layouts := config.NewLayoutService(bus)
	doc, err := layouts.Load(layoutPath)
	if err != nil {
		fmt.Printf("Error loading layout: %v\n", err)
		os.Exit(1)
	}

	alloc, err := ids.New(settings.Allocator, settings.IDPrefix)
	if err != nil {
		fmt.Printf("Error creating id allocator: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Creating UI model...")
	model, err := ui.NewModel(ui.Options{
		Bus:        bus,
		Settings:   settings,
		Layouts:    layouts,
		Layout:     doc,
		LayoutPath: layoutPath,
		Allocator:  alloc,
		History:    recorder,
	})
	if err != nil {
		fmt.Printf("Error building UI: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
