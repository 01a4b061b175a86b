// NewsBreeze fetches news feeds, summarizes items through a hosted
// summarization model, and narrates them in celebrity-style voices via a
// local voice-cloning server. Every external dependency degrades to a
// usable fallback, so the app works (with placeholders) even with no
// model backend at all.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"newsbreeze/internal/config"
	"newsbreeze/internal/extract"
	"newsbreeze/internal/feeds"
	"newsbreeze/internal/logging"
	"newsbreeze/internal/summarize"
	"newsbreeze/internal/ui"
	"newsbreeze/internal/voice"
)

func main() {
	fetchOnly := flag.Bool("fetch", false, "fetch and print items for a source, then exit")
	sourceName := flag.String("source", "", "source name for -fetch (default: first configured source)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	var extractor extract.Extractor
	switch cfg.Extractor {
	case "readability":
		extractor = extract.NewReadability(extract.DefaultMaxLength)
	default:
		extractor = extract.NewHeuristic(extract.DefaultMaxLength)
	}
	logging.Info("Extractor selected", "name", extractor.Name())

	reader := feeds.NewReader(extractor)
	summarizer := summarize.New(cfg.Summarizer)
	engine := voice.NewEngine(cfg.Narration, cfg.Voices)

	if *fetchOnly {
		runFetch(cfg, reader, summarizer, *sourceName)
		return
	}

	app := ui.New(cfg, reader, summarizer, engine)
	p := tea.NewProgram(app, tea.WithAltScreen())

	logging.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}
}

// runFetch is the headless path: fetch one source, summarize, and print.
func runFetch(cfg *config.Config, reader *feeds.Reader, summarizer *summarize.Summarizer, sourceName string) {
	src := cfg.Sources[0]
	if sourceName != "" {
		found := false
		for _, s := range cfg.Sources {
			if s.Name == sourceName {
				src, found = s, true
				break
			}
		}
		if !found {
			fatal("Unknown source %q", sourceName)
		}
	}

	items := reader.Fetch(context.Background(), src.URL)
	if len(items) == 0 {
		fatal("No items fetched from %s", src.Name)
	}

	for i, item := range items {
		res := summarizer.Summarize(context.Background(), item.Description)
		fmt.Printf("%d. %s (%s)\n", i+1, item.Title, item.Published)
		fmt.Printf("   %s\n", res.Text)
		if res.Degraded {
			fmt.Printf("   [summary degraded: %s]\n", res.Reason)
		}
		fmt.Printf("   %s\n\n", item.Link)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
