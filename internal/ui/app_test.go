package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"newsbreeze/internal/config"
	"newsbreeze/internal/extract"
	"newsbreeze/internal/feeds"
	"newsbreeze/internal/summarize"
	"newsbreeze/internal/voice"
)

func testModel() Model {
	cfg := config.DefaultConfig()
	cfg.Narration.Endpoint = "http://127.0.0.1:1" // Nothing listening

	reader := feeds.NewReader(extract.NewHeuristic(0))
	summarizer := summarize.New(cfg.Summarizer)
	engine := voice.NewEngine(cfg.Narration, cfg.Voices)
	return New(cfg, reader, summarizer, engine)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func TestNewWarnsWhenTTSUnavailable(t *testing.T) {
	m := testModel()
	if m.ttsAvailable {
		t.Fatal("engine with dead endpoint should be unavailable")
	}
	if m.warning == "" {
		t.Error("expected an inline warning about missing narration backend")
	}
}

func TestItemsLoaded(t *testing.T) {
	m := testModel()
	m = update(t, m, itemsLoadedMsg{
		Items:  []feeds.Item{{Title: "A"}, {Title: "B"}},
		Source: "BBC News",
	})

	if len(m.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.items))
	}
	if m.cursor != 0 {
		t.Errorf("cursor should reset, got %d", m.cursor)
	}
	if m.status == "" {
		t.Error("expected a fetch status message")
	}
}

func TestItemsLoadedEmptyShowsWarning(t *testing.T) {
	m := testModel()
	m = update(t, m, itemsLoadedMsg{Items: nil, Source: "BBC News"})
	if m.warning == "" {
		t.Error("expected a warning for an empty fetch")
	}
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	m := testModel()
	m.items = []feeds.Item{{Title: "A", Summary: "s"}, {Title: "B", Summary: "s"}}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Errorf("cursor must not go above 0, got %d", m.cursor)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != 1 {
		t.Errorf("cursor must stop at last item, got %d", m.cursor)
	}
}

func TestMoveTriggersSummarizationOnce(t *testing.T) {
	m := testModel()
	m.items = []feeds.Item{{Title: "A", Description: "text"}, {Title: "B", Description: "text"}}

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a summarize command for an unsummarized item")
	}
	if !m.pending[1] {
		t.Error("expected item 1 marked pending")
	}

	// Moving back and forth must not re-request while pending.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	nm, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = nm.(Model)
	if cmd != nil {
		t.Error("pending item must not be summarized twice")
	}
}

func TestSummaryIsWriteOnce(t *testing.T) {
	m := testModel()
	m.items = []feeds.Item{{Title: "A", Summary: "first"}}

	m = update(t, m, summaryMsg{Index: 0, Title: "A", Result: summarize.Result{Text: "second"}})
	if m.items[0].Summary != "first" {
		t.Errorf("summary must never be recomputed, got %q", m.items[0].Summary)
	}
}

func TestDegradedSummaryShowsWarning(t *testing.T) {
	m := testModel()
	m.items = []feeds.Item{{Title: "A"}}

	m = update(t, m, summaryMsg{
		Index:  0,
		Title:  "A",
		Result: summarize.Result{Text: "original", Degraded: true, Reason: "backend down"},
	})
	if m.warning == "" {
		t.Error("degraded summary should surface an inline warning")
	}
	if m.items[0].Summary != "original" {
		t.Errorf("degraded summary must still fill the text, got %q", m.items[0].Summary)
	}
}

func TestSourceAndVoiceCycling(t *testing.T) {
	m := testModel()

	start := m.source().Name
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if m.source().Name == start {
		t.Error("source should advance")
	}

	for range m.cfg.Voices {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	}
	if m.voice().Name != m.cfg.Voices[0].Name {
		t.Error("voice cycling should wrap around")
	}
}
