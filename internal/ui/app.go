// Package ui is the terminal front end: a source picker, the fetched item
// list, and a detail pane with summary and narration controls. All
// pipeline logic lives in the service packages; this layer only wires
// key presses to service calls and renders results.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsbreeze/internal/config"
	"newsbreeze/internal/feeds"
	"newsbreeze/internal/summarize"
	"newsbreeze/internal/voice"
)

// maxItems caps how many entries of a feed are shown per fetch.
const maxItems = 10

const fetchTimeout = 60 * time.Second

var keys = struct {
	Up      key.Binding
	Down    key.Binding
	Fetch   key.Binding
	Source  key.Binding
	Voice   key.Binding
	Narrate key.Binding
	Quit    key.Binding
}{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Fetch:   key.NewBinding(key.WithKeys("enter", "f")),
	Source:  key.NewBinding(key.WithKeys("s", "tab")),
	Voice:   key.NewBinding(key.WithKeys("v")),
	Narrate: key.NewBinding(key.WithKeys("n")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// Model is the application model.
type Model struct {
	cfg        *config.Config
	reader     *feeds.Reader
	summarizer *summarize.Summarizer
	engine     *voice.Engine

	srcIdx   int
	voiceIdx int

	items  []feeds.Item
	cursor int
	width  int
	height int

	fetching  bool
	narrating bool
	pending   map[int]bool // Summaries in flight, by item index
	status    string
	warning   string

	ttsAvailable  bool
	lastNarration *voice.Artifact
}

// New creates the application model. The narration backend is probed once
// here so its availability can be shown immediately.
func New(cfg *config.Config, reader *feeds.Reader, summarizer *summarize.Summarizer, engine *voice.Engine) Model {
	m := Model{
		cfg:        cfg,
		reader:     reader,
		summarizer: summarizer,
		engine:     engine,
		pending:    make(map[int]bool),
		status:     "Press enter to fetch the latest news.",
	}
	m.ttsAvailable = engine.Available()
	if !m.ttsAvailable {
		m.warning = "Voice synthesis backend not available; narration will produce placeholder files."
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.lastNarration.Close()
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, m.maybeSummarize()

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, m.maybeSummarize()

		case key.Matches(msg, keys.Fetch):
			if m.fetching {
				return m, nil
			}
			m.fetching = true
			m.warning = ""
			m.status = fmt.Sprintf("Fetching %s...", m.source().Name)
			return m, m.fetchCmd()

		case key.Matches(msg, keys.Source):
			m.srcIdx = (m.srcIdx + 1) % len(m.cfg.Sources)
			m.status = fmt.Sprintf("Source: %s", m.source().Name)

		case key.Matches(msg, keys.Voice):
			m.voiceIdx = (m.voiceIdx + 1) % len(m.cfg.Voices)
			m.status = fmt.Sprintf("Voice: %s", m.voice().Name)

		case key.Matches(msg, keys.Narrate):
			if m.narrating || len(m.items) == 0 {
				return m, nil
			}
			m.narrating = true
			m.status = fmt.Sprintf("Generating audio with %s's voice...", m.voice().Name)
			return m, m.narrateCmd()
		}

	case itemsLoadedMsg:
		m.fetching = false
		m.items = msg.Items
		m.cursor = 0
		m.pending = make(map[int]bool)
		if len(m.items) == 0 {
			m.warning = "Failed to fetch news. Please try again later."
			m.status = ""
			return m, nil
		}
		m.status = fmt.Sprintf("Fetched %d news items from %s.", len(m.items), msg.Source)
		return m, m.maybeSummarize()

	case summaryMsg:
		delete(m.pending, msg.Index)
		if msg.Index < len(m.items) && m.items[msg.Index].Title == msg.Title {
			// Summaries are write-once; a stale duplicate never overwrites.
			if m.items[msg.Index].Summary == "" {
				m.items[msg.Index].Summary = msg.Result.Text
			}
			if msg.Result.Degraded {
				m.warning = "Failed to generate summary. Using original text."
			}
		}

	case narrationMsg:
		m.narrating = false
		// Each narration replaces the previous one; the old temp file is
		// released here rather than leaked.
		m.lastNarration.Close()
		m.lastNarration = msg.Artifact
		if msg.Artifact.Degraded {
			m.warning = "Narration degraded: " + msg.Artifact.Reason
			m.status = "Placeholder written to " + msg.Artifact.Path
		} else {
			m.warning = ""
			m.status = fmt.Sprintf("Audio ready (%s): %s", msg.Voice, msg.Artifact.Path)
		}
	}

	return m, nil
}

func (m Model) source() config.Source {
	return m.cfg.Sources[m.srcIdx]
}

func (m Model) voice() config.Voice {
	return m.cfg.Voices[m.voiceIdx]
}

// maybeSummarize kicks off summarization for the selected item the first
// time it is viewed. Once set, a summary is never recomputed.
func (m *Model) maybeSummarize() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]
	if item.Summary != "" || m.pending[m.cursor] {
		return nil
	}
	m.pending[m.cursor] = true

	idx := m.cursor
	summarizer := m.summarizer
	return func() tea.Msg {
		res := summarizer.Summarize(context.Background(), item.Description)
		return summaryMsg{Index: idx, Title: item.Title, Result: res}
	}
}

func (m Model) fetchCmd() tea.Cmd {
	src := m.source()
	reader := m.reader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		items := reader.Fetch(ctx, src.URL)
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		return itemsLoadedMsg{Items: items, Source: src.Name}
	}
}

func (m Model) narrateCmd() tea.Cmd {
	item := m.items[m.cursor]
	voiceName := m.voice().Name
	engine := m.engine

	// Narrate the summary when available, the description otherwise.
	text := item.Summary
	if text == "" {
		text = item.Description
	}

	return func() tea.Msg {
		art := engine.Synthesize(context.Background(), text, voiceName)
		return narrationMsg{Voice: voiceName, Artifact: art}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, titleStyle.Render("NewsBreeze — Celebrity-Powered Audio News"))
	sections = append(sections, settingStyle.Render(
		fmt.Sprintf("Source: %s    Voice: %s", m.source().Name, m.voice().Name)))
	sections = append(sections, "")

	if len(m.items) == 0 {
		sections = append(sections, mutedStyle.Render("No news yet. Press enter to fetch the latest headlines."))
	} else {
		sections = append(sections, m.renderList(width))
		sections = append(sections, "")
		sections = append(sections, m.renderDetail(width))
	}

	sections = append(sections, "")
	if m.warning != "" {
		sections = append(sections, warnStyle.Render("! "+m.warning))
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(
		"enter fetch · s source · v voice · n narrate · j/k move · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList(width int) string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item.Title)
		if len(line) > width-4 && width > 7 {
			line = line[:width-7] + "..."
		}
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(line))
		} else {
			lines = append(lines, normalItemStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderDetail(width int) string {
	item := m.items[m.cursor]
	body := bodyStyle.Width(width - 2)

	summary := item.Summary
	if summary == "" {
		if m.pending[m.cursor] {
			summary = "Generating summary..."
		} else {
			summary = "(not yet summarized)"
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(item.Published),
		labelStyle.Render("Original"),
		body.Render(item.Description),
		labelStyle.Render("Summary"),
		body.Render(summary),
		mutedStyle.Render(item.Link),
	)
}
