package ui

import (
	"newsbreeze/internal/feeds"
	"newsbreeze/internal/summarize"
	"newsbreeze/internal/voice"
)

// Messages for Bubble Tea

// itemsLoadedMsg is sent when a feed fetch completes.
type itemsLoadedMsg struct {
	Items  []feeds.Item
	Source string
}

// summaryMsg is sent when a lazy summarization completes.
type summaryMsg struct {
	Index  int
	Title  string // Stored at request time to survive feed refreshes
	Result summarize.Result
}

// narrationMsg is sent when narration synthesis completes.
type narrationMsg struct {
	Voice    string
	Artifact *voice.Artifact
}
