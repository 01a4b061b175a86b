package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
)

// titleStyle for the application header.
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// settingStyle for the active source/voice line.
var settingStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// selectedItemStyle for the currently highlighted item.
var selectedItemStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// normalItemStyle for unselected items.
var normalItemStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// labelStyle for detail pane field labels.
var labelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// bodyStyle for detail pane text.
var bodyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// mutedStyle for dates and secondary text.
var mutedStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// statusStyle for the status line.
var statusStyle = lipgloss.NewStyle().
	Foreground(colorSuccess)

// warnStyle for inline degraded-operation warnings.
var warnStyle = lipgloss.NewStyle().
	Foreground(colorWarning)

// helpStyle for the key hint footer.
var helpStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)
