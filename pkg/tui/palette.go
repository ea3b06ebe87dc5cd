// ABOUTME: Slash-command palette: fuzzy-filtered list of chat commands.
// ABOUTME: Wrapping up/down navigation; enter completes the highlighted command.

package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// CommandEntry describes a single slash command for the palette.
type CommandEntry struct {
	Name        string
	Description string
}

// Commands available in the chat surface.
var chatCommands = []CommandEntry{
	{Name: "help", Description: "Show what the assistant can do"},
	{Name: "summary", Description: "Show your session summary"},
	{Name: "metrics", Description: "Show routing activity counters"},
	{Name: "quit", Description: "Exit the chat"},
}

// Palette is a filterable list of slash commands. Value semantics; each
// mutation returns the updated palette.
type Palette struct {
	commands []CommandEntry
	visible  []CommandEntry
	selected int
	filter   string
}

// NewPalette creates a palette over the chat command set.
func NewPalette() Palette {
	p := Palette{commands: chatCommands}
	p.applyFilter()
	return p
}

// SetFilter updates the fuzzy filter and resets the selection.
func (p Palette) SetFilter(f string) Palette {
	p.filter = f
	p.selected = 0
	p.applyFilter()
	return p
}

// MoveUp moves the selection up, wrapping at the top.
func (p Palette) MoveUp() Palette {
	if len(p.visible) > 0 {
		p.selected = (p.selected - 1 + len(p.visible)) % len(p.visible)
	}
	return p
}

// MoveDown moves the selection down, wrapping at the bottom.
func (p Palette) MoveDown() Palette {
	if len(p.visible) > 0 {
		p.selected = (p.selected + 1) % len(p.visible)
	}
	return p
}

// Selected returns the highlighted command name, or "" when nothing matches.
func (p Palette) Selected() string {
	if len(p.visible) == 0 {
		return ""
	}
	return p.visible[p.selected].Name
}

// Empty reports whether the filter matched no commands.
func (p Palette) Empty() bool {
	return len(p.visible) == 0
}

// View renders the palette lines, truncated to width.
func (p Palette) View(width int) string {
	var b strings.Builder
	for i, entry := range p.visible {
		line := fmt.Sprintf("  /%-10s %s", entry.Name, entry.Description)
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		if i == p.selected {
			// Leading pad is always a plain space, safe to slice.
			line = "▸" + line[1:]
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

// applyFilter recomputes the visible set. An empty filter shows every
// command in declaration order; otherwise matches rank by fuzzy score.
func (p *Palette) applyFilter() {
	if p.filter == "" {
		p.visible = append([]CommandEntry(nil), p.commands...)
		return
	}

	names := make([]string, len(p.commands))
	for i, c := range p.commands {
		names[i] = c.Name
	}

	matches := fuzzy.Find(strings.ToLower(p.filter), names)
	p.visible = make([]CommandEntry, 0, len(matches))
	for _, m := range matches {
		p.visible = append(p.visible, p.commands[m.Index])
	}
}
