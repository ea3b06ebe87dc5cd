// ABOUTME: Tests for the slash-command palette: filtering, navigation, rendering.
// ABOUTME: Fuzzy matches assert on membership, not ranking.

package tui

import (
	"strings"
	"testing"
)

func TestPalette_EmptyFilterShowsAll(t *testing.T) {
	t.Parallel()

	p := NewPalette()
	if p.Empty() {
		t.Fatal("fresh palette must not be empty")
	}
	if got := p.Selected(); got != "help" {
		t.Errorf("Selected = %q, want first command", got)
	}
}

func TestPalette_FuzzyFilter(t *testing.T) {
	t.Parallel()

	p := NewPalette().SetFilter("me")
	if p.Empty() {
		t.Fatal("filter 'me' should match metrics")
	}
	if got := p.Selected(); got != "metrics" {
		t.Errorf("Selected = %q, want metrics", got)
	}

	if !NewPalette().SetFilter("zzz").Empty() {
		t.Error("nonsense filter should match nothing")
	}
}

func TestPalette_WrappingNavigation(t *testing.T) {
	t.Parallel()

	p := NewPalette()
	if got := p.MoveUp().Selected(); got != "quit" {
		t.Errorf("MoveUp from top = %q, want last command", got)
	}

	p = NewPalette()
	for range chatCommands {
		p = p.MoveDown()
	}
	if got := p.Selected(); got != "help" {
		t.Errorf("full cycle down = %q, want first command", got)
	}
}

func TestPalette_ViewMarksSelection(t *testing.T) {
	t.Parallel()

	view := NewPalette().View(60)
	lines := strings.Split(view, "\n")
	if len(lines) != len(chatCommands) {
		t.Fatalf("view has %d lines, want %d", len(lines), len(chatCommands))
	}
	if !strings.HasPrefix(lines[0], "▸") {
		t.Errorf("selected line not marked: %q", lines[0])
	}
	if !strings.Contains(lines[0], "/help") {
		t.Errorf("line missing command name: %q", lines[0])
	}
}
