// ABOUTME: Bubble Tea chat surface: transcript, input line, slash-command palette.
// ABOUTME: Replies stream into the transcript in word chunks via the pacer.

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/wellness-planner-go/internal/router"
	"github.com/mauromedda/wellness-planner-go/internal/session"
	"github.com/mauromedda/wellness-planner-go/internal/stream"
	"github.com/mauromedda/wellness-planner-go/internal/telemetry"
)

var (
	userStyle   = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// streamChunkMsg carries one paced chunk of the reply being typed out.
type streamChunkMsg struct {
	chunk string
	ch    <-chan string
}

// streamDoneMsg signals the current reply finished streaming.
type streamDoneMsg struct{}

// ChatModel is the root Bubble Tea model for the chat surface.
type ChatModel struct {
	router   *router.Router
	sess     *session.Context
	recorder *telemetry.Recorder
	renderer *MarkdownRenderer
	pacer    stream.Pacer

	transcript []string
	pending    string
	streaming  bool

	input       string
	palette     Palette
	showPalette bool

	width    int
	quitting bool
}

// NewChatModel builds the chat surface. Recorder may be nil; /metrics then
// reports nothing.
func NewChatModel(r *router.Router, sess *session.Context, rec *telemetry.Recorder, pacer stream.Pacer) ChatModel {
	return ChatModel{
		router:   r,
		sess:     sess,
		recorder: rec,
		renderer: NewMarkdownRenderer(),
		pacer:    pacer,
		palette:  NewPalette(),
		width:    80,
	}
}

// Init shows the greeting before the first prompt.
func (m ChatModel) Init() tea.Cmd {
	return nil
}

// Update handles key, window-size, and stream messages.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case streamChunkMsg:
		m.pending += msg.chunk
		return m, waitForChunk(msg.ch)

	case streamDoneMsg:
		m.transcript = append(m.transcript, m.pending)
		m.pending = ""
		m.streaming = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ChatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		if m.showPalette {
			m.showPalette = false
			return m, nil
		}
		return m, nil

	case tea.KeyUp:
		if m.showPalette {
			m.palette = m.palette.MoveUp()
		}
		return m, nil

	case tea.KeyDown:
		if m.showPalette {
			m.palette = m.palette.MoveDown()
		}
		return m, nil

	case tea.KeyTab:
		if m.showPalette {
			if name := m.palette.Selected(); name != "" {
				m.input = "/" + name
				m.syncPalette()
			}
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
			m.syncPalette()
		}
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.input += " "
		} else {
			m.input += string(msg.Runes)
		}
		m.syncPalette()
		return m, nil
	}
	return m, nil
}

// syncPalette keeps palette visibility and filter in step with the input.
func (m *ChatModel) syncPalette() {
	if strings.HasPrefix(m.input, "/") {
		m.showPalette = true
		m.palette = m.palette.SetFilter(strings.TrimPrefix(m.input, "/"))
	} else {
		m.showPalette = false
	}
}

func (m ChatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input)
	if text == "" || m.streaming {
		return m, nil
	}

	// Complete the highlighted palette entry instead of submitting a prefix.
	if m.showPalette && !m.palette.Empty() {
		text = "/" + m.palette.Selected()
	}

	m.input = ""
	m.showPalette = false
	m.palette = m.palette.SetFilter("")

	if strings.HasPrefix(text, "/") {
		return m.runCommand(strings.TrimPrefix(text, "/"))
	}

	m.transcript = append(m.transcript, userStyle.Render("> ")+text)
	reply := m.renderer.Render(FormatEnvelope(m.router.Route(text, m.sess)), m.contentWidth())
	return m.startStream(reply)
}

func (m ChatModel) runCommand(name string) (tea.Model, tea.Cmd) {
	switch name {
	case "quit":
		m.quitting = true
		return m, tea.Quit
	case "help":
		reply := m.renderer.Render(FormatEnvelope(m.router.Route("help", m.sess)), m.contentWidth())
		m.transcript = append(m.transcript, reply)
	case "summary":
		reply := m.renderer.Render(FormatSummary(m.sess.Summarize()), m.contentWidth())
		m.transcript = append(m.transcript, reply)
	case "metrics":
		if m.recorder != nil {
			reply := m.renderer.Render(FormatMetrics(m.recorder.Snapshot()), m.contentWidth())
			m.transcript = append(m.transcript, reply)
		}
	default:
		m.transcript = append(m.transcript, dimStyle.Render("Unknown command: /"+name))
	}
	return m, nil
}

func (m ChatModel) startStream(reply string) (tea.Model, tea.Cmd) {
	m.streaming = true
	ch := m.pacer.Stream(context.Background(), reply)
	return m, waitForChunk(ch)
}

func waitForChunk(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return streamDoneMsg{}
		}
		return streamChunkMsg{chunk: chunk, ch: ch}
	}
}

// View renders transcript, any in-flight reply, the input line, and the
// palette when open.
func (m ChatModel) View() string {
	if m.quitting {
		return "Take care! 👋\n"
	}

	var b strings.Builder
	for _, block := range m.transcript {
		b.WriteString(block + "\n\n")
	}
	if m.streaming {
		b.WriteString(m.pending + "\n\n")
	}

	prompt := promptStyle.Render("you ❯ ")
	line := prompt + m.input
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "")
	}
	b.WriteString(line)

	if m.showPalette {
		b.WriteString("\n" + m.palette.View(m.width))
	}
	return b.String()
}

func (m ChatModel) contentWidth() int {
	if m.width > 100 {
		return 100
	}
	return m.width
}
