// ABOUTME: CLI entry point for the wellness planner chat assistant
// ABOUTME: Parses flags, loads settings, wires the router, dispatches to a mode

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/wellness-planner-go/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/config"
	"github.com/mauromedda/wellness-planner-go/internal/eventbus"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	wlog "github.com/mauromedda/wellness-planner-go/internal/log"
	"github.com/mauromedda/wellness-planner-go/internal/router"
	"github.com/mauromedda/wellness-planner-go/internal/session"
	"github.com/mauromedda/wellness-planner-go/internal/stream"
	"github.com/mauromedda/wellness-planner-go/internal/telemetry"
	"github.com/mauromedda/wellness-planner-go/pkg/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("wellness %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to a mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if args.verbose || cfg.Verbose {
		wlog.SetLevel(wlog.LevelDebug)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading template catalog: %w", err)
	}

	bus := eventbus.New[telemetry.Event]()
	bus.Subscribe(func(e telemetry.Event) {
		wlog.Debug("route: %s %s -> %s", e.Type, e.Source, e.Target)
	})
	recorder := telemetry.NewRecorder(bus)

	r := router.New(cat, recorder)
	sess := session.New(userName(args, cfg), userID(cfg))
	if cfg.DefaultDiet != "" {
		sess.SetDietPreference(extract.NormalizeDiet(cfg.DefaultDiet))
	}

	if args.print {
		return runPrint(r, sess, strings.Join(args.remaining(), " "))
	}
	return runInteractive(r, sess, recorder, cfg)
}

func userName(args cliArgs, cfg *config.Settings) string {
	if args.name != "" {
		return args.name
	}
	if cfg.UserName != "" {
		return cfg.UserName
	}
	return "friend"
}

func userID(cfg *config.Settings) int {
	if cfg.UserID != 0 {
		return cfg.UserID
	}
	return 1
}

// runPrint routes a single message and prints the rendered reply to stdout.
func runPrint(r *router.Router, sess *session.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("print mode needs a message, e.g. wellness --print \"plan my meals\"")
	}

	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	md := tui.FormatEnvelope(r.Route(message, sess))
	fmt.Println(tui.NewMarkdownRenderer().Render(md, min(width, 100)))
	return nil
}

// runInteractive starts the Bubble Tea chat surface.
func runInteractive(r *router.Router, sess *session.Context, rec *telemetry.Recorder, cfg *config.Settings) error {
	pacer := stream.Pacer{
		WordsPerChunk: cfg.WordsPerChunk,
		Delay:         time.Duration(cfg.StreamDelayMS) * time.Millisecond,
	}

	p := tea.NewProgram(tui.NewChatModel(r, sess, rec, pacer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}
