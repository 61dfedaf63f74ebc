package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Config = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(flappy.New(config.DefaultFlappyConfig(), flappy.Art{}), opts)
	m.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, spaceKey)
	if m.gameState.Phase != core.PhaseWaiting {
		t.Fatalf("key alone should not step the game, got %v", m.gameState.Phase)
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.gameState.Phase != core.PhaseRunning {
		t.Errorf("phase after start tick = %v, expected running", m.gameState.Phase)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after tick")
	}
	if !m.keys.Flap.Enabled() || m.keys.Start.Enabled() {
		t.Error("key map should follow the running phase")
	}
}

func TestModelQuit(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(t, Options{Logger: log.New(&buf)})

	m, cmd := update(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("quit should wait for the next tick")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Fatal("expected tea.Quit after quit tick")
	}
	if m.gameState.Phase != core.PhaseTerminated {
		t.Errorf("phase = %v, expected terminated", m.gameState.Phase)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("expected quit to be logged, got %q", buf.String())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if m.gameState.Phase != core.PhaseRunning {
		t.Errorf("resize should not reset the game, phase = %v", m.gameState.Phase)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{})
	view := m.View()

	if !strings.Contains(view, flappy.PromptText) {
		t.Error("view should contain the start prompt")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	var buf bytes.Buffer
	m := newTestModel(t, Options{Logger: log.New(&buf), ScreenshotDir: dir})

	m, _ = update(t, m, runeKey('s'))
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil || isQuit(cmd) {
		t.Fatal("screenshot should not stop the game")
	}

	path := screenshotPath(dir, "flappy", m.now())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error: %v", path, err)
	}
	if !strings.Contains(string(data), flappy.PromptText) {
		t.Errorf("screenshot should contain the prompt, got:\n%s", data)
	}
	if !strings.Contains(buf.String(), "screenshot saved") {
		t.Errorf("expected success log, got %q", buf.String())
	}
}

func TestModelScreenshotFailureIsNotFatal(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	m := newTestModel(t, Options{Logger: log.New(&buf), ScreenshotDir: filepath.Join(blocker, "shots")})

	m, _ = update(t, m, runeKey('s'))
	m, _ = update(t, m, spaceKey)
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil || isQuit(cmd) {
		t.Fatal("failed screenshot should not stop the game")
	}
	if m.gameState.Phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", m.gameState.Phase)
	}
	if !strings.Contains(buf.String(), "screenshot failed") {
		t.Errorf("expected failure log, got %q", buf.String())
	}
}

func TestScreenshotPath(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	got := screenshotPath("/tmp/shots", "flappy", at)
	expected := filepath.Join("/tmp/shots", "flappy_20261015_093000.txt")
	if got != expected {
		t.Errorf("screenshotPath() = %q, expected %q", got, expected)
	}
}
