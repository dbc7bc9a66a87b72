package hud

import (
	"ChargeSim/internal/scene"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	return screen
}

func row(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(screen tcell.Screen) string {
	_, height := screen.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = row(screen, y)
	}
	return strings.Join(lines, "\n")
}

func sampleStatus() scene.Status {
	return scene.Status{
		Frame:         42,
		Now:           4200 * time.Millisecond,
		Scenario:      "hacker",
		HeadConnected: true,
		Theft:         "counting down",
		Held:          "CableCarEnd",
		Objects: []scene.ObjectStatus{
			{Key: '1', Name: "CableHead", Active: true, Material: "cable_connected", Plugged: true},
			{Key: '3', Name: "PaymentButton", Active: false, Material: "button_idle", Position: mgl32.Vec3{0.5, 1.3, -1},
				Scripts: []string{"PaymentButton"}},
		},
	}
}

func TestDrawShowsConnectorState(t *testing.T) {
	screen := newScreen(t, 100, 20)
	defer screen.Fini()

	New(screen).Draw(sampleStatus())
	text := screenText(screen)

	for _, want := range []string{
		"scenario: hacker",
		"head: connected",
		"car: disconnected",
		"theft: counting down",
		"held: CableCarEnd",
		"frame 42",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen, got:\n%s", want, text)
		}
	}
}

func TestDrawObjectRows(t *testing.T) {
	screen := newScreen(t, 100, 20)
	defer screen.Fini()

	New(screen).Draw(sampleStatus())

	first := row(screen, 6)
	if !strings.HasPrefix(first, "[1] CableHead") || !strings.HasSuffix(first, "plugged") {
		t.Errorf("Unexpected first object row %q", first)
	}
	if strings.Contains(first, "PaymentButton") {
		t.Errorf("Expected no scripts on the first row, got %q", first)
	}
	second := row(screen, 7)
	if !strings.Contains(second, "button_idle") || !strings.HasSuffix(second, "PaymentButton inactive") {
		t.Errorf("Unexpected second object row %q", second)
	}
}

func TestDrawMessageAndHelp(t *testing.T) {
	screen := newScreen(t, 100, 20)
	defer screen.Fini()

	st := sampleStatus()
	st.Message = "Payment failed"
	New(screen).Draw(st)

	if got := row(screen, 18); got != "Payment failed" {
		t.Errorf("Expected message above the help line, got %q", got)
	}
	if got := row(screen, 19); got != Help {
		t.Errorf("Expected help line, got %q", got)
	}
}

func TestDrawClipsAtRightEdge(t *testing.T) {
	screen := newScreen(t, 10, 20)
	defer screen.Fini()

	New(screen).Draw(sampleStatus())

	if got := row(screen, 0); got != "EV chargin" {
		t.Errorf("Expected clipped title, got %q", got)
	}
}
