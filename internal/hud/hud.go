package hud

import (
	"ChargeSim/internal/scene"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleValue   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOn      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleOff     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
)

// Help lists the key bindings shown at the bottom of the screen.
const Help = "1-4 aim+grab  h plug into charger  c plug into car  r release  q quit"

// HUD draws scene snapshots onto a terminal screen.
type HUD struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *HUD {
	return &HUD{screen: screen}
}

// Draw replaces the screen contents with st.
func (h *HUD) Draw(st scene.Status) {
	h.screen.Clear()
	width, height := h.screen.Size()

	y := 0
	h.text(0, y, styleTitle, "EV charging station")
	h.text(22, y, styleLabel, fmt.Sprintf("frame %d  t=%.1fs", st.Frame, st.Now.Seconds()))
	y += 2

	h.field(0, y, "scenario", st.Scenario, styleValue)
	h.field(24, y, "fade", fmt.Sprintf("%.2f", st.Overlay), styleValue)
	if st.CutsceneDone {
		h.text(40, y, styleOn, "arrived")
	} else {
		h.text(40, y, styleOff, "driving")
	}
	y++
	h.field(0, y, "head", onOff(st.HeadConnected), flagStyle(st.HeadConnected))
	h.field(24, y, "car", onOff(st.CarConnected), flagStyle(st.CarConnected))
	y++
	h.field(0, y, "theft", fmt.Sprintf("%s %3.0f%%", st.Theft, st.TheftProgress*100), styleValue)
	held := st.Held
	if held == "" {
		held = "-"
	}
	h.field(24, y, "held", held, styleValue)
	y += 2

	for _, row := range st.Objects {
		if y >= height-2 {
			break
		}
		h.object(y, row)
		y++
	}

	if st.Message != "" && height > 1 {
		h.text(0, height-2, styleMessage, st.Message)
	}
	if width > 0 && height > 0 {
		h.text(0, height-1, styleHelp, Help)
	}
	h.screen.Show()
}

func (h *HUD) object(y int, row scene.ObjectStatus) {
	key := ' '
	if row.Key != 0 {
		key = row.Key
	}
	style := styleValue
	if !row.Active {
		style = styleLabel
	}
	line := fmt.Sprintf("[%c] %-14s %-20s (%6.2f %5.2f %6.2f)",
		key, row.Name, row.Material, row.Position.X(), row.Position.Y(), row.Position.Z())
	if len(row.Scripts) > 0 {
		line += " " + strings.Join(row.Scripts, ",")
	}
	if row.Plugged {
		line += " plugged"
	}
	if !row.Active {
		line += " inactive"
	}
	h.text(0, y, style, line)
}

func (h *HUD) field(x, y int, label, value string, style tcell.Style) {
	h.text(x, y, styleLabel, label+":")
	h.text(x+len(label)+2, y, style, value)
}

// text writes s from (x, y), clipped at the right edge.
func (h *HUD) text(x, y int, style tcell.Style, s string) {
	width, _ := h.screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func onOff(v bool) string {
	if v {
		return "connected"
	}
	return "disconnected"
}

func flagStyle(v bool) tcell.Style {
	if v {
		return styleOn
	}
	return styleOff
}
