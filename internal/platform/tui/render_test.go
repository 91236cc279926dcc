package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

func TestRowRunsSplitOnShade(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetShaded(0, 0, '*', core.ColorNeonPink, core.ShadeGlow)
	s.SetShaded(1, 0, '*', core.ColorNeonPink, core.ShadeGlow)
	s.SetShaded(2, 0, '.', core.ColorNeonPink, core.ShadeDim)
	s.SetColored(3, 0, '+', core.ColorNeonPink)
	s.SetColored(4, 0, '+', core.ColorNeonCyan)

	want := []cellRun{
		{cellKey{core.ColorNeonPink, core.ShadeGlow}, "**"},
		{cellKey{core.ColorNeonPink, core.ShadeDim}, "."},
		{cellKey{core.ColorNeonPink, core.ShadeNormal}, "+"},
		{cellKey{core.ColorNeonCyan, core.ShadeNormal}, "+"},
		{cellKey{core.ColorDefault, core.ShadeNormal}, " "},
	}
	got := rowRuns(s, 0)
	if len(got) != len(want) {
		t.Fatalf("rowRuns() = %+v, want %d runs", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStyleForShades(t *testing.T) {
	normal := styleFor(core.ColorNeonCyan, core.ShadeNormal)
	if got := normal.GetForeground(); got != lipgloss.Color("51") {
		t.Errorf("normal cyan foreground = %v, want 51", got)
	}
	if normal.GetBold() || normal.GetFaint() {
		t.Error("normal cyan should be neither bold nor faint")
	}

	glow := styleFor(core.ColorNeonCyan, core.ShadeGlow)
	if !glow.GetBold() {
		t.Error("glowing cyan should be bold")
	}
	if got := glow.GetForeground(); got != lipgloss.Color("51") {
		t.Errorf("glowing cyan foreground = %v, want 51", got)
	}

	dim := styleFor(core.ColorNeonCyan, core.ShadeDim)
	if got := dim.GetForeground(); got != lipgloss.Color("30") {
		t.Errorf("dim cyan foreground = %v, want 30", got)
	}
	if dim.GetFaint() {
		t.Error("dim cyan has a dark tone and should not also be faint")
	}

	// Without a dark tone the faint attribute does the dimming.
	if !styleFor(core.ColorWhite, core.ShadeDim).GetFaint() {
		t.Error("dim white should be faint")
	}
}

func TestStyleForEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkPurple; c++ {
		if c == core.ColorDefault {
			continue
		}
		if _, ok := styleFor(c, core.ShadeNormal).GetForeground().(lipgloss.Color); !ok {
			t.Errorf("color %d has no foreground", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "SCORE 10", core.ColorNeonCyan)
	s.SetShaded(2, 1, '●', core.ColorNeonCyan, core.ShadeGlow)
	s.SetShaded(3, 1, '·', core.ColorNeonCyan, core.ShadeDim)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
	for _, want := range []string{"SCORE 10", "●", "·"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}
