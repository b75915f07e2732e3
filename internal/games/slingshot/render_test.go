package slingshot

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func TestRenderMenu(t *testing.T) {
	g, err := NewWithConfig(config.DefaultSlingshotConfig())
	if err != nil {
		t.Fatal(err)
	}
	scr := core.NewScreen(128, 36)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Press ENTER to start") {
		t.Error("menu should show the start prompt")
	}

	g.Step(actionFrame(core.ActionInstructions))
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "road roller") {
		t.Error("instructions should describe the powers")
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newStartedGame(t, config.DefaultSlingshotConfig())
	scr := core.NewScreen(128, 36)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Birds: 6") {
		t.Errorf("HUD row = %q, expected bird count", scr.Row(0))
	}

	// Metal block 0 at (800, 560) maps to cell (80, 28)
	if c := scr.GetCell(80, 28); c.Rune != MetalChar || c.Color != core.ColorGray {
		t.Errorf("cell (80, 28) = %+v, expected metal block", c)
	}
	// Ground row
	if c := scr.GetCell(5, 33); c.Rune != GroundChar {
		t.Errorf("cell (5, 33) = %+v, expected ground", c)
	}
	// Active parrot on the anchor
	if c := scr.GetCell(32, 25); c.Rune != Parrot.Glyph() {
		t.Errorf("cell (32, 25) = %+v, expected parrot", c)
	}
}

func TestRenderSummary(t *testing.T) {
	cfg := flatConfig([]string{"parrot"}, []config.PointConfig{{X: 1000, Y: 100}}, nil)
	g := newStartedGame(t, cfg)
	g.Active().Fire(core.V(-600, 0))
	runUntil(g, 300, func() bool { return g.State().GameOver })

	scr := core.NewScreen(128, 36)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Game Over. You lose!") {
		t.Error("summary should announce the outcome")
	}
	if !strings.Contains(out, "Total: 0") {
		t.Error("summary should show the total")
	}
}

func TestSummaryTable(t *testing.T) {
	g := newStartedGame(t, config.DefaultSlingshotConfig())
	rows := g.SummaryTable()

	if len(rows) != 4 {
		t.Fatalf("len(SummaryTable()) = %d, expected 4", len(rows))
	}
	if rows[0][0] != "Birds left" || rows[0][1] != "6" || rows[0][3] != "3000" {
		t.Errorf("first row = %v, expected 6 birds worth 3000", rows[0])
	}
	if rows[3][3] != "3000" {
		t.Errorf("total row = %v, expected 3000", rows[3])
	}
}
