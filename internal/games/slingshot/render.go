package slingshot

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Visual characters for rendering
const (
	GroundChar    = '▒'
	SlingChar     = '┃'
	BandChar      = '·'
	MetalChar     = '█'
	WoodChar      = '▓'
	TargetChar    = '@'
	RollerChar    = '■'
	PoweredMarker = '*'
)

var instructionLines = []string{
	"Drag the bird on the slingshot with the mouse and release to fire.",
	"Releasing close to the slingshot cancels the shot.",
	"Click (or press SPACE) while a bird is flying to use its power:",
	"",
	"  P parrot   no power",
	"  G penguin  smashes through blocks without breaking them",
	"  D duck     grows and breaks two blocks",
	"  c chick    drops straight down",
	"  O owl      doubles its speed and breaks two blocks",
	"  C chicken  flies up and calls down the road roller",
	"",
	"Metal blocks only give way to the road roller.",
	"Clear every enemy to win. R restarts, ESC quits.",
	"",
	"Press ENTER to start, B to go back.",
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.session.InMenu {
		if g.session.ShowInstructions {
			g.renderInstructions(dst)
		} else {
			g.renderMenu(dst)
		}
		return
	}

	vp := core.NewViewport(g.WorldSize(), dst.Width(), dst.Height())
	sc := g.scene

	dst.FillRect(vp.BoxToRect(sc.Ground.Bounds()), GroundChar, core.ColorGreen)
	dst.FillRect(vp.BoxToRect(sc.Slingshot.Bounds()), SlingChar, core.ColorOrange)

	for i := range sc.Obstacles {
		o := &sc.Obstacles[i]
		if !o.Visible {
			continue
		}
		if o.Destructible() {
			dst.FillRect(vp.BoxToRect(o.Bounds()), WoodChar, core.ColorOrange)
		} else {
			dst.FillRect(vp.BoxToRect(o.Bounds()), MetalChar, core.ColorGray)
		}
	}

	for i := range sc.Targets {
		t := &sc.Targets[i]
		if t.Visible {
			dst.FillRect(vp.BoxToRect(t.Bounds()), TargetChar, core.ColorBrightGreen)
		}
	}

	if g.launch.Held() {
		ax, ay := vp.ToCell(sc.Anchor)
		px, py := vp.ToCell(g.active().Center())
		dst.DrawLine(ax, ay, px, py, BandChar, core.ColorOrange)
	}

	for i := range sc.Projectiles {
		p := &sc.Projectiles[i]
		if !p.Visible {
			continue
		}
		r := vp.BoxToRect(p.Bounds())
		dst.FillRect(r, p.Kind.Glyph(), p.Kind.Color())
		if p.PowerActive() {
			dst.SetColored(r.X, r.Y, PoweredMarker, core.ColorBrightYellow)
		}
	}

	if sc.Roller.Visible {
		dst.FillRect(vp.BoxToRect(sc.Roller.Bounds()), RollerChar, core.ColorBrightWhite)
	}

	g.renderHUD(dst)

	if g.session.GameOver {
		g.renderSummary(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Birds: %d  Enemies: %d  Blocks: %d  Score: %d ",
		g.ProjectilesLeft(), g.TargetsLeft(), g.ObstaclesLeft(), g.Score())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S L I N G S H O T")
	dst.DrawTextCentered(mid-1, "Press ENTER to start")
	dst.DrawTextCentered(mid, "Press I for instructions")
	dst.DrawTextCentered(mid+1, "Press ESC to quit")
}

func (g *Game) renderInstructions(dst *core.Screen) {
	top := max((dst.Height()-len(instructionLines))/2, 0)
	x := max((dst.Width()-70)/2, 0)
	for i, line := range instructionLines {
		dst.DrawText(x, top+i, line)
	}
}

// SummaryLines returns the end-of-round text.
func (g *Game) SummaryLines() []string {
	b := g.Breakdown()
	pts := g.cfg.Scoring
	return []string{
		fmt.Sprintf("Game Over. You %s!", g.session.Outcome),
		"",
		fmt.Sprintf("Birds left:        %d x %d = %d", b.ProjectilesLeft, pts.ProjectileLeft, b.ProjectilePoints),
		fmt.Sprintf("Enemies destroyed: %d x %d = %d", b.TargetsRemoved, pts.Target, b.TargetPoints),
		fmt.Sprintf("Blocks destroyed:  %d x %d = %d", b.ObstaclesRemoved, pts.Obstacle, b.ObstaclePoints),
		fmt.Sprintf("Total: %d", b.Total()),
		"",
		"R to play again, ESC to quit",
	}
}

// SummaryTable returns the breakdown as item, count, points-each, subtotal rows.
func (g *Game) SummaryTable() [][]string {
	b := g.Breakdown()
	pts := g.cfg.Scoring
	row := func(name string, n, each, sub int) []string {
		return []string{name, strconv.Itoa(n), strconv.Itoa(each), strconv.Itoa(sub)}
	}
	return [][]string{
		row("Birds left", b.ProjectilesLeft, pts.ProjectileLeft, b.ProjectilePoints),
		row("Enemies destroyed", b.TargetsRemoved, pts.Target, b.TargetPoints),
		row("Blocks destroyed", b.ObstaclesRemoved, pts.Obstacle, b.ObstaclePoints),
		{"Total", "", "", strconv.Itoa(b.Total())},
	}
}

func (g *Game) renderSummary(dst *core.Screen) {
	lines := g.SummaryLines()
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	x := core.Clamp((dst.Width()-w)/2-2, 0, max(dst.Width()-w-4, 0))
	y := core.Clamp((dst.Height()-len(lines))/2-1, 0, max(dst.Height()-len(lines)-2, 0))
	box := core.NewRect(x, y, w+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextColored(box.X+2, box.Y+1+i, l, core.ColorBrightWhite)
	}
}
