package floppy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/floppy/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar      = '█'
	RotatingChar      = '▓'
	ObstacleCapTop    = '▄'
	ObstacleCapBottom = '▀'
	GroundChar        = '═'
	ShieldChar        = '◦'
)

const (
	hudRows    = 1 // Top row holds the HUD
	groundRows = 1 // Bottom row holds the ground
)

// skin is the look of one skin tier.
type skin struct {
	body  rune
	beak  rune
	color core.Color
}

var skins = []skin{
	{body: '●', beak: '▶', color: core.ColorYellow},
	{body: '●', beak: '▶', color: core.ColorOrange},
	{body: '◆', beak: '►', color: core.ColorBrightCyan},
	{body: '★', beak: '►', color: core.ColorMagenta},
}

// themeColors maps a theme index to the obstacle and ground colors.
var themeColors = []struct {
	obstacle core.Color
	ground   core.Color
}{
	{obstacle: core.ColorGreen, ground: core.ColorYellow},             // Morning
	{obstacle: core.ColorBrightGreen, ground: core.ColorBrightYellow}, // Noon
	{obstacle: core.ColorOrange, ground: core.ColorRed},               // Sunset
	{obstacle: core.ColorBlue, ground: core.ColorGray},                // Night
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
	bottom int // First row below the play area
}

func newViewport(snap *Snapshot, dst *core.Screen) viewport {
	playH := max(1, dst.Height()-hudRows-groundRows)
	return viewport{
		sx:     float64(dst.Width()) / float64(max(1, snap.WorldW)),
		sy:     float64(playH) / float64(max(1, snap.WorldH)),
		top:    hudRows,
		bottom: hudRows + playH,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return v.top + int(y*v.sy)
}

// rect converts a world rectangle to screen cells, keeping at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.col(float64(r.X)), v.row(float64(r.Y))
	x1, y1 := v.col(float64(r.Right())), v.row(float64(r.Bottom()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	Draw(dst, &snap)
}

// Draw renders a snapshot into dst.
func Draw(dst *core.Screen, snap *Snapshot) {
	dst.Clear()
	v := newViewport(snap, dst)
	colors := themeColors[snap.ThemeIndex%len(themeColors)]

	dst.DrawHLine(0, v.bottom, dst.Width(), GroundChar, colors.ground)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, snap, o, colors.obstacle)
	}
	for _, p := range snap.Pickups {
		r := v.rect(p.Rect(snap.PickupSize))
		dst.SetColor(r.X+r.W/2, r.Y+r.H/2, p.Kind.Glyph(), pickupColor(p.Kind))
	}

	drawFlyer(dst, v, snap.Flyer)
	drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  Q quit", snap.Score))
	}
}

func drawObstacle(dst *core.Screen, v viewport, snap *Snapshot, o Obstacle, c core.Color) {
	fill := ObstacleChar
	if o.Rotating && int(o.Angle)/45%2 == 1 {
		fill = RotatingChar
	}

	top := v.rect(o.TopRect(snap.ObstacleWidth))
	top.H = max(0, min(top.Bottom(), v.bottom)-top.Y)
	dst.DrawRect(top, fill, c)
	if !top.Empty() {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, ObstacleCapTop, c)
	}

	bottom := v.rect(o.BottomRect(snap.ObstacleWidth, snap.WorldH))
	bottom.H = max(0, v.bottom-bottom.Y)
	dst.DrawRect(bottom, fill, c)
	if !bottom.Empty() {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, ObstacleCapBottom, c)
	}
}

func drawFlyer(dst *core.Screen, v viewport, f FlyerView) {
	s := skins[min(f.Skin, len(skins)-1)]
	r := v.rect(core.NewRect(f.X, int(f.Y), f.Width, f.Height))

	if f.Shield {
		ring := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
		for x := ring.X; x < ring.Right(); x++ {
			dst.SetColor(x, ring.Y, ShieldChar, core.ColorBrightBlue)
			dst.SetColor(x, ring.Bottom()-1, ShieldChar, core.ColorBrightBlue)
		}
		for y := ring.Y; y < ring.Bottom(); y++ {
			dst.SetColor(ring.X, y, ShieldChar, core.ColorBrightBlue)
			dst.SetColor(ring.Right()-1, y, ShieldChar, core.ColorBrightBlue)
		}
	}

	dst.DrawRect(r, s.body, s.color)
	var beakY int
	switch {
	case f.Tilt > 10:
		beakY = r.Y
	case f.Tilt < -10:
		beakY = r.Bottom() - 1
	default:
		beakY = r.Y + r.H/2
	}
	dst.SetColor(r.Right()-1, beakY, s.beak, s.color)
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	parts := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level: %d (%s)", snap.Level, snap.Theme),
	}
	if snap.SlowMotion > 0 {
		parts = append(parts, "Slow Motion")
	}
	if snap.DoublePoints > 0 {
		parts = append(parts, "Double Points")
	}
	if snap.Flyer.Shield {
		parts = append(parts, "Shield ON")
	}
	if !snap.SoundEnabled {
		parts = append(parts, "Muted")
	}
	dst.DrawTextColor(1, 0, strings.Join(parts, "  "), core.ColorWhite)
}

func pickupColor(k PickupKind) core.Color {
	switch k {
	case PickupSlowMotion:
		return core.ColorCyan
	case PickupShield:
		return core.ColorBrightBlue
	case PickupDoublePoints:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
