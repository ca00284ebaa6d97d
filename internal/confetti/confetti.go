// Package confetti draws the completion burst in a terminal.
package confetti

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

const gravity = 0.18

var glyphs = []rune{'*', '+', '•', '✦', '~', 'o'}

var ErrNoParticles = errors.New("celebration has no particles")

type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  string
	Glyph  rune
}

// Burst is one confetti shot simulated on a Width x Height cell grid.
type Burst struct {
	Width, Height int

	particles []Particle
	frame     int
	frames    int
}

// NewBurst fires config.ParticleCount particles from the horizontal centre
// at config.OriginY, fanned upward over config.Spread degrees.
func NewBurst(config model.CelebrationConfig, width, height int, seed uint64) *Burst {
	width, height = max(width, 1), max(height, 1)
	frames := config.Frames
	if frames <= 0 {
		frames = model.DefaultCelebration().Frames
	}
	colors := config.Colors
	if len(colors) == 0 {
		colors = model.DefaultCelebration().Colors
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	spread := config.Spread * math.Pi / 180
	originX := float64(width) / 2
	originY := config.OriginY * float64(height)
	speed := math.Sqrt(float64(height)) * 0.9

	b := &Burst{Width: width, Height: height, frames: frames}
	b.particles = make([]Particle, config.ParticleCount)
	for i := range b.particles {
		angle := math.Pi/2 + (rng.Float64()-0.5)*spread
		v := speed * (0.5 + rng.Float64())
		b.particles[i] = Particle{
			X: originX,
			Y: originY,
			// cells are about twice as tall as they are wide
			VX:    math.Cos(angle) * v * 2,
			VY:    -math.Sin(angle) * v,
			Color: colors[rng.IntN(len(colors))],
			Glyph: glyphs[rng.IntN(len(glyphs))],
		}
	}
	return b
}

func (b *Burst) Step() {
	if b.Done() {
		return
	}
	for i := range b.particles {
		p := &b.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX *= 0.92
		p.VY = p.VY*0.92 + gravity
	}
	b.frame++
}

func (b *Burst) Done() bool { return b.frame >= b.frames }

func (b *Burst) Frame() int { return b.frame }

// Particles returns the particles currently inside the grid.
func (b *Burst) Particles() []Particle {
	visible := make([]Particle, 0, len(b.particles))
	for _, p := range b.particles {
		if p.X >= 0 && p.X < float64(b.Width) && p.Y >= 0 && p.Y < float64(b.Height) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Render draws the current frame as Height lines of Width cells.
func (b *Burst) Render() string {
	grid := make([][]string, b.Height)
	for y := range grid {
		grid[y] = make([]string, b.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range b.Particles() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
		grid[int(p.Y)][int(p.X)] = style.Render(string(p.Glyph))
	}

	lines := make([]string, b.Height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// parseHex turns "#rrggbb" into its components.
func parseHex(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), nil
}
