package confetti

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/fatih/color"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

// Launcher queues celebrations for the TUI, which turns each one into an
// animated Burst on its next update.
type Launcher struct {
	pending []model.CelebrationConfig
}

func NewLauncher() *Launcher {
	return &Launcher{}
}

func (l *Launcher) Celebrate(config model.CelebrationConfig) error {
	if config.ParticleCount <= 0 {
		return ErrNoParticles
	}
	l.pending = append(l.pending, config)
	return nil
}

// Drain returns and forgets the queued celebrations.
func (l *Launcher) Drain() []model.CelebrationConfig {
	pending := l.pending
	l.pending = nil
	return pending
}

// Printer is the one-shot CLI celebration: a single line of coloured
// confetti written to Out.
type Printer struct {
	Out   io.Writer
	Width int
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out, Width: 40}
}

func (p *Printer) Celebrate(config model.CelebrationConfig) error {
	if config.ParticleCount <= 0 {
		return ErrNoParticles
	}

	var palette []*color.Color
	for _, hex := range config.Colors {
		r, g, b, err := parseHex(hex)
		if err != nil {
			continue
		}
		palette = append(palette, color.RGB(r, g, b))
	}
	if len(palette) == 0 {
		return fmt.Errorf("no usable colours in %v", config.Colors)
	}

	n := min(config.ParticleCount, p.Width)
	var line strings.Builder
	for i := 0; i < n; i++ {
		c := palette[rand.IntN(len(palette))]
		line.WriteString(c.Sprint(string(glyphs[rand.IntN(len(glyphs))])))
	}
	_, err := fmt.Fprintf(p.Out, "🎉 %s 🎉\n", line.String())
	return err
}
