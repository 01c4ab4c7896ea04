package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/quentinrf/berlin-clock/internal/domain"
)

// Mode selects between the plain lamp grid and the coloured clock face.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModePretty Mode = "always"
	ModePlain  Mode = "never"
)

// ParseMode accepts auto, always and never.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeAuto, ModePretty, ModePlain:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("unknown output mode %q (want auto, always or never)", s)
}

// Lamp glyphs in pretty mode
const (
	litGlyph = "●"
	offGlyph = "○"
)

var lampColors = map[domain.Lamp]lipgloss.Color{
	domain.LampRed:    lipgloss.Color("9"),  // bright red
	domain.LampYellow: lipgloss.Color("11"), // bright yellow
	domain.LampOff:    lipgloss.Color("8"),  // dark gray
}

// Printer writes rendered clock faces to a terminal or a pipe
type Printer struct {
	out      io.Writer
	pretty   bool
	renderer *lipgloss.Renderer
}

// NewPrinter creates a printer on w. pretty selects the coloured face.
// Pretty printers always emit 256-colour sequences, whatever w looks like.
func NewPrinter(w io.Writer, pretty bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if pretty {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		out:      w,
		pretty:   pretty,
		renderer: r,
	}
}

// ForWriter creates a printer on w.
// In auto mode the coloured face is used only when w is a terminal; terminals
// get an ANSI-translating writer so colours also work on Windows consoles.
func ForWriter(w io.Writer, mode Mode) *Printer {
	f, ok := w.(*os.File)
	tty := ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	if tty {
		w = colorable.NewColorable(f)
	}

	pretty := mode == ModePretty || (mode == ModeAuto && tty)
	return NewPrinter(w, pretty)
}

// Pretty reports whether the printer draws the coloured face
func (p *Printer) Pretty() bool {
	return p.pretty
}

// Print writes the face followed by a newline
func (p *Printer) Print(c domain.Clock) error {
	var s string
	if p.pretty {
		s = p.face(c)
	} else {
		s = c.String()
	}

	if _, err := fmt.Fprintln(p.out, s); err != nil {
		return fmt.Errorf("failed to write clock: %w", err)
	}
	return nil
}

// PrintGrid writes a face received in its five-line text form
func (p *Printer) PrintGrid(grid string) error {
	c, err := domain.ParseClock(grid)
	if err != nil {
		return err
	}
	return p.Print(c)
}

// PrintLabeled writes a caption line above the face
func (p *Printer) PrintLabeled(label string, c domain.Clock) error {
	if p.pretty {
		label = p.renderer.NewStyle().Bold(true).Render(label)
	}
	if _, err := fmt.Fprintln(p.out, label); err != nil {
		return fmt.Errorf("failed to write label: %w", err)
	}
	return p.Print(c)
}

// face draws every row centred under the widest one, inside a rounded border
func (p *Printer) face(c domain.Clock) string {
	rows := c.Rows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lamps := make([]string, len(row))
		for j, l := range row {
			glyph := litGlyph
			if !l.IsLit() {
				glyph = offGlyph
			}
			lamps[j] = p.renderer.NewStyle().Foreground(lampColors[l]).Render(glyph)
		}
		lines[i] = strings.Join(lamps, " ")
	}

	return p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
