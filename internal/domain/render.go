package domain

import (
	"fmt"
	"strings"
)

// Lamp is the state of a single light on the clock face.
type Lamp byte

const (
	LampRed    Lamp = 'R'
	LampYellow Lamp = 'Y'
	LampOff    Lamp = 'O'
)

// IsLit returns true for red and yellow lamps
func (l Lamp) IsLit() bool {
	return l == LampRed || l == LampYellow
}

func (l Lamp) String() string {
	return string(rune(l))
}

// Row is a fixed-length sequence of lamps, read left to right.
type Row []Lamp

// String renders the row without separators.
func (r Row) String() string {
	b := make([]byte, len(r))
	for i, l := range r {
		b[i] = byte(l)
	}
	return string(b)
}

// Lit counts the lamps that are on.
func (r Row) Lit() int {
	n := 0
	for _, l := range r {
		if l.IsLit() {
			n++
		}
	}
	return n
}

// Row widths of the clock face, top to bottom.
const (
	SecondsWidth     = 1
	FiveHoursWidth   = 4
	HoursWidth       = 4
	FiveMinutesWidth = 11
	MinutesWidth     = 4
)

// Clock is the rendered Berlin Clock face.
type Clock struct {
	Seconds     Row // blinker, lit on even seconds
	FiveHours   Row
	Hours       Row
	FiveMinutes Row // every third lit lamp marks a quarter hour
	Minutes     Row
}

// Render lights the clock face for t. Any valid Time has exactly one rendering.
func Render(t Time) Clock {
	blinker := LampOff
	if t.seconds%2 == 0 {
		blinker = LampYellow
	}

	return Clock{
		Seconds:     Row{blinker},
		FiveHours:   fill(FiveHoursWidth, t.hours/5, redLamp),
		Hours:       fill(HoursWidth, t.hours%5, redLamp),
		FiveMinutes: fill(FiveMinutesWidth, t.minutes/5, quarterLamp),
		Minutes:     fill(MinutesWidth, t.minutes%5, yellowLamp),
	}
}

// fill lights the first n lamps of a row of the given width.
// lamp picks the colour for the lit lamp at 0-based position i.
func fill(width, n int, lamp func(i int) Lamp) Row {
	row := make(Row, width)
	for i := range row {
		if i < n {
			row[i] = lamp(i)
		} else {
			row[i] = LampOff
		}
	}
	return row
}

func redLamp(int) Lamp    { return LampRed }
func yellowLamp(int) Lamp { return LampYellow }

func quarterLamp(i int) Lamp {
	if (i+1)%3 == 0 {
		return LampRed
	}
	return LampYellow
}

// Rows returns the five rows top to bottom.
func (c Clock) Rows() []Row {
	return []Row{c.Seconds, c.FiveHours, c.Hours, c.FiveMinutes, c.Minutes}
}

// String joins the rows with newlines, without a trailing newline.
func (c Clock) String() string {
	rows := c.Rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// ParseClock reads a face back from the form produced by Clock.String.
func ParseClock(s string) (Clock, error) {
	lines := strings.Split(s, "\n")
	widths := []int{SecondsWidth, FiveHoursWidth, HoursWidth, FiveMinutesWidth, MinutesWidth}
	if len(lines) != len(widths) {
		return Clock{}, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedClock, len(widths), len(lines))
	}

	rows := make([]Row, len(lines))
	for i, line := range lines {
		if len(line) != widths[i] {
			return Clock{}, fmt.Errorf("%w: row %d has %d lamps, want %d", ErrMalformedClock, i+1, len(line), widths[i])
		}
		row := make(Row, len(line))
		for j := 0; j < len(line); j++ {
			switch l := Lamp(line[j]); l {
			case LampRed, LampYellow, LampOff:
				row[j] = l
			default:
				return Clock{}, fmt.Errorf("%w: unknown lamp %q in row %d", ErrMalformedClock, line[j], i+1)
			}
		}
		rows[i] = row
	}

	return Clock{
		Seconds:     rows[0],
		FiveHours:   rows[1],
		Hours:       rows[2],
		FiveMinutes: rows[3],
		Minutes:     rows[4],
	}, nil
}

// Convert parses text and renders its clock face.
// Rejected input yields an error matching ErrInvalidFormat.
func Convert(text string) (string, error) {
	t, err := ParseTime(text)
	if err != nil {
		return "", err
	}
	return Render(t).String(), nil
}
