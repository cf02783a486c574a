package balanced

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout renders values into a fixed-width field with an arbitrary fill
// rune and alignment, the modifiers fmt has no verb flags for.
//
// Fill and alignment are applied after formatting, so a Layout works with
// any verb Int or Option supports:
//
//	l := balanced.NewLayout(8, balanced.WithFill('_'), balanced.WithAlign(balanced.AlignLeft))
//	l.Sprint(balanced.MustNew(int8(0))) // "0_______"
//
// A Layout is immutable and safe for concurrent use.
type Layout struct {
	width int
	opts  layoutOptions
}

// NewLayout returns a Layout for a field of width display cells.
func NewLayout(width int, optFns ...LayoutOption) Layout {
	opts := layoutOptions{
		verb:  'v',
		fill:  ' ',
		align: AlignRight,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if runewidth.RuneWidth(opts.fill) == 0 {
		opts.fill = ' '
	}
	return Layout{width: width, opts: opts}
}

// Width returns the field width in display cells.
func (l Layout) Width() int { return l.width }

// Sprint formats v with the configured verb and pads it to the field width.
// Text already as wide as the field is returned unpadded.
func (l Layout) Sprint(v any) string {
	s := fmt.Sprintf("%"+string(l.opts.verb), v)

	gap := l.width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	fillWidth := runewidth.RuneWidth(l.opts.fill)
	cells := gap / fillWidth
	// Cells a wide fill rune cannot cover are padded with spaces.
	rest := gap - cells*fillWidth

	var left, right int
	switch l.opts.align {
	case AlignLeft:
		right = cells
	case AlignCenter:
		left = cells / 2
		right = cells - left
	default:
		left = cells
	}

	var sb strings.Builder
	sb.Grow(len(s) + cells*4 + rest)
	fill := string(l.opts.fill)
	sb.WriteString(strings.Repeat(fill, left))
	if l.opts.align != AlignLeft {
		sb.WriteString(strings.Repeat(" ", rest))
	}
	sb.WriteString(s)
	sb.WriteString(strings.Repeat(fill, right))
	if l.opts.align == AlignLeft {
		sb.WriteString(strings.Repeat(" ", rest))
	}
	return sb.String()
}
