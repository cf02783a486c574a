package balanced

// Alignment selects where a Layout places its fill.
type Alignment uint8

const (
	// AlignRight pads on the left. It is the default for numbers.
	AlignRight Alignment = iota
	// AlignLeft pads on the right.
	AlignLeft
	// AlignCenter splits the padding, putting the odd cell on the right.
	AlignCenter
)

type layoutOptions struct {
	verb  rune
	fill  rune
	align Alignment
}

// LayoutOption configures a Layout.
type LayoutOption func(*layoutOptions)

// WithFill sets the rune used for padding. The default is a space.
//
// A fill rune of display width zero (control or combining characters)
// is replaced by a space.
func WithFill(r rune) LayoutOption {
	return func(o *layoutOptions) {
		o.fill = r
	}
}

// WithAlign sets the alignment of the value within the field.
func WithAlign(a Alignment) LayoutOption {
	return func(o *layoutOptions) {
		o.align = a
	}
}

// WithVerb sets the fmt verb used to render the value before padding,
// e.g. 'x' or 'b'. The default is 'v'.
func WithVerb(verb rune) LayoutOption {
	return func(o *layoutOptions) {
		if verb == 0 {
			verb = 'v'
		}
		o.verb = verb
	}
}
