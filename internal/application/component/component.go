// Package component maps decoded frames onto drawing calls.
//
// A layout is a list of Specs. Each Spec is turned into one of four closed
// variants (categorical image, analog offset image, text, static image)
// bound to an input channel. Components are built once, loading their
// assets into the Canvas, and are then rendered once per frame without
// keeping any state between frames.
package component

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

var (
	// ErrUnsupportedChannel is returned when a component is bound to a
	// channel its kind cannot display
	ErrUnsupportedChannel = errors.New("unsupported input channel")

	// ErrUnknownKind is returned for a Spec whose kind is not one of the
	// four variants
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrMissingCategory is returned at render time when a categorical
	// component has no entry for the frame's value
	ErrMissingCategory = errors.New("missing category")
)

// Kind selects the component variant
type Kind int

const (
	KindCategorical Kind = iota
	KindAnalogOffset
	KindText
	KindStatic
)

// Kinds lists every variant
var Kinds = []Kind{KindCategorical, KindAnalogOffset, KindText, KindStatic}

// String returns the layout name of the kind
func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindAnalogOffset:
		return "analog_offset"
	case KindText:
		return "text"
	case KindStatic:
		return "static_image"
	default:
		return "unknown"
	}
}

// ParseKind resolves a layout type name. The older class style names
// ("Categorical_C", "Tuple_C", "Text_C", "StaticImage_C") are accepted too.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "categorical", "categorical_c":
		return KindCategorical, nil
	case "analog_offset", "tuple", "tuple_c":
		return KindAnalogOffset, nil
	case "text", "text_c":
		return KindText, nil
	case "static_image", "static", "staticimage_c":
		return KindStatic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Accepts reports whether the kind can be bound to ch
func (k Kind) Accepts(ch input.Channel) bool {
	switch k {
	case KindCategorical:
		return ch != input.ChannelNone && ch.Known()
	case KindAnalogOffset, KindText:
		return ch.IsAnalog()
	case KindStatic:
		return ch == input.ChannelNone
	default:
		return false
	}
}

// Placement is an image drawn at a position
type Placement struct {
	Image    string
	Position image.Point
}

// Spec declares one component of a layout. Only the fields used by Kind
// are read.
type Spec struct {
	Kind    Kind
	Channel input.Channel

	// categorical
	Categories map[input.Value]Placement

	// analog offset and static
	Image    string
	Position image.Point // also the text anchor
	Range    image.Point // maximum offset from Position at full deflection

	// text
	Font  string
	Size  float64
	Style TextStyle
}

// DisplayFlags are rendering switches independent of the decoded data
type DisplayFlags struct {
	ShowJoystickValues         bool
	ShowFirstPersonEnabledText bool
	JoystickRange77            bool // show stick values as -7..7 instead of 0..14
}

// Component renders one frame's input onto its canvas
type Component interface {
	Render(frame input.FrameRecord, flags DisplayFlags) error
}

// New builds the component described by spec and loads its assets into
// canvas. Binding a channel the kind does not accept is an error here,
// never at render time.
func New(spec Spec, canvas Canvas) (Component, error) {
	if !slices.Contains(Kinds, spec.Kind) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
	}
	if !spec.Kind.Accepts(spec.Channel) {
		return nil, fmt.Errorf("%w: %s cannot display %q", ErrUnsupportedChannel, spec.Kind, spec.Channel)
	}

	switch spec.Kind {
	case KindCategorical:
		return newCategorical(spec, canvas)
	case KindAnalogOffset:
		return newAnalogOffset(spec, canvas)
	case KindText:
		return newText(spec, canvas)
	case KindStatic:
		return newStatic(spec, canvas)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
}
