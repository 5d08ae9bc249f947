package config

// LayoutConfig is the root of a layout JSON file
type LayoutConfig struct {
	Name       string            `json:"name"`
	Size       SizeConfig        `json:"size"`
	Components []ComponentConfig `json:"components"`
}

// SizeConfig is the canvas size in pixels
type SizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ComponentConfig declares one overlay component. Only the fields used by
// Type need to be present.
type ComponentConfig struct {
	Type  string `json:"type"`
	Input string `json:"input,omitempty"`

	// categorical
	Categories map[string]CategoryConfig `json:"categories,omitempty"`

	// analog offset, static image
	Image    string `json:"image,omitempty"`
	Position []int  `json:"position,omitempty"` // [x, y]
	PosRange []int  `json:"pos_range,omitempty"`

	// text
	Font        string  `json:"font,omitempty"`
	Size        float64 `json:"size,omitempty"`
	Fill        []int   `json:"fill,omitempty"` // [r, g, b] or [r, g, b, a]
	Spacing     int     `json:"spacing,omitempty"`
	Align       string  `json:"align,omitempty"`     // left, center, right
	Direction   string  `json:"direction,omitempty"` // ltr, rtl, ttb
	StrokeWidth int     `json:"stroke_width,omitempty"`
	StrokeFill  []int   `json:"stroke_fill,omitempty"`
}

type CategoryConfig struct {
	Image    string `json:"image"`
	Position []int  `json:"position"`
}
