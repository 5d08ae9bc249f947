package input

import (
	"path/filepath"
	"strings"
)

// Format identifies a ghost file layout
type Format int

const (
	FormatRKG Format = iota // Mario Kart Wii ghost
	FormatMK7               // Mario Kart 7 ghost (.dat)
	FormatDTM               // Dolphin movie
)

// String returns the file extension used for the format
func (f Format) String() string {
	switch f {
	case FormatRKG:
		return "rkg"
	case FormatMK7:
		return "dat"
	case FormatDTM:
		return "dtm"
	default:
		return "unknown"
	}
}

// ParseFormat resolves an explicit format tag. The second return value
// is false when the tag names no known layout.
func ParseFormat(tag string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(tag, ".")) {
	case "rkg":
		return FormatRKG, true
	case "dat", "mk7":
		return FormatMK7, true
	case "dtm":
		return FormatDTM, true
	}
	return FormatRKG, false
}

// FormatFromPath picks a layout from the file extension.
// Unknown extensions fall back to RKG.
func FormatFromPath(path string) Format {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".dat":
		return FormatMK7
	case ".dtm":
		return FormatDTM
	default:
		return FormatRKG
	}
}
