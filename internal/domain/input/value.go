package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the state of one channel on one frame. Buttons and the trick id
// use Level; the analog channel uses Horizontal and Vertical. Values are
// comparable and used directly as category map keys.
type Value struct {
	Level      int
	Horizontal int
	Vertical   int
}

// Level converts a button state to its 0/1 value
func Level(pressed bool) Value {
	if pressed {
		return Value{Level: 1}
	}
	return Value{Level: 0}
}

// Stick builds an analog value
func Stick(horizontal, vertical int) Value {
	return Value{Horizontal: horizontal, Vertical: vertical}
}

// Format renders the value the way layout files spell it
func (v Value) Format(ch Channel) string {
	if ch.IsAnalog() {
		return fmt.Sprintf("(%d, %d)", v.Horizontal, v.Vertical)
	}
	return strconv.Itoa(v.Level)
}

// ParseValue parses a layout category key for the given channel.
// Scalar channels take an integer ("0", "1", "3"); the analog channel
// takes a pair written "(7, 7)" or "7,7".
func ParseValue(ch Channel, key string) (Value, error) {
	key = strings.TrimSpace(key)
	if !ch.IsAnalog() {
		n, err := strconv.Atoi(key)
		if err != nil {
			return Value{}, fmt.Errorf("invalid %s category %q: %w", ch, key, err)
		}
		return Value{Level: n}, nil
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(key, "("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return Value{}, fmt.Errorf("invalid analog category %q: want (horizontal, vertical)", key)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Value{}, fmt.Errorf("invalid analog category %q: %w", key, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Value{}, fmt.Errorf("invalid analog category %q: %w", key, err)
	}
	return Stick(h, v), nil
}
