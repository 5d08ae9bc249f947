package state

// PlaybackState represents where the preview is in the timeline
type PlaybackState int

const (
	StatePlaying PlaybackState = iota
	StatePaused
	StateFinished
)

// String returns the string representation of the playback state
func (s PlaybackState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
