package system

import (
	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/application/state"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// PlaybackSystem advances a replayer in real time at the timeline's frame
// rate and applies the preview controls
type PlaybackSystem struct {
	replayer  *replay.Replayer
	frameRate float64
	state     state.PlaybackState
	carry     float64 // fraction of a frame not yet shown
}

// NewPlaybackSystem creates a playback system starting at frame 0
func NewPlaybackSystem(t *replay.Timeline) *PlaybackSystem {
	s := &PlaybackSystem{
		replayer:  replay.NewReplayer(t),
		frameRate: t.FrameRate(),
		state:     state.StatePlaying,
	}
	if t.Len() == 0 {
		s.state = state.StateFinished
	}
	return s
}

// Update applies controls, then advances by dt seconds if playing
func (s *PlaybackSystem) Update(controls ControlState, dt float64) {
	if controls.Restart {
		s.restart()
	}

	if controls.TogglePause {
		switch s.state {
		case state.StatePlaying:
			s.state = state.StatePaused
		case state.StatePaused:
			s.state = state.StatePlaying
		case state.StateFinished:
			s.restart()
		}
	}

	if s.state == state.StatePaused {
		if controls.StepForward {
			s.seek(s.replayer.CurrentFrame() + 1)
		}
		if controls.StepBack {
			s.seek(s.replayer.CurrentFrame() - 1)
		}
		return
	}

	if s.state != state.StatePlaying {
		return
	}

	s.carry += dt * s.frameRate
	n := int(s.carry)
	s.carry -= float64(n)
	s.seek(s.replayer.CurrentFrame() + n)

	if s.replayer.CurrentFrame() >= s.lastFrame() {
		s.state = state.StateFinished
	}
}

// Frame returns the frame currently shown and its index
func (s *PlaybackSystem) Frame() (input.FrameRecord, int, bool) {
	rec, ok := s.replayer.Peek()
	return rec, s.replayer.CurrentFrame(), ok
}

// State returns the playback state
func (s *PlaybackSystem) State() state.PlaybackState {
	return s.state
}

// TotalFrames returns the number of frames in the timeline
func (s *PlaybackSystem) TotalFrames() int {
	return s.replayer.TotalFrames()
}

func (s *PlaybackSystem) restart() {
	s.replayer.Reset()
	s.carry = 0
	s.state = state.StatePlaying
	if s.replayer.TotalFrames() == 0 {
		s.state = state.StateFinished
	}
}

// seek moves the shown frame, staying on the last frame at the end
func (s *PlaybackSystem) seek(frame int) {
	s.replayer.Seek(max(0, min(frame, s.lastFrame())))
}

func (s *PlaybackSystem) lastFrame() int {
	return max(0, s.replayer.TotalFrames()-1)
}
