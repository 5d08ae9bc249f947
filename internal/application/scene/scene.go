// Package scene defines the Scene interface for overlay screens.
//
// The preview window and the PNG frame export both implement Scene so the
// same game loop can drive them, and an export can hand over to a preview
// once every frame is written.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents an overlay screen (preview, export)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the loop; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Target is a canvas whose draw calls can be pointed at an ebiten image
type Target interface {
	SetTarget(dst *ebiten.Image)
}
