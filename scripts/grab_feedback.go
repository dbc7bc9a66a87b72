package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/xr"
)

// GrabFeedback highlights an object and plays a cue while it is selected.
// The material it had before the grab is restored on release.
type GrabFeedback struct {
	behaviour.BaseComponent

	Renderer  *behaviour.RendererComponent
	Audio     *behaviour.AudioSourceComponent
	Highlight string
	GrabClip  string

	restore     string
	highlighted bool
}

func NewGrabFeedback(renderer *behaviour.RendererComponent, audio *behaviour.AudioSourceComponent, highlight, grabClip string) *GrabFeedback {
	return &GrabFeedback{Renderer: renderer, Audio: audio, Highlight: highlight, GrabClip: grabClip}
}

func (g *GrabFeedback) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (g *GrabFeedback) GetTypeName() string {
	return "GrabFeedback"
}

// Bind hooks the feedback to target's select events.
func (g *GrabFeedback) Bind(target *xr.Interactable) {
	if target == nil {
		return
	}
	target.AddSelectEnteredListener(func(xr.SelectEvent) { g.OnGrab() })
	target.AddSelectExitedListener(func(xr.SelectEvent) { g.OnRelease() })
}

func (g *GrabFeedback) OnGrab() {
	if g.Audio != nil {
		g.Audio.Play(g.GrabClip)
	}
	if g.Renderer == nil || g.highlighted {
		return
	}
	g.restore = g.Renderer.Material
	g.highlighted = true
	g.Renderer.SetMaterial(g.Highlight)
}

// OnRelease restores the pre-grab material unless something else changed it
// while the object was held.
func (g *GrabFeedback) OnRelease() {
	if g.Renderer == nil || !g.highlighted {
		return
	}
	g.highlighted = false
	if g.Renderer.Material == g.Highlight {
		g.Renderer.SetMaterial(g.restore)
	}
}
