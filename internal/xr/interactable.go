package xr

import (
	"ChargeSim/internal/behaviour"
)

// SelectEvent is delivered to select listeners.
type SelectEvent struct {
	Interactor *RayInteractor
	Target     *behaviour.GameObject
}

// Interactable marks an object the ray can select. Picking uses a bounding
// sphere of Radius around the object's world position.
type Interactable struct {
	behaviour.BaseComponent
	Radius    float32
	Grabbable bool

	selected        bool
	onSelectEntered []func(SelectEvent)
	onSelectExited  []func(SelectEvent)
}

func NewInteractable(radius float32, grabbable bool) *Interactable {
	return &Interactable{Radius: radius, Grabbable: grabbable}
}

func (i *Interactable) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeInteraction
}

func (i *Interactable) GetTypeName() string {
	return "Interactable"
}

// AddSelectEnteredListener registers an onGrab handler.
func (i *Interactable) AddSelectEnteredListener(fn func(SelectEvent)) {
	if fn != nil {
		i.onSelectEntered = append(i.onSelectEntered, fn)
	}
}

// AddSelectExitedListener registers an onRelease handler.
func (i *Interactable) AddSelectExitedListener(fn func(SelectEvent)) {
	if fn != nil {
		i.onSelectExited = append(i.onSelectExited, fn)
	}
}

func (i *Interactable) IsSelected() bool {
	return i.selected
}

func (i *Interactable) selectEntered(evt SelectEvent) {
	i.selected = true
	for _, fn := range i.onSelectEntered {
		fn(evt)
	}
}

func (i *Interactable) selectExited(evt SelectEvent) {
	i.selected = false
	for _, fn := range i.onSelectExited {
		fn(evt)
	}
}
