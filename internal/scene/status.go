package scene

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/xr"
	"ChargeSim/scripts"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjectStatus is one row of the object table.
type ObjectStatus struct {
	Key      rune // pointer key, 0 when the object is not a target
	Name     string
	Active   bool
	Material string
	Position mgl32.Vec3
	Plugged  bool
	Scripts  []string
}

// Status is a read-only copy of the scene state for display.
type Status struct {
	Frame         uint64
	Now           time.Duration
	Scenario      string
	HeadConnected bool
	CarConnected  bool
	Theft         string
	TheftProgress float32
	Overlay       float32
	CutsceneDone  bool
	Held          string
	Message       string
	Objects       []ObjectStatus
}

// Status snapshots the scene. Call it on the engine goroutine.
func (s *Scene) Status() Status {
	clock := s.Engine.Time()
	st := Status{
		Frame:         clock.Frame,
		Now:           clock.Now,
		Scenario:      s.Selector.Scenario().String(),
		HeadConnected: s.Cable.IsConnected(scripts.ConnectorHead),
		CarConnected:  s.Cable.IsConnected(scripts.ConnectorCar),
		Theft:         s.Theft.State().String(),
		TheftProgress: s.Theft.Progress(),
		CutsceneDone:  s.Cutscene.Finished(),
	}
	if overlay, ok := behaviour.GetComponent[*behaviour.OverlayComponent](s.Overlay); ok {
		st.Overlay = overlay.Opacity
	}
	if text, ok := behaviour.GetComponent[*behaviour.TextComponent](s.StatusText); ok {
		st.Message = text.Text
	}
	if held := s.Interactor.Held(); held != nil {
		st.Held = held.Name
	}

	for i, obj := range s.Targets {
		st.Objects = append(st.Objects, s.objectStatus(obj, rune('1'+i)))
	}
	for _, obj := range []*behaviour.GameObject{s.Car, s.Vehicle, s.Avatar} {
		st.Objects = append(st.Objects, s.objectStatus(obj, 0))
	}
	return st
}

func (s *Scene) objectStatus(obj *behaviour.GameObject, key rune) ObjectStatus {
	row := ObjectStatus{
		Key:      key,
		Name:     obj.Name,
		Active:   obj.Active,
		Position: obj.Transform.WorldPosition(),
	}
	if renderer, ok := behaviour.GetComponent[*behaviour.RendererComponent](obj); ok {
		row.Material = renderer.Material
	}
	for _, comp := range obj.Components {
		if behaviour.GetComponentCategory(comp) == behaviour.ComponentTypeScript {
			row.Scripts = append(row.Scripts, behaviour.GetComponentTypeName(comp))
		}
	}
	for _, socket := range []*xr.Socket{s.ChargerSocket, s.CarSocket} {
		if socket.Attached() == obj {
			row.Plugged = true
		}
	}
	return row
}
