package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/engine"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type cutsceneRig struct {
	eng      *engine.Engine
	cutscene *DrivingCutscene
	overlay  *behaviour.OverlayComponent
	avatar   *behaviour.GameObject
	vehicle  *behaviour.GameObject
}

var (
	vehicleStart = behaviour.Pose{Position: mgl32.Vec3{-60, 0, 8}, Rotation: mgl32.QuatIdent()}
	vehicleEnd   = behaviour.Pose{Position: mgl32.Vec3{-4, 0, 8}, Rotation: mgl32.QuatIdent()}
	seat         = behaviour.Pose{Position: mgl32.Vec3{-0.4, 0.9, 0.2}, Rotation: mgl32.QuatIdent()}
	spawn        = behaviour.Pose{
		Position: mgl32.Vec3{0, 0, 3},
		Rotation: mgl32.QuatRotate(mgl32.DegToRad(180), mgl32.Vec3{0, 1, 0}),
	}
)

func newCutsceneRig(timeScale float64) *cutsceneRig {
	e := engine.NewEngine()
	e.TimeScale = timeScale

	overlay := behaviour.NewOverlayComponent(1)
	overlayObj := behaviour.NewGameObject("Overlay")
	overlayObj.AddComponent(overlay)

	avatar := behaviour.NewGameObject("Avatar")
	vehicle := behaviour.NewGameObject("Vehicle")

	cutscene := NewDrivingCutscene(overlay, avatar.Transform, vehicle.Transform)
	cutscene.Duration = 8 * time.Second
	cutscene.VehicleStart = vehicleStart
	cutscene.VehicleEnd = vehicleEnd
	cutscene.Seat = seat
	cutscene.Spawn = spawn
	director := behaviour.NewGameObject("Director")
	director.AddComponent(cutscene)

	e.Scene.RegisterGameObject(overlayObj)
	e.Scene.RegisterGameObject(avatar)
	e.Scene.RegisterGameObject(vehicle)
	e.Scene.RegisterGameObject(director)
	return &cutsceneRig{eng: e, cutscene: cutscene, overlay: overlay, avatar: avatar, vehicle: vehicle}
}

func TestCutsceneFadesThenDrives(t *testing.T) {
	r := newCutsceneRig(1)
	if !r.cutscene.Playing() {
		t.Fatal("Expected the cutscene to start with the scene")
	}
	if r.overlay.Opacity != 1 {
		t.Fatalf("Expected opaque overlay at start, got %f", r.overlay.Opacity)
	}

	advance(r.eng, 500*time.Millisecond)
	if r.overlay.Opacity <= 0 || r.overlay.Opacity >= 1 {
		t.Errorf("Expected partial fade at 0.5s, got %f", r.overlay.Opacity)
	}
	if r.avatar.Transform.Parent != nil {
		t.Error("Avatar should not board before the fade ends")
	}

	advance(r.eng, 500*time.Millisecond)
	if r.overlay.Opacity != 0 {
		t.Fatalf("Expected opacity 0 after 1s, got %f", r.overlay.Opacity)
	}
	if r.avatar.Transform.Parent != r.vehicle.Transform {
		t.Fatal("Expected avatar parented to the vehicle after the fade")
	}
	want := vehicleStart.Position.Add(seat.Position)
	if r.avatar.Transform.WorldPosition().Sub(want).Len() > 1e-5 {
		t.Errorf("Expected avatar seated at %v, got %v", want, r.avatar.Transform.WorldPosition())
	}

	advance(r.eng, 4*time.Second)
	if r.vehicle.Transform.Position == vehicleStart.Position || r.vehicle.Transform.Position == vehicleEnd.Position {
		t.Errorf("Expected vehicle mid-drive, got %v", r.vehicle.Transform.Position)
	}

	advance(r.eng, 4*time.Second)
	if r.avatar.Transform.Parent != nil {
		t.Error("Expected avatar detached after the drive")
	}
	if r.avatar.Transform.Pose() != spawn {
		t.Errorf("Expected avatar at spawn %v, got %v", spawn, r.avatar.Transform.Pose())
	}
	if len(r.vehicle.Transform.Children) != 0 {
		t.Errorf("Expected vehicle without children, got %d", len(r.vehicle.Transform.Children))
	}
	if r.vehicle.Transform.Pose() != vehicleEnd {
		t.Errorf("Expected vehicle at end pose, got %v", r.vehicle.Transform.Pose())
	}
	if !r.cutscene.Finished() || r.cutscene.Playing() {
		t.Error("Expected cutscene finished")
	}
}

func TestCutsceneFadeIgnoresTimeScale(t *testing.T) {
	r := newCutsceneRig(0.5)

	advance(r.eng, time.Second)

	if r.overlay.Opacity != 0 {
		t.Errorf("Expected fade to use real time, got opacity %f", r.overlay.Opacity)
	}
}

func TestCutsceneWithoutReferencesIsNoop(t *testing.T) {
	e := engine.NewEngine()
	overlay := behaviour.NewOverlayComponent(1)
	avatar := behaviour.NewGameObject("Avatar")
	cutscene := NewDrivingCutscene(overlay, avatar.Transform, nil)

	director := behaviour.NewGameObject("Director")
	director.AddComponent(cutscene)
	e.Scene.RegisterGameObject(director)
	advance(e, 10*time.Second)

	if cutscene.Playing() || cutscene.Finished() {
		t.Error("Expected the cutscene to skip silently")
	}
	if e.Scene.Coroutines().Len() != 0 {
		t.Errorf("Expected no tasks, got %d", e.Scene.Coroutines().Len())
	}
	if overlay.Opacity != 1 {
		t.Errorf("Expected overlay untouched, got %f", overlay.Opacity)
	}
	if avatar.Transform.Parent != nil {
		t.Error("Avatar should not be reparented")
	}
}
