package xr

import (
	"ChargeSim/internal/behaviour"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestRayIntersectSphereHit(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}

	hit, dist, point := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 1)

	if !hit {
		t.Fatal("Expected ray to hit the sphere")
	}
	if mgl32.Abs(dist-9) > 1e-4 {
		t.Errorf("Expected distance 9, got %f", dist)
	}
	if !vecNear(point, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected hit point (0,0,1), got %v", point)
	}
}

func TestRayIntersectSphereBehindOrigin(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, 1}}

	if hit, _, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 1); hit {
		t.Error("Sphere behind the ray origin should not be hit")
	}
}

type rig struct {
	scene      *behaviour.ComponentManager
	interactor *RayInteractor
	origin     mgl32.Vec3
}

func newRig() *rig {
	scene := behaviour.NewComponentManager()
	controller := behaviour.NewGameObject("Controller")
	interactor := NewRayInteractor(scene, 50)
	controller.AddComponent(interactor)
	scene.RegisterGameObject(controller)
	return &rig{scene: scene, interactor: interactor, origin: mgl32.Vec3{0, 1.5, 5}}
}

func (r *rig) add(name, tag string, pos mgl32.Vec3, comps ...behaviour.Component) *behaviour.GameObject {
	obj := behaviour.NewGameObject(name)
	obj.Tag = tag
	obj.Transform.SetPosition(pos)
	for _, c := range comps {
		obj.AddComponent(c)
	}
	r.scene.RegisterGameObject(obj)
	return obj
}

func TestCastPicksNearestActive(t *testing.T) {
	r := newRig()
	near := NewInteractable(0.5, false)
	far := NewInteractable(0.5, false)
	r.add("Far", "", mgl32.Vec3{0, 1.5, -5}, far)
	nearObj := r.add("Near", "", mgl32.Vec3{0, 1.5, 0}, near)

	got, _, ok := r.interactor.Cast(Ray{Origin: r.origin, Direction: mgl32.Vec3{0, 0, -1}})
	if !ok || got != near {
		t.Fatalf("Expected nearest interactable, got %v", got)
	}

	nearObj.SetActive(false)
	got, _, ok = r.interactor.Cast(Ray{Origin: r.origin, Direction: mgl32.Vec3{0, 0, -1}})
	if !ok || got != far {
		t.Errorf("Expected inactive object to be skipped, got %v", got)
	}
}

func TestSelectAndReleaseFireListeners(t *testing.T) {
	r := newRig()
	button := NewInteractable(0.3, false)
	obj := r.add("Button", "", mgl32.Vec3{1, 1, 0}, button)

	var grabbed, released int
	button.AddSelectEnteredListener(func(e SelectEvent) {
		if e.Target != obj {
			t.Errorf("Expected target %s, got %v", obj.Name, e.Target)
		}
		grabbed++
	})
	button.AddSelectExitedListener(func(SelectEvent) { released++ })

	if !r.interactor.Select(RayTowards(r.origin, obj.Transform.Position)) {
		t.Fatal("Select should hit the button")
	}
	if !button.IsSelected() {
		t.Error("Button should be selected")
	}
	if r.interactor.Select(RayTowards(r.origin, obj.Transform.Position)) {
		t.Error("Second select while holding should be refused")
	}

	r.interactor.Release()

	if grabbed != 1 || released != 1 {
		t.Errorf("Expected 1 grab and 1 release, got %d and %d", grabbed, released)
	}
	if r.interactor.Held() != nil {
		t.Error("Nothing should be held after release")
	}
}

func TestReleaseNearSocketPlugsIn(t *testing.T) {
	r := newRig()
	socket := NewSocket(0.25, "CablePlug")
	socketObj := r.add("CarSocket", "", mgl32.Vec3{2, 1, -1}, socket)
	plug := r.add("CablePlug", "CablePlug", mgl32.Vec3{0, 1, 0}, NewInteractable(0.2, true))

	var connected, disconnected []string
	socket.AddConnectListener(func(e SocketEvent) { connected = append(connected, e.Object.Name) })
	socket.AddDisconnectListener(func(e SocketEvent) { disconnected = append(disconnected, e.Object.Name) })

	if !r.interactor.Select(RayTowards(r.origin, plug.Transform.Position)) {
		t.Fatal("Select should grab the plug")
	}
	r.interactor.MoveHeld(socketObj.Transform.Position.Add(mgl32.Vec3{0.1, 0, 0}))
	r.interactor.Release()

	if socket.Attached() != plug {
		t.Fatal("Plug should be attached after release near the socket")
	}
	if !vecNear(plug.Transform.Position, socketObj.Transform.Position) {
		t.Errorf("Plug should snap to %v, got %v", socketObj.Transform.Position, plug.Transform.Position)
	}
	if len(connected) != 1 || connected[0] != "CablePlug" {
		t.Errorf("Expected one connect for CablePlug, got %v", connected)
	}

	if !r.interactor.Select(RayTowards(r.origin, plug.Transform.Position)) {
		t.Fatal("Select should grab the plugged plug")
	}
	if socket.Attached() != nil {
		t.Error("Grabbing a plugged object should detach it")
	}
	if len(disconnected) != 1 {
		t.Errorf("Expected one disconnect, got %v", disconnected)
	}
}

func TestReleaseFarFromSocketStaysLoose(t *testing.T) {
	r := newRig()
	socket := NewSocket(0.25, "CablePlug")
	r.add("CarSocket", "", mgl32.Vec3{2, 1, -1}, socket)
	plug := r.add("CablePlug", "CablePlug", mgl32.Vec3{0, 1, 0}, NewInteractable(0.2, true))

	r.interactor.Select(RayTowards(r.origin, plug.Transform.Position))
	r.interactor.Release()

	if socket.Attached() != nil {
		t.Error("Plug released out of reach should not attach")
	}
}

func TestSocketRejectsWrongTag(t *testing.T) {
	r := newRig()
	socket := NewSocket(1, "CablePlug")
	r.add("CarSocket", "", mgl32.Vec3{0, 0, 0}, socket)
	other := r.add("Cup", "Prop", mgl32.Vec3{0, 0, 0})

	if socket.CanAccept(other) {
		t.Error("Socket should reject objects with another tag")
	}
}
