package xr

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RayInteractor is the controller's pointer. It selects the nearest
// interactable hit by a ray and holds it until Release.
type RayInteractor struct {
	behaviour.BaseComponent
	MaxDistance float32

	scene *behaviour.ComponentManager
	held  *Interactable
}

func NewRayInteractor(scene *behaviour.ComponentManager, maxDistance float32) *RayInteractor {
	return &RayInteractor{scene: scene, MaxDistance: maxDistance}
}

func (r *RayInteractor) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeInteraction
}

func (r *RayInteractor) GetTypeName() string {
	return "RayInteractor"
}

// Cast returns the nearest active interactable the ray hits within MaxDistance.
func (r *RayInteractor) Cast(ray Ray) (*Interactable, float32, bool) {
	var (
		best     *Interactable
		bestDist float32
	)
	for _, obj := range r.scene.GetAllGameObjects() {
		if !obj.Active {
			continue
		}
		target, ok := behaviour.GetComponent[*Interactable](obj)
		if !ok || !target.GetEnabled() {
			continue
		}
		hit, dist, _ := RayIntersectSphere(ray, obj.Transform.WorldPosition(), target.Radius)
		if !hit || (r.MaxDistance > 0 && dist > r.MaxDistance) {
			continue
		}
		if best == nil || dist < bestDist {
			best, bestDist = target, dist
		}
	}
	return best, bestDist, best != nil
}

// Select casts the ray and selects the hit (onGrab). Grabbing a plugged
// object pulls it out of its socket first. Returns false while something
// is already held or nothing was hit.
func (r *RayInteractor) Select(ray Ray) bool {
	if r.held != nil {
		return false
	}
	target, _, ok := r.Cast(ray)
	if !ok {
		return false
	}
	obj := target.GetGameObject()

	if target.Grabbable {
		if socket := r.socketHolding(obj); socket != nil {
			socket.Detach()
		}
	}

	r.held = target
	logger.Log.Debug("Select entered", zap.String("object", obj.Name))
	target.selectEntered(SelectEvent{Interactor: r, Target: obj})
	return true
}

// Release ends the selection (onRelease). A grabbable object released within
// reach of a free, matching socket is plugged into the nearest one.
func (r *RayInteractor) Release() {
	target := r.held
	if target == nil {
		return
	}
	r.held = nil
	obj := target.GetGameObject()

	logger.Log.Debug("Select exited", zap.String("object", obj.Name))
	target.selectExited(SelectEvent{Interactor: r, Target: obj})

	if !target.Grabbable {
		return
	}
	if socket := r.nearestSocketFor(obj); socket != nil {
		socket.Attach(obj)
	}
}

// Held returns the selected object, or nil.
func (r *RayInteractor) Held() *behaviour.GameObject {
	if r.held == nil {
		return nil
	}
	return r.held.GetGameObject()
}

// MoveHeld carries a grabbable held object to position.
func (r *RayInteractor) MoveHeld(position mgl32.Vec3) {
	if r.held == nil || !r.held.Grabbable {
		return
	}
	r.held.GetGameObject().Transform.SetPosition(position)
}

func (r *RayInteractor) sockets() []*Socket {
	var out []*Socket
	for _, obj := range r.scene.GetAllGameObjects() {
		if socket, ok := behaviour.GetComponent[*Socket](obj); ok {
			out = append(out, socket)
		}
	}
	return out
}

func (r *RayInteractor) socketHolding(obj *behaviour.GameObject) *Socket {
	for _, socket := range r.sockets() {
		if socket.Attached() == obj {
			return socket
		}
	}
	return nil
}

func (r *RayInteractor) nearestSocketFor(obj *behaviour.GameObject) *Socket {
	var (
		best     *Socket
		bestDist float32
	)
	for _, socket := range r.sockets() {
		if !socket.CanAccept(obj) {
			continue
		}
		dist := obj.Transform.WorldPosition().Sub(socket.AttachPose().Position).Len()
		if best == nil || dist < bestDist {
			best, bestDist = socket, dist
		}
	}
	return best
}
