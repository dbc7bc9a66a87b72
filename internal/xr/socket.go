package xr

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"

	"go.uber.org/zap"
)

// SocketEvent is delivered to socket listeners.
type SocketEvent struct {
	Socket *Socket
	Object *behaviour.GameObject
}

// Socket holds at most one plug. A released object snaps in when it lies
// within Radius of the socket and carries AcceptTag (empty accepts any tag).
type Socket struct {
	behaviour.BaseComponent
	Radius       float32
	AcceptTag    string
	AttachOffset behaviour.Pose

	attached     *behaviour.GameObject
	onConnect    []func(SocketEvent)
	onDisconnect []func(SocketEvent)
}

func NewSocket(radius float32, acceptTag string) *Socket {
	return &Socket{
		Radius:       radius,
		AcceptTag:    acceptTag,
		AttachOffset: behaviour.IdentityPose(),
	}
}

func (s *Socket) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeInteraction
}

func (s *Socket) GetTypeName() string {
	return "Socket"
}

// AddConnectListener registers an onSocketConnect(object) handler.
func (s *Socket) AddConnectListener(fn func(SocketEvent)) {
	if fn != nil {
		s.onConnect = append(s.onConnect, fn)
	}
}

// AddDisconnectListener registers an onSocketDisconnect(object) handler.
func (s *Socket) AddDisconnectListener(fn func(SocketEvent)) {
	if fn != nil {
		s.onDisconnect = append(s.onDisconnect, fn)
	}
}

// Attached returns the plugged object, or nil.
func (s *Socket) Attached() *behaviour.GameObject {
	return s.attached
}

// AttachPose is the world pose a plugged object is snapped to.
func (s *Socket) AttachPose() behaviour.Pose {
	obj := s.GetGameObject()
	if obj == nil {
		return s.AttachOffset
	}
	world := obj.Transform.WorldPose()
	return behaviour.Pose{
		Position: world.Position.Add(world.Rotation.Rotate(s.AttachOffset.Position)),
		Rotation: world.Rotation.Mul(s.AttachOffset.Rotation),
	}
}

// CanAccept reports whether obj would snap in if released now.
func (s *Socket) CanAccept(obj *behaviour.GameObject) bool {
	owner := s.GetGameObject()
	if obj == nil || owner == nil || !owner.Active || s.attached != nil {
		return false
	}
	if s.AcceptTag != "" && obj.Tag != s.AcceptTag {
		return false
	}
	dist := obj.Transform.WorldPosition().Sub(s.AttachPose().Position).Len()
	return dist <= s.Radius
}

// Attach snaps obj into the socket and fires the connect listeners.
// It returns false when the socket is already occupied.
func (s *Socket) Attach(obj *behaviour.GameObject) bool {
	if obj == nil || s.attached != nil {
		return false
	}
	obj.Transform.SetParent(nil)
	obj.Transform.SetPose(s.AttachPose())
	s.attached = obj

	logger.Log.Debug("Socket connected",
		zap.String("socket", s.name()),
		zap.String("object", obj.Name))

	evt := SocketEvent{Socket: s, Object: obj}
	for _, fn := range s.onConnect {
		fn(evt)
	}
	return true
}

// Detach frees the socket and fires the disconnect listeners.
func (s *Socket) Detach() *behaviour.GameObject {
	obj := s.attached
	if obj == nil {
		return nil
	}
	s.attached = nil

	logger.Log.Debug("Socket disconnected",
		zap.String("socket", s.name()),
		zap.String("object", obj.Name))

	evt := SocketEvent{Socket: s, Object: obj}
	for _, fn := range s.onDisconnect {
		fn(evt)
	}
	return obj
}

func (s *Socket) name() string {
	if obj := s.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
