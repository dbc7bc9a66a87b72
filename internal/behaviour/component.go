package behaviour

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Time is the clock snapshot handed to components and tasks each frame.
// Now and UnscaledNow are measured from the first tick.
type Time struct {
	Frame         uint64
	Delta         time.Duration
	UnscaledDelta time.Duration
	Now           time.Duration
	UnscaledNow   time.Duration
}

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()             // Called when component is first attached
	Start()             // Called when the owning object is registered
	Update(t Time)      // Called every frame
	FixedUpdate(t Time) // Called at fixed frame intervals
	OnDestroy()         // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// Scripts embed this and override only what they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()           {}
func (c *BaseComponent) Start()           {}
func (c *BaseComponent) Update(Time)      {}
func (c *BaseComponent) FixedUpdate(Time) {}
func (c *BaseComponent) OnDestroy()       {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// StartCoroutine runs task on the coroutine runner of the manager the owning
// object is registered with. It returns the zero Handle if the object is not
// registered yet.
func (c *BaseComponent) StartCoroutine(task Task) Handle {
	if c.gameObject == nil || c.gameObject.manager == nil {
		return 0
	}
	return c.gameObject.manager.coroutines.Start(c.gameObject, task)
}

// StopCoroutine cancels a running task. Stopping a finished or zero handle is a no-op.
func (c *BaseComponent) StopCoroutine(h Handle) {
	if c.gameObject == nil || c.gameObject.manager == nil {
		return
	}
	c.gameObject.manager.coroutines.Stop(h)
}

// CoroutineRunning reports whether h is still scheduled.
func (c *BaseComponent) CoroutineRunning(h Handle) bool {
	if c.gameObject == nil || c.gameObject.manager == nil {
		return false
	}
	return c.gameObject.manager.coroutines.Running(h)
}

// GameObject represents an object in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	manager    *ComponentManager
}

// Pose is a position plus orientation.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityPose is the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: mgl32.QuatIdent()}
}

// Transform holds a local pose relative to Parent.
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Parent   *Transform
	Children []*Transform
}

// Transform methods
func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

// SetPose sets the local position and rotation.
func (t *Transform) SetPose(p Pose) {
	t.Position = p.Position
	t.Rotation = p.Rotation
}

// Pose returns the local position and rotation.
func (t *Transform) Pose() Pose {
	return Pose{Position: t.Position, Rotation: t.Rotation}
}

// WorldPosition resolves the position through the parent chain.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	return t.Parent.WorldPosition().Add(t.Parent.WorldRotation().Rotate(t.Position))
}

// WorldRotation resolves the rotation through the parent chain.
func (t *Transform) WorldRotation() mgl32.Quat {
	if t.Parent == nil {
		return t.Rotation
	}
	return t.Parent.WorldRotation().Mul(t.Rotation)
}

// WorldPose resolves both position and rotation.
func (t *Transform) WorldPose() Pose {
	return Pose{Position: t.WorldPosition(), Rotation: t.WorldRotation()}
}

// SetParent moves t under parent, keeping its local values.
// A nil parent detaches t; its local values then read as world values.
func (t *Transform) SetParent(parent *Transform) {
	if t.Parent == parent {
		return
	}
	if t.Parent != nil {
		siblings := t.Parent.Children
		for i, child := range siblings {
			if child == t {
				t.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// SetActive toggles whether the object receives updates and can be interacted with.
func (obj *GameObject) SetActive(active bool) {
	obj.Active = active
}

// GetComponent returns the first component of type T attached to obj.
func GetComponent[T Component](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if typed, ok := comp.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

func (obj *GameObject) internalUpdate(t Time) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(t)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(t Time) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(t)
		}
	}
}

func (obj *GameObject) internalStart() {
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
