package scene

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/config"
	"ChargeSim/internal/engine"
	"ChargeSim/internal/logger"
	"ChargeSim/internal/xr"
	"ChargeSim/scripts"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Tags matched by the sockets.
const (
	TagHeadPlug = "HeadPlug"
	TagCarPlug  = "CarPlug"
	TagPlayer   = "Player"
)

// EyeHeight is the height of the pointer origin above the avatar.
const EyeHeight = 1.6

var ErrMissingEngine = errors.New("scene: engine and config are required")

// Scene is the assembled charging station with direct references to every
// object and behaviour the host drives.
type Scene struct {
	Engine     *engine.Engine
	Config     *config.Scene
	Interactor *xr.RayInteractor

	Cable    *scripts.CableConnection
	Selector *scripts.ScenarioSelector
	Theft    *scripts.CarTheft
	Payment  *scripts.PaymentButton
	Cutscene *scripts.DrivingCutscene

	ChargerSocket *xr.Socket
	CarSocket     *xr.Socket

	Avatar        *behaviour.GameObject
	Vehicle       *behaviour.GameObject
	Overlay       *behaviour.GameObject
	Car           *behaviour.GameObject
	HeadPlug      *behaviour.GameObject
	CarPlug       *behaviour.GameObject
	PaymentButton *behaviour.GameObject
	HackerLaptop  *behaviour.GameObject
	StatusText    *behaviour.GameObject

	// Targets are the objects the pointer can be aimed at, in key order.
	Targets []*behaviour.GameObject
}

// Build creates the scene objects, wires the behaviours to each other and
// registers everything with the engine. player receives every sound cue and
// rng drives the scenario draw.
func Build(eng *engine.Engine, cfg *config.Scene, player behaviour.SoundPlayer, rng scripts.RandomSource) (*Scene, error) {
	if eng == nil || cfg == nil {
		return nil, ErrMissingEngine
	}
	if rng == nil {
		return nil, errors.New("scene: random source is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if cfg.Timing.FixedEvery > 0 {
		eng.FixedEvery = cfg.Timing.FixedEvery
	}

	s := &Scene{Engine: eng, Config: cfg}
	poses := cfg.Poses
	mats := cfg.Materials
	radius := cfg.Interaction.InteractableRadius

	// Player
	s.Avatar = newObject("Avatar", TagPlayer, poses.AvatarSpawn.Pose())
	s.Interactor = xr.NewRayInteractor(eng.Scene, cfg.Interaction.RayMaxDistance)
	s.Avatar.AddComponent(s.Interactor)

	s.Vehicle = newObject("Vehicle", "", poses.VehicleStart.Pose())

	overlay := behaviour.NewOverlayComponent(1)
	s.Overlay = newObject("FadeOverlay", "", behaviour.IdentityPose())
	s.Overlay.AddComponent(overlay)

	// Station and car
	s.Car = newObject("Car", "Car", poses.CarStart.Pose())
	carSocketObj := newObject("CarSocket", "", poses.CarSocket.Pose())
	carSocketObj.Transform.SetParent(s.Car.Transform)
	s.CarSocket = xr.NewSocket(cfg.Interaction.SocketRadius, TagCarPlug)
	carSocketObj.AddComponent(s.CarSocket)

	chargerObj := newObject("ChargerSocket", "", poses.ChargerSocket.Pose())
	s.ChargerSocket = xr.NewSocket(cfg.Interaction.SocketRadius, TagHeadPlug)
	chargerObj.AddComponent(s.ChargerSocket)

	audio := behaviour.NewAudioSourceComponent(player)

	headRenderer := behaviour.NewRendererComponent(mats.Disconnected)
	s.HeadPlug = s.grabbable("CableHead", TagHeadPlug, poses.HeadPlugRest.Pose(), headRenderer, audio)
	carRenderer := behaviour.NewRendererComponent(mats.Disconnected)
	s.CarPlug = s.grabbable("CableCarEnd", TagCarPlug, poses.CarPlugRest.Pose(), carRenderer, audio)

	status := behaviour.NewTextComponent()
	s.StatusText = newObject("StatusText", "", behaviour.IdentityPose())
	s.StatusText.AddComponent(status)

	// Payment surface
	buttonRenderer := behaviour.NewRendererComponent(mats.PaymentIdle)
	buttonTarget := xr.NewInteractable(radius, false)
	s.Payment = scripts.NewPaymentButton(buttonRenderer, status, audio)
	s.Payment.Hold = cfg.Timing.PaymentHold
	s.Payment.SuccessMaterial = mats.PaymentSuccess
	s.Payment.FailureMaterial = mats.PaymentFailure
	s.Payment.FailureClip = cfg.Sounds.PaymentFailure
	s.Payment.FailureText = cfg.Texts.PaymentFailed
	s.Payment.Bind(buttonTarget)
	s.PaymentButton = newObject("PaymentButton", "", poses.PaymentButton.Pose())
	s.PaymentButton.AddComponent(buttonRenderer)
	s.PaymentButton.AddComponent(buttonTarget)
	s.PaymentButton.AddComponent(s.Payment)

	// Hacker surface
	laptopTarget := xr.NewInteractable(radius, false)
	laptopFeedback := scripts.NewGrabFeedback(nil, audio, mats.Highlight, cfg.Sounds.Grab)
	laptopFeedback.Bind(laptopTarget)
	s.HackerLaptop = newObject("HackerLaptop", "", poses.HackerLaptop.Pose())
	s.HackerLaptop.AddComponent(laptopTarget)
	s.HackerLaptop.AddComponent(laptopFeedback)

	// Scenario logic
	s.Cable = scripts.NewCableConnection()
	s.Cable.HeadIndicator = headRenderer
	s.Cable.CarIndicator = carRenderer
	s.Cable.Audio = audio
	s.Cable.ConnectedMaterial = mats.Connected
	s.Cable.DisconnectedMaterial = mats.Disconnected
	s.Cable.ConnectClip = cfg.Sounds.Connect
	s.Cable.DisconnectClip = cfg.Sounds.Disconnect
	s.Cable.BindSocket(s.ChargerSocket, scripts.ConnectorHead)
	s.Cable.BindSocket(s.CarSocket, scripts.ConnectorCar)

	s.Selector = scripts.NewScenarioSelector(rng, cfg.Scenario.HackerProbability)
	s.Selector.PaymentSurface = s.PaymentButton
	s.Selector.HackerSurface = s.HackerLaptop

	s.Theft = scripts.NewCarTheft(s.Cable, s.Selector, s.Car.Transform)
	s.Theft.Delay = cfg.Timing.TheftDelay
	s.Theft.Travel = cfg.Timing.TheftTravel
	s.Theft.StartPos = poses.CarStart.Pose()
	s.Theft.EndPos = poses.CarEnd.Pose()

	s.Cutscene = scripts.NewDrivingCutscene(overlay, s.Avatar.Transform, s.Vehicle.Transform)
	s.Cutscene.FadeRate = cfg.Timing.FadeRate
	s.Cutscene.Duration = cfg.Timing.DriveDuration
	s.Cutscene.VehicleStart = poses.VehicleStart.Pose()
	s.Cutscene.VehicleEnd = poses.VehicleEnd.Pose()
	s.Cutscene.Seat = poses.AvatarSeat.Pose()
	s.Cutscene.Spawn = poses.AvatarSpawn.Pose()

	manager := newObject("GameManager", "", behaviour.IdentityPose())
	manager.AddComponent(audio)
	manager.AddComponent(s.Cable)
	manager.AddComponent(s.Selector)
	manager.AddComponent(s.Theft)
	manager.AddComponent(s.Cutscene)

	for _, obj := range []*behaviour.GameObject{
		s.Avatar, s.Vehicle, s.Overlay, s.Car, carSocketObj, chargerObj,
		s.HeadPlug, s.CarPlug, s.StatusText, s.PaymentButton, s.HackerLaptop, manager,
	} {
		eng.Scene.RegisterGameObject(obj)
	}
	s.Targets = []*behaviour.GameObject{s.HeadPlug, s.CarPlug, s.PaymentButton, s.HackerLaptop}

	logger.Log.Info("Scene built",
		zap.Int("objects", len(eng.Scene.GetAllGameObjects())),
		zap.Stringer("scenario", s.Selector.Scenario()))
	return s, nil
}

func newObject(name, tag string, pose behaviour.Pose) *behaviour.GameObject {
	obj := behaviour.NewGameObject(name)
	obj.Tag = tag
	obj.Transform.SetPose(pose)
	return obj
}

// grabbable builds a cable plug with its indicator and grab feedback.
func (s *Scene) grabbable(name, tag string, pose behaviour.Pose, renderer *behaviour.RendererComponent, audio *behaviour.AudioSourceComponent) *behaviour.GameObject {
	obj := newObject(name, tag, pose)
	target := xr.NewInteractable(s.Config.Interaction.InteractableRadius, true)
	feedback := scripts.NewGrabFeedback(renderer, audio, s.Config.Materials.Highlight, s.Config.Sounds.Grab)
	feedback.Bind(target)
	obj.AddComponent(renderer)
	obj.AddComponent(target)
	obj.AddComponent(feedback)
	return obj
}

// Eye is the pointer origin.
func (s *Scene) Eye() mgl32.Vec3 {
	return s.Avatar.Transform.WorldPosition().Add(mgl32.Vec3{0, EyeHeight, 0})
}

// Grab aims the pointer at Targets[index] and selects whatever the ray hits
// first. It reports whether something was selected.
func (s *Scene) Grab(index int) bool {
	if index < 0 || index >= len(s.Targets) {
		return false
	}
	target := s.Targets[index]
	if !target.Active {
		logger.Log.Debug("Grab ignored: target inactive", zap.String("target", target.Name))
		return false
	}
	return s.Interactor.Select(xr.RayTowards(s.Eye(), target.Transform.WorldPosition()))
}

// DropInto carries the held object to socket and releases it there.
func (s *Scene) DropInto(socket *xr.Socket) {
	if socket == nil || s.Interactor.Held() == nil {
		return
	}
	s.Interactor.MoveHeld(socket.AttachPose().Position)
	s.Interactor.Release()
}

// Release lets go of the held object where it is.
func (s *Scene) Release() {
	s.Interactor.Release()
}
