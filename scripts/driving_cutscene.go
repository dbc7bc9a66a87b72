package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"
	"time"

	"go.uber.org/zap"
)

// DrivingCutscene opens the session: the screen fades in, the avatar rides
// the vehicle to the station, then is dropped at the spawn pose.
type DrivingCutscene struct {
	behaviour.BaseComponent

	Overlay *behaviour.OverlayComponent
	Avatar  *behaviour.Transform
	Vehicle *behaviour.Transform

	FadeRate     float32
	Duration     time.Duration
	VehicleStart behaviour.Pose
	VehicleEnd   behaviour.Pose
	Seat         behaviour.Pose
	Spawn        behaviour.Pose

	// PlayOnStart plays the cutscene when the owning object is registered.
	PlayOnStart bool

	handle   behaviour.Handle
	finished bool
}

func NewDrivingCutscene(overlay *behaviour.OverlayComponent, avatar, vehicle *behaviour.Transform) *DrivingCutscene {
	return &DrivingCutscene{
		Overlay:     overlay,
		Avatar:      avatar,
		Vehicle:     vehicle,
		FadeRate:    1,
		PlayOnStart: true,
	}
}

func (d *DrivingCutscene) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (d *DrivingCutscene) GetTypeName() string {
	return "DrivingCutscene"
}

func (d *DrivingCutscene) Start() {
	if d.PlayOnStart {
		d.Play()
	}
}

// Play runs the fade and then the drive. Without an overlay, avatar or
// vehicle it does nothing.
func (d *DrivingCutscene) Play() behaviour.Handle {
	if d.Overlay == nil || d.Avatar == nil || d.Vehicle == nil {
		logger.Log.Debug("Driving cutscene skipped: missing references",
			zap.Bool("overlay", d.Overlay != nil),
			zap.Bool("avatar", d.Avatar != nil),
			zap.Bool("vehicle", d.Vehicle != nil))
		return 0
	}
	if d.CoroutineRunning(d.handle) {
		return d.handle
	}

	d.finished = false
	d.handle = d.StartCoroutine(behaviour.Sequence(
		behaviour.NewFadeTask(d.Overlay, d.FadeRate),
		behaviour.Do(d.board),
		behaviour.NewPoseTween(d.Vehicle, d.VehicleStart, d.VehicleEnd, d.Duration),
		behaviour.Do(d.dropOff),
	))
	return d.handle
}

// Playing reports whether the cutscene is in progress.
func (d *DrivingCutscene) Playing() bool {
	return d.CoroutineRunning(d.handle)
}

// Finished reports whether the avatar has been dropped at the spawn pose.
func (d *DrivingCutscene) Finished() bool {
	return d.finished
}

func (d *DrivingCutscene) board() {
	d.Vehicle.SetPose(d.VehicleStart)
	d.Avatar.SetParent(d.Vehicle)
	d.Avatar.SetPose(d.Seat)
	logger.Log.Debug("Avatar seated in vehicle")
}

func (d *DrivingCutscene) dropOff() {
	d.Avatar.SetParent(nil)
	d.Avatar.SetPose(d.Spawn)
	d.finished = true
	logger.Log.Info("Driving cutscene finished")
}
