package behaviour

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// LerpPose interpolates position linearly and rotation by normalized lerp.
// fraction is clamped to [0,1].
func LerpPose(from, to Pose, fraction float32) Pose {
	fraction = mgl32.Clamp(fraction, 0, 1)
	return Pose{
		Position: from.Position.Add(to.Position.Sub(from.Position).Mul(fraction)),
		Rotation: mgl32.QuatNlerp(from.Rotation, to.Rotation, fraction),
	}
}

// PoseTween moves Target from From to To over Duration of scaled time.
// The first step writes From, the last writes To exactly.
type PoseTween struct {
	Target   *Transform
	From     Pose
	To       Pose
	Duration time.Duration

	started  bool
	start    time.Duration
	fraction float32
}

func NewPoseTween(target *Transform, from, to Pose, duration time.Duration) *PoseTween {
	return &PoseTween{Target: target, From: from, To: to, Duration: duration}
}

// Fraction is the progress of the last step, in [0,1].
func (p *PoseTween) Fraction() float32 {
	return p.fraction
}

func (p *PoseTween) Step(t Time) bool {
	if p.Target == nil {
		return true
	}
	if !p.started {
		p.started = true
		p.start = t.Now
	}

	if p.Duration <= 0 {
		p.fraction = 1
	} else {
		p.fraction = mgl32.Clamp(float32(t.Now-p.start)/float32(p.Duration), 0, 1)
	}

	if p.fraction >= 1 {
		p.Target.SetPose(p.To)
		return true
	}
	p.Target.SetPose(LerpPose(p.From, p.To, p.fraction))
	return false
}

// FadeTask lowers an overlay's opacity by Rate per second of real time,
// clamped at zero. It finishes once the overlay is fully transparent.
type FadeTask struct {
	Overlay *OverlayComponent
	Rate    float32

	started bool
	start   time.Duration
	from    float32
}

func NewFadeTask(overlay *OverlayComponent, rate float32) *FadeTask {
	return &FadeTask{Overlay: overlay, Rate: rate}
}

func (f *FadeTask) Step(t Time) bool {
	if f.Overlay == nil {
		return true
	}
	if !f.started {
		f.started = true
		f.start = t.UnscaledNow
		f.from = f.Overlay.Opacity
	}
	elapsed := float32((t.UnscaledNow - f.start).Seconds())
	f.Overlay.SetOpacity(f.from - f.Rate*elapsed)
	return f.Overlay.Opacity <= 0
}
