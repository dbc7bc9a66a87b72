package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"
	"time"

	"go.uber.org/zap"
)

// TheftState is the phase of the car theft sequence.
type TheftState int

const (
	TheftIdle TheftState = iota
	TheftCountingDown
	TheftMoving
)

func (s TheftState) String() string {
	switch s {
	case TheftIdle:
		return "idle"
	case TheftCountingDown:
		return "counting down"
	case TheftMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// CarTheft drives the car away when, in the hacker scenario, the car cable is
// pulled after both ends had been plugged at least once and stays unplugged
// for Delay.
type CarTheft struct {
	behaviour.BaseComponent

	Cable    *CableConnection
	Selector *ScenarioSelector
	Car      *behaviour.Transform

	Delay    time.Duration
	Travel   time.Duration
	StartPos behaviour.Pose
	EndPos   behaviour.Pose

	everConnected bool
	state         TheftState
	handle        behaviour.Handle
	tween         *behaviour.PoseTween
}

func NewCarTheft(cable *CableConnection, selector *ScenarioSelector, car *behaviour.Transform) *CarTheft {
	return &CarTheft{Cable: cable, Selector: selector, Car: car}
}

func (c *CarTheft) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (c *CarTheft) GetTypeName() string {
	return "CarTheft"
}

// Awake subscribes to the cable tracker. The both-connected registration is
// the tracker's single one-shot slot.
func (c *CarTheft) Awake() {
	if c.Cable == nil {
		return
	}
	c.Cable.SetOnBothConnected(func() {
		c.everConnected = true
		logger.Log.Debug("Theft precondition met: both cables were connected")
	})
	c.Cable.OnCarPluggedChanged(c.onCarPlugChanged)
}

func (c *CarTheft) State() TheftState {
	return c.state
}

// EverConnected reports whether both cable ends have been plugged at some point.
func (c *CarTheft) EverConnected() bool {
	return c.everConnected
}

func (c *CarTheft) onCarPlugChanged(connected bool) {
	if connected || !c.everConnected || c.Selector == nil || !c.Selector.IsHacker() {
		return
	}
	if c.state == TheftMoving {
		return
	}

	if c.state == TheftCountingDown {
		c.StopCoroutine(c.handle)
		logger.Log.Info("Theft countdown restarted")
	} else {
		logger.Log.Info("Theft countdown armed", zap.Duration("delay", c.Delay))
	}

	c.state = TheftCountingDown
	c.tween = nil
	c.handle = c.StartCoroutine(c.countdown())
	if c.handle == 0 {
		c.state = TheftIdle
	}
}

// countdown waits Delay, re-checks the car plug, then tweens the car.
func (c *CarTheft) countdown() behaviour.Task {
	wait := behaviour.Wait(c.Delay)
	return behaviour.TaskFunc(func(t behaviour.Time) bool {
		switch c.state {
		case TheftCountingDown:
			if !wait.Step(t) {
				return false
			}
			if c.Cable.IsConnected(ConnectorCar) || c.Car == nil {
				logger.Log.Info("Theft cancelled: car cable is plugged")
				c.state = TheftIdle
				return true
			}
			logger.Log.Info("Car theft started", zap.Duration("travel", c.Travel))
			c.state = TheftMoving
			c.tween = behaviour.NewPoseTween(c.Car, c.StartPos, c.EndPos, c.Travel)
			fallthrough
		case TheftMoving:
			if !c.tween.Step(t) {
				return false
			}
			logger.Log.Info("Car theft finished")
			c.state = TheftIdle
			c.tween = nil
			return true
		default:
			return true
		}
	})
}

// Progress is the fraction of the car movement done, 0 when not moving.
func (c *CarTheft) Progress() float32 {
	if c.tween == nil {
		return 0
	}
	return c.tween.Fraction()
}
