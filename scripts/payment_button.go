package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"
	"ChargeSim/internal/xr"
	"time"

	"go.uber.org/zap"
)

// PaymentButton simulates a declined card: pressing it shows success, and
// after Hold the button turns to failure with an error message and cue.
// Presses are not de-duplicated; each one runs its own feedback sequence.
type PaymentButton struct {
	behaviour.BaseComponent

	Renderer *behaviour.RendererComponent
	Status   *behaviour.TextComponent
	Audio    *behaviour.AudioSourceComponent

	Hold            time.Duration
	SuccessMaterial string
	FailureMaterial string
	FailureClip     string
	FailureText     string

	presses  int
	failures int
}

func NewPaymentButton(renderer *behaviour.RendererComponent, status *behaviour.TextComponent, audio *behaviour.AudioSourceComponent) *PaymentButton {
	return &PaymentButton{Renderer: renderer, Status: status, Audio: audio}
}

func (p *PaymentButton) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (p *PaymentButton) GetTypeName() string {
	return "PaymentButton"
}

// Bind makes a select on the interactable press the button.
func (p *PaymentButton) Bind(target *xr.Interactable) {
	if target == nil {
		return
	}
	target.AddSelectEnteredListener(func(xr.SelectEvent) { p.Press() })
}

// Press applies the success state now and schedules the failure.
func (p *PaymentButton) Press() behaviour.Handle {
	p.presses++
	logger.Log.Info("Payment started", zap.Int("press", p.presses))

	if p.Renderer != nil {
		p.Renderer.SetMaterial(p.SuccessMaterial)
	}
	return p.StartCoroutine(behaviour.Sequence(
		behaviour.Wait(p.Hold),
		behaviour.Do(p.fail),
	))
}

func (p *PaymentButton) fail() {
	p.failures++
	if p.Renderer != nil {
		p.Renderer.SetMaterial(p.FailureMaterial)
	}
	if p.Status != nil {
		p.Status.SetText(p.FailureText)
	}
	if p.Audio != nil {
		p.Audio.Play(p.FailureClip)
	}
	logger.Log.Info("Payment failed", zap.Int("failures", p.failures))
}

// Presses is the number of times the button was pressed.
func (p *PaymentButton) Presses() int {
	return p.presses
}

// Failures is the number of feedback sequences that have completed.
func (p *PaymentButton) Failures() int {
	return p.failures
}
