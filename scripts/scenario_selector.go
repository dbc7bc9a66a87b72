package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"

	"go.uber.org/zap"
)

// Scenario is the training path chosen for the session.
type Scenario int

const (
	ScenarioUnset Scenario = iota
	ScenarioPayment
	ScenarioHacker
)

func (s Scenario) String() string {
	switch s {
	case ScenarioPayment:
		return "payment"
	case ScenarioHacker:
		return "hacker"
	default:
		return "unset"
	}
}

// RandomSource is the slice of *rand.Rand the selector needs.
type RandomSource interface {
	Float64() float64
}

// ScenarioSelector draws the scenario once on Start and enables only the
// matching interactive surface. The choice never changes afterwards.
type ScenarioSelector struct {
	behaviour.BaseComponent

	Random            RandomSource
	HackerProbability float64
	PaymentSurface    *behaviour.GameObject
	HackerSurface     *behaviour.GameObject

	scenario Scenario
}

func NewScenarioSelector(random RandomSource, hackerProbability float64) *ScenarioSelector {
	return &ScenarioSelector{Random: random, HackerProbability: hackerProbability}
}

func (s *ScenarioSelector) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (s *ScenarioSelector) GetTypeName() string {
	return "ScenarioSelector"
}

func (s *ScenarioSelector) Start() {
	s.Select()
}

// Select draws the scenario if none was chosen yet and returns it.
func (s *ScenarioSelector) Select() Scenario {
	if s.scenario != ScenarioUnset {
		return s.scenario
	}

	// Drawing below 1-p picks payment, so a draw lands on hacker with probability p.
	sample := s.Random.Float64()
	if sample >= 1-s.HackerProbability {
		s.scenario = ScenarioHacker
	} else {
		s.scenario = ScenarioPayment
	}

	if s.PaymentSurface != nil {
		s.PaymentSurface.SetActive(s.scenario == ScenarioPayment)
	}
	if s.HackerSurface != nil {
		s.HackerSurface.SetActive(s.scenario == ScenarioHacker)
	}

	logger.Log.Info("Scenario selected",
		zap.Stringer("scenario", s.scenario),
		zap.Float64("sample", sample))
	return s.scenario
}

// Scenario returns the chosen scenario, or ScenarioUnset before Start.
func (s *ScenarioSelector) Scenario() Scenario {
	return s.scenario
}

// IsHacker reports whether the hacker path is active.
func (s *ScenarioSelector) IsHacker() bool {
	return s.scenario == ScenarioHacker
}
