package config

import (
	"ChargeSim/internal/behaviour"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed scene.yaml
var defaultScene []byte

// PoseSpec is a position plus Euler angles in degrees (pitch, yaw, roll).
type PoseSpec struct {
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
}

// Pose converts p into a quaternion pose.
func (p PoseSpec) Pose() behaviour.Pose {
	return behaviour.Pose{
		Position: mgl32.Vec3(p.Position),
		Rotation: mgl32.AnglesToQuat(
			mgl32.DegToRad(p.Rotation[0]),
			mgl32.DegToRad(p.Rotation[1]),
			mgl32.DegToRad(p.Rotation[2]),
			mgl32.XYZ,
		).Normalize(),
	}
}

type TimingSpec struct {
	TheftDelay    time.Duration `yaml:"theft_delay"`
	TheftTravel   time.Duration `yaml:"theft_travel"`
	PaymentHold   time.Duration `yaml:"payment_hold"`
	DriveDuration time.Duration `yaml:"drive_duration"`
	FadeRate      float32       `yaml:"fade_rate"`
	FixedEvery    int           `yaml:"fixed_every"`
}

type ScenarioSpec struct {
	HackerProbability float64 `yaml:"hacker_probability"`
	Seed              int64   `yaml:"seed"`
}

type InteractionSpec struct {
	InteractableRadius float32 `yaml:"interactable_radius"`
	SocketRadius       float32 `yaml:"socket_radius"`
	RayMaxDistance     float32 `yaml:"ray_max_distance"`
}

type PosesSpec struct {
	CarStart      PoseSpec `yaml:"car_start"`
	CarEnd        PoseSpec `yaml:"car_end"`
	VehicleStart  PoseSpec `yaml:"vehicle_start"`
	VehicleEnd    PoseSpec `yaml:"vehicle_end"`
	AvatarSeat    PoseSpec `yaml:"avatar_seat"`
	AvatarSpawn   PoseSpec `yaml:"avatar_spawn"`
	ChargerSocket PoseSpec `yaml:"charger_socket"`
	CarSocket     PoseSpec `yaml:"car_socket"`
	HeadPlugRest  PoseSpec `yaml:"head_plug_rest"`
	CarPlugRest   PoseSpec `yaml:"car_plug_rest"`
	PaymentButton PoseSpec `yaml:"payment_button"`
	HackerLaptop  PoseSpec `yaml:"hacker_laptop"`
}

type MaterialsSpec struct {
	Connected      string `yaml:"connected"`
	Disconnected   string `yaml:"disconnected"`
	Highlight      string `yaml:"highlight"`
	PaymentIdle    string `yaml:"payment_idle"`
	PaymentSuccess string `yaml:"payment_success"`
	PaymentFailure string `yaml:"payment_failure"`
}

type SoundsSpec struct {
	Connect        string `yaml:"connect"`
	Disconnect     string `yaml:"disconnect"`
	Grab           string `yaml:"grab"`
	PaymentFailure string `yaml:"payment_failure"`
}

type TextsSpec struct {
	PaymentFailed string `yaml:"payment_failed"`
}

// Scene holds the author-time constants of the training scene.
type Scene struct {
	Timing      TimingSpec      `yaml:"timing"`
	Scenario    ScenarioSpec    `yaml:"scenario"`
	Interaction InteractionSpec `yaml:"interaction"`
	Poses       PosesSpec       `yaml:"poses"`
	Materials   MaterialsSpec   `yaml:"materials"`
	Sounds      SoundsSpec      `yaml:"sounds"`
	Texts       TextsSpec       `yaml:"texts"`
}

// Default returns the embedded scene description.
func Default() (*Scene, error) {
	return Parse(defaultScene, "scene.yaml")
}

// Load reads path on top of the embedded defaults, so a file only needs the
// keys it changes. An empty path returns the defaults.
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	scene, err := Default()
	if err != nil {
		return nil, err
	}
	if err := decode(data, scene); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return scene, nil
}

// Parse decodes and validates a full scene description.
func Parse(data []byte, name string) (*Scene, error) {
	var scene Scene
	if err := decode(data, &scene); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return &scene, nil
}

// decode rejects keys that match no field, so a misspelt override fails
// instead of silently keeping the default. An empty document is not an error.
func decode(data []byte, out *Scene) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var (
	ErrDuration    = errors.New("durations must be positive")
	ErrProbability = errors.New("hacker_probability must be within [0,1]")
	ErrIdentifier  = errors.New("material and sound ids must be set")
	ErrRadius      = errors.New("interaction radii must be positive")
)

// Validate checks the constraints the behaviours rely on.
func (s *Scene) Validate() error {
	t := s.Timing
	if t.TheftDelay <= 0 || t.TheftTravel <= 0 || t.PaymentHold <= 0 || t.DriveDuration <= 0 || t.FadeRate <= 0 {
		return ErrDuration
	}
	if s.Scenario.HackerProbability < 0 || s.Scenario.HackerProbability > 1 {
		return ErrProbability
	}
	if s.Interaction.InteractableRadius <= 0 || s.Interaction.SocketRadius <= 0 {
		return ErrRadius
	}

	m := s.Materials
	for _, id := range []string{m.Connected, m.Disconnected, m.Highlight, m.PaymentIdle, m.PaymentSuccess, m.PaymentFailure} {
		if id == "" {
			return ErrIdentifier
		}
	}
	so := s.Sounds
	for _, id := range []string{so.Connect, so.Disconnect, so.Grab, so.PaymentFailure} {
		if id == "" {
			return ErrIdentifier
		}
	}
	return nil
}
