package scripts

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/engine"
	"time"
)

const frame = 100 * time.Millisecond

// recordingPlayer remembers every clip it was asked to play.
type recordingPlayer struct {
	clips []string
}

func (r *recordingPlayer) Play(clip string) {
	r.clips = append(r.clips, clip)
}

func (r *recordingPlayer) count(clip string) int {
	n := 0
	for _, c := range r.clips {
		if c == clip {
			n++
		}
	}
	return n
}

// fixedRandom returns the same sample on every draw.
type fixedRandom struct {
	sample float64
	draws  int
}

func (f *fixedRandom) Float64() float64 {
	f.draws++
	return f.sample
}

// advance ticks the engine for d in fixed frames.
func advance(e *engine.Engine, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		e.Tick(frame)
	}
}

func newCable(player *recordingPlayer) (*CableConnection, *behaviour.RendererComponent, *behaviour.RendererComponent) {
	head := behaviour.NewRendererComponent("")
	car := behaviour.NewRendererComponent("")
	cable := NewCableConnection()
	cable.HeadIndicator = head
	cable.CarIndicator = car
	cable.Audio = behaviour.NewAudioSourceComponent(player)
	cable.ConnectedMaterial = "connected"
	cable.DisconnectedMaterial = "disconnected"
	cable.ConnectClip = "connect"
	cable.DisconnectClip = "disconnect"
	return cable, head, car
}
