package audio

import (
	"ChargeSim/internal/logger"
	"sync"

	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

// Mixer plays clips by name into a single beep mix. It does not touch the
// audio device; hand Streamer to speaker.Play to hear it.
type Mixer struct {
	mu    sync.Mutex
	clips map[string]ClipFactory
	mixer *beep.Mixer
	muted bool

	history []string
}

func NewMixer(clips map[string]ClipFactory) *Mixer {
	if clips == nil {
		clips = DefaultClips()
	}
	return &Mixer{
		clips: clips,
		mixer: &beep.Mixer{},
	}
}

// Play queues clip on the mix. Unknown clips are logged and ignored.
func (m *Mixer) Play(clip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	factory, ok := m.clips[clip]
	if !ok {
		logger.Log.Warn("Unknown sound clip", zap.String("clip", clip))
		return
	}
	m.history = append(m.history, clip)
	if m.muted {
		return
	}
	m.mixer.Add(factory(SampleRate))
}

// SetMuted drops future plays from the mix; history is still recorded.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Active is the number of clips still sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

// History returns the clip ids played so far.
func (m *Mixer) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}

// Streamer exposes the mix. The speaker pulls from it on its own goroutine.
func (m *Mixer) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.mixer.Stream(samples)
	})
}
