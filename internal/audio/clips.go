package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate is shared by every clip and the speaker.
	SampleRate = beep.SampleRate(44100)

	ClipConnect    = "connect"
	ClipDisconnect = "disconnect"
	ClipError      = "error"
	ClipGrab       = "grab"
)

// ClipFactory builds a fresh, finite streamer for one playback.
type ClipFactory func(sr beep.SampleRate) beep.Streamer

// DefaultClips returns the built-in cue set.
func DefaultClips() map[string]ClipFactory {
	return map[string]ClipFactory{
		ClipConnect:    connectClip,
		ClipDisconnect: disconnectClip,
		ClipError:      errorClip,
		ClipGrab:       grabClip,
	}
}

// tone is a sine at freq for d, attenuated by volume (beep's log2 scale).
func tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   volume,
	}
}

// connectClip is a rising two-note chirp.
func connectClip(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 660, 70*time.Millisecond, -2),
		tone(sr, 990, 110*time.Millisecond, -2),
	)
}

// disconnectClip mirrors connectClip downwards.
func disconnectClip(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 990, 70*time.Millisecond, -2),
		tone(sr, 495, 110*time.Millisecond, -2),
	)
}

// errorClip is a low buzz built from detuned tones.
func errorClip(sr beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return beep.Mix(
		tone(sr, 110, d, -1.5),
		tone(sr, 116, d, -1.5),
		tone(sr, 220, d, -3),
	)
}

func grabClip(sr beep.SampleRate) beep.Streamer {
	return tone(sr, 1760, 25*time.Millisecond, -3)
}
