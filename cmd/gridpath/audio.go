package main

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/gridpath/config"
)

// Pitch of the failure tone relative to the success tone.
const failRatio = 0.5

// tone plays short sine beeps when a search finishes. A tone whose speaker
// failed to initialize is silent.
type tone struct {
	sr     beep.SampleRate
	hz     float64
	length time.Duration
	ready  bool
}

func newTone(ac config.AudioConfig, logger *slog.Logger) *tone {
	t := &tone{
		sr:     beep.SampleRate(ac.SampleRate),
		hz:     ac.ToneHz,
		length: ac.ToneDuration,
	}
	if !ac.Enabled {
		return t
	}
	if err := speaker.Init(t.sr, t.sr.N(time.Second/10)); err != nil {
		// Non-fatal, the editor can run without sound
		logger.Warn("audio_init_failed", slog.String("error", err.Error()))
		return t
	}
	t.ready = true

	return t
}

// play beeps high for a found path and low otherwise.
func (t *tone) play(success bool) {
	if t == nil || !t.ready {
		return
	}
	hz := t.hz
	if !success {
		hz *= failRatio
	}
	sine, err := generators.SineTone(t.sr, hz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(t.sr.N(t.length), sine))
}

func (t *tone) close() {
	if t == nil || !t.ready {
		return
	}
	speaker.Close()
	t.ready = false
}
