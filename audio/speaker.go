// Package audio plays the short tone heard when the player hits an obstacle.
package audio

import (
	"sync"
	"time"

	"github.com/akmonengine/boxcollide/config"
	"github.com/akmonengine/boxcollide/internal/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// toneVolume is the gain of the hit tone in powers of two, -1 halves the amplitude
const toneVolume = -1

// Speaker feeds hit tones to the sound card through a single mixer
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	frequency   float64
	duration    time.Duration
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

func NewSpeaker(cfg config.Audio, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.Nop()
	}

	return &Speaker{
		rate:      beep.SampleRate(cfg.SampleRate),
		frequency: cfg.Frequency,
		duration:  cfg.Duration,
		mixer:     &beep.Mixer{},
		logger:    logger,
	}
}

// Init opens the audio device. The demo keeps running silently when it fails.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	// validate the tone before touching the device
	if _, err := Tone(s.rate, s.frequency, s.duration); err != nil {
		return err
	}

	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(s.mixer)
	s.initialized = true

	s.logger.Info("audio ready",
		log.Int("sample_rate", int(s.rate)),
		log.Float64("frequency", s.frequency),
		log.Duration("duration", s.duration),
	)

	return nil
}

// PlayHit queues one hit tone. It does nothing until Init succeeded.
func (s *Speaker) PlayHit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	tone, err := Tone(s.rate, s.frequency, s.duration)
	if err != nil {
		s.logger.Warn("hit tone", log.Err(err))
		return
	}

	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Tone is a sine at frequency lasting duration, at half amplitude
func Tone(rate beep.SampleRate, frequency float64, duration time.Duration) (beep.Streamer, error) {
	if rate <= 0 || duration <= 0 {
		return nil, errors.Wrapf(config.ErrInvalidDuration, "tone of %v at %d Hz", duration, rate)
	}

	sine, err := generators.SineTone(rate, frequency)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %v Hz", frequency)
	}

	return &effects.Volume{
		Streamer: beep.Take(rate.N(duration), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}
