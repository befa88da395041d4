// Package audio plays short key feedback tones through the system speaker.
// Without an audio device every call is a silent no-op.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/counter/constant"
	"github.com/lixenwraith/counter/input"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

var toneFreq = map[input.IntentType]float64{
	input.IntentIncrement: constant.ToneIncrementHz,
	input.IntentDecrement: constant.ToneDecrementHz,
	input.IntentQuit:      constant.ToneQuitHz,
}

// Feedback mixes key tones into a single speaker stream
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; calling it again after success is a no-op
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Enabled reports whether tones reach the speaker
func (f *Feedback) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized
}

// Play queues the tone for intent; unknown intents and an uninitialized speaker are ignored
func (f *Feedback) Play(intent input.IntentType) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	freq, ok := toneFreq[intent]
	if !ok {
		return
	}

	tone := NewTone(sampleRate, freq, constant.ToneDuration, constant.ToneAttack, constant.ToneVolume)

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	f.mixer.Add(tone)
	speaker.Unlock()
}

// Cleanup stops all tones and closes the speaker
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	f.initialized = false
}
