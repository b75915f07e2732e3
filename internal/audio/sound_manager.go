package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays cues through the system speaker. A manager that
// failed to initialize, or was never initialized, ignores every call.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	seed        uint32
	initialized bool
}

// NewSoundManager creates a manager with the given master gain in [0, 1].
// seed makes the noise in hit and break cues reproducible across runs.
func NewSoundManager(gain float64, seed int64) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		gain:  math.Max(0, math.Min(gain, 1)),
		seed:  uint32(seed) ^ uint32(seed>>32),
	}
}

// nextSeed steps the manager's LCG so consecutive cues do not repeat. Callers hold mu.
func (sm *SoundManager) nextSeed() uint32 {
	sm.seed = sm.seed*1664525 + 1013904223
	return sm.seed
}

// Initialize opens the speaker. It is safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues will actually be heard.
func (sm *SoundManager) Enabled() bool {
	if sm == nil {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Build(c, sampleRate, sm.gain, sm.nextSeed())
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays the cue for each event that has one.
func (sm *SoundManager) PlayEvents(events []core.Event) {
	for _, ev := range events {
		if c := CueForEvent(ev.Kind); c != CueNone {
			sm.Play(c)
		}
	}
}

// Close silences everything and releases the speaker.
func (sm *SoundManager) Close() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
