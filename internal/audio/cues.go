package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Cue is a short synthesized sound tied to a game event.
type Cue int

const (
	CueNone Cue = iota
	CueLaunch
	CueHit
	CueBreak
	CuePower
	CueRoller
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueHit:
		return "hit"
	case CueBreak:
		return "break"
	case CuePower:
		return "power"
	case CueRoller:
		return "roller"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "none"
	}
}

// CueForEvent maps a game event to the cue it should trigger.
func CueForEvent(k core.EventKind) Cue {
	switch k {
	case core.EventLaunch:
		return CueLaunch
	case core.EventTargetHit:
		return CueHit
	case core.EventObstacleBroken:
		return CueBreak
	case core.EventPower:
		return CuePower
	case core.EventRollerSummoned:
		return CueRoller
	case core.EventRoundWon:
		return CueWin
	case core.EventRoundLost:
		return CueLose
	default:
		return CueNone
	}
}

// Build returns a fresh streamer for the cue scaled by gain, or nil for CueNone.
// seed drives the noise in the hit and break cues.
func Build(c Cue, rate beep.SampleRate, gain float64, seed uint32) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueLaunch:
		d := 180 * time.Millisecond
		s = NewEnvelope(NewSweep(220, 660, d, WaveSaw, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
	case CueHit:
		d := 120 * time.Millisecond
		s = beep.Mix(
			withVolume(NewEnvelope(NewNoise(d, rate, seed), d, 2*time.Millisecond, 100*time.Millisecond, rate), 0.5),
			withVolume(NewEnvelope(NewSweep(330, 110, d, WaveSquare, rate), d, 2*time.Millisecond, 90*time.Millisecond, rate), 0.5),
		)
	case CueBreak:
		d := 220 * time.Millisecond
		s = NewEnvelope(NewNoise(d, rate, seed), d, 2*time.Millisecond, 200*time.Millisecond, rate)
	case CuePower:
		d := 90 * time.Millisecond
		s = beep.Seq(
			NewEnvelope(NewOscillator(880, d, WaveSquare, rate), d, 3*time.Millisecond, 40*time.Millisecond, rate),
			NewEnvelope(NewOscillator(1320, d, WaveSquare, rate), d, 3*time.Millisecond, 60*time.Millisecond, rate),
		)
	case CueRoller:
		d := 300 * time.Millisecond
		s = NewEnvelope(NewSweep(90, 60, d, WaveSaw, rate), d, 20*time.Millisecond, 150*time.Millisecond, rate)
	case CueWin:
		note := 120 * time.Millisecond
		s = beep.Seq(
			NewEnvelope(NewOscillator(523.25, note, WaveSine, rate), note, 5*time.Millisecond, 60*time.Millisecond, rate),
			NewEnvelope(NewOscillator(659.25, note, WaveSine, rate), note, 5*time.Millisecond, 60*time.Millisecond, rate),
			NewEnvelope(NewOscillator(783.99, 2*note, WaveSine, rate), 2*note, 5*time.Millisecond, 180*time.Millisecond, rate),
		)
	case CueLose:
		d := 500 * time.Millisecond
		s = NewEnvelope(NewSweep(330, 110, d, WaveSine, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)
	default:
		return nil
	}
	return withVolume(s, gain)
}
