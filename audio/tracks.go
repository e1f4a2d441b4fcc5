package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/game"
)

// heartbeatGenerator is an endless lub-dub pulse, one beat per period
type heartbeatGenerator struct {
	rate   beep.SampleRate
	period int
	dubAt  int
	thump  int
	pos    int
}

// NewHeartbeatGenerator creates the ambient loop streamer; it never drains
func NewHeartbeatGenerator(rate beep.SampleRate) beep.Streamer {
	return &heartbeatGenerator{
		rate:   rate,
		period: rate.N(constants.HeartbeatPeriod),
		dubAt:  rate.N(constants.HeartbeatDubAt),
		thump:  rate.N(constants.HeartbeatThump),
	}
}

func (g *heartbeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period
		lubAt := g.rate.N(constants.HeartbeatLubAt)

		val := g.thumpAt(beatPos-lubAt, constants.HeartbeatLubFreq, 1.0) +
			g.thumpAt(beatPos-g.dubAt, constants.HeartbeatDubFreq, constants.HeartbeatDubLevel)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

// thumpAt renders a decaying low sine offset samples into a thump
func (g *heartbeatGenerator) thumpAt(offset int, freq, level float64) float64 {
	if offset < 0 || offset >= g.thump {
		return 0
	}
	t := float64(offset) / float64(g.rate)
	env := 1.0 - float64(offset)/float64(g.thump)
	return level * env * env * math.Sin(2*math.Pi*freq*t)
}

func (g *heartbeatGenerator) Err() error { return nil }

// CreateSadSound generates a descending slide for declines
func CreateSadSound(rate beep.SampleRate, vol float64) beep.Streamer {
	slide := NewSlide(constants.SadStartFreq, constants.SadEndFreq, constants.SadSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(slide, constants.SadSoundDuration, constants.SadSoundAttack, constants.SadSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateHappySound generates a rising arpeggio ending on a held top note, each note with a sine octave shimmer
func CreateHappySound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(constants.HappyNotes))
	for i, freq := range constants.HappyNotes {
		dur, rel := constants.HappyNoteDuration, constants.HappyNoteRelease
		if i == len(constants.HappyNotes)-1 {
			dur, rel = constants.HappyTailDuration, constants.HappyTailRelease
		}

		shimmer, err := generators.SineTone(rate, freq*2)
		if err != nil {
			return nil, fmt.Errorf("happy note %.2f: %w", freq, err)
		}
		osc := NewOscillator(freq, dur, WaveSquare, rate)
		mixed := beep.Mix(newVolume(osc, 0.7), newVolume(beep.Take(rate.N(dur), shimmer), 0.3))
		notes = append(notes, NewEnvelope(mixed, dur, constants.HappyNoteAttack, rel, rate))
	}
	// Square waves are loud at unity, halve before the track volume
	return newVolume(newVolume(beep.Seq(notes...), 0.5), vol), nil
}

// trackStreamer returns a fresh streamer for t at the given volume
func trackStreamer(t game.Track, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	switch t {
	case game.TrackHeartbeat:
		return newVolume(NewHeartbeatGenerator(rate), vol), nil
	case game.TrackSad:
		return CreateSadSound(rate, vol), nil
	case game.TrackHappy:
		return CreateHappySound(rate, vol)
	default:
		return nil, ErrUnknownTrack
	}
}
