package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies a one-shot sound effect
type Sound uint8

const (
	SoundTeleport Sound = iota
	SoundPotion
	SoundLevelClear
)

func (s Sound) String() string {
	switch s {
	case SoundTeleport:
		return "teleport"
	case SoundPotion:
		return "potion"
	case SoundLevelClear:
		return "level_clear"
	default:
		return fmt.Sprintf("Sound(%d)", uint8(s))
	}
}

// note is one step of a melody; a zero frequency is a rest
type note struct {
	freq float64
	dur  time.Duration
}

const beat = 180 * time.Millisecond

// theme is the background music, looped for as long as music is on
var theme = []note{
	{261.63, beat}, {329.63, beat}, {392.00, beat}, {329.63, beat},
	{293.66, beat}, {349.23, beat}, {440.00, beat}, {349.23, beat},
	{329.63, beat}, {392.00, beat}, {493.88, beat}, {392.00, beat},
	{349.23, 2 * beat}, {0, 2 * beat},
}

// effectNotes lists the notes of each sound effect
var effectNotes = map[Sound][]note{
	SoundTeleport:   {{880, 40 * time.Millisecond}, {660, 40 * time.Millisecond}, {1320, 80 * time.Millisecond}},
	SoundPotion:     {{987.77, 60 * time.Millisecond}, {1318.51, 120 * time.Millisecond}},
	SoundLevelClear: {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.50, 250 * time.Millisecond}},
}

// tone returns a sine note of the given length, faded out over its last
// quarter so notes do not click
func tone(sr beep.SampleRate, n note) (beep.Streamer, error) {
	samples := sr.N(n.dur)
	if n.freq == 0 {
		return beep.Silence(samples), nil
	}
	sine, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v Hz tone: %w", n.freq, err)
	}
	return &fade{streamer: beep.Take(samples, sine), total: samples, release: samples / 4}, nil
}

// sequence joins notes into one finite streamer
func sequence(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(sr, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

// effect builds a sound effect at the given volume
func effect(sr beep.SampleRate, s Sound, volume float64) (beep.Streamer, error) {
	notes, ok := effectNotes[s]
	if !ok {
		return nil, fmt.Errorf("unknown sound: %s", s)
	}
	seq, err := sequence(sr, notes)
	if err != nil {
		return nil, err
	}
	return withVolume(seq, volume), nil
}

// music renders the theme into a buffer and loops it forever
func music(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	seq, err := sequence(sr, theme)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(seq)
	return withVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume), nil
}

// withVolume scales a stream by 2^volume
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// fade applies a linear release to the tail of a finite stream
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			vol := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
