package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestDisabledEngineIsSilent(t *testing.T) {
	e := NewEngine(Config{Enabled: false})
	if err := e.Start(); err != nil {
		t.Fatalf("Start on disabled engine returned error: %v", err)
	}
	if !e.Silent() {
		t.Error("Expected disabled engine to be silent")
	}
	if e.Play(SoundPotion) {
		t.Error("Expected Play to report nothing queued")
	}
	e.Close()
}

func TestToggleMusicWithoutDevice(t *testing.T) {
	e := NewEngine(Config{})
	if !e.MusicOn() {
		t.Fatal("Expected music on by default")
	}
	if e.ToggleMusic() {
		t.Error("Expected first toggle to switch music off")
	}
	if !e.ToggleMusic() {
		t.Error("Expected second toggle to switch music on")
	}
	e.PauseMusic()
	e.ResumeMusic()
	if !e.MusicOn() {
		t.Error("Pause and resume must not change the toggle")
	}
}

func TestEffectsAreFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, s := range []Sound{SoundTeleport, SoundPotion, SoundLevelClear} {
		t.Run(s.String(), func(t *testing.T) {
			streamer, err := effect(sr, s, 0)
			if err != nil {
				t.Fatalf("effect failed: %v", err)
			}

			var want int
			for _, n := range effectNotes[s] {
				want += sr.N(n.dur)
			}

			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := streamer.Stream(buf)
				total += n
				if !ok || total > want+len(buf) {
					break
				}
			}
			if total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
		})
	}
}

func TestUnknownEffect(t *testing.T) {
	if _, err := effect(DefaultSampleRate, Sound(99), 0); err == nil {
		t.Error("Expected error for unknown sound")
	}
}

func TestToneFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := tone(sr, note{freq: 440, dur: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("tone failed: %v", err)
	}
	samples := make([][2]float64, sr.N(100*time.Millisecond))
	n, _ := s.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}
	for i, v := range samples {
		if v[0] < -1 || v[0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, v[0])
		}
	}
	if last := samples[n-1][0]; last > 0.05 || last < -0.05 {
		t.Errorf("Expected tail near silence, got %f", last)
	}
}

func TestRestIsSilent(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := tone(sr, note{dur: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("tone failed: %v", err)
	}
	samples := make([][2]float64, sr.N(10*time.Millisecond))
	s.Stream(samples)
	for i, v := range samples {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("Expected silence at %d, got %v", i, v)
		}
	}
}

func TestMusicLoops(t *testing.T) {
	sr := beep.SampleRate(4000)
	s, err := music(sr, 0)
	if err != nil {
		t.Fatalf("music failed: %v", err)
	}

	var length int
	for _, n := range theme {
		length += sr.N(n.dur)
	}

	buf := make([][2]float64, length+100)
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Errorf("Expected looping stream to fill %d samples, got %d (ok=%v)", len(buf), n, ok)
	}
}
