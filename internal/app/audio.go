package app

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies a procedural sound effect.
type SoundKind int

const (
	SoundCrossingBell SoundKind = iota
	SoundHorn
	SoundDeparture
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.5

// activeBells limits simultaneous crossing bells so several nearby
// crossings do not stack into clipping.
var activeBells int32

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a sound effect at full gain.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

// PlaySoundWithGain plays a sound effect, gain in [0,1].
func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if kind == SoundCrossingBell {
		if atomic.LoadInt32(&activeBells) >= 3 {
			return
		}
		atomic.AddInt32(&activeBells, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundCrossingBell {
			atomic.AddInt32(&activeBells, -1)
		}
		return
	}
	if gain > 1 {
		gain = 1
	}
	go func() {
		if kind == SoundCrossingBell {
			defer atomic.AddInt32(&activeBells, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCrossingBell:
		return genCrossingBell()
	case SoundHorn:
		return genHorn()
	case SoundDeparture:
		return genDeparture()
	}
	return nil
}

// genCrossingBell: one strike of the level-crossing bell, a bright
// metallic partial stack with a fast decay.
func genCrossingBell() []byte {
	dur := 0.55
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	freq := 1180.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := t / dur
		env := adsr(p, 0.01, 0.5, 0.2, 0.45)
		s := math.Sin(2*math.Pi*freq*t) * 0.6
		s += math.Sin(2*math.Pi*freq*2.76*t) * 0.25 * (1.0 - p)
		s += math.Sin(2*math.Pi*freq*5.4*t) * 0.1 * (1.0 - p) * (1.0 - p)
		putStereoF32(buf, i, s*env*0.6)
	}
	return buf
}

// genHorn: a two-chime diesel horn, slightly detuned for body.
func genHorn() []byte {
	dur := 1.2
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := t / dur
		env := adsr(p, 0.06, 0.1, 0.85, 0.25)
		s := math.Sin(2*math.Pi*311.0*t) * 0.45
		s += math.Sin(2*math.Pi*370.0*t) * 0.45
		s += math.Sin(2*math.Pi*622.5*t) * 0.12
		s += math.Sin(2*math.Pi*313.5*t) * 0.1
		putStereoF32(buf, i, s*env*0.5)
	}
	return buf
}

// genDeparture: a short rising whistle as a train leaves its stop.
func genDeparture() []byte {
	dur := 0.5
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := t / dur
		env := adsr(p, 0.08, 0.15, 0.7, 0.35)
		freq := 660.0 + 180.0*p
		s := math.Sin(2*math.Pi*freq*t) * 0.7
		s += math.Sin(2*math.Pi*freq*2.0*t) * 0.18
		putStereoF32(buf, i, s*env*0.45)
	}
	return buf
}
