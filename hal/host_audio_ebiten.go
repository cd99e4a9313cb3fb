//go:build cgo

package hal

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	clickSampleRate = 44100
	clickFreqHz     = 1800
	clickMillis     = 18
)

var (
	audioCtxOnce sync.Once
	audioCtx     *audio.Context
)

// hostAudio plays a short click through Ebiten's audio package.
type hostAudio struct {
	mu     sync.Mutex
	player *audio.Player
	pcm    []byte
}

func newHostAudio() *hostAudio {
	return &hostAudio{pcm: clickPCM(clickSampleRate, clickFreqHz, clickMillis)}
}

func (a *hostAudio) Click() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.player == nil {
		audioCtxOnce.Do(func() {
			audioCtx = audio.NewContext(clickSampleRate)
		})
		a.player = audioCtx.NewPlayerFromBytes(a.pcm)
	}
	if err := a.player.Rewind(); err != nil {
		return
	}
	a.player.Play()
}

// clickPCM renders a decaying sine burst as 16-bit little-endian stereo.
func clickPCM(sampleRate, freq, millis int) []byte {
	n := sampleRate * millis / 1000
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*float64(freq)*float64(i)/float64(sampleRate)) * env * env
		s := int16(v * 0.25 * math.MaxInt16)
		j := i * 4
		out[j+0] = byte(s)
		out[j+1] = byte(s >> 8)
		out[j+2] = byte(s)
		out[j+3] = byte(s >> 8)
	}
	return out
}
