package notify

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrAudioUnavailable indicates the speaker could not be opened.
var ErrAudioUnavailable = errors.New("audio unavailable")

const (
	sampleRate  = beep.SampleRate(44100)
	toneLength  = 180 * time.Millisecond
	firstTone   = 880.0
	secondTone  = 1318.5
	toneLoudest = 0.5
)

// SoundSink plays a short two-tone chime.
type SoundSink struct {
	mu       sync.Mutex
	volume   float64
	initOnce sync.Once
	initErr  error
}

// NewSoundSink creates a chime sink. Volume uses beep's base-2 scale:
// 0 is unchanged, -1 is half as loud.
func NewSoundSink(volume float64) *SoundSink {
	return &SoundSink{volume: volume}
}

// SetVolume changes the volume for later chimes.
func (sink *SoundSink) SetVolume(volume float64) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.volume = volume
}

// Notify implements Sink. Playback happens on the speaker goroutine.
func (sink *SoundSink) Notify(Notice) error {
	sink.initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			sink.initErr = fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
		}
	})
	if sink.initErr != nil {
		return sink.initErr
	}

	sink.mu.Lock()
	volume := sink.volume
	sink.mu.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: Chime(sampleRate),
		Base:     2,
		Volume:   volume,
	})
	return nil
}

// Chime returns the notice sound: two fading sine tones.
func Chime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(tone(rate, firstTone, toneLength), tone(rate, secondTone, toneLength))
}

func tone(rate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := rate.N(length)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if position >= total {
				break
			}
			elapsed := float64(position) / float64(rate)
			fade := 1 - float64(position)/float64(total)
			value := math.Sin(2*math.Pi*frequency*elapsed) * fade * toneLoudest
			samples[i][0] = value
			samples[i][1] = value
			position++
			n++
		}
		return n, true
	})
}
