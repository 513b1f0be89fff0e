package core

import (
	"sync"

	"github.com/spaghettifunk/pong/engine/containers"
)

// AVG_COUNT is the number of frame times averaged by the FPS counter.
const AVG_COUNT int = 5

// FrameMetrics keeps a rolling window of frame times, in seconds.
type FrameMetrics struct {
	samples   *containers.RingQueue[float64]
	lastFrame float64
	frames    uint64
}

func NewFrameMetrics(window int) *FrameMetrics {
	if window <= 0 {
		window = AVG_COUNT
	}
	return &FrameMetrics{
		samples: containers.NewRingQueue[float64](window),
	}
}

// Update records the duration of the frame that just finished.
func (m *FrameMetrics) Update(frameElapsedSeconds float64) {
	if frameElapsedSeconds < 0 {
		frameElapsedSeconds = 0
	}
	m.samples.Push(frameElapsedSeconds)
	m.lastFrame = frameElapsedSeconds
	m.frames++
}

// DeltaTime is the duration of the last recorded frame in seconds.
func (m *FrameMetrics) DeltaTime() float64 {
	return m.lastFrame
}

// FrameTime is the mean of the sampled frame times in seconds.
func (m *FrameMetrics) FrameTime() float64 {
	if m.samples.IsEmpty() {
		return 0
	}
	sum := 0.0
	m.samples.Each(func(v float64) { sum += v })
	return sum / float64(m.samples.Len())
}

func (m *FrameMetrics) FPS() float64 {
	ft := m.FrameTime()
	if ft == 0 {
		return 0
	}
	return 1.0 / ft
}

func (m *FrameMetrics) Frames() uint64 {
	return m.frames
}

var onceMetrics sync.Once
var metricsState *FrameMetrics = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = NewFrameMetrics(AVG_COUNT)
	})
	return nil
}

func MetricsUpdate(frameElapsedSeconds float64) {
	metricsState.Update(frameElapsedSeconds)
}

func MetricsFPS() float64 {
	return metricsState.FPS()
}

func MetricsDeltaTime() float64 {
	return metricsState.DeltaTime()
}

func MetricsFrame() (float64, float64) {
	return metricsState.FPS(), metricsState.FrameTime()
}
