package sandbox

import (
	"log"
	"time"
)

// FrameStats counts frames and logs the rate once per elapsed second
type FrameStats struct {
	logger *log.Logger
	now    func() time.Time

	frames int
	last   time.Time
	fps    int
}

// NewFrameStats starts counting from the current time. A nil logger disables reporting.
func NewFrameStats(logger *log.Logger) *FrameStats {
	return newFrameStats(logger, time.Now)
}

func newFrameStats(logger *log.Logger, now func() time.Time) *FrameStats {
	return &FrameStats{logger: logger, now: now, last: now()}
}

// Frame records one rendered frame
func (f *FrameStats) Frame() {
	f.frames++

	now := f.now()
	elapsed := now.Sub(f.last)
	if elapsed < time.Second {
		return
	}
	f.fps = int(float64(f.frames)/elapsed.Seconds() + 0.5)
	if f.logger != nil {
		f.logger.Printf("FPS: %d", f.fps)
	}
	f.frames = 0
	f.last = now
}

// FPS returns the rate measured over the last completed second, or zero before one has elapsed
func (f *FrameStats) FPS() int {
	return f.fps
}
