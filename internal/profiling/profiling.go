package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates named durations for a single frame.
// It is owned by the render thread and is not safe for concurrent use.
type Frame struct {
	totals map[string]time.Duration
}

// New returns an empty frame profile
func New() *Frame {
	return &Frame{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer frame.Track("scene.Draw")()
func (f *Frame) Track(name string) func() {
	start := time.Now()
	return func() {
		f.Add(name, time.Since(start))
	}
}

// Add records d under name
func (f *Frame) Add(name string, d time.Duration) {
	f.totals[name] += d
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// Total sums every tracked duration
func (f *Frame) Total() time.Duration {
	var sum time.Duration
	for _, d := range f.totals {
		sum += d
	}
	return sum
}

// TopN formats the n largest totals, longest first.
// Example: "glfw.SwapBuffers:4.2ms, scene.Draw:2.1ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", p.name, float64(p.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
