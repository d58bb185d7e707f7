package frame

import "time"

// Drive runs a queue against a manual clock: each frame advances the clock by
// interval and flushes. It stops when nothing is pending or after maxFrames
// frames, and returns the number of frames run.
func Drive(q *Queue, clock *ManualClock, interval time.Duration, maxFrames int) int {
	frames := 0
	for q.Pending() > 0 && frames < maxFrames {
		clock.Advance(interval)
		q.Flush()
		frames++
	}
	return frames
}
