package infrastructure

import "time"

// Stopwatch measures the wall time of one report execution.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// StartStopwatch starts a new stopwatch.
func StartStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Stop freezes the elapsed time and returns it. Later calls return the same value.
func (s *Stopwatch) Stop() time.Duration {
	if !s.stopped {
		s.elapsed = time.Since(s.start)
		s.stopped = true
	}
	return s.elapsed
}

// Elapsed returns the frozen time once stopped, or the running time otherwise.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.stopped {
		return s.elapsed
	}
	return time.Since(s.start)
}

// ElapsedMilliseconds returns Elapsed in whole milliseconds.
func (s *Stopwatch) ElapsedMilliseconds() int64 {
	return s.Elapsed().Milliseconds()
}
