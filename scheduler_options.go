package flex

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// SchedulerOption is a functional option for configuring a Scheduler.
type SchedulerOption func(*Scheduler) error

// WithLogger sets the logger for the scheduler and for trees created on it.
func WithLogger(l *log.Logger) SchedulerOption {
	return func(s *Scheduler) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = l
		return nil
	}
}

// WithFrameRate sets the tick rate used by Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) SchedulerOption {
	return func(s *Scheduler) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithUpdateQueueSize sets the capacity of the QueueUpdate buffer.
// Default is 256. Must be at least 1.
func WithUpdateQueueSize(size int) SchedulerOption {
	return func(s *Scheduler) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		s.taskQueueSize = size
		return nil
	}
}
