package form

import "time"

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed tasks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
