package form

import "sync/atomic"

type Status int32

const (
	Idle Status = iota
	Submitting
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tracker holds the submission status of one form instance:
// idle -> submitting -> succeeded | failed, and back to submitting on retry.
type Tracker struct {
	status atomic.Int32
}

// Begin moves the tracker to Submitting. It returns false if a submission is already in flight.
func (t *Tracker) Begin() bool {
	for {
		current := t.status.Load()
		if Status(current) == Submitting {
			return false
		}
		if t.status.CompareAndSwap(current, int32(Submitting)) {
			return true
		}
	}
}

func (t *Tracker) End(err error) {
	if err != nil {
		t.status.Store(int32(Failed))
		return
	}
	t.status.Store(int32(Succeeded))
}

func (t *Tracker) Status() Status {
	return Status(t.status.Load())
}
