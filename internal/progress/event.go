package progress

import (
	"strconv"
	"time"
)

// Status indicates the state of a conversion attempt as seen by the handler.
type Status string

const (
	StatusIdle  Status = "idle"
	StatusBusy  Status = "busy"
	StatusDone  Status = "done"
	StatusError Status = "error"
)

// InFlight reports whether a request is outstanding in this state.
func (s Status) InFlight() bool {
	return s == StatusBusy
}

// Event is delivered to the UI when a conversion attempt finishes.
// Exactly one Event is produced per attempt; Path is set only for StatusDone.
type Event struct {
	Status    Status
	URL       string // article URL the attempt was for
	Path      string // local file holding the downloaded reel
	Err       error
	Timestamp time.Time
	Metadata  map[string]string // optional: status_code, bytes, etc.
}

// Done builds a successful completion event.
func Done(url, path string, size int) Event {
	return Event{
		Status:    StatusDone,
		URL:       url,
		Path:      path,
		Timestamp: time.Now(),
		Metadata:  map[string]string{"bytes": strconv.Itoa(size)},
	}
}

// Failed builds a failed completion event.
func Failed(url string, err error) Event {
	return Event{
		Status:    StatusError,
		URL:       url,
		Err:       err,
		Timestamp: time.Now(),
	}
}
