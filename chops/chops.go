// Package chops streams tree keys over channels: CoIterate drives
// a tree iterator from its own goroutine, and TryRecv peeks at a
// channel without blocking.
package chops

// Status is the outcome of a non-blocking receive.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// The channel delivered a value without blocking.
	Ok Status = iota
	// The channel is closed and drained.
	Closed
	// The channel is open but has nothing ready.
	Blocked
)

// TryRecv receives from ch if that can be done without blocking.
// The value is the zero T unless the Status is Ok.
func TryRecv[T any](ch <-chan T) (T, Status) {
	select {
	case x, ok := <-ch:
		if !ok {
			return x, Closed
		}
		return x, Ok
	default:
		var zero T
		return zero, Blocked
	}
}
