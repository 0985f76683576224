// Package control owns the countdown and serializes every state change on a
// single event loop goroutine. UI shells enqueue Commands and render the
// Snapshots the loop publishes; they never touch the countdown directly.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdResume
	CmdStop
	cmdTick
	cmdFlush
)

func (t CommandType) String() string {
	switch t {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdStop:
		return "stop"
	case cmdTick:
		return "tick"
	case cmdFlush:
		return "flush"
	}
	return "unknown"
}

// Command is the message sent to the controller's event loop. The optional
// Reply channel receives the outcome of the command once the loop has applied
// it, so callers can keep their view in sync.
type Command struct {
	Type    CommandType
	Seconds int        // setting for CmdStart
	Reply   chan error // optional reply channel

	generation uint64 // tick chain a cmdTick belongs to
}
