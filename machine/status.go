package machine

// Status is the run state of a machine.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING = Status(0) // running
	STATUS_HALTED  = Status(1) // halted
	STATUS_BUDGET  = Status(2) // budget exceeded
)
