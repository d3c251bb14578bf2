package exec

// Policy selects the pop order of a task queue.
type Policy uint8

const (
	// FIFO pops tasks in arrival order.
	FIFO Policy = iota
	// LIFO pops the most recently pushed task first.
	LIFO
)

func (p Policy) String() string {
	switch p {
	case LIFO:
		return "LIFO"
	default:
		return "FIFO"
	}
}
