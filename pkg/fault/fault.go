package fault

import "fmt"

// Kind classifies a misuse fault.
type Kind uint8

const (
	// Unwrap marks an extraction precondition violation: unwrapping the
	// wrong arm of a result, or dereferencing an exhausted iterator.
	Unwrap Kind = iota
)

var kindMap = map[Kind]string{
	Unwrap: "Unwrap",
}

func (k Kind) String() string {
	if s, ok := kindMap[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Fault is an unrecoverable signal raised when a caller violates a stated
// precondition. It is not part of the modeled-failure channel: a Fault marks
// a programming error at the call site, not a fallible operation outcome.
type Fault struct {
	Kind    Kind
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) String() string {
	return f.Error()
}

// Raise panics with a *Fault of the given kind. The format and args build
// the fault message.
func Raise(k Kind, format string, args ...any) {
	panic(&Fault{Kind: k, Message: fmt.Sprintf(format, args...)})
}

// As reports whether a recovered panic value is a *Fault, allowing a
// top-level handler to observe misuse faults without swallowing foreign
// panics.
func As(recovered any) (*Fault, bool) {
	f, ok := recovered.(*Fault)
	return f, ok
}
