package format

import "fmt"

// Formattable renders a value for inclusion in a diagnostic message.
// Errors render through Error, Stringers through String, anything else
// through the default fmt verb.
func Formattable(v any) string {
	switch t := v.(type) {
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
