package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentIncrement // Right, j
	IntentDecrement // Left, k
	IntentQuit      // q, Q, Ctrl+C
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentIncrement: "increment",
	IntentDecrement: "decrement",
	IntentQuit:      "quit",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
