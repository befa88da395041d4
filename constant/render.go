package constant

// Counter view text
const (
	CounterTitle  = "Counter App Tutorial"
	CounterPrefix = "Value: "

	LegendDecrement = "Decrement"
	LegendIncrement = "Increment"
	LegendQuit      = "Quit"

	KeyLabelDecrement = "<Left>"
	KeyLabelIncrement = "<Right>"
	KeyLabelQuit      = "<Q>"
)

// Hello view text
const (
	HelloMessage = "Hello, terminal! (press 'q' to quit)"
)
