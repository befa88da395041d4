package app

// RunningState is the app lifecycle; Finished is terminal
type RunningState uint8

const (
	Running RunningState = iota
	Finished
)

func (s RunningState) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
