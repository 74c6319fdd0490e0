package gui

type Action int

// Input from the user. The type of Data depends on the Action
type Input struct {
	Action Action
	Data   any
}

// List of valid Action values
const (
	Nothing Action = iota

	// a key on the emulated keyboard. Data is the scancode of the key
	KeyPress
	KeyRelease

	// host actions. Data is not used
	Reset
	Pause
)

func (a Action) String() string {
	switch a {
	case KeyPress:
		return "key press"
	case KeyRelease:
		return "key release"
	case Reset:
		return "reset"
	case Pause:
		return "pause"
	}
	return "nothing"
}
