package input

// Key is a logical key the sandbox reacts to. Hosts map their physical keys onto these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
	KeyReset

	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyReset:
		return "reset"
	default:
		return "unknown"
	}
}

// PrimaryButton is the mouse button that shoots.
const PrimaryButton = 0
