package panmodal

// PresentationState is one of the two named resting heights for the sheet.
// Dismissal is not a state: it is a terminal transition observed through the
// driver's direction flag.
type PresentationState int

const (
	ShortForm PresentationState = iota
	LongForm
)

func (s PresentationState) String() string {
	switch s {
	case ShortForm:
		return "ShortForm"
	case LongForm:
		return "LongForm"
	default:
		return "Unknown"
	}
}

// TransitionDirection governs the driver's interactive-start semantics:
// dismissal is interactive from a live gesture, presentation is not.
type TransitionDirection int

const (
	Presenting TransitionDirection = iota
	Dismissing
)

func (d TransitionDirection) String() string {
	switch d {
	case Presenting:
		return "Presenting"
	case Dismissing:
		return "Dismissing"
	default:
		return "Unknown"
	}
}
