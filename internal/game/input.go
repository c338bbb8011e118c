package game

// Lines is one atomic sample of the input panel: the digit buttons in
// order and the confirm button.
type Lines struct {
	Digits  []bool
	Confirm bool
}

// DigitLines returns a sample of a panel with the given number of digit
// buttons where the listed zero-based buttons are held.
func DigitLines(buttons int, pressed ...int) Lines {
	l := Lines{Digits: make([]bool, buttons)}
	for _, i := range pressed {
		if i >= 0 && i < buttons {
			l.Digits[i] = true
		}
	}
	return l
}

// ConfirmLines returns a sample with only the confirm button held.
func ConfirmLines(buttons int) Lines {
	return Lines{Digits: make([]bool, buttons), Confirm: true}
}

// Idle reports whether no button is held.
func (l Lines) Idle() bool {
	if l.Confirm {
		return false
	}
	for _, d := range l.Digits {
		if d {
			return false
		}
	}
	return true
}

// EventKind enumerates the decoded panel events.
type EventKind int

const (
	EventNone EventKind = iota
	EventIncrement
	EventReviewPrev
	EventReviewNext
	EventConfirm
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventIncrement:
		return "increment"
	case EventReviewPrev:
		return "review-prev"
	case EventReviewNext:
		return "review-next"
	case EventConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Event is a single decoded input. Digit is only meaningful for
// EventIncrement.
type Event struct {
	Kind  EventKind
	Digit int
}

// Increment returns the event for advancing digit i.
func Increment(i int) Event {
	return Event{Kind: EventIncrement, Digit: i}
}

// Confirm returns the confirm event.
func Confirm() Event { return Event{Kind: EventConfirm} }

// ReviewPrev returns the review-previous event.
func ReviewPrev() Event { return Event{Kind: EventReviewPrev} }

// ReviewNext returns the review-next event.
func ReviewNext() Event { return Event{Kind: EventReviewNext} }

// Button chords reserved for history navigation, zero-based: buttons
// 1+2+3 step back and 1+2+4 step forward.
var (
	reviewPrevChord = []int{0, 1, 2}
	reviewNextChord = []int{0, 1, 3}
)

// ReviewPrevLines returns the raw sample that decodes to EventReviewPrev.
func ReviewPrevLines(buttons int) Lines {
	return DigitLines(buttons, reviewPrevChord...)
}

// ReviewNextLines returns the raw sample that decodes to EventReviewNext.
func ReviewNextLines(buttons int) Lines {
	return DigitLines(buttons, reviewNextChord...)
}

// Decoder turns raw samples into events for a code of a given length.
type Decoder struct {
	length  int
	buttons int
}

// NewDecoder returns a decoder for a panel with the given number of digit
// buttons driving a code of the given length.
func NewDecoder(length, buttons int) Decoder {
	return Decoder{length: length, buttons: buttons}
}

// Buttons returns the number of digit buttons on the panel.
func (d Decoder) Buttons() int {
	return d.buttons
}

// Decode maps one sample to at most one event. Confirm takes the whole
// tick. A single held digit button increments that digit; the two review
// chords navigate history; every other combination is ignored.
func (d Decoder) Decode(l Lines) Event {
	if l.Confirm {
		return Confirm()
	}

	var held []int
	for i, on := range l.Digits {
		if i >= d.buttons {
			break
		}
		if on {
			held = append(held, i)
		}
	}

	switch {
	case len(held) == 1:
		if held[0] < d.length {
			return Increment(held[0])
		}
	case sameButtons(held, reviewPrevChord):
		return ReviewPrev()
	case sameButtons(held, reviewNextChord):
		return ReviewNext()
	}
	return Event{Kind: EventNone}
}

func sameButtons(held, chord []int) bool {
	if len(held) != len(chord) {
		return false
	}
	for i := range held {
		if held[i] != chord[i] {
			return false
		}
	}
	return true
}
