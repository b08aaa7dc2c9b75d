package keyboard

// Intent is a semantic operation decoupled from the physical key chord
// that triggers it. Each component family maps the intents it understands
// to handlers via an [ActionMap].
type Intent int

const (
	// IntentNone matches no operation.
	IntentNone Intent = iota

	// IntentActivate triggers the component's primary action (button press,
	// menu item selection).
	IntentActivate

	// IntentToggle flips a two- or three-way value (checkbox, toggle).
	IntentToggle

	// IntentSelectNext moves the selection or highlight forward.
	IntentSelectNext

	// IntentSelectPrevious moves the selection or highlight backward.
	IntentSelectPrevious

	// IntentJumpFirst moves the selection or highlight to the first entry.
	IntentJumpFirst

	// IntentJumpLast moves the selection or highlight to the last entry.
	IntentJumpLast

	// IntentStepUp increases an adjustable value by the small step.
	IntentStepUp

	// IntentStepDown decreases an adjustable value by the small step.
	IntentStepDown

	// IntentStepUpLarge increases an adjustable value by the large step.
	IntentStepUpLarge

	// IntentStepDownLarge decreases an adjustable value by the large step.
	IntentStepDownLarge

	// IntentStepToMin sets an adjustable value to its minimum.
	IntentStepToMin

	// IntentStepToMax sets an adjustable value to its maximum.
	IntentStepToMax

	// IntentDismiss closes an open surface without selecting (escape).
	IntentDismiss

	// IntentPageUp moves a page backward.
	IntentPageUp

	// IntentPageDown moves a page forward.
	IntentPageDown
)

func (i Intent) String() string {
	switch i {
	case IntentActivate:
		return "activate"
	case IntentToggle:
		return "toggle"
	case IntentSelectNext:
		return "select-next"
	case IntentSelectPrevious:
		return "select-previous"
	case IntentJumpFirst:
		return "jump-first"
	case IntentJumpLast:
		return "jump-last"
	case IntentStepUp:
		return "step-up"
	case IntentStepDown:
		return "step-down"
	case IntentStepUpLarge:
		return "step-up-large"
	case IntentStepDownLarge:
		return "step-down-large"
	case IntentStepToMin:
		return "step-to-min"
	case IntentStepToMax:
		return "step-to-max"
	case IntentDismiss:
		return "dismiss"
	case IntentPageUp:
		return "page-up"
	case IntentPageDown:
		return "page-down"
	default:
		return "none"
	}
}

// intentNames maps keymap identifiers to intents for YAML parsing.
var intentNames = map[string]Intent{
	"activate":        IntentActivate,
	"toggle":          IntentToggle,
	"select-next":     IntentSelectNext,
	"select-previous": IntentSelectPrevious,
	"jump-first":      IntentJumpFirst,
	"jump-last":       IntentJumpLast,
	"step-up":         IntentStepUp,
	"step-down":       IntentStepDown,
	"step-up-large":   IntentStepUpLarge,
	"step-down-large": IntentStepDownLarge,
	"step-to-min":     IntentStepToMin,
	"step-to-max":     IntentStepToMax,
	"dismiss":         IntentDismiss,
	"page-up":         IntentPageUp,
	"page-down":       IntentPageDown,
}
