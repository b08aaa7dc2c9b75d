package keyboard

// Family identifies a component family with its own default shortcut table.
type Family int

const (
	FamilyButton Family = iota
	FamilyCheckbox
	FamilyRadio
	FamilySlider
	FamilySelect
	FamilyTabs
	FamilyDialog
	familyCount
)

func (f Family) String() string {
	switch f {
	case FamilyButton:
		return "button"
	case FamilyCheckbox:
		return "checkbox"
	case FamilyRadio:
		return "radio"
	case FamilySlider:
		return "slider"
	case FamilySelect:
		return "select"
	case FamilyTabs:
		return "tabs"
	case FamilyDialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// familyNames maps keymap identifiers to families for YAML parsing.
var familyNames = map[string]Family{
	"button":   FamilyButton,
	"checkbox": FamilyCheckbox,
	"radio":    FamilyRadio,
	"slider":   FamilySlider,
	"select":   FamilySelect,
	"tabs":     FamilyTabs,
	"dialog":   FamilyDialog,
}

// defaultShortcuts holds the process-wide chord tables per family.
var defaultShortcuts = map[Family]ShortcutMap{
	FamilyButton: {
		{Chord{Key: KeyEnter}, IntentActivate},
		{Chord{Key: KeySpace}, IntentActivate},
	},
	FamilyCheckbox: {
		{Chord{Key: KeySpace}, IntentToggle},
		{Chord{Key: KeyEnter}, IntentToggle},
	},
	FamilyRadio: {
		{Chord{Key: KeyArrowDown}, IntentSelectNext},
		{Chord{Key: KeyArrowRight}, IntentSelectNext},
		{Chord{Key: KeyArrowUp}, IntentSelectPrevious},
		{Chord{Key: KeyArrowLeft}, IntentSelectPrevious},
		{Chord{Key: KeySpace}, IntentActivate},
	},
	FamilySlider: {
		{Chord{Key: KeyArrowUp}, IntentStepUp},
		{Chord{Key: KeyArrowRight}, IntentStepUp},
		{Chord{Key: KeyArrowDown}, IntentStepDown},
		{Chord{Key: KeyArrowLeft}, IntentStepDown},
		{Chord{Key: KeyArrowUp, Modifiers: ModShift}, IntentStepUpLarge},
		{Chord{Key: KeyArrowRight, Modifiers: ModShift}, IntentStepUpLarge},
		{Chord{Key: KeyArrowDown, Modifiers: ModShift}, IntentStepDownLarge},
		{Chord{Key: KeyArrowLeft, Modifiers: ModShift}, IntentStepDownLarge},
		{Chord{Key: KeyHome}, IntentStepToMin},
		{Chord{Key: KeyEnd}, IntentStepToMax},
	},
	FamilySelect: {
		{Chord{Key: KeyArrowDown}, IntentSelectNext},
		{Chord{Key: KeyArrowUp}, IntentSelectPrevious},
		{Chord{Key: KeyHome}, IntentJumpFirst},
		{Chord{Key: KeyEnd}, IntentJumpLast},
		{Chord{Key: KeyEscape}, IntentDismiss},
		{Chord{Key: KeyEnter}, IntentActivate},
		{Chord{Key: KeySpace}, IntentActivate},
		{Chord{Key: KeyPageUp}, IntentPageUp},
		{Chord{Key: KeyPageDown}, IntentPageDown},
	},
	FamilyTabs: {
		{Chord{Key: KeyArrowRight}, IntentSelectNext},
		{Chord{Key: KeyArrowDown}, IntentSelectNext},
		{Chord{Key: KeyArrowLeft}, IntentSelectPrevious},
		{Chord{Key: KeyArrowUp}, IntentSelectPrevious},
		{Chord{Key: KeyHome}, IntentJumpFirst},
		{Chord{Key: KeyEnd}, IntentJumpLast},
	},
	FamilyDialog: {
		{Chord{Key: KeyEscape}, IntentDismiss},
	},
}

// DefaultShortcuts returns a copy of the default chord table for the
// family. Callers may freely modify the returned slice.
func DefaultShortcuts(family Family) ShortcutMap {
	table := defaultShortcuts[family]
	out := make(ShortcutMap, len(table))
	copy(out, table)
	return out
}
