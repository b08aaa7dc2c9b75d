// Package semantics describes components to assistive technology.
//
// Each component contributes a [Configuration]: descriptive properties
// (label, value, role, flags) plus the actions an accessibility service
// may invoke. The host embedding layer collects configurations from the
// tree and forwards them to the platform accessibility bridge.
package semantics

// Flag is one boolean semantic attribute.
type Flag uint32

const (
	// HasEnabledState marks components that can be disabled at all.
	HasEnabledState Flag = 1 << iota
	// IsEnabled is meaningful only with HasEnabledState.
	IsEnabled
	// HasCheckedState marks checkable components.
	HasCheckedState
	// IsChecked is meaningful only with HasCheckedState.
	IsChecked
	// IsCheckStateMixed marks a tri-state checkable in its mixed state.
	IsCheckStateMixed
	// HasToggledState marks switch-like components.
	HasToggledState
	// IsToggled is meaningful only with HasToggledState.
	IsToggled
	// IsSelected marks the chosen entry of a set (tab, option).
	IsSelected
	// IsInMutuallyExclusiveGroup marks radio-style members.
	IsInMutuallyExclusiveGroup
	// IsFocusable marks components that can receive keyboard focus.
	IsFocusable
	// IsFocused marks the component holding keyboard focus.
	IsFocused
	// IsObscured marks text whose content must not be spoken.
	IsObscured
	// HasExpandedState marks collapsible components.
	HasExpandedState
	// IsExpanded is meaningful only with HasExpandedState.
	IsExpanded
	// IsModal marks surfaces that block interaction behind them.
	IsModal
)

// Flags is a set of semantic flags.
type Flags uint32

// Has reports whether the set contains the flag.
func (f Flags) Has(flag Flag) bool {
	return uint32(f)&uint32(flag) != 0
}

// With returns the set with the flag added.
func (f Flags) With(flag Flag) Flags {
	return f | Flags(flag)
}

// Role identifies what kind of component this is to assistive technology.
type Role int

const (
	RoleNone Role = iota
	RoleButton
	RoleCheckbox
	RoleRadio
	RoleSwitch
	RoleSlider
	RoleComboBox
	RoleMenu
	RoleMenuItem
	RoleTab
	RoleTabList
	RoleDialog
	RoleTooltip
	RoleTextField
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RoleCheckbox:
		return "checkbox"
	case RoleRadio:
		return "radio"
	case RoleSwitch:
		return "switch"
	case RoleSlider:
		return "slider"
	case RoleComboBox:
		return "combobox"
	case RoleMenu:
		return "menu"
	case RoleMenuItem:
		return "menuitem"
	case RoleTab:
		return "tab"
	case RoleTabList:
		return "tablist"
	case RoleDialog:
		return "dialog"
	case RoleTooltip:
		return "tooltip"
	case RoleTextField:
		return "textfield"
	default:
		return "none"
	}
}

// Properties are the descriptive half of a configuration.
type Properties struct {
	// Label is the component's spoken name.
	Label string
	// Value is the component's current value rendered as text ("42%").
	// Obscured text fields leave this empty.
	Value string
	// Hint describes what interacting with the component does.
	Hint string
	Role  Role
	Flags Flags
}

// Actions are the callbacks an accessibility service may invoke.
type Actions struct {
	// OnTap performs the component's primary action.
	OnTap func()
	// OnIncrease raises an adjustable value by one step.
	OnIncrease func()
	// OnDecrease lowers an adjustable value by one step.
	OnDecrease func()
	// OnDismiss closes the component's surface.
	OnDismiss func()
}

// Configuration is one component's complete semantic description.
type Configuration struct {
	Properties Properties
	Actions    Actions
}
