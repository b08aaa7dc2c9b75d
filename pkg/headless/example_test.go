package headless_test

import (
	"fmt"

	"github.com/go-drift/headless/pkg/headless"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// This example shows how to share disclosure state with an OpenController.
// Pass the same controller to a component and to your own code to open and
// close it programmatically.
func ExampleOpenController() {
	filters := headless.NewOpenController(false)
	defer filters.Dispose()

	unsub := filters.AddListener(func() {
		fmt.Printf("open: %v\n", filters.IsOpen())
	})

	filters.Open()
	filters.Toggle()

	// Redundant writes are silent.
	filters.Close()

	unsub()

	// Output:
	// open: true
	// open: false
}

// This example shows how to observe a component's interaction states with
// an external controller. The same controller can drive styling for a
// group of related components.
func ExampleButton_statesController() {
	states := widgetstate.NewController(widgetstate.Set{})
	defer states.Dispose()

	states.AddListener(func() {
		if states.Value().Has(widgetstate.Hovered) {
			fmt.Println("hovered")
		}
	})

	// Pass the controller to the button:
	//
	//     headless.Button{
	//         Label:      "Save",
	//         Controller: states,
	//         OnPressed: func() { save() },
	//         Builder: func(ctx core.BuildContext, snapshot headless.ButtonSnapshot) core.Widget {
	//             return renderButton(snapshot.States)
	//         },
	//     }

	states.Update(widgetstate.Hovered, true)

	// Output:
	// hovered
}

// This example shows the controlled-value contract shared by all input
// components. The component displays the value you pass and reports the
// next value through OnChanged; it never mutates its own value.
func ExampleCheckbox() {
	// checked := false
	//
	// headless.Checkbox{
	//     Label: "Subscribe",
	//     Value: headless.CheckStateOf(checked),
	//     OnChanged: func(next headless.CheckState) {
	//         checked = next == headless.Checked
	//         rebuild()
	//     },
	//     Builder: func(ctx core.BuildContext, snapshot headless.CheckboxSnapshot) core.Widget {
	//         return renderCheckbox(snapshot)
	//     },
	// }
}

// This example shows a single-select listbox. The host renders from the
// snapshot; opening, highlighting, type-ahead, and committing are handled
// by the component.
func ExampleSelect() {
	// value := "apple"
	//
	// headless.Select[string]{
	//     Label: "Fruit",
	//     Value: value,
	//     Options: []headless.SelectOption[string]{
	//         {Value: "apple", Label: "Apple"},
	//         {Value: "banana", Label: "Banana"},
	//         {Value: "cherry", Label: "Cherry", Disabled: true},
	//     },
	//     OnChanged: func(next string) { value = next; rebuild() },
	//     Builder: func(ctx core.BuildContext, snapshot headless.SelectSnapshot[string]) core.Widget {
	//         return renderListbox(snapshot.Open, snapshot.HighlightedIndex)
	//     },
	// }
}

// This example shows a radio group. Each Radio reports its own value when
// selected; arrow keys move both focus and selection within the group.
func ExampleRadioGroup() {
	// size := "medium"
	//
	// headless.RadioGroup[string]{
	//     Value:     size,
	//     OnChanged: func(next string) { size = next; rebuild() },
	//     Child: core.GroupOf(
	//         headless.Radio[string]{Value: "small", Label: "Small"},
	//         headless.Radio[string]{Value: "medium", Label: "Medium"},
	//         headless.Radio[string]{Value: "large", Label: "Large"},
	//     ),
	// }
}

// This example shows a slider wired to a host gesture layer. Keyboard
// steps are built in; for pointer drags the host projects positions onto
// the track and calls the drag entry points with fractions in [0, 1].
func ExampleSlider() {
	// volume := 40.0
	//
	// headless.Slider{
	//     Min:   0,
	//     Max:   100,
	//     Value: volume,
	//     OnChanged: func(next float64) { volume = next; rebuild() },
	// }
	//
	// From the host's drag handler, with the slider's state:
	//
	//     state.HandleDragStart(fractionAlongTrack(down))
	//     state.HandleDragUpdate(fractionAlongTrack(move))
	//     state.HandleDragEnd()
}
