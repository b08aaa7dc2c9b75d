package core

import "testing"

func statefulLeaf(states *[]*testState, label string, log *[]string) testStatefulWidget {
	return testStatefulWidget{
		createStateFn: func() State {
			s := &testState{
				buildFn: func(ctx BuildContext) Widget {
					*log = append(*log, label)
					return nil
				},
			}
			*states = append(*states, s)
			return s
		},
	}
}

func TestGroup_MountsChildrenInOrder(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
		statefulLeaf(&states, "b", &log),
		statefulLeaf(&states, "c", &log),
	)).(*MultiChildElement)

	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Errorf("expected children to build in order, got %v", log)
	}
	if len(element.children) != 3 {
		t.Errorf("expected 3 child elements, got %d", len(element.children))
	}
}

func TestGroup_UpdateReusesChildren(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
		statefulLeaf(&states, "b", &log),
	)).(*MultiChildElement)

	before := append([]Element(nil), element.children...)

	element.Update(GroupOf(
		statefulLeaf(&states, "a2", &log),
		statefulLeaf(&states, "b2", &log),
	))
	element.RebuildIfNeeded()

	if len(element.children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(element.children))
	}
	for i := range before {
		if element.children[i] != before[i] {
			t.Errorf("expected child %d to be reused", i)
		}
	}
	// Reused elements keep their original state.
	if len(states) != 2 {
		t.Errorf("expected no new states, got %d", len(states))
	}
}

func TestGroup_RemovingChildren_UnmountsTrailing(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
		statefulLeaf(&states, "b", &log),
		statefulLeaf(&states, "c", &log),
	)).(*MultiChildElement)

	element.Update(GroupOf(
		statefulLeaf(&states, "a", &log),
	))
	element.RebuildIfNeeded()

	if len(element.children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(element.children))
	}
	if states[0].IsDisposed() {
		t.Error("expected the kept child's state to survive")
	}
	if !states[1].IsDisposed() || !states[2].IsDisposed() {
		t.Error("expected removed children to be disposed")
	}
}

func TestGroup_TypeChange_Remounts(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
	)).(*MultiChildElement)

	element.Update(GroupOf(
		testStatelessWidget{},
	))
	element.RebuildIfNeeded()

	if !states[0].IsDisposed() {
		t.Error("expected the replaced child's state to be disposed")
	}
	if _, ok := element.children[0].(*StatelessElement); !ok {
		t.Errorf("expected a StatelessElement, got %T", element.children[0])
	}
}

func TestGroup_Unmount_DisposesAll(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
		statefulLeaf(&states, "b", &log),
	)).(*MultiChildElement)

	element.Unmount()
	for i, s := range states {
		if !s.IsDisposed() {
			t.Errorf("expected child %d to be disposed at unmount", i)
		}
	}
	if len(element.children) != 0 {
		t.Errorf("expected no children after unmount, got %d", len(element.children))
	}
}

func TestGroup_VisitChildren_StopsEarly(t *testing.T) {
	var states []*testState
	var log []string

	owner := NewBuildOwner()
	element := owner.MountRoot(GroupOf(
		statefulLeaf(&states, "a", &log),
		statefulLeaf(&states, "b", &log),
		statefulLeaf(&states, "c", &log),
	)).(*MultiChildElement)

	visited := 0
	element.VisitChildren(func(e Element) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("expected the visit to stop after the first child, got %d", visited)
	}
}
