package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/logging"
)

var collectionComparer = cmp.Comparer(func(a, b *collection.Collection) bool {
	return a.Equal(b)
})

func animals(t *testing.T) *collection.Collection {
	t.Helper()
	c, err := collection.FromNodes([]collection.Node{
		collection.Item("Cat", collection.WithKey("cat")),
		collection.Item("Dog", collection.WithKey("dog")),
		collection.Item("Kangaroo", collection.WithKey("kangaroo")),
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	return c
}

func TestNew_InitialFilterUsesDefaultInput(t *testing.T) {
	m := New(animals(t), WithDefaultInputValue("C"))
	snap := m.Snapshot()

	if snap.IsOpen {
		t.Fatalf("expected closed machine")
	}
	if snap.InputValue != "C" {
		t.Fatalf("expected input C, got %q", snap.InputValue)
	}
	if diff := cmp.Diff([]collection.Key{"cat"}, snap.FilteredCollection.Keys()); diff != "" {
		t.Fatalf("filtered mismatch (-want +got):\n%s", diff)
	}

	if err := m.Open(TriggerManual, FocusNone); err != nil {
		t.Fatalf("open: %v", err)
	}
	snap = m.Snapshot()
	if !snap.IsOpen || snap.FilteredCollection.Len() != 3 {
		t.Fatalf("expected button open to list every option, got %v", snap.FilteredCollection.Keys())
	}
	if snap.InputValue != "C" {
		t.Fatalf("open must not change input, got %q", snap.InputValue)
	}
}

func TestNew_DefaultSelectedKeySeedsInput(t *testing.T) {
	m := New(animals(t), WithDefaultSelectedKey("dog"))
	snap := m.Snapshot()
	if snap.SelectedKey != "dog" || snap.InputValue != "Dog" {
		t.Fatalf("unexpected seed: %+v", snap)
	}

	var warned bool
	m = New(animals(t), WithDefaultSelectedKey("emu"), WithLogger(logging.LoggerFunc(func(logging.Event) { warned = true })))
	if m.Snapshot().SelectedKey != collection.NoKey || !warned {
		t.Fatalf("expected unknown default key to be dropped with a warning")
	}
}

func TestCommit_SelectsAndCloses(t *testing.T) {
	m := New(animals(t))
	if err := m.Open(TriggerManual, FocusNone); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := m.Commit("dog"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	snap := m.Snapshot()
	if snap.InputValue != "Dog" || snap.SelectedKey != "dog" || snap.IsOpen {
		t.Fatalf("unexpected state after commit: input=%q selected=%q open=%v", snap.InputValue, snap.SelectedKey, snap.IsOpen)
	}
}

func TestCommit_IsIdempotent(t *testing.T) {
	m := New(animals(t))
	if err := m.Commit("dog"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	first := m.Snapshot()

	if err := m.SetInputValue("Dog"); err != nil {
		t.Fatalf("set input: %v", err)
	}
	if err := m.Commit("dog"); err != nil {
		t.Fatalf("commit again: %v", err)
	}

	if diff := cmp.Diff(first, m.Snapshot(), collectionComparer); diff != "" {
		t.Fatalf("state changed (-first +second):\n%s", diff)
	}
}

func TestCommit_RejectsUnknownAndDisabledKeys(t *testing.T) {
	c, err := collection.FromNodes([]collection.Node{
		collection.Item("Cat", collection.WithKey("cat")),
		collection.Item("Emu", collection.WithKey("emu"), collection.Disabled()),
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	m := New(c)
	before := m.Snapshot()

	if err := m.Commit("zebra"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if err := m.Commit("emu"); !errors.Is(err, ErrDisabledKey) {
		t.Fatalf("expected ErrDisabledKey, got %v", err)
	}
	if diff := cmp.Diff(before, m.Snapshot(), collectionComparer); diff != "" {
		t.Fatalf("rejected commit mutated state:\n%s", diff)
	}
}

func TestCommit_DevelopmentPanics(t *testing.T) {
	m := New(animals(t), WithDevelopment(true))
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("expected ErrUnknownKey panic, got %v", r)
		}
	}()
	_ = m.Commit("zebra")
}

func TestCommit_NoKeyClearsUnlessCustomValueAllowed(t *testing.T) {
	m := New(animals(t), WithDefaultSelectedKey("cat"))
	if err := m.Commit(collection.NoKey); err != nil {
		t.Fatalf("commit none: %v", err)
	}
	if snap := m.Snapshot(); snap.InputValue != "" || snap.SelectedKey != collection.NoKey {
		t.Fatalf("expected cleared state, got %+v", snap)
	}

	m = New(animals(t), WithAllowsCustomValue(true))
	_ = m.SetInputValue("Wombat")
	if err := m.Commit(collection.NoKey); err != nil {
		t.Fatalf("commit none: %v", err)
	}
	if snap := m.Snapshot(); snap.InputValue != "Wombat" || snap.IsOpen {
		t.Fatalf("expected custom text kept and popup closed, got %+v", snap)
	}
}

func TestSetInputValue_OpenPolicies(t *testing.T) {
	cases := []struct {
		name   string
		policy OpenPolicy
		text   string
		open   bool
	}{
		{"input policy opens on text", OpenOnInput, "a", true},
		{"input policy ignores clearing", OpenOnInput, "", false},
		{"type policy opens on clearing", OpenOnType, "", true},
		{"manual policy never opens", OpenManual, "a", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(animals(t), WithDefaultInputValue("x"), WithOpenPolicy(tc.policy))
			if err := m.SetInputValue(tc.text); err != nil {
				t.Fatalf("set input: %v", err)
			}
			if got := m.Snapshot().IsOpen; got != tc.open {
				t.Fatalf("open = %v, want %v", got, tc.open)
			}
		})
	}
}

func TestSetInputValue_HighlightFollowsFilter(t *testing.T) {
	m := New(animals(t))
	_ = m.SetInputValue("a")
	snap := m.Snapshot()
	if snap.FocusedKey != "cat" {
		t.Fatalf("expected first match highlighted, got %q", snap.FocusedKey)
	}

	_ = m.MoveHighlight(DirectionNext)
	if got := m.Snapshot().FocusedKey; got != "kangaroo" {
		t.Fatalf("expected kangaroo highlighted, got %q", got)
	}

	// kangaroo survives the narrower query, so the highlight stays.
	_ = m.SetInputValue("an")
	if got := m.Snapshot().FocusedKey; got != "kangaroo" {
		t.Fatalf("expected highlight kept, got %q", got)
	}

	_ = m.SetInputValue("do")
	if got := m.Snapshot().FocusedKey; got != "dog" {
		t.Fatalf("expected highlight reassigned to dog, got %q", got)
	}

	m = New(animals(t), WithAutoHighlight(HighlightNone))
	_ = m.SetInputValue("a")
	if got := m.Snapshot().FocusedKey; got != collection.NoKey {
		t.Fatalf("expected no auto highlight, got %q", got)
	}
}

func TestSetInputValue_EmptyResultClosesOrStays(t *testing.T) {
	m := New(animals(t))
	_ = m.SetInputValue("a")
	_ = m.SetInputValue("zzz")
	snap := m.Snapshot()
	if snap.IsOpen || snap.FocusedKey != collection.NoKey {
		t.Fatalf("expected closed popup without highlight, got %+v", snap)
	}

	m = New(animals(t), WithAllowsEmptyCollection(true))
	_ = m.SetInputValue("a")
	_ = m.SetInputValue("zzz")
	snap = m.Snapshot()
	if !snap.IsOpen || !snap.Empty() || snap.FocusedKey != collection.NoKey {
		t.Fatalf("expected open empty popup without highlight, got %+v", snap)
	}
}

func TestMoveHighlight_SkipsDisabledAndHonoursWrap(t *testing.T) {
	c, err := collection.FromNodes([]collection.Node{
		collection.Item("A", collection.WithKey("a")),
		collection.Item("B", collection.WithKey("b"), collection.Disabled()),
		collection.Item("C", collection.WithKey("c")),
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}

	m := New(c)
	if err := m.MoveHighlight(DirectionNext); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}

	_ = m.Open(TriggerManual, FocusNone)
	var seen []collection.Key
	for i := 0; i < 4; i++ {
		if err := m.MoveHighlight(DirectionNext); err != nil {
			t.Fatalf("move: %v", err)
		}
		seen = append(seen, m.Snapshot().FocusedKey)
	}
	if diff := cmp.Diff([]collection.Key{"a", "c", "a", "c"}, seen); diff != "" {
		t.Fatalf("highlight sequence mismatch (-want +got):\n%s", diff)
	}

	m = New(c, WithWrapHighlight(false))
	_ = m.Open(TriggerManual, FocusLast)
	_ = m.MoveHighlight(DirectionNext)
	if got := m.Snapshot().FocusedKey; got != "c" {
		t.Fatalf("expected bounded highlight to stay on c, got %q", got)
	}
	_ = m.MoveHighlight(DirectionFirst)
	if got := m.Snapshot().FocusedKey; got != "a" {
		t.Fatalf("expected first, got %q", got)
	}
}

func TestMoveHighlight_NoOpWhenEmpty(t *testing.T) {
	m := New(animals(t), WithAllowsEmptyCollection(true))
	_ = m.SetInputValue("zzz")
	before := m.Snapshot()
	if err := m.MoveHighlight(DirectionNext); err != nil {
		t.Fatalf("move: %v", err)
	}
	if m.Snapshot().Revision != before.Revision {
		t.Fatalf("expected no transition")
	}
}

func TestClose_RevertOnClose(t *testing.T) {
	m := New(animals(t), WithRevertOnClose(true), WithDefaultSelectedKey("dog"))
	_ = m.SetInputValue("Ca")
	if snap := m.Snapshot(); !snap.IsOpen || snap.FilteredCollection.Len() != 1 {
		t.Fatalf("expected open filtered popup, got %+v", snap)
	}

	_ = m.Close()
	_ = m.Open(TriggerInput, FocusNone)
	snap := m.Snapshot()
	if snap.InputValue != "Dog" {
		t.Fatalf("expected input reverted to Dog, got %q", snap.InputValue)
	}
	if !snap.FilteredCollection.Equal(snap.Collection) {
		t.Fatalf("expected full collection after revert, got %v", snap.FilteredCollection.Keys())
	}
	if snap.FocusedKey != "dog" {
		t.Fatalf("expected selected option highlighted on reopen, got %q", snap.FocusedKey)
	}
}

func TestClose_WithoutRevertKeepsText(t *testing.T) {
	m := New(animals(t))
	_ = m.SetInputValue("Ca")
	_ = m.Close()
	snap := m.Snapshot()
	if snap.InputValue != "Ca" || snap.IsOpen || snap.FocusedKey != collection.NoKey {
		t.Fatalf("unexpected state after close: %+v", snap)
	}
}

func TestCommitHighlightedAndBlur(t *testing.T) {
	m := New(animals(t))
	_ = m.SetInputValue("kan")
	if err := m.CommitHighlighted(); err != nil {
		t.Fatalf("commit highlighted: %v", err)
	}
	if snap := m.Snapshot(); snap.SelectedKey != "kangaroo" || snap.InputValue != "Kangaroo" {
		t.Fatalf("unexpected state: %+v", snap)
	}

	_ = m.SetInputValue("Kang")
	_ = m.Blur()
	if snap := m.Snapshot(); snap.InputValue != "Kangaroo" || snap.IsOpen {
		t.Fatalf("expected blur to revert text, got %+v", snap)
	}

	m = New(animals(t), WithAllowsCustomValue(true), WithDefaultSelectedKey("cat"))
	_ = m.Focus()
	_ = m.SetInputValue("Catz")
	_ = m.Blur()
	snap := m.Snapshot()
	if snap.InputValue != "Catz" || snap.SelectedKey != collection.NoKey || snap.IsFocused {
		t.Fatalf("expected custom value committed, got %+v", snap)
	}
}

func TestFocus_OpenOnFocus(t *testing.T) {
	m := New(animals(t), WithOpenOnFocus(true))
	_ = m.Focus()
	snap := m.Snapshot()
	if !snap.IsOpen || snap.OpenTrigger != TriggerFocus || !snap.IsFocused {
		t.Fatalf("expected focus to open popup, got %+v", snap)
	}
}

func TestHighlight(t *testing.T) {
	m := New(animals(t))
	if err := m.Highlight("dog"); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
	_ = m.SetInputValue("a")
	if err := m.Highlight("dog"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected filtered-out key to be rejected, got %v", err)
	}
	if err := m.Highlight("kangaroo"); err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if got := m.Snapshot().FocusedKey; got != "kangaroo" {
		t.Fatalf("expected kangaroo, got %q", got)
	}
}

func TestSetCollection_ValueEqualIsNotDirty(t *testing.T) {
	m := New(animals(t), WithDefaultSelectedKey("dog"))
	var calls int
	m.Subscribe(func(Snapshot) { calls++ })

	if err := m.SetCollection(animals(t)); err != nil {
		t.Fatalf("set collection: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected value-equal collection to be ignored")
	}

	smaller, _ := collection.FromNodes([]collection.Node{collection.Item("Cat", collection.WithKey("cat"))})
	if err := m.SetCollection(smaller); err != nil {
		t.Fatalf("set collection: %v", err)
	}
	snap := m.Snapshot()
	if calls != 1 || snap.SelectedKey != collection.NoKey {
		t.Fatalf("expected replacement to clear missing selection, calls=%d snap=%+v", calls, snap)
	}
}

func TestSubscribe_OrderedDelivery(t *testing.T) {
	m := New(animals(t))
	var revisions []uint64
	m.Subscribe(func(s Snapshot) {
		revisions = append(revisions, s.Revision)
		if s.Revision == 1 {
			// Nested transition: must be delivered after this one completes.
			_ = m.Close()
		}
	})
	var second []uint64
	unsubscribe := m.Subscribe(func(s Snapshot) { second = append(second, s.Revision) })

	_ = m.SetInputValue("a")
	if diff := cmp.Diff([]uint64{1, 2}, revisions); diff != "" {
		t.Fatalf("first subscriber order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{1, 2}, second); diff != "" {
		t.Fatalf("second subscriber order (-want +got):\n%s", diff)
	}

	unsubscribe()
	_ = m.SetInputValue("d")
	if len(second) != 2 {
		t.Fatalf("expected unsubscribed observer to stay silent")
	}
}

func towns(t *testing.T) *collection.Collection {
	t.Helper()
	c, err := collection.FromNodes([]collection.Node{
		collection.Item("Springfield", collection.WithKey("springfield-il")),
		collection.Item("Springfield", collection.WithKey("springfield-mo")),
		collection.Item("Shelbyville", collection.WithKey("shelbyville")),
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	return c
}

func TestCommit_SharedTextValueKeepsKey(t *testing.T) {
	const want = collection.Key("springfield-mo")
	assertSelected := func(t *testing.T, m *Machine, step string) {
		t.Helper()
		snap := m.Snapshot()
		if snap.SelectedKey != want || snap.InputValue != "Springfield" {
			t.Fatalf("%s: selected=%q input=%q", step, snap.SelectedKey, snap.InputValue)
		}
	}

	for _, custom := range []bool{false, true} {
		m := New(towns(t), WithAllowsCustomValue(custom))
		if err := m.Commit(want); err != nil {
			t.Fatalf("commit: %v", err)
		}
		assertSelected(t, m, "commit")

		if err := m.Focus(); err != nil {
			t.Fatalf("focus: %v", err)
		}
		if err := m.Blur(); err != nil {
			t.Fatalf("blur: %v", err)
		}
		assertSelected(t, m, "blur")

		if err := m.CommitHighlighted(); err != nil {
			t.Fatalf("commit without highlight: %v", err)
		}
		assertSelected(t, m, "commit without highlight")

		if err := m.Open(TriggerManual, FocusNone); err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := m.Highlight(want); err != nil {
			t.Fatalf("highlight: %v", err)
		}
		if err := m.CommitHighlighted(); err != nil {
			t.Fatalf("commit highlighted: %v", err)
		}
		assertSelected(t, m, "commit highlighted")

		if err := m.Open(TriggerManual, FocusNone); err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if err := m.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		assertSelected(t, m, "close")
	}
}
