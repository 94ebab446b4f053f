package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func boardFixture() *Board {
	return NewBoard(
		[]quiz.DraggableItem{{ID: "7", Text: "Rome"}, {ID: "9", Text: "Oslo"}, {ID: "4", Text: "Lima"}},
		[]quiz.DropTarget{{ID: "it", Text: "Italy", ExpectedItemID: "7"}, {ID: "no", Text: "Norway", ExpectedItemID: "9"}},
	)
}

// checkBoardInvariant fails unless every item is in exactly one place.
func checkBoardInvariant(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[string]int)
	for _, id := range b.Available() {
		seen[id]++
	}
	for _, target := range b.Targets() {
		if id, ok := b.Occupant(target.ID); ok {
			seen[id]++
		}
	}
	for _, it := range b.Items() {
		if seen[it.ID] != 1 {
			t.Fatalf("item %s appears %d times (available=%v value=%v)", it.ID, seen[it.ID], b.Available(), b.Value())
		}
	}
	if len(seen) != len(b.Items()) {
		t.Fatalf("board holds %d distinct ids, want %d", len(seen), len(b.Items()))
	}
}

func TestBoard_DisplacedItemReturnsToAvailable(t *testing.T) {
	b := boardFixture()

	if err := b.Place("7", "it"); err != nil {
		t.Fatal(err)
	}
	if !b.TargetCorrect("it") {
		t.Error("target should be correct after placing 7")
	}
	if err := b.Place("9", "it"); err != nil {
		t.Fatal(err)
	}

	if b.TargetCorrect("it") {
		t.Error("target should be incorrect after 9 displaced 7")
	}
	if got, want := b.Available(), []string{"7", "4"}; !slices.Equal(got, want) {
		t.Errorf("available = %v, want %v", got, want)
	}
	checkBoardInvariant(t, b)
}

func TestBoard_MoveBetweenTargets(t *testing.T) {
	b := boardFixture()
	_ = b.Place("7", "it")
	_ = b.Place("7", "no")

	if _, ok := b.Occupant("it"); ok {
		t.Error("item should have left its previous target")
	}
	if target, _ := b.TargetOf("7"); target != "no" {
		t.Errorf("TargetOf(7) = %q, want no", target)
	}
	checkBoardInvariant(t, b)
}

func TestBoard_UnplaceAndReset(t *testing.T) {
	b := boardFixture()
	_ = b.Place("4", "it")
	_ = b.Place("9", "no")

	if err := b.Unplace("it"); err != nil {
		t.Fatal(err)
	}
	if err := b.Unplace("it"); err != nil {
		t.Fatalf("unplacing an empty target should be a no-op: %v", err)
	}
	if got, want := b.Available(), []string{"7", "4"}; !slices.Equal(got, want) {
		t.Errorf("available = %v, want %v", got, want)
	}

	b.Reset()
	if got := b.Available(); len(got) != 3 {
		t.Errorf("after reset available = %v", got)
	}
	if len(b.Value().Placements) != 0 {
		t.Errorf("after reset placements = %v", b.Value().Placements)
	}
}

func TestBoard_UnknownIDs(t *testing.T) {
	b := boardFixture()
	if err := b.Place("x", "it"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Place unknown item: %v", err)
	}
	if err := b.Place("7", "x"); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("Place unknown target: %v", err)
	}
	if err := b.Unplace("x"); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("Unplace unknown target: %v", err)
	}
	checkBoardInvariant(t, b)
}

func TestBoard_RandomOperationsKeepInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b := boardFixture()
	items := []string{"7", "9", "4"}
	targets := []string{"it", "no"}

	for i := 0; i < 2000; i++ {
		switch r.IntN(5) {
		case 0:
			_ = b.Unplace(targets[r.IntN(len(targets))])
		case 1:
			if r.IntN(20) == 0 {
				b.Reset()
			}
		default:
			_ = b.Place(items[r.IntN(len(items))], targets[r.IntN(len(targets))])
		}
		checkBoardInvariant(t, b)
	}
}

func TestBoard_Restore(t *testing.T) {
	b := boardFixture()
	b.Restore(quiz.MappingValue{Placements: map[string]string{"7": "it", "9": "missing", "4": "no"}})

	if id, _ := b.Occupant("it"); id != "7" {
		t.Errorf("it holds %q", id)
	}
	if id, _ := b.Occupant("no"); id != "4" {
		t.Errorf("no holds %q", id)
	}
	if got := b.Available(); !slices.Equal(got, []string{"9"}) {
		t.Errorf("available = %v", got)
	}
	checkBoardInvariant(t, b)
}

func TestSequence_ScenarioB(t *testing.T) {
	s := NewSequence([]quiz.OrderableItem{
		{ID: "1", Text: "one", CorrectPosition: 1},
		{ID: "2", Text: "two", CorrectPosition: 0},
	})

	if !s.MoveUp(1) {
		t.Fatal("MoveUp(1) should move")
	}
	if got := s.IDs(); !slices.Equal(got, []string{"2", "1"}) {
		t.Errorf("IDs = %v, want [2 1]", got)
	}
	for p := 0; p < s.Len(); p++ {
		if s.Item(p).CorrectPosition != p {
			t.Errorf("position %d holds item %s", p, s.Item(p).ID)
		}
	}
}

func TestSequence_BoundaryMovesAreNoOps(t *testing.T) {
	s := NewSequence([]quiz.OrderableItem{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	if s.MoveUp(0) {
		t.Error("MoveUp(0) moved")
	}
	if s.MoveDown(2) {
		t.Error("MoveDown(last) moved")
	}
	if s.MoveUp(7) || s.MoveDown(-1) {
		t.Error("out of range move reported success")
	}
	if got := s.IDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("IDs = %v", got)
	}
}

func TestSequence_RandomMovesArePermutations(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	initial := []string{"a", "b", "c", "d", "e"}
	var items []quiz.OrderableItem
	for i, id := range initial {
		items = append(items, quiz.OrderableItem{ID: id, CorrectPosition: i})
	}
	s := NewSequence(items)

	for i := 0; i < 1000; i++ {
		idx := r.IntN(7) - 1
		if r.IntN(2) == 0 {
			s.MoveUp(idx)
		} else {
			s.MoveDown(idx)
		}
		if !IsPermutation(initial, s.IDs()) {
			t.Fatalf("step %d: %v is not a permutation of %v", i, s.IDs(), initial)
		}
	}

	s.Reset()
	if !slices.Equal(s.IDs(), initial) {
		t.Errorf("after reset IDs = %v", s.IDs())
	}
}

func TestSequence_Restore(t *testing.T) {
	s := NewSequence([]quiz.OrderableItem{{ID: "a"}, {ID: "b"}})
	if s.Restore(quiz.SequenceValue{IDs: []string{"a", "a"}}) {
		t.Error("restored a non-permutation")
	}
	if !s.Restore(quiz.SequenceValue{IDs: []string{"b", "a"}}) {
		t.Error("rejected a valid permutation")
	}
	if got := s.IDs(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("IDs = %v", got)
	}
}

func TestMatchText(t *testing.T) {
	answers := []quiz.ReferenceAnswer{{ID: "1", Value: "madrid"}, {ID: "2", Value: "  Ciudad de México "}}
	tests := []struct {
		input string
		want  bool
	}{
		{"  Madrid ", true},
		{"MADRID", true},
		{"ciudad de méxico", true},
		{"Madri", false},
		{"Ma drid", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := MatchText(tt.input, answers); got != tt.want {
			t.Errorf("MatchText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestChoiceSet(t *testing.T) {
	opts := []quiz.Option{{ID: "1", Text: "A"}, {ID: "2", Text: "B", IsCorrect: true}, {ID: "3", Text: "C"}}

	single := NewChoiceSet(opts, false)
	_ = single.Select("1")
	_ = single.Select("2")
	if v := single.Value(); v != (quiz.SingleValue{ID: "2"}) {
		t.Errorf("single value = %#v", v)
	}
	if err := single.Select("9"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Select unknown: %v", err)
	}

	multi := NewChoiceSet(opts, true)
	_ = multi.Select("3")
	_ = multi.Select("1")
	_ = multi.Select("3")
	if got := multi.Selected(); !slices.Equal(got, []string{"1"}) {
		t.Errorf("multi selected = %v", got)
	}

	multi.Restore(quiz.SetValue{IDs: []string{"3", "2", "nope"}})
	if got := multi.Selected(); !slices.Equal(got, []string{"2", "3"}) {
		t.Errorf("restored selection = %v", got)
	}
}
