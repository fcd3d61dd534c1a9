package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lshigami/scribeset/internal/model"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func prompt(id uint, priority int, count int64) model.PromptWithCount {
	return model.PromptWithCount{Prompt: model.Prompt{ID: id, Text: "p", Priority: priority}, SubmissionCount: count}
}

func TestSelectEmpty(t *testing.T) {
	_, err := NewPromptSelector(nil).Select(nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectReturnsMember(t *testing.T) {
	s := NewPromptSelector(rand.New(rand.NewSource(1)))
	prompts := []model.PromptWithCount{prompt(3, 1, 0), prompt(7, 4, 2), prompt(9, 2, 10)}
	members := map[uint]bool{3: true, 7: true, 9: true}
	for i := 0; i < 500; i++ {
		got, err := s.Select(prompts)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if !members[got.ID] {
			t.Fatalf("selected %d which is not in the input", got.ID)
		}
	}
}

func TestPromptWeight(t *testing.T) {
	cases := []struct {
		p    model.PromptWithCount
		want float64
	}{
		{prompt(1, 10, 0), 10},
		{prompt(1, 10, 4), 2},
		{prompt(1, 1, 1), 0.5},
	}
	for _, tc := range cases {
		if got := PromptWeight(tc.p); got != tc.want {
			t.Errorf("PromptWeight(priority=%d,count=%d) = %v, want %v", tc.p.Priority, tc.p.SubmissionCount, got, tc.want)
		}
	}
}

func TestSelectBoundaries(t *testing.T) {
	prompts := []model.PromptWithCount{prompt(1, 1, 0), prompt(2, 1, 0)}
	if got, _ := NewPromptSelector(fixedSource(0)).Select(prompts); got.ID != 1 {
		t.Fatalf("draw 0 should pick the first prompt, got %d", got.ID)
	}
	if got, _ := NewPromptSelector(fixedSource(0.75)).Select(prompts); got.ID != 2 {
		t.Fatalf("draw 0.75 should pick the second prompt, got %d", got.ID)
	}
	if got, _ := NewPromptSelector(fixedSource(1)).Select(prompts); got.ID != 2 {
		t.Fatalf("draw at the upper bound should pick the last prompt, got %d", got.ID)
	}
}

func TestSelectFavoursPriority(t *testing.T) {
	s := NewPromptSelector(rand.New(rand.NewSource(42)))
	prompts := []model.PromptWithCount{prompt(1, 10, 0), prompt(2, 1, 0)}
	counts := map[uint]int{}
	for i := 0; i < 10000; i++ {
		got, _ := s.Select(prompts)
		counts[got.ID]++
	}
	if counts[1] <= counts[2]*5 {
		t.Fatalf("expected priority 10 to dominate priority 1, got %v", counts)
	}
}

func TestSelectFavoursFewerSubmissions(t *testing.T) {
	s := NewPromptSelector(rand.New(rand.NewSource(5)))
	prompts := []model.PromptWithCount{prompt(1, 1, 9), prompt(2, 1, 0)}
	counts := map[uint]int{}
	for i := 0; i < 10000; i++ {
		got, _ := s.Select(prompts)
		counts[got.ID]++
	}
	if counts[2] <= counts[1]*4 {
		t.Fatalf("expected unsubmitted prompt to be favoured, got %v", counts)
	}
	if counts[1] == 0 {
		t.Fatal("a heavily submitted prompt must still be selectable")
	}
}

func TestSelectZeroWeightsFallsBackToUniform(t *testing.T) {
	prompts := []model.PromptWithCount{prompt(1, 0, 0), prompt(2, 0, 0)}
	got, err := NewPromptSelector(fixedSource(0.6)).Select(prompts)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected uniform fallback to pick index 1, got %d", got.ID)
	}
}
