package service

import (
	"math/rand"

	"github.com/lshigami/scribeset/internal/model"
)

// RandomSource yields floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// PromptSelector picks prompts at random, favouring high priority prompts that
// have collected few submissions so far.
type PromptSelector struct {
	rnd RandomSource
}

// NewPromptSelector returns a selector drawing from rnd, or from the
// process-wide source when rnd is nil.
func NewPromptSelector(rnd RandomSource) *PromptSelector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &PromptSelector{rnd: rnd}
}

// PromptWeight is priority / (submission_count + 1).
func PromptWeight(p model.PromptWithCount) float64 {
	return float64(p.Priority) / float64(p.SubmissionCount+1)
}

// Select makes a single weighted draw over prompts.
func (s *PromptSelector) Select(prompts []model.PromptWithCount) (*model.PromptWithCount, error) {
	if len(prompts) == 0 {
		return nil, ErrNotFound
	}

	weights := make([]float64, len(prompts))
	var total float64
	for i, p := range prompts {
		w := PromptWeight(p)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}

	// all weights zero: fall back to a uniform draw
	if total <= 0 {
		idx := int(s.rnd.Float64() * float64(len(prompts)))
		if idx >= len(prompts) {
			idx = len(prompts) - 1
		}
		return &prompts[idx], nil
	}

	target := s.rnd.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return &prompts[i], nil
		}
	}
	// float rounding can leave target == total; pick the last weighted prompt
	for i := len(prompts) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return &prompts[i], nil
		}
	}
	return &prompts[len(prompts)-1], nil
}
