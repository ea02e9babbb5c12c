package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeasible(t *testing.T) {
	constraints := []Constraint{{1, 1, 4}, {1, 0, 3}}
	slack := DefaultTolerance.Slack

	assert.True(t, Feasible(Point{0, 0}, constraints, slack))
	assert.True(t, Feasible(Point{3, 1}, constraints, slack))
	assert.False(t, Feasible(Point{3.5, 0}, constraints, slack))
	assert.False(t, Feasible(Point{2, 3}, constraints, slack))

	t.Run("boundary slack", func(t *testing.T) {
		assert.True(t, Feasible(Point{3 + 5e-10, 1 - 1e-9}, constraints, slack))
		assert.False(t, Feasible(Point{3 + 2e-9, 0}, constraints, slack))
	})

	t.Run("non-negativity", func(t *testing.T) {
		assert.True(t, Feasible(Point{-5e-10, 0}, constraints, slack))
		assert.True(t, Feasible(Point{0, -5e-10}, constraints, slack))
		assert.False(t, Feasible(Point{-2e-9, 0}, constraints, slack))
		assert.False(t, Feasible(Point{0, -2e-9}, constraints, slack))
		assert.False(t, Feasible(Point{0, -2e-9}, nil, slack))
	})
}

func TestFeasible_NaN(t *testing.T) {
	constraints := []Constraint{{1, 1, 4}}
	slack := DefaultTolerance.Slack
	assert.False(t, Feasible(Point{math.NaN(), 1}, constraints, slack))
	assert.False(t, Feasible(Point{1, math.NaN()}, constraints, slack))
	assert.False(t, Feasible(Point{math.NaN(), 0}, nil, slack))
	// Infinite lhs against a finite bound
	assert.False(t, Feasible(Point{math.Inf(1), 0}, constraints, slack))
}

func TestFilterFeasible(t *testing.T) {
	constraints := []Constraint{{1, 1, 4}}
	points := []Point{{5, 0}, {0, 4}, {-1, 1}, {1, 1}, {2, 2}}
	assert.Equal(t, []Point{{0, 4}, {1, 1}, {2, 2}}, FilterFeasible(points, constraints, DefaultTolerance.Slack))
	assert.Empty(t, FilterFeasible(nil, constraints, DefaultTolerance.Slack))
}

func TestDedupe(t *testing.T) {
	eps := DefaultTolerance.Merge
	points := []Point{
		{1, 1},
		{1 + 5e-8, 1 - 5e-8}, // merged into the first
		{1, 1 + 2e-7},        // too far on y
		{2, 2},
		{1 + 2e-7, 1}, // too far on x
		{2, 2},
	}
	assert.Equal(t, []Point{{1, 1}, {1, 1 + 2e-7}, {2, 2}, {1 + 2e-7, 1}}, Dedupe(points, eps))
	assert.Empty(t, Dedupe(nil, eps))

	t.Run("first of a cluster survives", func(t *testing.T) {
		deduped := Dedupe([]Point{{1 + 5e-8, 1}, {1, 1}}, eps)
		assert.Equal(t, []Point{{1 + 5e-8, 1}}, deduped)
	})

	t.Run("per axis, not euclidean", func(t *testing.T) {
		// Each axis is 9e-8 off, so the euclidean distance is over 1e-7, but
		// the points still merge.
		deduped := Dedupe([]Point{{0, 0}, {9e-8, 9e-8}}, eps)
		assert.Len(t, deduped, 1)
	})
}
