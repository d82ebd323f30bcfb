package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingSmoother_FirstSamplePassesThrough(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	assert.InDelta(t, 123.4, s.Smooth(123.4), 1e-9)
}

func TestHeadingSmoother_CrossesWrapForward(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	s.Smooth(350)
	got := s.Smooth(10)

	// Moving from 350 toward 10 must go forward through 360/0, never
	// backward through 180.
	inForwardArc := (got > 350 && got <= 360) || (got >= 0 && got < 10)
	assert.True(t, inForwardArc, "smoothed heading %v left the forward arc", got)
}

func TestHeadingSmoother_CrossesWrapBackward(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	s.Smooth(10)
	got := s.Smooth(350)

	inBackwardArc := (got > 350 && got <= 360) || (got >= 0 && got < 10)
	assert.True(t, inBackwardArc, "smoothed heading %v left the backward arc", got)
}

func TestHeadingSmoother_ConvergesToSteadyInput(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	s.Smooth(0)

	var got float64
	for i := 0; i < 50; i++ {
		got = s.Smooth(90)
	}
	assert.InDelta(t, 90, got, 0.01)
}

func TestHeadingSmoother_DampensJitter(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	s.Smooth(100)
	got := s.Smooth(110)

	// One step moves alpha of the way toward the new sample.
	assert.InDelta(t, 103, got, 1e-9)
}

func TestHeadingSmoother_InvalidAlphaFallsBack(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0)
	assert.InDelta(t, DefaultSmoothingAlpha, s.alpha, 1e-9)

	s = NewHeadingSmoother(1.5)
	assert.InDelta(t, DefaultSmoothingAlpha, s.alpha, 1e-9)
}

func TestHeadingSmoother_Reset(t *testing.T) {
	t.Parallel()

	s := NewHeadingSmoother(0.3)
	s.Smooth(100)
	s.Smooth(110)
	s.Reset()

	// After a reset the next sample initializes state again.
	assert.InDelta(t, 250, s.Smooth(250), 1e-9)
}
