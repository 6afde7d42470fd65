package xstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestPopStdDev(t *testing.T) {
	assert.InDelta(t, 0.0, PopStdDev([]float64{5, 5, 5}), 1e-9)
	// population stddev of {2,4,4,4,5,5,7,9} is 2.0
	assert.InDelta(t, 2.0, PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestMeanMinusStdDev(t *testing.T) {
	values := []float64{100, 100, 100}
	assert.InDelta(t, 100.0, MeanMinusStdDev(values), 1e-9)
}
