package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanges(t *testing.T) {
	d := Dataset{{Feature: 20, Target: 5}, {Feature: 10, Target: 9}, {Feature: 30, Target: 1}}

	lo, hi, ok := d.FeatureRange()
	assert.True(t, ok)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 30.0, hi)

	lo, hi, ok = d.TargetRange()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 9.0, hi)

	_, _, ok = Dataset{}.FeatureRange()
	assert.False(t, ok)
	_, _, ok = Dataset{}.TargetRange()
	assert.False(t, ok)
}
