package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

func TestBuildLifeCycle_DecadeSpans(t *testing.T) {
	plan, err := BuildLifeCycle(4, 6, true)
	require.NoError(t, err)
	require.Len(t, plan.MajorCycles, config.PalaceCount)

	// The first decade starts at the bureau number, on the Ming palace.
	first := plan.MajorCycles[0]
	assert.Equal(t, 4, first.StartAge)
	assert.Equal(t, 13, first.EndAge)
	assert.Equal(t, 6, first.PalaceIndex)

	// Decades tile without gaps and step one palace clockwise.
	for i := 1; i < config.PalaceCount; i++ {
		prev, cur := plan.MajorCycles[i-1], plan.MajorCycles[i]
		assert.Equal(t, prev.EndAge+1, cur.StartAge)
		assert.Equal(t, calendar.Mod12(prev.PalaceIndex+1), cur.PalaceIndex)
		assert.Equal(t, i, cur.Sequence)
	}
}

func TestBuildLifeCycle_CounterClockwise(t *testing.T) {
	plan, err := BuildLifeCycle(2, 0, false)
	require.NoError(t, err)

	assert.Equal(t, 0, plan.MajorCycles[0].PalaceIndex)
	assert.Equal(t, 11, plan.MajorCycles[1].PalaceIndex)
	assert.Equal(t, 10, plan.MajorCycles[2].PalaceIndex)
}

func TestBuildLifeCycle_TwelveStages(t *testing.T) {
	testCases := []struct {
		name      string
		loci      int
		wantStart int
	}{
		{"water starts at shen", 2, 8},
		{"wood starts at hai", 3, 11},
		{"metal starts at si", 4, 5},
		{"earth starts at shen", 5, 8},
		{"fire starts at yin", 6, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := BuildLifeCycle(tc.loci, 0, true)
			require.NoError(t, err)
			require.Len(t, plan.TwelveStages, config.PalaceCount)

			assert.Equal(t, TwelveStageNames[0], plan.TwelveStages[tc.wantStart])
			assert.Equal(t, TwelveStageNames[1], plan.TwelveStages[calendar.Mod12(tc.wantStart+1)])
		})
	}
}

func TestBuildLifeCycle_StagesReverseWithRotation(t *testing.T) {
	cw, err := BuildLifeCycle(6, 0, true)
	require.NoError(t, err)
	ccw, err := BuildLifeCycle(6, 0, false)
	require.NoError(t, err)

	// Both rotations share the 长生 origin; the next stage flips sides.
	assert.Equal(t, TwelveStageNames[0], cw.TwelveStages[2])
	assert.Equal(t, TwelveStageNames[0], ccw.TwelveStages[2])
	assert.Equal(t, TwelveStageNames[1], cw.TwelveStages[3])
	assert.Equal(t, TwelveStageNames[1], ccw.TwelveStages[1])
}

func TestBuildLifeCycle_RejectsUnknownBureau(t *testing.T) {
	_, err := BuildLifeCycle(7, 0, true)

	assert.Error(t, err)
}
