package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

func TestDeriveIndices_LeapPolicies(t *testing.T) {
	leap := func(day int) calendar.LunarDate {
		return calendar.LunarDate{Year: 2023, Month: 2, Day: day, IsLeap: true, TimeIndex: 3}
	}

	testCases := []struct {
		name      string
		ld        calendar.LunarDate
		policy    string
		wantMonth int
	}{
		{"regular month ignores policy", calendar.LunarDate{Year: 2023, Month: 2, Day: 20, TimeIndex: 3}, config.LeapPolicyNext, 1},
		{"current keeps duplicated month", leap(20), config.LeapPolicyCurrent, 1},
		{"next always advances", leap(3), config.LeapPolicyNext, 2},
		{"mid before pivot stays", leap(14), config.LeapPolicyMid, 1},
		{"mid on pivot day stays", leap(config.LeapSplitDay), config.LeapPolicyMid, 1},
		{"mid after pivot advances", leap(config.LeapSplitDay + 1), config.LeapPolicyMid, 2},
		{"empty policy behaves like mid", leap(20), "", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ind, err := DeriveIndices(tc.ld, tc.policy)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantMonth, ind.MonthIndex)
			assert.Equal(t, 3, ind.TimeIndex)
		})
	}
}

func TestDeriveIndices_LeapTwelveWrapsToZero(t *testing.T) {
	// A leap twelfth month pushed to "next" must wrap to the first month.
	ld := calendar.LunarDate{Year: 2033, Month: 12, Day: 5, IsLeap: true}

	ind, err := DeriveIndices(ld, config.LeapPolicyNext)

	assert.NoError(t, err)
	assert.Equal(t, 0, ind.MonthIndex)
}

func TestDeriveIndices_Rejections(t *testing.T) {
	// Scenario: incomplete lunar data must abort before index math.
	_, err := DeriveIndices(calendar.LunarDate{}, config.LeapPolicyMid)
	assert.Error(t, err)

	// Scenario: an unknown policy on a leap date is a hard error.
	leap := calendar.LunarDate{Year: 2023, Month: 2, Day: 5, IsLeap: true}
	_, err = DeriveIndices(leap, "always")
	assert.Error(t, err)
}

func TestDeriveIndices_YearPillars(t *testing.T) {
	ind, err := DeriveIndices(calendar.LunarDate{Year: 1984, Month: 1, Day: 1}, config.LeapPolicyMid)

	assert.NoError(t, err)
	assert.Equal(t, 0, ind.YearStemIndex, "1984 is a 甲 year")
	assert.Equal(t, 0, ind.YearBranchIndex, "1984 is a 子 year")
}

func TestRotationClockwise(t *testing.T) {
	testCases := []struct {
		name    string
		gender  string
		stemIdx int
		want    bool
	}{
		{"yang year male", config.GenderMale, 0, true},
		{"yin year male", config.GenderMale, 5, false},
		{"yang year female", config.GenderFemale, 6, false},
		{"yin year female", config.GenderFemale, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RotationClockwise(tc.gender, tc.stemIdx))
		})
	}
}
