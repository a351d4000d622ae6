package chart

import (
	"errors"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

// DeriveIndices turns a LunarDate into the canonical index values. The
// leap-month policy is applied exactly once, here; every downstream
// placement formula reads the resolved MonthIndex and must not reinterpret
// the leap flag itself.
func DeriveIndices(ld calendar.LunarDate, leapPolicy string) (Indices, error) {
	if ld.Year == 0 || ld.Month < 1 || ld.Month > 12 {
		return Indices{}, errors.New(config.ErrLunarMissing)
	}

	month := ld.Month
	if ld.IsLeap {
		switch leapPolicy {
		case config.LeapPolicyCurrent:
			// Keep the duplicated month number.
		case config.LeapPolicyNext:
			month++
		case config.LeapPolicyMid, "":
			if ld.Day > config.LeapSplitDay {
				month++
			}
		default:
			return Indices{}, errors.New(config.ErrLeapPolicyValue)
		}
	}

	return Indices{
		MonthIndex:      (month - 1) % config.PalaceCount,
		TimeIndex:       ld.TimeIndex,
		YearStemIndex:   calendar.YearStemIndex(ld.Year),
		YearBranchIndex: calendar.YearBranchIndex(ld.Year),
	}, nil
}

// RotationClockwise derives the ring-stepping direction from gender and
// year polarity: yang-year males and yin-year females run clockwise.
func RotationClockwise(gender string, yearStemIndex int) bool {
	yangYear := yearStemIndex%2 == 0
	if gender == config.GenderMale {
		return yangYear
	}
	return !yangYear
}
