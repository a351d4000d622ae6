package chart

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
	"github.com/tartampluch/go-ziwei/internal/star"
)

// AnnualOverlay computes the cycle stars and mutations of one calendar
// year against an existing chart. The year anchors on its own stem and
// branch; the overlay palace is the year-branch palace. The same star and
// mutation resolvers serve the natal chart, the decades and the years.
func AnnualOverlay(result *ChartResult, lunarYear int, variantSelections map[string]string) (DecadeOverlay, error) {
	if lunarYear < config.MinYear || lunarYear > config.MaxYear {
		return DecadeOverlay{}, fmt.Errorf("%s: %d", config.ErrYearRange, lunarYear)
	}
	if result == nil || len(result.Palaces) != config.PalaceCount {
		return DecadeOverlay{}, errors.New(config.ErrLunarMissing)
	}

	stemIdx := calendar.YearStemIndex(lunarYear)
	branchIdx := calendar.YearBranchIndex(lunarYear)

	mutations, err := star.ResolveIndex(stemIdx, variantSelections)
	if err != nil {
		return DecadeOverlay{}, err
	}

	return DecadeOverlay{
		Sequence:    lunarYear - result.Lunar.Year,
		PalaceIndex: branchIdx,
		Stem:        calendar.HeavenlyStems[stemIdx],
		Branch:      calendar.EarthlyBranches[branchIdx],
		Stars:       star.CycleStars(stemIdx, branchIdx),
		Mutations:   mutations,
	}, nil
}
