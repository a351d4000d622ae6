package chart

import (
	"errors"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

// Palace role names in ring order starting from the Ming palace.
const (
	RoleMing     = "命宫"
	RoleParents  = "父母"
	RoleFortune  = "福德"
	RoleProperty = "田宅"
	RoleCareer   = "官禄"
	RoleFriends  = "仆役"
	RoleTravel   = "迁移"
	RoleHealth   = "疾厄"
	RoleWealth   = "财帛"
	RoleChildren = "子女"
	RoleSpouse   = "夫妻"
	RoleSiblings = "兄弟"

	// ShenSuffix forms the combined label when the Shen palace coincides
	// with an eligible role.
	ShenSuffix = "·身宫"
)

// roleRing lists the twelve roles in the order they are laid out from the
// Ming palace, one ring step at a time.
var roleRing = [config.PalaceCount]string{
	RoleMing, RoleParents, RoleFortune, RoleProperty,
	RoleCareer, RoleFriends, RoleTravel, RoleHealth,
	RoleWealth, RoleChildren, RoleSpouse, RoleSiblings,
}

// shenEligibleRoles are the roles that take the combined Shen label. The
// Shen palace can only ever land on one of these (its offset from Ming is
// always even), with 命宫 handled through the IsShen flag alone.
var shenEligibleRoles = map[string]bool{
	RoleSpouse:  true,
	RoleWealth:  true,
	RoleTravel:  true,
	RoleCareer:  true,
	RoleFortune: true,
}

// MingIndex computes the self palace position from the resolved indices.
func MingIndex(ind Indices) int {
	return calendar.Mod12(14 + ind.MonthIndex - ind.TimeIndex)
}

// ShenIndex computes the body palace position from the resolved indices.
func ShenIndex(ind Indices) int {
	return calendar.Mod12(14 + ind.MonthIndex + ind.TimeIndex)
}

// AssignPalaces lays the twelve palace roles around the ring anchored at
// Ming, flags the Ming and Shen positions, and derives every palace stem
// from the lunar year via the five-tigers rule. Missing lunar data aborts
// the chart: every later stage depends on all twelve palaces existing.
func AssignPalaces(ind Indices, lunarYear int) ([]Palace, int, int, error) {
	if lunarYear == 0 {
		return nil, 0, 0, errors.New(config.ErrLunarMissing)
	}

	ming := MingIndex(ind)
	shen := ShenIndex(ind)

	palaces := make([]Palace, config.PalaceCount)
	for step := 0; step < config.PalaceCount; step++ {
		idx := calendar.Mod12(ming + step)
		role := roleRing[step]
		isShen := idx == shen
		if isShen && shenEligibleRoles[role] {
			role += ShenSuffix
		}

		stemIdx := palaceStemIndex(ind.YearStemIndex, idx)
		palaces[idx] = Palace{
			Index:     idx,
			Role:      role,
			IsMing:    idx == ming,
			IsShen:    isShen,
			Stem:      calendar.HeavenlyStems[stemIdx],
			StemIndex: stemIdx,
			Branch:    calendar.EarthlyBranches[idx],
		}
	}

	return palaces, ming, shen, nil
}

// palaceStemIndex derives a palace's heavenly stem from the year stem.
// The 寅 palace opens the sequence (五虎遁); 子 and 丑 continue it after 亥.
func palaceStemIndex(yearStemIndex, palaceIndex int) int {
	start := calendar.Mod10((yearStemIndex%5)*2 + 2)
	offset := calendar.Mod12(palaceIndex - config.TigerPalaceIndex)
	return calendar.Mod10(start + offset)
}

// Loci derives the five-element bureau number (2..6) from the melodic
// element of the Ming palace's stem-branch pair.
func Loci(palaces []Palace, mingIndex int) (int, error) {
	if len(palaces) != config.PalaceCount {
		return 0, errors.New(config.ErrLunarMissing)
	}
	ming := palaces[mingIndex]

	switch calendar.NayinElement(ming.StemIndex, ming.Index) {
	case calendar.ElementWater:
		return 2, nil
	case calendar.ElementWood:
		return 3, nil
	case calendar.ElementMetal:
		return 4, nil
	case calendar.ElementEarth:
		return 5, nil
	case calendar.ElementFire:
		return 6, nil
	}
	return 0, errors.New(config.ErrLociRange)
}

// MigrationIndex locates the 迁移 palace, a hard precondition for the
// flanker stars. It sits directly opposite Ming on the ring.
func MigrationIndex(palaces []Palace, mingIndex int) (int, error) {
	idx := calendar.Mod12(mingIndex + 6)
	if len(palaces) != config.PalaceCount || palaces[idx].Branch == "" {
		return 0, errors.New(config.ErrMigrationMissing)
	}
	return idx, nil
}
