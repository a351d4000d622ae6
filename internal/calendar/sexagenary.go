package calendar

import (
	"errors"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// HeavenlyStems lists the ten stems in cycle order (index 0 = 甲).
var HeavenlyStems = [config.StemCount]string{
	"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸",
}

// EarthlyBranches lists the twelve branches in ring order (index 0 = 子).
var EarthlyBranches = [config.PalaceCount]string{
	"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥",
}

// YearStemIndex returns the heavenly-stem index of a lunar year.
func YearStemIndex(lunarYear int) int {
	return mod(lunarYear-config.SexagenaryEpochOffset, config.StemCount)
}

// YearBranchIndex returns the earthly-branch index of a lunar year.
func YearBranchIndex(lunarYear int) int {
	return mod(lunarYear-config.SexagenaryEpochOffset, config.PalaceCount)
}

// StemIndex resolves a stem character to its cycle index.
func StemIndex(stem string) (int, error) {
	for i, s := range HeavenlyStems {
		if s == stem {
			return i, nil
		}
	}
	return 0, errors.New(config.ErrStemUnknown)
}

// BranchIndex resolves a branch character to its ring index.
func BranchIndex(branch string) (int, error) {
	for i, b := range EarthlyBranches {
		if b == branch {
			return i, nil
		}
	}
	return 0, errors.New(config.ErrBranchUnknown)
}

// SexagenaryIndex combines a stem and a branch index into the position of
// the pair within the sixty-step cycle (甲子 = 0). Only half of the stem ×
// branch combinations occur in the cycle; the formula below is exact for
// those and is only ever called with indices derived from a single year.
func SexagenaryIndex(stemIdx, branchIdx int) int {
	return mod(6*stemIdx-5*branchIdx, config.SexagenaryCount)
}

// FiveElement identifies one of the five phases.
type FiveElement int

const (
	ElementWater FiveElement = iota
	ElementWood
	ElementMetal
	ElementEarth
	ElementFire
)

// String returns the Chinese character of the element.
func (e FiveElement) String() string {
	switch e {
	case ElementWater:
		return "水"
	case ElementWood:
		return "木"
	case ElementMetal:
		return "金"
	case ElementEarth:
		return "土"
	case ElementFire:
		return "火"
	}
	return "?"
}

// nayinElements maps each pair of consecutive sexagenary positions to its
// melodic (纳音) element. Index is sexagenary index / 2.
var nayinElements = [30]FiveElement{
	ElementMetal, ElementFire, ElementWood, ElementEarth, ElementMetal, // 甲子 … 癸酉
	ElementFire, ElementWater, ElementEarth, ElementMetal, ElementWood, // 甲戌 … 癸未
	ElementWater, ElementEarth, ElementFire, ElementWood, ElementWater, // 甲申 … 癸巳
	ElementMetal, ElementFire, ElementWood, ElementEarth, ElementMetal, // 甲午 … 癸卯
	ElementFire, ElementWater, ElementEarth, ElementMetal, ElementWood, // 甲辰 … 癸丑
	ElementWater, ElementEarth, ElementFire, ElementWood, ElementWater, // 甲寅 … 癸亥
}

// NayinElement returns the melodic element of a stem-branch pair.
func NayinElement(stemIdx, branchIdx int) FiveElement {
	return nayinElements[SexagenaryIndex(stemIdx, branchIdx)/2]
}

// mod returns the non-negative remainder of a / n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Mod12 wraps an offset onto the twelve-slot ring.
func Mod12(a int) int {
	return mod(a, config.PalaceCount)
}

// Mod10 wraps an offset onto the ten-step stem cycle.
func Mod10(a int) int {
	return mod(a, config.StemCount)
}
