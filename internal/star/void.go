package star

// jiekongBases gives the lower palace of the 截空 pair per year-stem
// pairing (甲己→申酉, 乙庚→午未, 丙辛→辰巳, 丁壬→寅卯, 戊癸→子丑),
// indexed by stem mod 5.
var jiekongBases = [5]int{8, 6, 4, 2, 0}

// JiekongPair computes the 截空 void pair for a year stem and
// disambiguates it against the year branch.
func JiekongPair(yearStemIndex, yearBranchIndex int) VoidPlacement {
	base := jiekongBases[yearStemIndex%5]
	return disambiguate(NameJiekong, base, yearBranchIndex)
}

// XunkongPair computes the 旬空 void pair: the two branches left uncovered
// by the ten-year decade the birth year belongs to.
func XunkongPair(yearStemIndex, yearBranchIndex int) VoidPlacement {
	base := mod12(yearBranchIndex - yearStemIndex + 10)
	return disambiguate(NameXunkong, base, yearBranchIndex)
}

// disambiguate labels the pair member whose branch polarity matches the
// birth-year branch as primary and the other as deputy. Adjacent ring
// positions always differ in polarity, so exactly one member matches.
func disambiguate(name string, base, yearBranchIndex int) VoidPlacement {
	first := base
	second := mod12(base + 1)

	v := VoidPlacement{
		Name:      name,
		Positions: [2]int{first, second},
	}
	if first%2 == yearBranchIndex%2 {
		v.Primary = first
		v.Deputy = second
	} else {
		v.Primary = second
		v.Deputy = first
	}
	return v
}

// VoidPairs returns both void pairs for a birth year.
func VoidPairs(yearStemIndex, yearBranchIndex int) []VoidPlacement {
	return []VoidPlacement{
		JiekongPair(yearStemIndex, yearBranchIndex),
		XunkongPair(yearStemIndex, yearBranchIndex),
	}
}
