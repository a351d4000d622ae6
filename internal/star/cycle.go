package star

// Stem-keyed renditions of the hour-keyed literary pair, used when the
// anchor is a decade or annual stem rather than a birth hour.
var (
	cycleChangTable = [10]int{5, 6, 8, 9, 8, 9, 11, 0, 2, 3}
	cycleQuTable    = [10]int{9, 8, 6, 5, 6, 5, 3, 2, 0, 11}
)

// CycleStars places the reusable stars for a cycle anchor (a decade or an
// annual stem-branch pair). Names carry the 运 prefix to keep the family
// distinct from the natal placements of the same stars.
func CycleStars(stemIndex, branchIndex int) Placement {
	lucun := LucunIndex(stemIndex)
	hongluan := mod12(3 - branchIndex)

	return Placement{
		CyclePrefix + "禄": lucun,
		CyclePrefix + "羊": mod12(lucun + 1),
		CyclePrefix + "陀": mod12(lucun - 1),
		CyclePrefix + "昌": cycleChangTable[stemIndex],
		CyclePrefix + "曲": cycleQuTable[stemIndex],
		CyclePrefix + "鸾": hongluan,
		CyclePrefix + "喜": mod12(hongluan + 6),
		CyclePrefix + "马": tianmaTable[branchIndex%4],
	}
}
