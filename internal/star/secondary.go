package star

// tiankuiTable places 天魁 by year stem (甲戊庚牛羊, 乙己鼠猴乡, ...).
var tiankuiTable = [10]int{1, 0, 11, 11, 1, 0, 1, 6, 3, 3}

// tianyueTable places 天钺 by year stem.
var tianyueTable = [10]int{7, 8, 9, 9, 7, 8, 7, 2, 5, 5}

// lucunTable places 禄存 by year stem.
var lucunTable = [10]int{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}

// huoxingStarts gives the 火星 counting origin per year-branch trine
// (申子辰, 巳酉丑, 寅午戌, 亥卯未), indexed by branch mod 4.
var huoxingStarts = [4]int{2, 3, 1, 9}

// lingxingStarts gives the 铃星 counting origin per year-branch trine.
var lingxingStarts = [4]int{10, 10, 3, 10}

// tianmaTable places 天马 per year-branch trine, indexed by branch mod 4.
var tianmaTable = [4]int{2, 11, 8, 5}

// SecondaryInput carries the index values the secondary family depends on.
type SecondaryInput struct {
	YearStemIndex   int
	YearBranchIndex int
	MonthIndex      int
	TimeIndex       int
}

// LucunIndex exposes the 禄存 position separately because the 博士 spirit
// sequence anchors on it.
func LucunIndex(yearStemIndex int) int {
	return lucunTable[yearStemIndex]
}

// Secondary places the fourteen secondary stars: the six auspicious
// assistants, the six malefics, 禄存 and 天马.
func Secondary(in SecondaryInput) Placement {
	lucun := LucunIndex(in.YearStemIndex)

	return Placement{
		// Hour-keyed pair counted from 戌 backwards and 辰 forwards.
		NameWenchang: mod12(10 - in.TimeIndex),
		NameWenqu:    mod12(4 + in.TimeIndex),

		// Month-keyed pair counted from 辰 forwards and 戌 backwards.
		NameZuofu: mod12(4 + in.MonthIndex),
		NameYoubi: mod12(10 - in.MonthIndex),

		// Stem-keyed nobles.
		NameTiankui: tiankuiTable[in.YearStemIndex],
		NameTianyue: tianyueTable[in.YearStemIndex],

		// 禄存 with its two flanking malefics.
		NameLucun:    lucun,
		NameQingyang: mod12(lucun + 1),
		NameTuoluo:   mod12(lucun - 1),

		// Trine-keyed malefics counted forward by the birth hour.
		NameHuoxing:  mod12(huoxingStarts[in.YearBranchIndex%4] + in.TimeIndex),
		NameLingxing: mod12(lingxingStarts[in.YearBranchIndex%4] + in.TimeIndex),

		// Hour-keyed voiders counted from 亥 in opposite directions.
		NameDikong: mod12(11 - in.TimeIndex),
		NameDijie:  mod12(11 + in.TimeIndex),

		// Trine-keyed traveller.
		NameTianma: tianmaTable[in.YearBranchIndex%4],
	}
}
