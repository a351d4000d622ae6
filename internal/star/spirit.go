package star

// jiangxingTable gives the 将星 origin per year-branch trine
// (申子辰→子, 巳酉丑→酉, 寅午戌→午, 亥卯未→卯), indexed by branch mod 4.
var jiangxingTable = [4]int{0, 9, 6, 3}

// SpiritInput carries the inputs of the three interleaved twelve-star
// sequences.
type SpiritInput struct {
	YearStemIndex   int
	YearBranchIndex int

	// Clockwise is the gender x year-polarity rotation; only the 博士
	// sequence honors it, the other two always run forward.
	Clockwise bool
}

// SpiritPlacements holds the three twelve-star sequences separately.
// Several names recur across the sequences (小耗, 大耗, 病符, ...), so the
// maps must not be merged.
type SpiritPlacements struct {
	Boshi     Placement `json:"boshi"`
	Jiangqian Placement `json:"jiangqian"`
	Suiqian   Placement `json:"suiqian"`
}

// Spirit places the three twelve-star sequences. The 博士 sequence starts
// at 禄存 and steps in the rotation direction; 将前 starts at the trine's
// 将星 palace; 岁前 starts at the year-branch palace itself.
func Spirit(in SpiritInput) SpiritPlacements {
	out := SpiritPlacements{
		Boshi:     make(Placement, 12),
		Jiangqian: make(Placement, 12),
		Suiqian:   make(Placement, 12),
	}

	step := 1
	if !in.Clockwise {
		step = -1
	}
	boshiStart := LucunIndex(in.YearStemIndex)
	for i, name := range BoshiNames {
		out.Boshi[name] = mod12(boshiStart + step*i)
	}

	jiangStart := jiangxingTable[in.YearBranchIndex%4]
	for i, name := range JiangqianNames {
		out.Jiangqian[name] = mod12(jiangStart + i)
	}

	for i, name := range SuiqianNames {
		out.Suiqian[name] = mod12(in.YearBranchIndex + i)
	}

	return out
}
