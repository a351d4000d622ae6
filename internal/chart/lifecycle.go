package chart

import (
	"fmt"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

// TwelveStageNames lists the life-progression stages in forward order.
var TwelveStageNames = [config.PalaceCount]string{
	"长生", "沐浴", "冠带", "临官", "帝旺", "衰",
	"病", "死", "墓", "绝", "胎", "养",
}

// stageStartByLoci gives the 长生 origin palace per bureau number:
// water starts in 申, wood in 亥, metal in 巳, earth in 申, fire in 寅.
var stageStartByLoci = map[int]int{
	2: 8,
	3: 11,
	4: 5,
	5: 8,
	6: 2,
}

// BuildLifeCycle derives the decade sequence and the twelve-stage
// progression. Both rotate in the same gender/year-derived direction;
// the decades start at the Ming palace at age loci, the stages at the
// bureau's 长生 palace.
func BuildLifeCycle(loci, mingIndex int, clockwise bool) (LifeCyclePlan, error) {
	start, ok := stageStartByLoci[loci]
	if !ok {
		return LifeCyclePlan{}, fmt.Errorf("%s: %d", config.ErrLociRange, loci)
	}

	step := 1
	if !clockwise {
		step = -1
	}

	plan := LifeCyclePlan{
		MajorCycles:  make([]MajorCycle, config.PalaceCount),
		TwelveStages: make(map[int]string, config.PalaceCount),
	}

	for i := 0; i < config.PalaceCount; i++ {
		startAge := loci + i*config.MajorCycleSpanYears
		plan.MajorCycles[i] = MajorCycle{
			StartAge:    startAge,
			EndAge:      startAge + config.MajorCycleSpanYears - 1,
			PalaceIndex: calendar.Mod12(mingIndex + step*i),
			Sequence:    i,
		}

		plan.TwelveStages[calendar.Mod12(start+step*i)] = TwelveStageNames[i]
	}

	return plan, nil
}
