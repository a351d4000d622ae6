package star

import (
	"errors"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// Month-keyed lookup tables, indexed by monthIndex (0 = first month).
var (
	// jieshenTable repeats every two months (申申戌戌子子寅寅辰辰午午).
	jieshenTable = [6]int{8, 10, 0, 2, 4, 6}

	// tianwuTable repeats every four months (巳申寅亥).
	tianwuTable = [4]int{5, 8, 2, 11}

	// tianyueMTable is a direct twelve-entry lookup.
	tianyueMTable = [12]int{10, 5, 4, 2, 7, 3, 11, 7, 2, 6, 10, 2}

	// yinshaTable repeats every six months (寅子戌申午辰).
	yinshaTable = [6]int{2, 0, 10, 8, 6, 4}
)

// Year-branch-keyed lookup tables.
var (
	// feilianTable is a direct twelve-entry lookup.
	feilianTable = [12]int{8, 9, 10, 5, 6, 7, 2, 3, 4, 11, 0, 1}

	// posuiTable repeats every three branches (巳丑酉).
	posuiTable = [3]int{5, 1, 9}

	// huagaiTable and xianchiTable key on the branch trine.
	huagaiTable  = [4]int{4, 1, 10, 7}
	xianchiTable = [4]int{9, 6, 3, 0}

	// guchenTable and guasuTable key on the branch season group
	// (亥子丑, 寅卯辰, 巳午未, 申酉戌).
	guchenTable = [4]int{2, 5, 8, 11}
	guasuTable  = [4]int{10, 1, 4, 7}
)

// Year-stem-keyed lookup tables.
var (
	tianguanTable = [10]int{7, 4, 5, 2, 3, 9, 11, 9, 10, 6}
	tianfuGTable  = [10]int{9, 8, 0, 11, 3, 2, 6, 5, 6, 5}
	tianchuTable  = [10]int{5, 6, 0, 5, 6, 8, 2, 6, 9, 11}
)

// MinorInput carries every index value the minor family depends on.
// 三台/八座 and 恩光/天贵 count days off the month-keyed and hour-keyed
// assistant positions; those anchors are recomputed here from the raw
// indices so the family stays independent of its siblings' results.
type MinorInput struct {
	YearStemIndex   int
	YearBranchIndex int
	MonthIndex      int
	Day             int
	TimeIndex       int
	MingIndex       int
	ShenIndex       int
}

// Minor places the minor star set.
func Minor(in MinorInput) Placement {
	b := in.YearBranchIndex
	m := in.MonthIndex

	zuofu := mod12(4 + m)
	youbi := mod12(10 - m)
	wenchang := mod12(10 - in.TimeIndex)
	wenqu := mod12(4 + in.TimeIndex)

	hongluan := mod12(3 - b)

	return Placement{
		// Branch-keyed.
		NameHongluan: hongluan,
		NameTianxi:   mod12(hongluan + 6),
		NameTiankong: mod12(b + 1),
		NameTianku:   mod12(6 - b),
		NameTianxu:   mod12(6 + b),
		NameLongchi:  mod12(4 + b),
		NameFengge:   mod12(10 - b),
		NameTiande:   mod12(9 + b),
		NameYuede:    mod12(5 + b),
		NameFeilian:  feilianTable[b],
		NamePosui:    posuiTable[b%3],
		NameHuagai:   huagaiTable[b%4],
		NameXianchi:  xianchiTable[b%4],
		NameGuchen:   guchenTable[((b+1)/3)%4],
		NameGuasu:    guasuTable[((b+1)/3)%4],

		// Month-keyed.
		NameTianxing: mod12(9 + m),
		NameTianyao:  mod12(1 + m),
		NameJieshen:  jieshenTable[m/2],
		NameTianwu:   tianwuTable[m%4],
		NameTianyueM: tianyueMTable[m],
		NameYinsha:   yinshaTable[m%6],

		// Hour-keyed.
		NameTaifu:   mod12(6 + in.TimeIndex),
		NameFenggao: mod12(2 + in.TimeIndex),

		// Stem-keyed.
		NameTianguan: tianguanTable[in.YearStemIndex],
		NameTianfuG:  tianfuGTable[in.YearStemIndex],
		NameTianchu:  tianchuTable[in.YearStemIndex],

		// Anchor-plus-day counts.
		NameSantai:  mod12(zuofu + in.Day - 1),
		NameBazuo:   mod12(youbi - in.Day + 1),
		NameEnguang: mod12(wenchang + in.Day - 2),
		NameTiangui: mod12(wenqu + in.Day - 2),

		// Palace-anchored talents.
		NameTiancai:  mod12(in.MingIndex + b),
		NameTianshou: mod12(in.ShenIndex + b),
	}
}

// Flankers places 天伤 and 天使 on the two palaces flanking 迁移. With the
// rotation policy the pair swaps sides for counter-clockwise charts; the
// fixed policy pins 天伤 before and 天使 after regardless of rotation.
// The migration index must be valid: charts without an assigned Migration
// palace cannot place these stars at all.
func Flankers(migrationIndex int, clockwise bool, policy string) (Placement, error) {
	if migrationIndex < 0 || migrationIndex > 11 {
		return nil, errors.New(config.ErrMigrationMissing)
	}

	before := mod12(migrationIndex - 1)
	after := mod12(migrationIndex + 1)

	if policy != config.FlankerPolicyFixed && !clockwise {
		return Placement{
			NameTianshang: after,
			NameTianshi:   before,
		}, nil
	}
	return Placement{
		NameTianshang: before,
		NameTianshi:   after,
	}, nil
}
