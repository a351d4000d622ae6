// Package star contains the placement formulas and rule tables for every
// star family of the chart. Every function here is pure: the only inputs
// are index values derived upstream, and calling a function twice with the
// same arguments always yields the same placements. No family reads the
// results of a sibling family.
package star

// Primary stars (紫微 series and 天府 series).
const (
	NameZiwei     = "紫微"
	NameTianji    = "天机"
	NameTaiyang   = "太阳"
	NameWuqu      = "武曲"
	NameTiantong  = "天同"
	NameLianzhen  = "廉贞"
	NameTianfu    = "天府"
	NameTaiyin    = "太阴"
	NameTanlang   = "贪狼"
	NameJumen     = "巨门"
	NameTianxiang = "天相"
	NameTianliang = "天梁"
	NameQisha     = "七杀"
	NamePojun     = "破军"
)

// Secondary stars (six auspicious, six malefic, plus 禄存 and 天马).
const (
	NameWenchang = "文昌"
	NameWenqu    = "文曲"
	NameZuofu    = "左辅"
	NameYoubi    = "右弼"
	NameTiankui  = "天魁"
	NameTianyue  = "天钺"
	NameLucun    = "禄存"
	NameQingyang = "擎羊"
	NameTuoluo   = "陀罗"
	NameHuoxing  = "火星"
	NameLingxing = "铃星"
	NameDikong   = "地空"
	NameDijie    = "地劫"
	NameTianma   = "天马"
)

// Minor stars.
const (
	NameHongluan  = "红鸾"
	NameTianxi    = "天喜"
	NameTianyao   = "天姚"
	NameTianxing  = "天刑"
	NameJieshen   = "解神"
	NameTianwu    = "天巫"
	NameTianyueM  = "天月"
	NameYinsha    = "阴煞"
	NameTaifu     = "台辅"
	NameFenggao   = "封诰"
	NameTiankong  = "天空"
	NameTianku    = "天哭"
	NameTianxu    = "天虚"
	NameLongchi   = "龙池"
	NameFengge    = "凤阁"
	NameGuchen    = "孤辰"
	NameGuasu     = "寡宿"
	NameFeilian   = "蜚廉"
	NamePosui     = "破碎"
	NameHuagai    = "华盖"
	NameXianchi   = "咸池"
	NameTiande    = "天德"
	NameYuede     = "月德"
	NameTiancai   = "天才"
	NameTianshou  = "天寿"
	NameSantai    = "三台"
	NameBazuo     = "八座"
	NameEnguang   = "恩光"
	NameTiangui   = "天贵"
	NameTianguan  = "天官"
	NameTianfuG   = "天福"
	NameTianchu   = "天厨"
	NameTianshang = "天伤"
	NameTianshi   = "天使"
)

// Void-star pairs; each occupies two adjacent palaces at once.
const (
	NameJiekong = "截空"
	NameXunkong = "旬空"
)

// Spirit sequences, twelve names each, in ring-stepping order.
var (
	// BoshiNames starts at the 禄存 palace and steps in the rotation
	// direction.
	BoshiNames = [12]string{
		"博士", "力士", "青龙", "小耗", "将军", "奏书",
		"飞廉", "喜神", "病符", "大耗", "伏兵", "官府",
	}

	// JiangqianNames starts at the 将星 palace and always steps forward.
	JiangqianNames = [12]string{
		"将星", "攀鞍", "岁驿", "息神", "华盖", "劫煞",
		"灾煞", "天煞", "指背", "咸池", "月煞", "亡神",
	}

	// SuiqianNames starts at the year-branch palace and always steps forward.
	SuiqianNames = [12]string{
		"岁建", "晦气", "丧门", "贯索", "官符", "小耗",
		"大耗", "龙德", "白虎", "天德", "吊客", "病符",
	}
)

// CyclePrefix marks the decade/annual renditions of reusable stars
// (运禄, 运羊, ...).
const CyclePrefix = "运"

// Placement maps a star name to the palace index it occupies.
type Placement map[string]int

// VoidPlacement is a star legitimately occupying two palaces at once.
// Primary and Deputy point into Positions after parity disambiguation.
type VoidPlacement struct {
	Name      string `json:"name"`
	Positions [2]int `json:"positions"`
	Primary   int    `json:"primary"`
	Deputy    int    `json:"deputy"`
}

// mod12 wraps an offset onto the palace ring.
func mod12(a int) int {
	m := a % 12
	if m < 0 {
		m += 12
	}
	return m
}
