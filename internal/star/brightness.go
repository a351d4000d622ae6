package star

// Brightness is the qualitative strength grade of a star in a branch.
type Brightness string

const (
	BrightnessExcellent Brightness = "excellent" // 庙
	BrightnessStrong    Brightness = "strong"    // 旺
	BrightnessGood      Brightness = "good"      // 得/利
	BrightnessNeutral   Brightness = "neutral"   // 平
	BrightnessFallen    Brightness = "fallen"    // 陷
	BrightnessEmpty     Brightness = ""          // star not graded by this school
)

// Short aliases keep the table rows readable.
const (
	bE = BrightnessExcellent
	bS = BrightnessStrong
	bG = BrightnessGood
	bN = BrightnessNeutral
	bF = BrightnessFallen
)

// brightnessTable grades each star across the twelve branches, indexed
// 子 through 亥. The grades follow the common southern-school table; stars
// absent here are simply ungraded.
var brightnessTable = map[string][12]Brightness{
	NameZiwei:     {bN, bE, bE, bS, bG, bS, bE, bE, bS, bN, bG, bS},
	NameTianji:    {bE, bF, bG, bS, bG, bN, bE, bF, bG, bS, bG, bN},
	NameTaiyang:   {bF, bF, bS, bE, bS, bS, bS, bG, bG, bN, bF, bF},
	NameWuqu:      {bS, bE, bG, bG, bE, bN, bS, bE, bG, bG, bE, bN},
	NameTiantong:  {bS, bF, bG, bE, bN, bE, bF, bF, bS, bN, bN, bE},
	NameLianzhen:  {bN, bG, bE, bN, bG, bF, bN, bG, bE, bN, bG, bF},
	NameTianfu:    {bE, bE, bE, bG, bE, bG, bS, bE, bG, bS, bE, bG},
	NameTaiyin:    {bE, bE, bS, bF, bF, bF, bF, bN, bN, bS, bS, bE},
	NameTanlang:   {bS, bE, bN, bG, bE, bF, bS, bE, bN, bG, bE, bF},
	NameJumen:     {bS, bS, bE, bE, bN, bN, bS, bF, bE, bE, bF, bS},
	NameTianxiang: {bE, bE, bE, bF, bG, bG, bE, bG, bE, bN, bG, bN},
	NameTianliang: {bE, bS, bE, bE, bE, bF, bE, bS, bF, bG, bE, bF},
	NameQisha:     {bS, bE, bE, bS, bE, bN, bS, bE, bE, bE, bE, bN},
	NamePojun:     {bE, bS, bG, bF, bS, bN, bE, bS, bG, bF, bS, bN},
	NameWenchang:  {bG, bE, bF, bG, bG, bE, bF, bG, bG, bE, bF, bG},
	NameWenqu:     {bG, bE, bN, bS, bG, bE, bF, bS, bG, bE, bF, bS},
	NameQingyang:  {bF, bE, bF, bF, bE, bN, bF, bE, bF, bF, bE, bN},
	NameTuoluo:    {bN, bE, bF, bN, bE, bF, bN, bE, bF, bN, bE, bF},
	NameHuoxing:   {bF, bG, bE, bG, bF, bG, bE, bG, bF, bG, bE, bG},
	NameLingxing:  {bF, bG, bE, bG, bF, bG, bE, bG, bF, bG, bE, bG},
}

// Grade looks up the brightness of a star in the palace branch it
// occupies. Unknown (star, branch) pairs return the empty grade, never an
// error: most minor stars are not graded at all.
func Grade(starName string, branchIndex int) Brightness {
	if branchIndex < 0 || branchIndex > 11 {
		return BrightnessEmpty
	}
	row, ok := brightnessTable[starName]
	if !ok {
		return BrightnessEmpty
	}
	return row[branchIndex]
}
