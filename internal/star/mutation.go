package star

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// Mutation is one of the four transformation roles a stem assigns.
type Mutation string

const (
	MutationLu   Mutation = "禄"
	MutationQuan Mutation = "权"
	MutationKe   Mutation = "科"
	MutationJi   Mutation = "忌"
)

// Mutations lists the four roles in canonical order.
var Mutations = [4]Mutation{MutationLu, MutationQuan, MutationKe, MutationJi}

// MutationMap is the bidirectional result of resolving one stem.
type MutationMap struct {
	ByRole map[Mutation]string `json:"byRole"`
	ByStar map[string]Mutation `json:"byStar"`
}

// mutationTable assigns [禄, 权, 科, 忌] per heavenly stem. Disputed stems
// are listed in mutationVariants instead and resolved by selection.
var mutationTable = map[string][4]string{
	"甲": {NameLianzhen, NamePojun, NameWuqu, NameTaiyang},
	"乙": {NameTianji, NameTianliang, NameZiwei, NameTaiyin},
	"丙": {NameTiantong, NameTianji, NameWenchang, NameLianzhen},
	"丁": {NameTaiyin, NameTiantong, NameTianji, NameJumen},
	"己": {NameWuqu, NameTanlang, NameTianliang, NameWenqu},
	"辛": {NameJumen, NameTaiyang, NameWenqu, NameWenchang},
	"癸": {NamePojun, NameJumen, NameTaiyin, NameTanlang},
}

// mutationVariants carries the published alternatives for the disputed
// stems. Variant "1" is the canonical default.
var mutationVariants = map[string]map[string][4]string{
	"戊": {
		"1": {NameTanlang, NameTaiyin, NameYoubi, NameTianji},
		"2": {NameTanlang, NameTaiyin, NameTaiyang, NameTianji},
	},
	"庚": {
		"1": {NameTaiyang, NameWuqu, NameTaiyin, NameTiantong},
		"2": {NameTaiyang, NameWuqu, NameTiantong, NameTaiyin},
		"3": {NameTaiyang, NameWuqu, NameTianfu, NameTiantong},
	},
	"壬": {
		"1": {NameTianliang, NameZiwei, NameZuofu, NameWuqu},
		"2": {NameTianliang, NameZiwei, NameTianfu, NameWuqu},
	},
}

// DisputedStems reports which stems carry more than one published table.
func DisputedStems() []string {
	return []string{"戊", "庚", "壬"}
}

// Resolve maps a heavenly stem to its four transformations. For disputed
// stems the caller-supplied selection picks among the published variants;
// unknown selections fall back to the canonical variant rather than fail,
// since a bad settings value must not sink the whole section.
func Resolve(stem string, variantSelections map[string]string) (MutationMap, error) {
	row, ok := mutationTable[stem]
	if !ok {
		variants, disputed := mutationVariants[stem]
		if !disputed {
			return MutationMap{}, fmt.Errorf("%s: %q", config.ErrStemUnknown, stem)
		}
		selected := variantSelections[stem]
		if selected == "" {
			selected = config.DefaultStemVariant
		}
		row, ok = variants[selected]
		if !ok {
			row = variants[config.DefaultStemVariant]
		}
	}

	m := MutationMap{
		ByRole: make(map[Mutation]string, 4),
		ByStar: make(map[string]Mutation, 4),
	}
	for i, role := range Mutations {
		m.ByRole[role] = row[i]
		m.ByStar[row[i]] = role
	}
	return m, nil
}

// ResolveIndex is Resolve keyed by stem cycle index instead of character.
func ResolveIndex(stemIndex int, variantSelections map[string]string) (MutationMap, error) {
	if stemIndex < 0 || stemIndex >= len(stemByIndex) {
		return MutationMap{}, errors.New(config.ErrStemUnknown)
	}
	return Resolve(stemByIndex[stemIndex], variantSelections)
}

// stemByIndex mirrors the calendar stem cycle; duplicated here so the star
// family stays free of upstream imports.
var stemByIndex = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
