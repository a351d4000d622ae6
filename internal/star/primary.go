package star

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// ziweiSatellites are the fixed ring offsets of the 紫微 series from its
// anchor: 廉贞 +4, 天同 +7, 武曲 +8, 太阳 +9, 天机 +11.
var ziweiSatellites = map[string]int{
	NameLianzhen: 4,
	NameTiantong: 7,
	NameWuqu:     8,
	NameTaiyang:  9,
	NameTianji:   11,
}

// tianfuSatellites are the fixed ring offsets of the 天府 series.
var tianfuSatellites = map[string]int{
	NameTaiyin:    1,
	NameTanlang:   2,
	NameJumen:     3,
	NameTianxiang: 4,
	NameTianliang: 5,
	NameQisha:     6,
	NamePojun:     10,
}

// ZiweiIndex places the 紫微 anchor from the five-element loci and the
// lunar day. The step count covers the day in loci-sized strides; the
// surplus is folded back with opposite sign depending on its parity.
func ZiweiIndex(loci, day int) (int, error) {
	if loci < 2 || loci > 6 {
		return 0, fmt.Errorf("%s: %d", config.ErrLociRange, loci)
	}
	if day < 1 || day > 30 {
		return 0, errors.New(config.ErrLunarDayInvalid)
	}

	step := (day + loci - 1) / loci
	remainder := step*loci - day

	var totalStep int
	if remainder%2 == 0 {
		totalStep = step + remainder - 1
	} else {
		totalStep = step - remainder - 1
	}

	return mod12(2 + totalStep), nil
}

// TianfuIndex mirrors 紫微 across the 寅-申 axis.
func TianfuIndex(ziwei int) int {
	return mod12(4 - ziwei)
}

// Primary places all fourteen primary stars from the loci and lunar day.
func Primary(loci, day int) (Placement, error) {
	ziwei, err := ZiweiIndex(loci, day)
	if err != nil {
		return nil, err
	}
	tianfu := TianfuIndex(ziwei)

	p := Placement{
		NameZiwei:  ziwei,
		NameTianfu: tianfu,
	}
	for name, offset := range ziweiSatellites {
		p[name] = mod12(ziwei + offset)
	}
	for name, offset := range tianfuSatellites {
		p[name] = mod12(tianfu + offset)
	}
	return p, nil
}
