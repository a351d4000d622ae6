// Package display renders pre-formatted, localized strings for chart
// consumers. Renderers read these strings verbatim and never reformat
// dates or labels themselves.
package display

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

// lunarMonthNames are the traditional month labels, index 0 = first month.
var lunarMonthNames = [config.PalaceCount]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

// lunarDayNames are the traditional day-of-month labels, index 0 = day 1.
var lunarDayNames = [30]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

// doubleHourNames label the twelve double-hours by their branch.
var doubleHourNames = [config.PalaceCount]string{
	"子时", "丑时", "寅时", "卯时", "辰时", "巳时",
	"午时", "未时", "申时", "酉时", "戌时", "亥时",
}

// Formatter turns computed chart values into display strings for one
// language.
type Formatter struct {
	tr *Translator
}

// NewFormatter builds a Formatter around an initialized Translator.
func NewFormatter(tr *Translator) *Formatter {
	return &Formatter{tr: tr}
}

// GanzhiYear renders the sexagenary name of a lunar year (e.g. 甲子).
func GanzhiYear(lunarYear int) string {
	return calendar.HeavenlyStems[calendar.YearStemIndex(lunarYear)] +
		calendar.EarthlyBranches[calendar.YearBranchIndex(lunarYear)]
}

// GenderLabel localizes a gender value; unknown values pass through.
func (f *Formatter) GenderLabel(gender string) string {
	switch gender {
	case config.GenderMale:
		return f.tr.Msg(config.TKeyGenderMale)
	case config.GenderFemale:
		return f.tr.Msg(config.TKeyGenderFemale)
	}
	return gender
}

// CalendarLabel localizes a calendar type value.
func (f *Formatter) CalendarLabel(calendarType string) string {
	switch calendarType {
	case config.CalendarSolar:
		return f.tr.Msg(config.TKeyCalSolar)
	case config.CalendarLunar:
		return f.tr.Msg(config.TKeyCalLunar)
	}
	return calendarType
}

// SolarDisplay renders the Gregorian birth moment with the locale's
// date-time layout.
func (f *Formatter) SolarDisplay(year, month, day, hour, minute int) string {
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	return t.Format(f.tr.Msg(config.TKeyFormatSolar))
}

// LunarDisplay renders a lunar date in the traditional form, e.g.
// "甲子年 闰二月 初一 子时". The leap prefix is localized; month and day
// labels are always the traditional characters.
func (f *Formatter) LunarDisplay(ld calendar.LunarDate) string {
	if ld.Month < 1 || ld.Month > config.PalaceCount || ld.Day < 1 || ld.Day > 30 {
		return ""
	}

	month := lunarMonthNames[ld.Month-1]
	if ld.IsLeap {
		month = f.tr.Msg(config.TKeyLeapPrefix) + month
	}

	return fmt.Sprintf("%s年 %s %s %s",
		GanzhiYear(ld.Year),
		month,
		lunarDayNames[ld.Day-1],
		doubleHourNames[ld.TimeIndex],
	)
}
