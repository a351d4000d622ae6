package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
)

func TestGanzhiYear(t *testing.T) {
	assert.Equal(t, "甲子", GanzhiYear(1984))
	assert.Equal(t, "己卯", GanzhiYear(1999))
	assert.Equal(t, "庚辰", GanzhiYear(2000))
}

func TestFormatter_LunarDisplay(t *testing.T) {
	f := NewFormatter(NewTranslator("zh"))

	testCases := []struct {
		name string
		ld   calendar.LunarDate
		want string
	}{
		{
			"regular date",
			calendar.LunarDate{Year: 1999, Month: 11, Day: 25, TimeIndex: 6},
			"己卯年 冬月 廿五 午时",
		},
		{
			"leap month carries prefix",
			calendar.LunarDate{Year: 2023, Month: 2, Day: 1, IsLeap: true, TimeIndex: 0},
			"癸卯年 闰二月 初一 子时",
		},
		{
			"twelfth month uses 腊月",
			calendar.LunarDate{Year: 1984, Month: 12, Day: 30, TimeIndex: 11},
			"甲子年 腊月 三十 亥时",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.LunarDisplay(tc.ld))
		})
	}
}

func TestFormatter_LunarDisplayRejectsImpossibleFields(t *testing.T) {
	f := NewFormatter(NewTranslator("zh"))

	assert.Empty(t, f.LunarDisplay(calendar.LunarDate{Year: 1999, Month: 13, Day: 1}))
	assert.Empty(t, f.LunarDisplay(calendar.LunarDate{Year: 1999, Month: 1, Day: 31}))
}

func TestFormatter_Labels(t *testing.T) {
	zh := NewFormatter(NewTranslator("zh"))
	en := NewFormatter(NewTranslator("en"))

	assert.Equal(t, "男", zh.GenderLabel(config.GenderMale))
	assert.Equal(t, "Female", en.GenderLabel(config.GenderFemale))
	assert.Equal(t, "阳历", zh.CalendarLabel(config.CalendarSolar))
	assert.Equal(t, "Lunar", en.CalendarLabel(config.CalendarLunar))

	// Unknown values pass through untranslated.
	assert.Equal(t, "unspecified", zh.GenderLabel("unspecified"))
}

func TestFormatter_SolarDisplayUsesLocaleLayout(t *testing.T) {
	en := NewFormatter(NewTranslator("en"))
	zh := NewFormatter(NewTranslator("zh"))

	assert.Equal(t, "January 1, 2000 12:30", en.SolarDisplay(2000, 1, 1, 12, 30))
	assert.Equal(t, "2000年1月1日 12:30", zh.SolarDisplay(2000, 1, 1, 12, 30))
}

func TestTranslator_MissingKeyFallsBackToKey(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"))
}
