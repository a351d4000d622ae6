package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ziwei/internal/calendar"
)

func TestToLunar_KnownDates(t *testing.T) {
	tests := []struct {
		name                   string
		year, month, day, hour int
		wantYear, wantMonth    int
		wantDay                int
		wantLeap               bool
	}{
		{
			name: "Epoch date", year: 1900, month: 1, day: 31, hour: 12,
			wantYear: 1900, wantMonth: 1, wantDay: 1,
		},
		{
			// Regression anchor from the reference table: New Year's Day 2000
			// falls late in lunar 1999, month 11 day 25.
			name: "Millennium eve resolves to prior lunar year", year: 2000, month: 1, day: 1, hour: 0,
			wantYear: 1999, wantMonth: 11, wantDay: 25,
		},
		{
			name: "Chinese New Year 1984", year: 1984, month: 2, day: 2, hour: 8,
			wantYear: 1984, wantMonth: 1, wantDay: 1,
		},
		{
			name: "Chinese New Year 2024", year: 2024, month: 2, day: 10, hour: 10,
			wantYear: 2024, wantMonth: 1, wantDay: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld, err := calendar.ToLunar(tt.year, tt.month, tt.day, tt.hour, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantYear, ld.Year)
			assert.Equal(t, tt.wantMonth, ld.Month)
			assert.Equal(t, tt.wantDay, ld.Day)
			assert.Equal(t, tt.wantLeap, ld.IsLeap)
		})
	}
}

func TestToLunar_RangeErrors(t *testing.T) {
	// Out-of-span years must fail, never clamp.
	_, err := calendar.ToLunar(1899, 12, 31, 0, 0)
	assert.Error(t, err)

	_, err = calendar.ToLunar(2101, 1, 1, 0, 0)
	assert.Error(t, err)

	// January 1900 before the epoch belongs to lunar 1899, which the
	// table cannot represent.
	_, err = calendar.ToLunar(1900, 1, 15, 0, 0)
	assert.Error(t, err)
}

func TestToLunar_LeapMonth2023(t *testing.T) {
	// 2023 carried a leap second month. Its first day was 2023-03-22.
	ld, err := calendar.ToLunar(2023, 3, 22, 6, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2023, ld.Year)
	assert.Equal(t, 2, ld.Month)
	assert.Equal(t, 1, ld.Day)
	assert.True(t, ld.IsLeap, "2023-03-22 opens the leap second month")

	// The day before still belongs to the regular second month.
	prev, err := calendar.ToLunar(2023, 3, 21, 6, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, prev.Month)
	assert.False(t, prev.IsLeap)
}

func TestRoundTrip_SampledSpan(t *testing.T) {
	// toSolar(toLunar(d)) == d for a spread of dates across the span.
	start := time.Date(1900, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 11, 30, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 97) {
		ld, err := calendar.ToLunar(d.Year(), int(d.Month()), d.Day(), 12, 0)
		assert.NoError(t, err, "ToLunar(%v)", d)

		y, m, day, err := calendar.ToSolar(ld)
		assert.NoError(t, err, "ToSolar(%+v)", ld)
		assert.Equal(t, d.Year(), y, "year mismatch for %v", d)
		assert.Equal(t, int(d.Month()), m, "month mismatch for %v", d)
		assert.Equal(t, d.Day(), day, "day mismatch for %v", d)
	}
}

func TestToSolar_RejectsImpossibleDates(t *testing.T) {
	// Day 30 in a 29-day month.
	_, _, _, err := calendar.ToSolar(calendar.LunarDate{Year: 1900, Month: 1, Day: 30})
	assert.Error(t, err, "lunar 1900 month 1 has only 29 days")

	// Leap flag on a month that is not the leap month of the year.
	_, _, _, err = calendar.ToSolar(calendar.LunarDate{Year: 2023, Month: 5, Day: 1, IsLeap: true})
	assert.Error(t, err)

	_, _, _, err = calendar.ToSolar(calendar.LunarDate{Year: 1850, Month: 1, Day: 1})
	assert.Error(t, err)
}

func TestDoubleHourIndex(t *testing.T) {
	// Hour 23 and hour 0 both map to 子.
	assert.Equal(t, 0, calendar.DoubleHourIndex(23))
	assert.Equal(t, 0, calendar.DoubleHourIndex(0))
	assert.Equal(t, 1, calendar.DoubleHourIndex(1))
	assert.Equal(t, 1, calendar.DoubleHourIndex(2))
	assert.Equal(t, 6, calendar.DoubleHourIndex(11))
	assert.Equal(t, 6, calendar.DoubleHourIndex(12))
	assert.Equal(t, 11, calendar.DoubleHourIndex(21))
	assert.Equal(t, 11, calendar.DoubleHourIndex(22))
}

func TestSexagenary_YearIndices(t *testing.T) {
	// 1984 was 甲子: stem 0, branch 0.
	assert.Equal(t, 0, calendar.YearStemIndex(1984))
	assert.Equal(t, 0, calendar.YearBranchIndex(1984))

	// 2000 was 庚辰: stem 6, branch 4.
	assert.Equal(t, 6, calendar.YearStemIndex(2000))
	assert.Equal(t, 4, calendar.YearBranchIndex(2000))

	// 1999 was 己卯: stem 5, branch 3.
	assert.Equal(t, 5, calendar.YearStemIndex(1999))
	assert.Equal(t, 3, calendar.YearBranchIndex(1999))
}

func TestNayinElement(t *testing.T) {
	tests := []struct {
		name     string
		stem     int
		branch   int
		expected calendar.FiveElement
	}{
		{"甲子 sea gold", 0, 0, calendar.ElementMetal},
		{"丙寅 furnace fire", 2, 2, calendar.ElementFire},
		{"戊辰 forest wood", 4, 4, calendar.ElementWood},
		{"庚午 roadside earth", 6, 6, calendar.ElementEarth},
		{"丙子 stream water", 2, 0, calendar.ElementWater},
		{"壬戌 ocean water", 8, 10, calendar.ElementWater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendar.NayinElement(tt.stem, tt.branch))
		})
	}
}

func TestStemBranchLookups(t *testing.T) {
	i, err := calendar.StemIndex("丙")
	assert.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = calendar.StemIndex("子")
	assert.Error(t, err, "a branch character is not a stem")

	j, err := calendar.BranchIndex("亥")
	assert.NoError(t, err)
	assert.Equal(t, 11, j)

	_, err = calendar.BranchIndex("甲")
	assert.Error(t, err)
}
