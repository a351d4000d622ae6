package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// LunarDate is a fully resolved lunisolar date. It is created once by the
// converter and never mutated; downstream stages only read it.
type LunarDate struct {
	// Year is the lunisolar year the date falls in. For Gregorian dates
	// before that year's lunar new year this is the previous civil year.
	Year int `json:"year"`

	// Month is the lunar month number, 1 through 12. A leap month carries
	// the number of the month it duplicates, with IsLeap set.
	Month int `json:"month"`

	// Day is the day of the lunar month, 1 through 30.
	Day int `json:"day"`

	// IsLeap reports whether the date falls inside a leap month.
	IsLeap bool `json:"isLeap"`

	// TimeIndex is the double-hour index, 0 (子) through 11 (亥).
	TimeIndex int `json:"timeIndex"`
}

// epoch is the Gregorian date of lunar 1900-01-01.
var epoch = time.Date(config.LunarEpochYear, time.Month(config.LunarEpochMonth), config.LunarEpochDay, 0, 0, 0, 0, time.UTC)

// DoubleHourIndex maps a civil hour to its double-hour index. Hour 23 and
// hours 0 both belong to 子 (index 0).
func DoubleHourIndex(hour int) int {
	return ((hour + 1) / 2) % config.PalaceCount
}

// ToLunar converts a Gregorian date and civil time into a LunarDate.
// Years outside the supported span fail with a range error; no clamping.
func ToLunar(year, month, day, hour, minute int) (LunarDate, error) {
	if year < config.MinYear || year > config.MaxYear {
		return LunarDate{}, fmt.Errorf("%s: %d", config.ErrYearRange, year)
	}

	query := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	offset := int(query.Sub(epoch).Hours() / 24)
	if offset < 0 {
		// Dates in January 1900 before the first tabulated new year belong
		// to lunar 1899, which the table cannot represent.
		return LunarDate{}, fmt.Errorf("%s: %d-%d-%d", config.ErrYearRange, year, month, day)
	}

	// Walk whole lunar years off the offset.
	lunarYear := config.LunarEpochYear
	for lunarYear <= config.MaxYear {
		days := yearDays(lunarYear)
		if offset < days {
			break
		}
		offset -= days
		lunarYear++
	}
	if lunarYear > config.MaxYear {
		return LunarDate{}, fmt.Errorf("%s: %d-%d-%d", config.ErrYearRange, year, month, day)
	}

	// Walk months, inserting the leap month right after its duplicate.
	leap := leapMonthOf(lunarYear)
	lunarMonth := 1
	isLeap := false
	for {
		days := monthDays(lunarYear, lunarMonth)
		if offset < days {
			break
		}
		offset -= days

		if lunarMonth == leap {
			days = leapMonthDays(lunarYear)
			if offset < days {
				isLeap = true
				break
			}
			offset -= days
		}
		lunarMonth++
	}

	return LunarDate{
		Year:      lunarYear,
		Month:     lunarMonth,
		Day:       offset + 1,
		IsLeap:    isLeap,
		TimeIndex: DoubleHourIndex(hour),
	}, nil
}

// ToSolar converts a LunarDate back to its Gregorian year, month and day.
func ToSolar(ld LunarDate) (year, month, day int, err error) {
	if ld.Year < config.MinYear || ld.Year > config.MaxYear {
		return 0, 0, 0, fmt.Errorf("%s: %d", config.ErrYearRange, ld.Year)
	}
	if ld.Month < 1 || ld.Month > 12 {
		return 0, 0, 0, errors.New(config.ErrLunarMonthRange)
	}
	if ld.IsLeap && leapMonthOf(ld.Year) != ld.Month {
		return 0, 0, 0, errors.New(config.ErrNoLeapMonth)
	}

	maxDay := monthDays(ld.Year, ld.Month)
	if ld.IsLeap {
		maxDay = leapMonthDays(ld.Year)
	}
	if ld.Day < 1 || ld.Day > maxDay {
		return 0, 0, 0, errors.New(config.ErrLunarDayInvalid)
	}

	offset := 0
	for y := config.LunarEpochYear; y < ld.Year; y++ {
		offset += yearDays(y)
	}

	leap := leapMonthOf(ld.Year)
	for m := 1; m < ld.Month; m++ {
		offset += monthDays(ld.Year, m)
		if m == leap {
			offset += leapMonthDays(ld.Year)
		}
	}
	if ld.IsLeap {
		offset += monthDays(ld.Year, ld.Month)
	}
	offset += ld.Day - 1

	t := epoch.AddDate(0, 0, offset)
	return t.Year(), int(t.Month()), t.Day(), nil
}
