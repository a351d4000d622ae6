// Package chart orchestrates a full natal-chart computation: calendar
// conversion, palace assignment, the star families, mutations, brightness
// and the life-cycle plan. Sections after the palace stage are isolated:
// one failing family is recorded in the result's Errors map while the
// rest of the chart stays valid.
package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/config"
	"github.com/tartampluch/go-ziwei/internal/display"
	"github.com/tartampluch/go-ziwei/internal/star"
)

// Engine computes charts with a bounded result cache and optional remote
// validation. It is not safe for concurrent use; callers serialize.
type Engine struct {
	settings  config.Settings
	formatter *display.Formatter
	cache     *resultCache
	validator Validator
}

// NewEngine wires an Engine from loaded settings. The validator may be
// nil when remote validation is disabled.
func NewEngine(settings config.Settings, formatter *display.Formatter, validator Validator) *Engine {
	return &Engine{
		settings:  settings,
		formatter: formatter,
		cache:     newResultCache(settings.CacheCapacity),
		validator: validator,
	}
}

// Compute runs the full pipeline for one birth input. Input, range and
// dependency failures abort with a nil result; section failures are
// captured per key in the result's Errors map instead.
func (e *Engine) Compute(ctx context.Context, in BirthInput) (*ChartResult, error) {
	started := time.Now()
	e.normalize(&in)

	if cerr := validateInput(in); cerr != nil {
		return nil, cerr
	}

	fingerprint := Fingerprint(in)
	if cached := e.cache.get(fingerprint); cached != nil {
		slog.Info(config.MsgCacheHit,
			config.LogKeyComponent, config.CompChart,
			config.LogKeyFingerprint, fingerprint,
		)
		return cached, nil
	}

	slog.Info(config.MsgChartStarted,
		config.LogKeyComponent, config.CompChart,
		config.LogKeyFingerprint, fingerprint,
		config.LogKeyCalendar, in.CalendarType,
		config.LogKeyGender, in.Gender,
	)

	ld, solarY, solarM, solarD, cerr := e.resolveDates(in)
	if cerr != nil {
		return nil, cerr
	}

	ind, err := DeriveIndices(ld, in.LeapMonthHandling)
	if err != nil {
		return nil, newError(KindDependency, err)
	}

	palaces, ming, shen, err := AssignPalaces(ind, ld.Year)
	if err != nil {
		return nil, newError(KindDependency, err)
	}
	loci, err := Loci(palaces, ming)
	if err != nil {
		return nil, newError(KindDependency, err)
	}
	clockwise := RotationClockwise(in.Gender, ind.YearStemIndex)

	result := &ChartResult{
		Fingerprint: fingerprint,
		Lunar:       ld,
		Indices:     ind,
		MingIndex:   ming,
		ShenIndex:   shen,
		Loci:        loci,
		Clockwise:   clockwise,
		Palaces:     palaces,
		Errors:      map[string]*Error{},
	}
	result.Meta = e.buildMeta(in, ld, solarY, solarM, solarD)

	e.computeSections(result, in, ld)

	e.cache.put(fingerprint, result)
	e.sendValidation(ctx, result)

	slog.Info(config.MsgChartDone,
		config.LogKeyComponent, config.CompChart,
		config.LogKeyFingerprint, fingerprint,
		config.LogKeyMing, ming,
		config.LogKeyShen, shen,
		config.LogKeyLoci, loci,
		config.LogKeySections, len(result.Errors),
		config.LogKeyDuration, time.Since(started).Milliseconds(),
	)
	return result, nil
}

// normalize fills empty policy fields from the settings. Explicit input
// values always win.
func (e *Engine) normalize(in *BirthInput) {
	if in.LeapMonthHandling == "" {
		in.LeapMonthHandling = e.settings.LeapMonthHandling
	}
	if in.ZiHourHandling == "" {
		in.ZiHourHandling = e.settings.ZiHourHandling
	}
	if in.FlankerPolicy == "" {
		in.FlankerPolicy = e.settings.FlankerPolicy
	}
	if in.StemInterpretations == nil {
		in.StemInterpretations = e.settings.StemInterpretations
	}
}

// validateInput rejects malformed input before any computation starts.
func validateInput(in BirthInput) *Error {
	fail := func(msg, field, value string) *Error {
		return newError(KindInput, errors.New(msg), field, value)
	}

	switch in.Gender {
	case config.GenderMale, config.GenderFemale:
	default:
		return fail(config.ErrGenderValue, "gender", in.Gender)
	}
	switch in.CalendarType {
	case config.CalendarSolar, config.CalendarLunar:
	default:
		return fail(config.ErrCalendarValue, "calendarType", in.CalendarType)
	}
	switch in.ZiHourHandling {
	case config.ZiPolicyMidnight, config.ZiPolicyZiChange:
	default:
		return fail(config.ErrZiPolicyValue, "ziHourHandling", in.ZiHourHandling)
	}
	switch in.LeapMonthHandling {
	case config.LeapPolicyMid, config.LeapPolicyCurrent, config.LeapPolicyNext:
	default:
		return fail(config.ErrLeapPolicyValue, "leapMonthHandling", in.LeapMonthHandling)
	}

	if in.Year < config.MinYear || in.Year > config.MaxYear {
		return fail(config.ErrYearRange, "year", strconv.Itoa(in.Year))
	}
	if in.Month < 1 || in.Month > 12 {
		return fail(config.ErrMonthRange, "month", strconv.Itoa(in.Month))
	}
	if in.Day < 1 || in.Day > 31 {
		return fail(config.ErrDayRange, "day", strconv.Itoa(in.Day))
	}
	if in.Hour < 0 || in.Hour > 23 {
		return fail(config.ErrHourRange, "hour", strconv.Itoa(in.Hour))
	}
	if in.Minute < 0 || in.Minute > 59 {
		return fail(config.ErrMinuteRange, "minute", strconv.Itoa(in.Minute))
	}
	return nil
}

// resolveDates produces the lunar date and the Gregorian display date
// from whichever calendar the input uses. The zi-hour policy is applied
// here and nowhere else: under ziChange an hour-23 birth converts as the
// next civil day while the displayed Gregorian date stays as entered.
func (e *Engine) resolveDates(in BirthInput) (calendar.LunarDate, int, int, int, *Error) {
	if in.CalendarType == config.CalendarLunar {
		ld := calendar.LunarDate{
			Year:      in.Year,
			Month:     in.Month,
			Day:       in.Day,
			IsLeap:    in.LeapMonth,
			TimeIndex: calendar.DoubleHourIndex(in.Hour),
		}
		y, m, d, err := calendar.ToSolar(ld)
		if err != nil {
			return calendar.LunarDate{}, 0, 0, 0, newError(KindRange, err,
				config.LogKeyLunarYear, strconv.Itoa(in.Year),
				config.LogKeyLunarMonth, strconv.Itoa(in.Month),
				config.LogKeyLunarDay, strconv.Itoa(in.Day),
			)
		}
		return ld, y, m, d, nil
	}

	y, m, d := in.Year, in.Month, in.Day
	if in.ZiHourHandling == config.ZiPolicyZiChange && in.Hour == 23 {
		next := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		y, m, d = next.Year(), int(next.Month()), next.Day()
	}

	ld, err := calendar.ToLunar(y, m, d, in.Hour, in.Minute)
	if err != nil {
		return calendar.LunarDate{}, 0, 0, 0, newError(KindRange, err,
			config.LogKeyYear, strconv.Itoa(in.Year),
		)
	}
	return ld, in.Year, in.Month, in.Day, nil
}

// buildMeta assembles the sanitized input echo and the localized display
// strings.
func (e *Engine) buildMeta(in BirthInput, ld calendar.LunarDate, solarY, solarM, solarD int) Meta {
	meta := Meta{
		Name:         in.Name,
		Birthplace:   in.Birthplace,
		Gender:       in.Gender,
		CalendarType: in.CalendarType,
		GanzhiYear:   display.GanzhiYear(ld.Year),
	}
	if e.formatter != nil {
		meta.GenderLabel = e.formatter.GenderLabel(in.Gender)
		meta.SolarDisplay = e.formatter.SolarDisplay(solarY, solarM, solarD, in.Hour, in.Minute)
		meta.LunarDisplay = e.formatter.LunarDisplay(ld)
	}
	return meta
}

// computeSections runs every star family and derived section, isolating
// failures per section key.
func (e *Engine) computeSections(result *ChartResult, in BirthInput, ld calendar.LunarDate) {
	ind := result.Indices

	e.runSection(result, config.SectionPrimaryStars, func() error {
		p, err := star.Primary(result.Loci, ld.Day)
		if err != nil {
			return err
		}
		result.PrimaryStars = p
		return nil
	})

	e.runSection(result, config.SectionSecondaryStars, func() error {
		result.SecondaryStars = star.Secondary(star.SecondaryInput{
			YearStemIndex:   ind.YearStemIndex,
			YearBranchIndex: ind.YearBranchIndex,
			MonthIndex:      ind.MonthIndex,
			TimeIndex:       ind.TimeIndex,
		})
		result.VoidStars = star.VoidPairs(ind.YearStemIndex, ind.YearBranchIndex)
		return nil
	})

	e.runSection(result, config.SectionMinorStars, func() error {
		minor := star.Minor(star.MinorInput{
			YearStemIndex:   ind.YearStemIndex,
			YearBranchIndex: ind.YearBranchIndex,
			MonthIndex:      ind.MonthIndex,
			Day:             ld.Day,
			TimeIndex:       ind.TimeIndex,
			MingIndex:       result.MingIndex,
			ShenIndex:       result.ShenIndex,
		})

		migration, err := MigrationIndex(result.Palaces, result.MingIndex)
		if err != nil {
			return err
		}
		flankers, err := star.Flankers(migration, result.Clockwise, in.FlankerPolicy)
		if err != nil {
			return err
		}
		for name, pos := range flankers {
			minor[name] = pos
		}
		result.MinorStars = minor
		return nil
	})

	e.runSection(result, config.SectionSpiritStars, func() error {
		result.SpiritStars = star.Spirit(star.SpiritInput{
			YearStemIndex:   ind.YearStemIndex,
			YearBranchIndex: ind.YearBranchIndex,
			Clockwise:       result.Clockwise,
		})
		return nil
	})

	e.runSection(result, config.SectionLifeCycle, func() error {
		plan, err := BuildLifeCycle(result.Loci, result.MingIndex, result.Clockwise)
		if err != nil {
			return err
		}
		result.LifeCycle = plan
		return nil
	})

	e.runSection(result, config.SectionCycleStars, func() error {
		if len(result.LifeCycle.MajorCycles) == 0 {
			return errors.New(config.ErrLociRange)
		}
		overlays := make([]DecadeOverlay, 0, len(result.LifeCycle.MajorCycles))
		for _, mc := range result.LifeCycle.MajorCycles {
			palace := result.Palaces[mc.PalaceIndex]
			mutations, err := star.ResolveIndex(palace.StemIndex, in.StemInterpretations)
			if err != nil {
				return fmt.Errorf("decade %d: %w", mc.Sequence, err)
			}
			overlays = append(overlays, DecadeOverlay{
				Sequence:    mc.Sequence,
				PalaceIndex: mc.PalaceIndex,
				Stem:        palace.Stem,
				Branch:      palace.Branch,
				Stars:       star.CycleStars(palace.StemIndex, palace.Index),
				Mutations:   mutations,
			})
		}
		result.DecadeOverlays = overlays
		return nil
	})

	e.runSection(result, config.SectionMutations, func() error {
		m, err := star.ResolveIndex(ind.YearStemIndex, in.StemInterpretations)
		if err != nil {
			return err
		}
		result.Mutations = m
		return nil
	})

	e.runSection(result, config.SectionBrightness, func() error {
		grades := make(map[string]star.Brightness)
		for _, placed := range []star.Placement{result.PrimaryStars, result.SecondaryStars} {
			for name, pos := range placed {
				if g := star.Grade(name, pos); g != star.BrightnessEmpty {
					grades[name] = g
				}
			}
		}
		result.Brightness = grades
		return nil
	})
}

// runSection executes one section, capturing a failure under its key.
func (e *Engine) runSection(result *ChartResult, section string, fn func() error) {
	if err := fn(); err != nil {
		result.Errors[section] = newError(KindSection, err, config.LogKeySection, section)
		slog.Warn(config.MsgSectionFailed,
			config.LogKeyComponent, config.CompChart,
			config.LogKeySection, section,
			config.LogKeyError, err,
		)
	}
}

// sendValidation fires the remote validation call without awaiting it.
// The goroutine gets its own context so a finished request chain cannot
// cancel it mid-flight.
func (e *Engine) sendValidation(ctx context.Context, result *ChartResult) {
	if e.validator == nil || e.settings.ValidationURL == "" {
		slog.Debug(config.MsgValidationSkip,
			config.LogKeyComponent, config.CompValidator,
		)
		return
	}

	payload := ValidationPayload{
		Fingerprint: result.Fingerprint,
		LunarYear:   result.Lunar.Year,
		LunarMonth:  result.Lunar.Month,
		LunarDay:    result.Lunar.Day,
		MingIndex:   result.MingIndex,
		Version:     config.Version,
	}
	endpoint := e.settings.ValidationURL

	go func() {
		if err := e.validator.Validate(context.WithoutCancel(ctx), endpoint, payload); err != nil {
			slog.Debug(config.MsgValidationFail,
				config.LogKeyComponent, config.CompValidator,
				config.LogKeyError, err,
			)
		}
	}()
}
