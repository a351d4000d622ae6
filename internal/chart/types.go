package chart

import (
	"github.com/tartampluch/go-ziwei/internal/calendar"
	"github.com/tartampluch/go-ziwei/internal/star"
)

// BirthInput is the normalized input of one chart computation. It is
// constructed once, validated before the pipeline starts, and never
// mutated afterwards.
type BirthInput struct {
	// Gender is config.GenderMale or config.GenderFemale.
	Gender string `json:"gender"`

	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	// CalendarType says whether the date fields above are Gregorian or
	// lunisolar (config.CalendarSolar / config.CalendarLunar).
	CalendarType string `json:"calendarType"`

	// LeapMonth marks a lunar input month as the leap month. Ignored for
	// solar input.
	LeapMonth bool `json:"leapMonth"`

	// LeapMonthHandling and ZiHourHandling are policy names; empty values
	// are filled from settings during normalization.
	LeapMonthHandling string `json:"leapMonthHandling"`
	ZiHourHandling    string `json:"ziHourHandling"`

	// FlankerPolicy controls 天伤/天使 placement.
	FlankerPolicy string `json:"flankerPolicy"`

	// StemInterpretations selects mutation variants for disputed stems.
	StemInterpretations map[string]string `json:"stemInterpretations"`

	// Name and Birthplace are display-only; they never affect computation
	// and are excluded from the cache fingerprint.
	Name       string `json:"name"`
	Birthplace string `json:"birthplace"`
}

// Palace is one of the twelve houses on the branch ring.
type Palace struct {
	Index     int    `json:"index"`
	Role      string `json:"role"`
	IsMing    bool   `json:"isMing"`
	IsShen    bool   `json:"isShen"`
	Stem      string `json:"stem"`
	StemIndex int    `json:"stemIndex"`
	Branch    string `json:"branch"`
}

// Indices are the canonical index values every placement formula reads.
type Indices struct {
	// MonthIndex is the leap-resolved lunar month minus one, 0..11.
	MonthIndex int `json:"monthIndex"`

	// TimeIndex is the double-hour index, 0..11.
	TimeIndex int `json:"timeIndex"`

	YearStemIndex   int `json:"yearStemIndex"`
	YearBranchIndex int `json:"yearBranchIndex"`
}

// MajorCycle is one ten-year span of the life-cycle plan.
type MajorCycle struct {
	StartAge    int `json:"startAge"`
	EndAge      int `json:"endAge"`
	PalaceIndex int `json:"palaceIndex"`
	Sequence    int `json:"sequence"`
}

// LifeCyclePlan is the decade sequence plus the twelve-stage progression.
type LifeCyclePlan struct {
	MajorCycles []MajorCycle `json:"majorCycles"`

	// TwelveStages maps palace index to its life-stage label.
	TwelveStages map[int]string `json:"twelveStages"`
}

// DecadeOverlay carries the cycle stars and mutations of one major cycle,
// anchored on that decade palace's stem and branch.
type DecadeOverlay struct {
	Sequence    int              `json:"sequence"`
	PalaceIndex int              `json:"palaceIndex"`
	Stem        string           `json:"stem"`
	Branch      string           `json:"branch"`
	Stars       star.Placement   `json:"stars"`
	Mutations   star.MutationMap `json:"mutations"`
}

// Meta carries the sanitized input and the pre-formatted display strings;
// the renderer must not reformat dates itself.
type Meta struct {
	Name         string `json:"name"`
	Birthplace   string `json:"birthplace"`
	Gender       string `json:"gender"`
	GenderLabel  string `json:"genderLabel"`
	CalendarType string `json:"calendarType"`
	SolarDisplay string `json:"solarDisplay"`
	LunarDisplay string `json:"lunarDisplay"`
	GanzhiYear   string `json:"ganzhiYear"`
}

// ChartResult is the terminal aggregate of one computation. It is never
// mutated after being returned; cached copies are cloned on every hit.
type ChartResult struct {
	Fingerprint string             `json:"fingerprint"`
	Meta        Meta               `json:"meta"`
	Lunar       calendar.LunarDate `json:"lunar"`
	Indices     Indices            `json:"indices"`

	MingIndex int      `json:"mingIndex"`
	ShenIndex int      `json:"shenIndex"`
	Loci      int      `json:"loci"`
	Clockwise bool     `json:"clockwise"`
	Palaces   []Palace `json:"palaces"`

	PrimaryStars   star.Placement        `json:"primaryStars"`
	SecondaryStars star.Placement        `json:"secondaryStars"`
	MinorStars     star.Placement        `json:"minorStars"`
	SpiritStars    star.SpiritPlacements `json:"spiritStars"`
	VoidStars      []star.VoidPlacement  `json:"voidStars"`
	DecadeOverlays []DecadeOverlay       `json:"decadeOverlays"`

	Mutations  star.MutationMap           `json:"mutations"`
	Brightness map[string]star.Brightness `json:"brightness"`
	LifeCycle  LifeCyclePlan              `json:"lifeCycle"`

	// Errors maps a section name to the failure captured while computing
	// it. Consumers must check a section's key before relying on its data.
	Errors map[string]*Error `json:"errors"`
}

// Clone returns a deep copy so cached results can be handed out without
// sharing mutable state.
func (r *ChartResult) Clone() *ChartResult {
	if r == nil {
		return nil
	}
	c := *r

	c.Palaces = append([]Palace(nil), r.Palaces...)
	c.PrimaryStars = clonePlacement(r.PrimaryStars)
	c.SecondaryStars = clonePlacement(r.SecondaryStars)
	c.MinorStars = clonePlacement(r.MinorStars)
	c.SpiritStars = star.SpiritPlacements{
		Boshi:     clonePlacement(r.SpiritStars.Boshi),
		Jiangqian: clonePlacement(r.SpiritStars.Jiangqian),
		Suiqian:   clonePlacement(r.SpiritStars.Suiqian),
	}
	c.VoidStars = append([]star.VoidPlacement(nil), r.VoidStars...)

	c.DecadeOverlays = make([]DecadeOverlay, len(r.DecadeOverlays))
	for i, d := range r.DecadeOverlays {
		d.Stars = clonePlacement(d.Stars)
		d.Mutations = cloneMutationMap(d.Mutations)
		c.DecadeOverlays[i] = d
	}

	c.Mutations = cloneMutationMap(r.Mutations)

	if r.Brightness != nil {
		c.Brightness = make(map[string]star.Brightness, len(r.Brightness))
		for k, v := range r.Brightness {
			c.Brightness[k] = v
		}
	}

	c.LifeCycle.MajorCycles = append([]MajorCycle(nil), r.LifeCycle.MajorCycles...)
	if r.LifeCycle.TwelveStages != nil {
		c.LifeCycle.TwelveStages = make(map[int]string, len(r.LifeCycle.TwelveStages))
		for k, v := range r.LifeCycle.TwelveStages {
			c.LifeCycle.TwelveStages[k] = v
		}
	}

	if r.Errors != nil {
		c.Errors = make(map[string]*Error, len(r.Errors))
		for k, v := range r.Errors {
			c.Errors[k] = v.clone()
		}
	}

	return &c
}

func clonePlacement(p star.Placement) star.Placement {
	if p == nil {
		return nil
	}
	c := make(star.Placement, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

func cloneMutationMap(m star.MutationMap) star.MutationMap {
	c := star.MutationMap{}
	if m.ByRole != nil {
		c.ByRole = make(map[star.Mutation]string, len(m.ByRole))
		for k, v := range m.ByRole {
			c.ByRole[k] = v
		}
	}
	if m.ByStar != nil {
		c.ByStar = make(map[string]star.Mutation, len(m.ByStar))
		for k, v := range m.ByStar {
			c.ByStar[k] = v
		}
	}
	return c
}
