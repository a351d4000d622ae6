package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ziwei/internal/config"
	"github.com/tartampluch/go-ziwei/internal/star"
)

func baseInput() BirthInput {
	return BirthInput{
		Gender:            config.GenderMale,
		Year:              1990,
		Month:             5,
		Day:               12,
		Hour:              8,
		Minute:            30,
		CalendarType:      config.CalendarSolar,
		LeapMonthHandling: config.LeapPolicyMid,
		ZiHourHandling:    config.ZiPolicyMidnight,
		FlankerPolicy:     config.FlankerPolicyRotation,
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint(baseInput())
	b := Fingerprint(baseInput())

	assert.Equal(t, a, b)
	assert.Len(t, a, config.FingerprintHashLength*2, "hex-encoded prefix")
}

func TestFingerprint_DisplayFieldsExcluded(t *testing.T) {
	plain := baseInput()
	named := baseInput()
	named.Name = "张三"
	named.Birthplace = "Beijing"

	assert.Equal(t, Fingerprint(plain), Fingerprint(named))
}

func TestFingerprint_PoliciesIncluded(t *testing.T) {
	base := baseInput()

	zi := baseInput()
	zi.ZiHourHandling = config.ZiPolicyZiChange
	assert.NotEqual(t, Fingerprint(base), Fingerprint(zi))

	leap := baseInput()
	leap.LeapMonthHandling = config.LeapPolicyNext
	assert.NotEqual(t, Fingerprint(base), Fingerprint(leap))

	variant := baseInput()
	variant.StemInterpretations = map[string]string{"庚": "2"}
	assert.NotEqual(t, Fingerprint(base), Fingerprint(variant))
}

func TestResultCache_FIFOEviction(t *testing.T) {
	c := newResultCache(2)

	c.put("a", &ChartResult{Fingerprint: "a"})
	c.put("b", &ChartResult{Fingerprint: "b"})
	c.put("c", &ChartResult{Fingerprint: "c"})

	assert.Nil(t, c.get("a"), "oldest entry evicted")
	assert.NotNil(t, c.get("b"))
	assert.NotNil(t, c.get("c"))
}

func TestResultCache_HandsOutCopies(t *testing.T) {
	c := newResultCache(4)
	original := &ChartResult{
		Fingerprint:  "x",
		PrimaryStars: star.Placement{star.NameZiwei: 6},
		Errors:       map[string]*Error{},
	}
	c.put("x", original)

	// Mutating the source after storing must not leak into the cache.
	original.PrimaryStars[star.NameZiwei] = 0

	hit := c.get("x")
	require.NotNil(t, hit)
	assert.Equal(t, 6, hit.PrimaryStars[star.NameZiwei])

	// Mutating a hit must not poison later hits.
	hit.PrimaryStars[star.NameZiwei] = 11
	again := c.get("x")
	require.NotNil(t, again)
	assert.Equal(t, 6, again.PrimaryStars[star.NameZiwei])
}

func TestResultCache_ZeroCapacityFallsBackToDefault(t *testing.T) {
	c := newResultCache(0)

	assert.Equal(t, config.DefaultCacheCapacity, c.capacity)
}
