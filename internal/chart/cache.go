package chart

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tartampluch/go-ziwei/internal/config"
)

// Fingerprint hashes every input field that affects the computed chart.
// Display-only fields (name, birthplace) are deliberately excluded so
// cosmetic edits still hit the cache.
func Fingerprint(in BirthInput) string {
	var b strings.Builder
	b.WriteString(config.FingerprintSalt)
	fmt.Fprintf(&b, "%d-%d-%d %d:%d", in.Year, in.Month, in.Day, in.Hour, in.Minute)
	fmt.Fprintf(&b, "|%s|%s|%t", in.Gender, in.CalendarType, in.LeapMonth)
	fmt.Fprintf(&b, "|%s|%s|%s", in.LeapMonthHandling, in.ZiHourHandling, in.FlankerPolicy)

	// Map iteration order is random; sort for a stable key.
	stems := make([]string, 0, len(in.StemInterpretations))
	for stem := range in.StemInterpretations {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	for _, stem := range stems {
		fmt.Fprintf(&b, "|%s=%s", stem, in.StemInterpretations[stem])
	}

	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", hash[:config.FingerprintHashLength])
}

// resultCache is a bounded FIFO store of computed charts. The whole
// pipeline is single-threaded, so no locking is needed; hits hand out
// defensive copies so a caller can never mutate cached state.
type resultCache struct {
	capacity int
	order    []string
	entries  map[string]*ChartResult
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = config.DefaultCacheCapacity
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string]*ChartResult, capacity),
	}
}

// get returns a clone of the stored result, or nil on a miss.
func (c *resultCache) get(fingerprint string) *ChartResult {
	r, ok := c.entries[fingerprint]
	if !ok {
		return nil
	}
	return r.Clone()
}

// put stores a clone of the result, evicting the oldest entry when full.
func (c *resultCache) put(fingerprint string, r *ChartResult) {
	if _, exists := c.entries[fingerprint]; exists {
		c.entries[fingerprint] = r.Clone()
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		slog.Debug(config.MsgCacheEvict,
			config.LogKeyComponent, config.CompCache,
			config.LogKeyFingerprint, oldest,
		)
	}

	c.order = append(c.order, fingerprint)
	c.entries[fingerprint] = r.Clone()

	slog.Debug(config.MsgCacheStore,
		config.LogKeyComponent, config.CompCache,
		config.LogKeyFingerprint, fingerprint,
		config.LogKeyCount, len(c.order),
		config.LogKeyCapacity, c.capacity,
	)
}
