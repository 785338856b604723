// journal/grouping.go
package journal

import (
	"cmp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Bucket accumulates one group's summed result and member count.
type Bucket struct {
	Sum   float64
	Count int
}

// GroupAndSum buckets trades by the derived key and accumulates each
// bucket's result sum and member count. Every trade lands in exactly one
// bucket, so the bucket sums always add back up to the collection total.
func GroupAndSum[K cmp.Ordered](trades []Trade, key func(Trade) K) map[K]Bucket {
	groups := make(map[K]Bucket)
	for _, t := range trades {
		k := key(t)
		b := groups[k]
		b.Sum += t.Result
		b.Count++
		groups[k] = b
	}
	return groups
}

// ByAsset keys a trade by its asset name, verbatim.
func ByAsset(t Trade) string {
	return t.Asset
}

// ByEntryHour keys a trade by the hour portion of its entry time. A
// missing or malformed entry time keys to hour 0, the same bucket as true
// midnight entries.
func ByEntryHour(t Trade) int {
	hh, _, _ := strings.Cut(t.EntryTime, ":")
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0
	}
	return h
}

const dateLayout = "2006-01-02"

// ByWeek keys a trade by the Sunday on or before its date, formatted
// YYYY-MM-DD. Trades whose date does not parse share the empty key.
func ByWeek(t Trade) string {
	d, err := time.Parse(dateLayout, t.Date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -int(d.Weekday())).Format(dateLayout)
}

// ByMonth keys a trade by calendar month, formatted YYYY-MM. Trades whose
// date does not parse share the empty key.
func ByMonth(t Trade) string {
	d, err := time.Parse(dateLayout, t.Date)
	if err != nil {
		return ""
	}
	return d.Format("2006-01")
}

// Group is one ranked entry of a grouping.
type Group[K cmp.Ordered] struct {
	Key K
	Bucket
}

// TopN returns the n groups with the highest summed result. Equal sums
// order by ascending key so repeated runs rank identically; Go map
// iteration order would otherwise leak into the result.
func TopN[K cmp.Ordered](groups map[K]Bucket, n int) []Group[K] {
	ranked := collect(groups)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Sum != ranked[j].Sum {
			return ranked[i].Sum > ranked[j].Sum
		}
		return ranked[i].Key < ranked[j].Key
	})
	return truncate(ranked, n)
}

// BottomN returns the n groups with the lowest summed result. Ties order
// by ascending key, as in TopN.
func BottomN[K cmp.Ordered](groups map[K]Bucket, n int) []Group[K] {
	ranked := collect(groups)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Sum != ranked[j].Sum {
			return ranked[i].Sum < ranked[j].Sum
		}
		return ranked[i].Key < ranked[j].Key
	})
	return truncate(ranked, n)
}

func collect[K cmp.Ordered](groups map[K]Bucket) []Group[K] {
	ranked := make([]Group[K], 0, len(groups))
	for k, b := range groups {
		ranked = append(ranked, Group[K]{Key: k, Bucket: b})
	}
	return ranked
}

func truncate[K cmp.Ordered](ranked []Group[K], n int) []Group[K] {
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
