package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SampleMode selects which end of the ranked content sample is returned
type SampleMode int

const (
	// SampleHead returns the most frequent texts
	SampleHead SampleMode = iota
	// SampleTail returns the least frequent texts
	SampleTail
)

// ParseSampleMode accepts "head" or "tail"
func ParseSampleMode(s string) (SampleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "head":
		return SampleHead, nil
	case "tail":
		return SampleTail, nil
	default:
		return SampleHead, fmt.Errorf("unsupported sample mode: %s", s)
	}
}

func (m SampleMode) String() string {
	if m == SampleTail {
		return "tail"
	}
	return "head"
}

// DailyCounts returns how many posts author made on each day they posted,
// in chronological order
func DailyCounts(ds Dataset, author string) []DateCount {
	mine := lo.Filter(ds.Records, func(r Record, _ int) bool {
		return r.Author == author
	})
	counts := lo.CountValuesBy(mine, func(r Record) Day {
		return r.PostDate
	})

	out := make([]DateCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DateCount{Date: day, Count: n})
	}
	slices.SortFunc(out, func(a, b DateCount) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return out
}

// SampleContent counts the distinct texts author posted on day, ranked by
// count descending with ties kept in first-posted order. Head mode returns the
// first limit entries, tail mode the last limit. limit <= 0 returns all.
func SampleContent(ds Dataset, author string, day Day, mode SampleMode, limit int) []TextCount {
	ranked := []TextCount{}
	index := make(map[string]int)
	for _, r := range ds.Records {
		if r.Author != author || r.PostDate != day {
			continue
		}
		if i, ok := index[r.FullText]; ok {
			ranked[i].Count++
			continue
		}
		index[r.FullText] = len(ranked)
		ranked = append(ranked, TextCount{Text: r.FullText, Count: 1})
	}

	slices.SortStableFunc(ranked, func(a, b TextCount) int {
		return b.Count - a.Count
	})

	if limit <= 0 || limit >= len(ranked) {
		return ranked
	}
	if mode == SampleTail {
		return ranked[len(ranked)-limit:]
	}
	return ranked[:limit]
}

// PeakDay returns the day with the most posts; ties go to the earliest day
func PeakDay(counts []DateCount) (DateCount, bool) {
	if len(counts) == 0 {
		return DateCount{}, false
	}
	peak := counts[0]
	for _, c := range counts[1:] {
		if c.Count > peak.Count {
			peak = c
		}
	}
	return peak, true
}
