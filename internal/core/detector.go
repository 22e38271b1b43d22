package core

import (
	"strconv"

	"github.com/samber/lo"
)

// DefaultThreshold is the same-day post count that flags an author
const DefaultThreshold = 10

// DetectOptions controls a detection scan. From and To narrow the calendar
// scan when set; the zero Day means "use the dataset bounds".
type DetectOptions struct {
	Threshold int
	From      Day
	To        Day
}

// DefaultDetectOptions returns options with the default threshold
func DefaultDetectOptions() DetectOptions {
	return DetectOptions{Threshold: DefaultThreshold}
}

// Detect scans every calendar day between the first and last post and returns
// the authors who posted at least opts.Threshold times on any single day.
// Days are scanned in order, so the result lists authors in the order they
// first crossed the threshold. Counts never aggregate across days.
func Detect(ds Dataset, opts DetectOptions) SpammerList {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if ds.IsEmpty() {
		return NewSpammerList()
	}

	start, end, _ := ds.DateRange()
	if !opts.From.IsZero() {
		start = opts.From
	}
	if !opts.To.IsZero() {
		end = opts.To
	}

	byDay := lo.GroupBy(ds.Records, func(r Record) Day {
		return r.PostDate
	})

	var found []string
	for day := start; !day.After(end); day = day.AddDays(1) {
		found = append(found, authorsAtOrAbove(byDay[day], threshold)...)
	}

	return NewSpammerList(found...)
}

// authorsAtOrAbove returns, in first-seen order, the authors with at least
// threshold records
func authorsAtOrAbove(records []Record, threshold int) []string {
	if len(records) < threshold {
		return nil
	}
	counts := lo.CountValuesBy(records, func(r Record) string {
		return r.Author
	})
	authors := lo.Uniq(lo.Map(records, func(r Record, _ int) string {
		return r.Author
	}))
	return lo.Filter(authors, func(author string, _ int) bool {
		return counts[author] >= threshold
	})
}

// DetectionSummary renders the human readable candidate count
func DetectionSummary(n int) string {
	switch n {
	case 0:
		return "There is no potential spammer identified"
	case 1:
		return "There is 1 potential spammer identified"
	default:
		return "There are " + strconv.Itoa(n) + " potential spammers identified"
	}
}
