package core

import (
	"slices"

	"github.com/samber/lo"
)

// Clear returns a new dataset without any record authored by a listed
// spammer, along with before/after statistics. ds is left untouched.
func Clear(ds Dataset, list SpammerList) (Dataset, ClearReport) {
	report := ClearReport{Before: statsOf(ds, list)}

	cleaned := Dataset{
		Columns: slices.Clone(ds.Columns),
		Records: lo.Filter(ds.Records, func(r Record, _ int) bool {
			return !list.Contains(r.Author)
		}),
	}

	report.After = statsOf(cleaned, list)
	return cleaned, report
}

func statsOf(ds Dataset, list SpammerList) Stats {
	return Stats{
		Tweets:   ds.Len(),
		Authors:  len(ds.Authors()),
		Spammers: list.Len(),
	}
}
