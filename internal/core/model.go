package core

import (
	"math"
	"slices"
	"time"

	"github.com/samber/lo"
)

// DefaultColumns is the header used when a Dataset was not loaded from a file
var DefaultColumns = []string{"Author", "Full Text", "Date"}

// PostDateColumn holds the derived calendar day when a Dataset is written out
const PostDateColumn = "Tweet_Date"

// Record represents a single post in the export
type Record struct {
	Author    string
	FullText  string
	Timestamp time.Time
	PostDate  Day
	// Row keeps the raw values as loaded, aligned with Dataset.Columns
	Row []string
}

// NewRecord creates a record and derives its PostDate from ts
func NewRecord(author, fullText string, ts time.Time) Record {
	return Record{
		Author:    author,
		FullText:  fullText,
		Timestamp: ts,
		PostDate:  DayOf(ts),
	}
}

// Dataset is an ordered collection of records
type Dataset struct {
	Columns []string
	Records []Record
}

// NewDataset creates a dataset with the default columns
func NewDataset(records ...Record) Dataset {
	return Dataset{
		Columns: slices.Clone(DefaultColumns),
		Records: records,
	}
}

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d.Records)
}

// IsEmpty reports whether the dataset holds no records
func (d Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}

// Authors returns the distinct authors in first-seen order
func (d Dataset) Authors() []string {
	return lo.Uniq(lo.Map(d.Records, func(r Record, _ int) string {
		return r.Author
	}))
}

// DateRange returns the first and last PostDate. ok is false for an empty dataset.
func (d Dataset) DateRange() (first, last Day, ok bool) {
	if d.IsEmpty() {
		return Day{}, Day{}, false
	}
	first, last = d.Records[0].PostDate, d.Records[0].PostDate
	for _, r := range d.Records[1:] {
		if r.PostDate.Before(first) {
			first = r.PostDate
		}
		if r.PostDate.After(last) {
			last = r.PostDate
		}
	}
	return first, last, true
}

// SpammerList is a deduplicated, order-preserving set of author identifiers.
// Values are never modified in place; Add and Remove return new lists.
type SpammerList struct {
	authors []string
	index   map[string]struct{}
}

// NewSpammerList builds a list from authors, dropping repeats
func NewSpammerList(authors ...string) SpammerList {
	l := SpammerList{
		authors: make([]string, 0, len(authors)),
		index:   make(map[string]struct{}, len(authors)),
	}
	for _, a := range authors {
		if _, ok := l.index[a]; ok {
			continue
		}
		l.index[a] = struct{}{}
		l.authors = append(l.authors, a)
	}
	return l
}

// Len returns the number of authors in the list
func (l SpammerList) Len() int {
	return len(l.authors)
}

// Contains reports whether author is listed
func (l SpammerList) Contains(author string) bool {
	_, ok := l.index[author]
	return ok
}

// Authors returns a copy of the listed authors. Never nil.
func (l SpammerList) Authors() []string {
	return append([]string{}, l.authors...)
}

// Stats summarises a dataset for clearing reports
type Stats struct {
	Tweets   int
	Authors  int
	Spammers int
}

// Ratio returns tweets per distinct author rounded to 2 decimals.
// ok is false when there are no authors and the ratio is undefined.
func (s Stats) Ratio() (ratio float64, ok bool) {
	if s.Authors == 0 {
		return 0, false
	}
	return math.Round(float64(s.Tweets)/float64(s.Authors)*100) / 100, true
}

// ClearReport holds the statistics before and after spammers were removed
type ClearReport struct {
	Before Stats
	After  Stats
}

// Removed returns the number of records dropped
func (r ClearReport) Removed() int {
	return r.Before.Tweets - r.After.Tweets
}

// DateCount is the number of posts on one day
type DateCount struct {
	Date  Day
	Count int
}

// TextCount is the number of times one text was posted
type TextCount struct {
	Text  string
	Count int
}

// LoadResult is what a DatasetLoader produces
type LoadResult struct {
	Dataset Dataset
	Skipped int
	Issues  []*MalformedRowError
}

// SweepRequest describes one run of the full pipeline
type SweepRequest struct {
	Input  string
	Add    []string
	Remove []string
	DryRun bool
}

// SweepResult describes the outcome of a pipeline run
type SweepResult struct {
	Loaded          int
	Skipped         int
	Candidates      SpammerList
	Final           SpammerList
	MissingRemovals []string
	Report          ClearReport
	Cleaned         Dataset
	Saved           bool
}
