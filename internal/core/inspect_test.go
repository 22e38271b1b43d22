package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyCounts(t *testing.T) {
	ds := dataset(
		posts(t, "A", "2021-09-03", 2),
		posts(t, "A", "2021-09-01", 5),
		posts(t, "B", "2021-09-02", 7),
	)

	got := DailyCounts(ds, "A")

	assert.Equal(t, []DateCount{
		{Date: mustDay(t, "2021-09-01"), Count: 5},
		{Date: mustDay(t, "2021-09-03"), Count: 2},
	}, got)
}

func TestDailyCounts_UnknownAuthor(t *testing.T) {
	got := DailyCounts(scenario(t), "nobody")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func sampleDataset(t *testing.T) Dataset {
	t.Helper()
	at := func(hour int) time.Time {
		return time.Date(2021, 9, 1, hour, 0, 0, 0, time.UTC)
	}
	return NewDataset(
		NewRecord("A", "buy now", at(1)),
		NewRecord("A", "free coins", at(2)),
		NewRecord("A", "buy now", at(3)),
		NewRecord("A", "hello", at(4)),
		NewRecord("A", "free coins", at(5)),
		NewRecord("A", "buy now", at(6)),
		NewRecord("A", "bye", at(7)),
		NewRecord("B", "buy now", at(8)),
		NewRecord("A", "buy now", time.Date(2021, 9, 2, 1, 0, 0, 0, time.UTC)),
	)
}

func TestSampleContent(t *testing.T) {
	ds := sampleDataset(t)
	day := mustDay(t, "2021-09-01")

	tests := []struct {
		name  string
		mode  SampleMode
		limit int
		want  []TextCount
	}{
		{
			name:  "head returns most frequent",
			mode:  SampleHead,
			limit: 2,
			want:  []TextCount{{"buy now", 3}, {"free coins", 2}},
		},
		{
			name:  "tail returns least frequent in ranked order",
			mode:  SampleTail,
			limit: 2,
			want:  []TextCount{{"hello", 1}, {"bye", 1}},
		},
		{
			name:  "zero limit returns everything",
			mode:  SampleHead,
			limit: 0,
			want:  []TextCount{{"buy now", 3}, {"free coins", 2}, {"hello", 1}, {"bye", 1}},
		},
		{
			name:  "limit above size returns everything",
			mode:  SampleTail,
			limit: 10,
			want:  []TextCount{{"buy now", 3}, {"free coins", 2}, {"hello", 1}, {"bye", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleContent(ds, "A", day, tt.mode, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampleContent_NoPosts(t *testing.T) {
	got := SampleContent(sampleDataset(t), "A", mustDay(t, "2021-08-01"), SampleHead, 5)
	assert.Empty(t, got)
}

func TestParseSampleMode(t *testing.T) {
	mode, err := ParseSampleMode("TAIL")
	require.NoError(t, err)
	assert.Equal(t, SampleTail, mode)

	mode, err = ParseSampleMode("")
	require.NoError(t, err)
	assert.Equal(t, SampleHead, mode)

	_, err = ParseSampleMode("middle")
	assert.Error(t, err)
}

func TestPeakDay(t *testing.T) {
	counts := []DateCount{
		{Date: mustDay(t, "2021-09-01"), Count: 3},
		{Date: mustDay(t, "2021-09-02"), Count: 9},
		{Date: mustDay(t, "2021-09-03"), Count: 9},
	}

	peak, ok := PeakDay(counts)
	require.True(t, ok)
	assert.Equal(t, mustDay(t, "2021-09-02"), peak.Date)

	_, ok = PeakDay(nil)
	assert.False(t, ok)
}
