package core

import (
	"fmt"
	"testing"
	"time"
)

// posts returns n records by author on day (2006-01-02), one minute apart
func posts(t *testing.T, author, day string, n int) []Record {
	t.Helper()
	start, err := time.Parse(DayLayout, day)
	if err != nil {
		t.Fatalf("bad day %q: %v", day, err)
	}
	start = start.Add(9 * time.Hour)

	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewRecord(author, fmt.Sprintf("%s post %d", author, i), start.Add(time.Duration(i)*time.Minute)))
	}
	return out
}

func dataset(groups ...[]Record) Dataset {
	var records []Record
	for _, g := range groups {
		records = append(records, g...)
	}
	return NewDataset(records...)
}

func mustDay(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// scenario is the three author, two day dataset used across tests:
// A posts 12 then 3, B posts 4 then 11, C posts once each day.
func scenario(t *testing.T) Dataset {
	t.Helper()
	return dataset(
		posts(t, "A", "2021-09-01", 12),
		posts(t, "B", "2021-09-01", 4),
		posts(t, "C", "2021-09-01", 1),
		posts(t, "A", "2021-09-02", 3),
		posts(t, "B", "2021-09-02", 11),
		posts(t, "C", "2021-09-02", 1),
	)
}
