package core

import (
	"context"
)

// DatasetLoader defines the interface for reading an export into a Dataset
type DatasetLoader interface {
	// Load reads the dataset at location, skipping malformed rows
	Load(ctx context.Context, location string) (*LoadResult, error)
}

// DatasetSaver defines the interface for persisting a cleaned Dataset
type DatasetSaver interface {
	// Save writes the dataset to the configured destination
	Save(ctx context.Context, ds Dataset) error
}

// Reviewer lets an operator correct the candidate list before clearing
type Reviewer interface {
	// Review returns the list that should be cleared
	Review(ctx context.Context, ds Dataset, candidates SpammerList) (SpammerList, error)
}

// CandidateFilter drops authors that must never be proposed as spammers
type CandidateFilter interface {
	Filter(list SpammerList) SpammerList
}
