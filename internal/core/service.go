package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// SweepService runs the detect, curate and clear workflow and reports each
// step through the logger. The underlying operations stay pure; the service
// only adds reporting and I/O orchestration.
type SweepService struct {
	loader   DatasetLoader
	saver    DatasetSaver
	reviewer Reviewer
	filter   CandidateFilter
	logger   *zap.Logger
	opts     DetectOptions
}

// NewSweepService creates a new sweep service. saver, reviewer and filter may be nil.
func NewSweepService(
	loader DatasetLoader,
	saver DatasetSaver,
	reviewer Reviewer,
	filter CandidateFilter,
	logger *zap.Logger,
	opts DetectOptions,
) *SweepService {
	return &SweepService{
		loader:   loader,
		saver:    saver,
		reviewer: reviewer,
		filter:   filter,
		logger:   logger,
		opts:     opts,
	}
}

// Load reads a dataset and reports skipped rows
func (s *SweepService) Load(ctx context.Context, location string) (*LoadResult, error) {
	if location == "" {
		return nil, ErrNoInput
	}

	result, err := s.loader.Load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	if result.Skipped > 0 {
		s.logger.Warn("Skipped malformed rows",
			zap.String("location", location),
			zap.Int("skipped", result.Skipped))
		for _, issue := range result.Issues {
			s.logger.Debug("Malformed row", zap.Int("line", issue.Line), zap.Error(issue.Err))
		}
	}

	s.logger.Info("Loaded dataset",
		zap.String("location", location),
		zap.Int("records", result.Dataset.Len()),
		zap.Int("authors", len(result.Dataset.Authors())))

	return result, nil
}

// Detect flags candidate spammers and drops allowlisted authors
func (s *SweepService) Detect(ds Dataset) SpammerList {
	list := Detect(ds, s.opts)
	if s.filter != nil {
		list = s.filter.Filter(list)
	}

	s.logger.Info(DetectionSummary(list.Len()),
		zap.Int("threshold", s.threshold()),
		zap.Strings("spammers", list.Authors()))

	return list
}

// Add appends author to the list
func (s *SweepService) Add(list SpammerList, author string) SpammerList {
	if list.Contains(author) {
		s.logger.Info(author+" is already in the spammer list", zap.String("author", author))
		return list
	}

	updated := Add(list, author)
	s.logger.Info(author+" is added to the spammer list",
		zap.String("author", author),
		zap.String("action", "add"))
	return updated
}

// Remove drops author from the list. A *NotFoundError is returned unchanged
// for the caller to handle.
func (s *SweepService) Remove(list SpammerList, author string) (SpammerList, error) {
	updated, err := Remove(list, author)
	if err != nil {
		s.logger.Warn(author+" is not in the spammer list", zap.String("author", author))
		return list, err
	}

	s.logger.Info(author+" is removed from the spammer list",
		zap.String("author", author),
		zap.String("action", "remove"))
	return updated, nil
}

// Curate applies manual additions then removals. Authors that could not be
// removed because they were not listed are returned as missing.
func (s *SweepService) Curate(list SpammerList, add, remove []string) (SpammerList, []string) {
	for _, author := range add {
		list = s.Add(list, author)
	}

	var missing []string
	for _, author := range remove {
		updated, err := s.Remove(list, author)
		if errors.Is(err, ErrNotFound) {
			missing = append(missing, author)
			continue
		}
		list = updated
	}
	return list, missing
}

// Clear removes the listed authors' records and reports before/after stats
func (s *SweepService) Clear(ds Dataset, list SpammerList) (Dataset, ClearReport) {
	cleaned, report := Clear(ds, list)

	s.logStats("Before removing spammers", report.Before)
	s.logStats("After removing spammers", report.After)

	return cleaned, report
}

// Run executes load, detect, review, curate, clear and save in sequence
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	loaded, err := s.Load(ctx, req.Input)
	if err != nil {
		return nil, err
	}
	ds := loaded.Dataset

	candidates := s.Detect(ds)

	final := candidates
	if s.reviewer != nil {
		final, err = s.reviewer.Review(ctx, ds, candidates)
		if err != nil {
			return nil, fmt.Errorf("failed to review candidates: %w", err)
		}
	}

	final, missing := s.Curate(final, req.Add, req.Remove)
	cleaned, report := s.Clear(ds, final)

	result := &SweepResult{
		Loaded:          ds.Len(),
		Skipped:         loaded.Skipped,
		Candidates:      candidates,
		Final:           final,
		MissingRemovals: missing,
		Report:          report,
		Cleaned:         cleaned,
	}

	if req.DryRun || s.saver == nil {
		s.logger.Info("Skipping save", zap.Bool("dry_run", req.DryRun))
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.saver.Save(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("failed to save cleaned dataset: %w", err)
	}
	result.Saved = true

	return result, nil
}

func (s *SweepService) threshold() int {
	if s.opts.Threshold <= 0 {
		return DefaultThreshold
	}
	return s.opts.Threshold
}

func (s *SweepService) logStats(msg string, stats Stats) {
	s.logger.Info(msg,
		zap.Int("tweets", stats.Tweets),
		zap.Int("authors", stats.Authors),
		zap.Int("spammers", stats.Spammers),
		zap.String("ratio", FormatRatio(stats)))
}

// FormatRatio renders Stats.Ratio with 2 decimals, or "n/a" when undefined
func FormatRatio(stats Stats) string {
	ratio, ok := stats.Ratio()
	if !ok {
		return "n/a"
	}
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
