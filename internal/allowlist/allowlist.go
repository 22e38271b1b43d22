package allowlist

import (
	"strings"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Checker holds authors that must never be flagged as spammers
type Checker struct {
	authors map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new allowlist checker
func NewChecker(authors []string, logger *zap.Logger) *Checker {
	normalized := lo.Uniq(lo.Compact(lo.Map(authors, func(a string, _ int) string {
		return normalize(a)
	})))

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized allowlist checker", zap.Strings("authors", normalized))
	}

	set := make(map[string]struct{}, len(normalized))
	for _, a := range normalized {
		set[a] = struct{}{}
	}

	return &Checker{
		authors: set,
		logger:  logger,
	}
}

// IsAllowed reports whether author is allowlisted. Matching ignores case
// and a leading @.
func (c *Checker) IsAllowed(author string) bool {
	if len(c.authors) == 0 {
		return false
	}
	_, ok := c.authors[normalize(author)]
	return ok
}

// Filter drops allowlisted authors from list, keeping order
func (c *Checker) Filter(list core.SpammerList) core.SpammerList {
	if len(c.authors) == 0 {
		return list
	}

	kept := lo.Filter(list.Authors(), func(author string, _ int) bool {
		if c.IsAllowed(author) {
			if c.logger != nil {
				c.logger.Debug("Author is allowlisted", zap.String("author", author))
			}
			return false
		}
		return true
	})
	return core.NewSpammerList(kept...)
}

func normalize(author string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(author), "@"))
}
