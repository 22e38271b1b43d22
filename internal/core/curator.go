package core

import (
	"github.com/samber/lo"
)

// Add returns a list with author appended. Adding an author that is already
// listed returns an equal list.
func Add(list SpammerList, author string) SpammerList {
	if list.Contains(author) {
		return list
	}
	return NewSpammerList(append(list.Authors(), author)...)
}

// Remove returns a list without author. If author is not listed it returns
// the input list and a *NotFoundError.
func Remove(list SpammerList, author string) (SpammerList, error) {
	if !list.Contains(author) {
		return list, &NotFoundError{Author: author}
	}
	return NewSpammerList(lo.Without(list.authors, author)...), nil
}
