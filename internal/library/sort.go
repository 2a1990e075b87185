package library

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// titleCollator wraps a locale-aware collator for title ordering. It is
// not safe for concurrent use and is only called under the store lock.
type titleCollator struct {
	coll *collate.Collator
}

func newTitleCollator(tag language.Tag) *titleCollator {
	if tag == language.Und {
		tag = language.German
	}
	return &titleCollator{coll: collate.New(tag)}
}

func (c *titleCollator) less(a, b string) bool {
	return c.coll.CompareString(a, b) < 0
}

func (s *Store) sortView(view []Prompt, sortBy SortOption) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].CreatedAt.After(view[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].CreatedAt.Before(view[j].CreatedAt)
		})
	case SortTitleAsc:
		sort.SliceStable(view, func(i, j int) bool {
			return s.titles.less(view[i].Title, view[j].Title)
		})
	case SortTitleDesc:
		sort.SliceStable(view, func(i, j int) bool {
			return s.titles.less(view[j].Title, view[i].Title)
		})
	}
}
