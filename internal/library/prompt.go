package library

import "time"

// Prompt is the persisted record of the library. The JSON shape matches
// what the browser client stores, so existing collections survive.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	NegativeText string    `json:"negativeText,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortTitleAsc  SortOption = "titleAsc"
	SortTitleDesc SortOption = "titleDesc"
)

// ParseSortOption maps a raw query value to a sort option. Unknown values
// report false so callers can fall back to their own default.
func ParseSortOption(raw string) (SortOption, bool) {
	switch SortOption(raw) {
	case SortNewest, SortOldest, SortTitleAsc, SortTitleDesc:
		return SortOption(raw), true
	}
	return "", false
}
