package model

import (
	"fmt"
	"strings"
)

// Category tags an investment for the balance sheet breakdown.
type Category string

const (
	CategoryAuto     Category = ""
	CategoryCash     Category = "cash"
	CategoryGoodwill Category = "goodwill"
	CategoryOther    Category = "other"
)

// ParseCategory accepts the persisted names plus "auto".
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryCash, CategoryGoodwill, CategoryOther:
		return c, nil
	case "auto", CategoryAuto:
		return CategoryAuto, nil
	default:
		return CategoryAuto, fmt.Errorf("unknown investment category %q", s)
	}
}

// String returns "auto" for the untagged category.
func (c Category) String() string {
	if c == CategoryAuto {
		return "auto"
	}
	return string(c)
}

// Classification says which balance sheet buckets an investment feeds.
// Both may be set for an untagged investment whose name mentions both.
type Classification struct {
	Cash     bool
	Goodwill bool
}

// Classify returns the buckets the investment contributes to. An explicit
// category wins; untagged investments fall back to a case-insensitive
// substring match on the name, which is kept for snapshots written before
// categories existed.
func (i Investment) Classify() Classification {
	switch i.Category {
	case CategoryCash:
		return Classification{Cash: true}
	case CategoryGoodwill:
		return Classification{Goodwill: true}
	case CategoryOther:
		return Classification{}
	}
	name := strings.ToLower(i.Name)
	return Classification{
		Cash:     strings.Contains(name, "cash"),
		Goodwill: strings.Contains(name, "goodwill"),
	}
}
