package prompts

import (
	"fmt"
	"strings"
)

// Category selects which template is used for a search
type Category int

const (
	ToolFinder Category = iota
	BusinessFinder
	ServiceFinder
)

// Categories lists every category in display order
var Categories = []Category{ToolFinder, BusinessFinder, ServiceFinder}

// ID returns the stable identifier stored in config
func (c Category) ID() string {
	switch c {
	case ToolFinder:
		return "tool"
	case BusinessFinder:
		return "business"
	case ServiceFinder:
		return "service"
	default:
		return "unknown"
	}
}

// String returns the display label
func (c Category) String() string {
	switch c {
	case ToolFinder:
		return "Tool Finder"
	case BusinessFinder:
		return "Business Finder"
	case ServiceFinder:
		return "Service Finder"
	default:
		return "Unknown"
	}
}

// Next cycles forward through Categories
func (c Category) Next() Category {
	return Categories[(indexOf(c)+1)%len(Categories)]
}

// Prev cycles backward through Categories
func (c Category) Prev() Category {
	return Categories[(indexOf(c)+len(Categories)-1)%len(Categories)]
}

func indexOf(c Category) int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return 0
}

// ParseCategory accepts an id ("tool") or a label ("Tool Finder"), ignoring case
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, c.ID()) || strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return ToolFinder, fmt.Errorf("unknown category: %q", s)
}
