package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		query    string
		want     string
	}{
		{
			name:     "tool finder",
			category: ToolFinder,
			query:    "project management",
			want:     "Find and describe tools that can help with: project management. Provide names, features, and where to find them.",
		},
		{
			name:     "business finder",
			category: BusinessFinder,
			query:    "web design",
			want:     "Locate businesses that offer: web design. Include business names, locations, and contact details if possible.",
		},
		{
			name:     "service finder",
			category: ServiceFinder,
			query:    "tax filing",
			want:     "Identify services related to: tax filing. List service providers, descriptions, and how to access them.",
		},
		{
			name:     "unknown category uses service template",
			category: Category(42),
			query:    "plumbing",
			want:     "Identify services related to: plumbing. List service providers, descriptions, and how to access them.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.category, tt.query))
		})
	}
}

func TestBuildKeepsQueryVerbatim(t *testing.T) {
	queries := []string{
		"a",
		"  padded query  ",
		"100% {query} literal",
		"multi\nline\nquery",
		"ünïcödé ✓",
	}

	for _, c := range Categories {
		for _, q := range queries {
			got := Build(c, q)
			assert.Contains(t, got, q, "category %s", c)
			assert.True(t, strings.HasPrefix(got, LeadIn(c)), "category %s: %q", c, got)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	for _, c := range Categories {
		assert.Equal(t, Build(c, "same input"), Build(c, "same input"))
	}
}

func TestLeadIn(t *testing.T) {
	assert.Equal(t, "Find and describe tools that can help with: ", LeadIn(ToolFinder))
	assert.Equal(t, "Locate businesses that offer: ", LeadIn(BusinessFinder))
	assert.Equal(t, "Identify services related to: ", LeadIn(ServiceFinder))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "tool", want: ToolFinder},
		{in: "Business Finder", want: BusinessFinder},
		{in: "  SERVICE ", want: ServiceFinder},
		{in: "service finder", want: ServiceFinder},
		{in: "restaurant", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryCycle(t *testing.T) {
	assert.Equal(t, BusinessFinder, ToolFinder.Next())
	assert.Equal(t, ToolFinder, ServiceFinder.Next())
	assert.Equal(t, ServiceFinder, ToolFinder.Prev())
	assert.Equal(t, "Tool Finder", ToolFinder.String())
	assert.Equal(t, "business", BusinessFinder.ID())
}
