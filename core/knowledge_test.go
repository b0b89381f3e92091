package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestJaccardSimilar verifies the token-set overlap matcher.
func TestJaccardSimilar(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "identical labels",
			a:    "Carbon Footprint Measurement",
			b:    "Carbon Footprint Measurement",
			want: true,
		},
		{
			name: "near match with suffix",
			a:    "Carbon Footprint Measurement",
			b:    "Carbon Footprint Measurement Basics",
			want: true,
		},
		{
			name: "case insensitive",
			a:    "GREEN SOFTWARE",
			b:    "green software",
			want: true,
		},
		{
			name: "disjoint labels",
			a:    "Carbon Footprint Measurement",
			b:    "Medieval History",
			want: false,
		},
		{
			name: "partial overlap below threshold",
			a:    "Sustainable AI",
			b:    "Sustainable Fashion Retail Logistics",
			want: false,
		},
		{
			name: "empty left",
			a:    "",
			b:    "Green Software",
			want: false,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: false,
		},
		{
			name: "punctuation ignored",
			a:    "green-software development",
			b:    "green software development",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JaccardSimilar(tt.a, tt.b), "JaccardSimilar(%q, %q)", tt.a, tt.b)
		})
	}
}

// TestTopicKeywords verifies the lookup order: exact, fuzzy, then generic.
func TestTopicKeywords(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		kws := topicKeywords("Carbon Footprint Measurement", JaccardSimilar)
		assert.Contains(t, kws, "ghg")
		assert.Contains(t, kws, "emission")
	})

	t.Run("fuzzy match", func(t *testing.T) {
		kws := topicKeywords("Carbon Footprint Measurement Basics", JaccardSimilar)
		assert.Contains(t, kws, "ghg", "Fuzzy topic should resolve to the carbon keyword set")
	})

	t.Run("generic fallback", func(t *testing.T) {
		kws := topicKeywords("Underwater Basket Weaving", JaccardSimilar)
		assert.Equal(t, genericSustainabilityKeywords, kws)
	})
}

// TestTokens verifies tokenization on non-alphanumeric boundaries.
func TestTokens(t *testing.T) {
	got := tokens("Green-Software, development! 2024")
	assert.Len(t, got, 4)
	assert.Contains(t, got, "green")
	assert.Contains(t, got, "software")
	assert.Contains(t, got, "development")
	assert.Contains(t, got, "2024")
}

// TestOverlap verifies set intersection counting.
func TestOverlap(t *testing.T) {
	a := tokens("green software development")
	b := tokens("green hardware development")
	assert.Equal(t, 2, overlap(a, b))
	assert.Equal(t, 2, overlap(b, a), "Overlap is symmetric")
	assert.Equal(t, 0, overlap(a, tokens("")))
}

// TestKnownTopics verifies the knowledge base is exposed completely.
func TestKnownTopics(t *testing.T) {
	topics := KnownTopics()
	assert.Len(t, topics, len(coreTopics))
	assert.Contains(t, topics, "Green Software Development")
	assert.Contains(t, topics, "Sustainable AI")
}
