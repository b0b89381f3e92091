package core

import (
	"testing"

	"github.com/dietmarja/curricula/schema"
)

// FuzzJaccardSimilar fuzzes the similarity matcher with arbitrary label
// pairs. The matcher must never panic and must stay symmetric.
func FuzzJaccardSimilar(f *testing.F) {
	seeds := [][2]string{
		{"Carbon Footprint Measurement", "Carbon Footprint Measurement Basics"},
		{"Green Software Development", "green-software development"},
		{"", ""},
		{"a", "b"},
		{"  spaces   everywhere  ", "spaces"},
		{"ünïcödé tëxt", "unicode text"},
	}
	for _, seed := range seeds {
		f.Add(seed[0], seed[1])
	}

	f.Fuzz(func(t *testing.T, a, b string) {
		got := JaccardSimilar(a, b)
		mirrored := JaccardSimilar(b, a)
		if got != mirrored {
			t.Errorf("JaccardSimilar is not symmetric for %q and %q", a, b)
		}
	})
}

// FuzzTopicRelevance fuzzes topic scoring with arbitrary text inputs. The
// score must stay within [0, 100].
func FuzzTopicRelevance(f *testing.F) {
	f.Add("Carbon Module", "measures carbon emissions", "Carbon Footprint Measurement")
	f.Add("", "", "")
	f.Add("x", "y", "z")

	f.Fuzz(func(t *testing.T, title, desc, topic string) {
		m := schema.Module{Title: title, Description: desc}
		score := TopicRelevance(&m, topic, JaccardSimilar)
		if score < 0 || score > 100 {
			t.Errorf("TopicRelevance out of range: %g", score)
		}
	})
}
