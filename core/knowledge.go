// Package core has core logic for scoring, matching and selection.
package core

import (
	"strings"
	"unicode"
)

// Similarity decides whether two free-text labels refer to the same thing.
// The default is token-set Jaccard overlap, which is a lexical stand-in for
// semantic similarity; callers hold the function so it can be swapped for a
// real embedding-based matcher without touching the scoring code.
type Similarity func(a, b string) bool

// jaccardThreshold is the minimum token-set overlap for two labels to be
// considered the same topic.
const jaccardThreshold = 0.5

// coreTopics is the built-in digital-sustainability knowledge base, keyed by
// topic. Keyword sets drive topic relevance scoring when a requested topic
// matches (exactly or fuzzily) one of these entries.
var coreTopics = map[string][]string{
	"Green Software Development": {
		"green", "software", "sustainable", "energy", "efficient",
		"carbon", "footprint", "optimization", "eco-friendly",
		"environmental", "renewable", "clean", "low-power", "programming",
	},
	"Carbon Footprint Measurement": {
		"carbon", "footprint", "measurement", "emission", "ghg",
		"greenhouse", "gas", "co2", "assessment", "monitoring",
		"tracking", "reporting", "scope", "lifecycle", "quantification",
		"calculation", "analysis", "environmental", "impact", "data",
	},
	"Sustainable AI": {
		"ai", "artificial", "intelligence", "machine", "learning",
		"sustainable", "green", "efficient", "energy", "model",
		"training", "inference", "optimization", "federated", "carbon",
		"environmental", "algorithms", "data", "predictive",
	},
	"Data Center Sustainability": {
		"data", "center", "datacenter", "server", "cooling",
		"energy", "pue", "efficiency", "renewable", "infrastructure",
		"virtualization", "cloud", "green", "sustainable", "carbon",
		"monitoring", "optimization",
	},
	"Digital Circular Economy": {
		"circular", "economy", "digital", "lifecycle", "reuse",
		"recycle", "sustainable", "waste", "reduction", "sharing",
		"platform", "resource", "optimization", "efficiency",
		"business", "models",
	},
	"IoT Sustainability": {
		"iot", "internet", "things", "sensors", "devices",
		"energy", "efficient", "low", "power", "battery",
		"wireless", "smart", "sustainable", "monitoring",
		"environmental",
	},
	"Blockchain Sustainability": {
		"blockchain", "cryptocurrency", "bitcoin", "ethereum",
		"proof", "stake", "consensus", "energy", "efficient",
		"sustainable", "green", "carbon", "neutral", "traceability",
	},
	"Data Analytics for Sustainability": {
		"data", "analytics", "analysis", "sustainability", "environmental",
		"visualization", "intelligence", "carbon", "footprint", "measurement",
		"monitoring", "assessment", "reporting", "insights", "metrics",
	},
}

// genericSustainabilityKeywords is the fallback keyword set for topics with
// no exact or fuzzy knowledge-base match.
var genericSustainabilityKeywords = []string{
	"sustainable", "green", "environmental", "efficient",
	"carbon", "energy", "optimization", "measurement",
}

// topicKeywords returns the keyword set for a topic: exact knowledge-base
// match first, then a fuzzy match against the known topics, then the
// generic sustainability set.
func topicKeywords(topic string, similar Similarity) []string {
	if kws, ok := coreTopics[topic]; ok {
		return kws
	}
	for name, kws := range coreTopics {
		if similar(topic, name) {
			return kws
		}
	}
	return genericSustainabilityKeywords
}

// tokens splits text into a lowercase word set on non-alphanumeric
// boundaries.
func tokens(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	var n int
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

// JaccardSimilar reports whether two labels share at least half of their
// combined token set. Empty inputs never match.
func JaccardSimilar(a, b string) bool {
	ta, tb := tokens(a), tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	inter := overlap(ta, tb)
	union := len(ta) + len(tb) - inter
	if union == 0 {
		return false
	}
	return float64(inter)/float64(union) >= jaccardThreshold
}

// keywordSet lowercases a keyword list into a set.
func keywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(kw)] = struct{}{}
	}
	return set
}

// KnownTopics returns the names of all built-in topics in no particular
// order.
func KnownTopics() []string {
	names := make([]string, 0, len(coreTopics))
	for name := range coreTopics {
		names = append(names, name)
	}
	return names
}
