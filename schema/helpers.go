package schema

import "sort"

// TotalECTS sums the credit weights over a module slice.
func TotalECTS(modules []Module) float64 {
	var total float64
	for _, m := range modules {
		total += m.ECTS
	}
	return total
}

// EQFHistogram counts modules per EQF level.
func EQFHistogram(modules []Module) map[int]int {
	hist := make(map[int]int)
	for _, m := range modules {
		hist[m.EQFLevel]++
	}
	return hist
}

// ThematicAreas returns the number of distinct thematic areas in a
// selection. Modules without an area count as a single "General" bucket.
func ThematicAreas(modules []Module) int {
	areas := make(map[string]struct{})
	for _, m := range modules {
		area := m.ThematicArea
		if area == "" {
			area = "General"
		}
		areas[area] = struct{}{}
	}
	return len(areas)
}

// SortedEQFLevels returns the levels present in a histogram in ascending
// order, for stable report output.
func SortedEQFLevels(hist map[int]int) []int {
	levels := make([]int, 0, len(hist))
	for level := range hist {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// EfficiencyPercent computes actual/target as a percentage, capped at 100.
// A zero target reports 100 by convention so that empty requests do not
// read as shortfalls.
func EfficiencyPercent(actual, target float64) float64 {
	if target <= 0 {
		return 100
	}
	pct := actual / target * 100
	if pct > 100 {
		return 100
	}
	return pct
}
