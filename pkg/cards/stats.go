package cards

import "sort"

// Colors is the canonical WUBRG order.
var Colors = []string{"W", "U", "B", "R", "G"}

// ColorPreference is the share of the collection containing one color.
type ColorPreference struct {
	Color      string  `json:"color" yaml:"color"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// RarityCount is the number of records with one rarity.
type RarityCount struct {
	Rarity string `json:"rarity" yaml:"rarity"`
	Count  int    `json:"count" yaml:"count"`
}

// Statistics summarizes a collection.
type Statistics struct {
	Total      int               `json:"total" yaml:"total"`
	Colorless  int               `json:"colorless" yaml:"colorless"`
	Unenriched int               `json:"unenriched" yaml:"unenriched"`
	ColorPrefs []ColorPreference `json:"colorPrefs" yaml:"color_prefs"`
	Rarities   []RarityCount     `json:"rarities" yaml:"rarities"`
}

// CalculateStats counts, for each of WUBRG, the records whose colors include
// it. Percentage is a fraction of the whole collection, 0 when it is empty.
// Multicolor records count once per color. Rarities are sorted by count,
// then name.
func CalculateStats(c Collection) Statistics {
	stats := Statistics{Total: len(c)}

	perColor := make(map[string]int, len(Colors))
	rarities := make(map[string]int)
	for _, r := range c {
		if !r.HasColors() {
			stats.Unenriched++
		} else if len(r.Colors) == 0 {
			stats.Colorless++
		}
		seen := make(map[string]bool, len(r.Colors))
		for _, color := range r.Colors {
			if !seen[color] {
				perColor[color]++
				seen[color] = true
			}
		}
		rarities[r.Rarity]++
	}

	for _, color := range Colors {
		pref := ColorPreference{Color: color, Count: perColor[color]}
		if stats.Total > 0 {
			pref.Percentage = float64(pref.Count) / float64(stats.Total)
		}
		stats.ColorPrefs = append(stats.ColorPrefs, pref)
	}

	for rarity, count := range rarities {
		stats.Rarities = append(stats.Rarities, RarityCount{Rarity: rarity, Count: count})
	}
	sort.Slice(stats.Rarities, func(i, j int) bool {
		if stats.Rarities[i].Count != stats.Rarities[j].Count {
			return stats.Rarities[i].Count > stats.Rarities[j].Count
		}
		return stats.Rarities[i].Rarity < stats.Rarities[j].Rarity
	})

	return stats
}
