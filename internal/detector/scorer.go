package detector

import (
	"strings"

	"github.com/saketmishra7224/calmify/internal/corpus"
)

// baseMatchScore scales the (category, tier) weight into a per-match score.
const baseMatchScore = 10.0

// score runs the phrase scan over the lowercased text and aggregates the
// per-category and total contributions. Every category is present in the
// returned map, zero if unmatched. Scoring never fails, for any input.
func (d *Detector) score(text string) (float64, map[corpus.Category]CategoryScore, []MatchRecord) {
	cats := make(map[corpus.Category]CategoryScore, len(corpus.Categories))
	for _, cat := range corpus.Categories {
		cats[cat] = CategoryScore{Category: cat}
	}

	var total float64
	var matches []MatchRecord

	for _, entry := range d.corpus.Phrases() {
		weight := d.corpus.Weight(entry.Category, entry.Tier)
		if weight == 0 {
			continue
		}
		// Every occurrence of the phrase is scored independently; overlaps
		// across different phrases are not deduplicated.
		for from := 0; ; {
			idx := strings.Index(text[from:], entry.Phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			mods := examineContext(text, start, len(entry.Phrase))

			raw := weight * baseMatchScore
			final := raw * mods.Multiplier

			rec := MatchRecord{
				Phrase:            entry.Phrase,
				Category:          entry.Category,
				Tier:              entry.Tier,
				RawScore:          raw,
				ContextMultiplier: mods.Multiplier,
				FinalScore:        final,
				Negated:           mods.Negated,
				Intensified:       mods.Intensified,
				Certain:           mods.Certain,
				Surrounding:       mods.Window,
			}

			cs := cats[entry.Category]
			cs.Score += final
			cs.Matches = append(cs.Matches, rec)
			cats[entry.Category] = cs

			total += final
			matches = append(matches, rec)

			from = start + len(entry.Phrase)
		}
	}

	return total, cats, matches
}
