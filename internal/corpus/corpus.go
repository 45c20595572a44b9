package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one of the semantic buckets crisis phrases are grouped into.
type Category string

const (
	CategorySuicide      Category = "suicide"
	CategorySelfHarm     Category = "self_harm"
	CategoryViolence     Category = "violence"
	CategoryImmediacy    Category = "immediacy"
	CategoryHopelessness Category = "hopelessness"
	CategorySubstance    Category = "substance"
	CategoryIsolation    Category = "isolation"
	CategoryMethods      Category = "methods"
)

// Categories lists all categories in a stable order. Every analysis result
// reports a score for each of these, matched or not.
var Categories = []Category{
	CategorySuicide,
	CategorySelfHarm,
	CategoryViolence,
	CategoryImmediacy,
	CategoryHopelessness,
	CategorySubstance,
	CategoryIsolation,
	CategoryMethods,
}

// Tier is the per-phrase severity label, assigned before any context
// adjustment.
type Tier string

const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
)

// PhraseEntry is a single crisis-indicative phrase. Phrases are matched as
// literal lowercase substrings of the message text.
type PhraseEntry struct {
	Category Category `yaml:"category" json:"category"`
	Tier     Tier     `yaml:"tier" json:"tier"`
	Phrase   string   `yaml:"phrase" json:"phrase"`
}

// weightKey indexes the severity weight table.
type weightKey struct {
	Category Category
	Tier     Tier
}

// Corpus holds the phrase table and severity weights. It is built once at
// startup and read-only afterward, so it is safe to share across goroutines.
type Corpus struct {
	phrases []PhraseEntry
	weights map[weightKey]float64
}

// corpusFile is the YAML shape for a corpus override file.
type corpusFile struct {
	Version string        `yaml:"version"`
	Phrases []PhraseEntry `yaml:"phrases"`
	Weights []struct {
		Category Category `yaml:"category"`
		Tier     Tier     `yaml:"tier"`
		Weight   float64  `yaml:"weight"`
	} `yaml:"weights"`
}

// Default returns the built-in corpus with the stock phrase tables and
// severity weights.
func Default() *Corpus {
	c := &Corpus{
		phrases: defaultPhrases(),
		weights: defaultWeights(),
	}
	if err := c.validate(); err != nil {
		// The built-in tables are compile-time constants; a validation
		// failure here is a programming error, not a runtime condition.
		panic(fmt.Sprintf("corpus: built-in tables invalid: %v", err))
	}
	return c
}

// LoadFromFile loads a corpus override from a YAML file. Any load or
// validation error is returned to the caller and must be treated as fatal
// at startup: a service running with a broken corpus would silently answer
// "no crisis" for every message.
func LoadFromFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML bytes into a Corpus.
func Parse(data []byte) (*Corpus, error) {
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing corpus YAML: %w", err)
	}
	c := &Corpus{
		phrases: make([]PhraseEntry, 0, len(f.Phrases)),
		weights: defaultWeights(),
	}
	for _, p := range f.Phrases {
		p.Phrase = strings.ToLower(strings.TrimSpace(p.Phrase))
		c.phrases = append(c.phrases, p)
	}
	for _, w := range f.Weights {
		c.weights[weightKey{w.Category, w.Tier}] = w.Weight
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validating corpus: %w", err)
	}
	return c, nil
}

// validate checks corpus integrity.
func (c *Corpus) validate() error {
	if len(c.phrases) == 0 {
		return fmt.Errorf("corpus has no phrases")
	}
	valid := make(map[Category]bool, len(Categories))
	for _, cat := range Categories {
		valid[cat] = true
	}
	validTiers := map[Tier]bool{TierCritical: true, TierHigh: true, TierMedium: true}
	for i, p := range c.phrases {
		if p.Phrase == "" {
			return fmt.Errorf("phrase %d: empty phrase", i)
		}
		if p.Phrase != strings.ToLower(p.Phrase) {
			return fmt.Errorf("phrase %q: must be lowercase", p.Phrase)
		}
		if !valid[p.Category] {
			return fmt.Errorf("phrase %q: unknown category %q", p.Phrase, p.Category)
		}
		if !validTiers[p.Tier] {
			return fmt.Errorf("phrase %q: unknown tier %q", p.Phrase, p.Tier)
		}
	}
	for k, w := range c.weights {
		if w < 0 || w > 1.2 {
			return fmt.Errorf("weight (%s,%s)=%v: out of range [0,1.2]", k.Category, k.Tier, w)
		}
	}
	return nil
}

// Phrases returns the full phrase table.
func (c *Corpus) Phrases() []PhraseEntry {
	return c.phrases
}

// Weight returns the severity weight for a (category, tier) pair.
// Unknown pairs weigh zero.
func (c *Corpus) Weight(cat Category, tier Tier) float64 {
	return c.weights[weightKey{cat, tier}]
}

// defaultWeights is the stock per-category, per-tier weight table. Weights scale
// the base per-match score of 10 and stay within [0, 1.2].
func defaultWeights() map[weightKey]float64 {
	return map[weightKey]float64{
		{CategorySuicide, TierCritical}:      1.2,
		{CategorySuicide, TierHigh}:          1.0,
		{CategorySuicide, TierMedium}:        0.6,
		{CategorySelfHarm, TierCritical}:     1.1,
		{CategorySelfHarm, TierHigh}:         0.9,
		{CategorySelfHarm, TierMedium}:       0.5,
		{CategoryViolence, TierCritical}:     1.2,
		{CategoryViolence, TierHigh}:         1.0,
		{CategoryViolence, TierMedium}:       0.6,
		{CategoryImmediacy, TierCritical}:    1.1,
		{CategoryImmediacy, TierHigh}:        0.8,
		{CategoryImmediacy, TierMedium}:      0.5,
		{CategoryHopelessness, TierCritical}: 0.9,
		{CategoryHopelessness, TierHigh}:     0.7,
		{CategoryHopelessness, TierMedium}:   0.4,
		{CategorySubstance, TierCritical}:    0.9,
		{CategorySubstance, TierHigh}:        0.7,
		{CategorySubstance, TierMedium}:      0.4,
		{CategoryIsolation, TierCritical}:    0.8,
		{CategoryIsolation, TierHigh}:        0.6,
		{CategoryIsolation, TierMedium}:      0.35,
		{CategoryMethods, TierCritical}:      1.1,
		{CategoryMethods, TierHigh}:          0.9,
		{CategoryMethods, TierMedium}:        0.5,
	}
}
