package corpus

// entries builds PhraseEntry values for one (category, tier) group.
func entries(cat Category, tier Tier, phrases ...string) []PhraseEntry {
	out := make([]PhraseEntry, len(phrases))
	for i, p := range phrases {
		out[i] = PhraseEntry{Category: cat, Tier: tier, Phrase: p}
	}
	return out
}

// defaultPhrases returns the stock phrase tables. Phrases are lowercase and
// matched as literal substrings of the lowercased message text, so entries
// here should be specific enough to avoid matching everyday language.
func defaultPhrases() []PhraseEntry {
	var all []PhraseEntry
	add := func(groups ...[]PhraseEntry) {
		for _, g := range groups {
			all = append(all, g...)
		}
	}

	// --- Suicide ---

	add(
		entries(CategorySuicide, TierCritical,
			"kill myself",
			"killing myself",
			"end my life",
			"take my own life",
			"suicide",
			"want to die",
			"better off dead",
			"end it all",
		),
		entries(CategorySuicide, TierHigh,
			"ready to go",
			"no reason to live",
			"tired of living",
			"wish i was dead",
			"wish i were dead",
			"want it all to end",
			"disappear forever",
			"everyone would be better off without me",
		),
		entries(CategorySuicide, TierMedium,
			"don't want to be here anymore",
			"sleep and never wake up",
			"thought about dying",
			"what it would be like to be gone",
		),
	)

	// --- Self-harm ---

	add(
		entries(CategorySelfHarm, TierCritical,
			"cut myself",
			"cutting myself",
			"burn myself",
			"burning myself",
		),
		entries(CategorySelfHarm, TierHigh,
			"hurt myself",
			"hurting myself",
			"harm myself",
			"self harm",
			"self-harm",
			"make myself bleed",
		),
		entries(CategorySelfHarm, TierMedium,
			"deserve the pain",
			"punish myself",
			"feel something even if it hurts",
		),
	)

	// --- Violence toward others ---

	add(
		entries(CategoryViolence, TierCritical,
			"kill him",
			"kill her",
			"kill them",
			"kill everyone",
			"shoot them",
			"shoot him",
			"shoot her",
		),
		entries(CategoryViolence, TierHigh,
			"hurt someone",
			"hurt him",
			"hurt her",
			"hurt them",
			"make them suffer",
			"make him pay",
			"make her pay",
		),
		entries(CategoryViolence, TierMedium,
			"so angry i could",
			"about to lose control",
			"rage inside me",
		),
	)

	// --- Immediacy ---

	add(
		entries(CategoryImmediacy, TierCritical,
			"tonight",
			"right now",
			"this is goodbye",
			"goodbye forever",
			"in a few minutes",
		),
		entries(CategoryImmediacy, TierHigh,
			"today is the day",
			"can't wait any longer",
			"it ends today",
			"before tomorrow",
		),
		entries(CategoryImmediacy, TierMedium,
			"ready to go",
			"very soon",
			"running out of time",
		),
	)

	// --- Hopelessness ---

	add(
		entries(CategoryHopelessness, TierCritical,
			"no way out",
			"nothing left to live for",
			"completely hopeless",
		),
		entries(CategoryHopelessness, TierHigh,
			"hopeless",
			"no future",
			"never get better",
			"can't do this anymore",
			"given up on everything",
		),
		entries(CategoryHopelessness, TierMedium,
			"no point",
			"nothing matters",
			"empty inside",
			"giving up",
			"what's the use",
		),
	)

	// --- Substance use ---

	add(
		entries(CategorySubstance, TierCritical,
			"overdose",
			"overdosing",
			"drank a whole bottle",
		),
		entries(CategorySubstance, TierHigh,
			"drinking to forget",
			"blackout drunk",
			"relapsed",
			"getting high to cope",
		),
		entries(CategorySubstance, TierMedium,
			"drinking a lot",
			"drunk again",
			"need a drink",
			"using again",
		),
	)

	// --- Isolation ---

	add(
		entries(CategoryIsolation, TierCritical,
			"no one would notice if i disappeared",
			"nobody would miss me",
			"no one would care if i died",
		),
		entries(CategoryIsolation, TierHigh,
			"completely alone",
			"no one cares",
			"nobody cares",
			"everyone left me",
			"have no one",
		),
		entries(CategoryIsolation, TierMedium,
			"so alone",
			"by myself all the time",
			"isolated",
			"lonely",
		),
	)

	// --- Means / method references ---

	add(
		entries(CategoryMethods, TierCritical,
			"have a gun",
			"loaded gun",
			"bought a rope",
			"stockpiled pills",
		),
		entries(CategoryMethods, TierHigh,
			"pills",
			"razor blade",
			"a knife",
			"the rope",
		),
		entries(CategoryMethods, TierMedium,
			"ways to do it",
			"how to end it",
			"looked up methods",
		),
	)

	return all
}
