package taxonomy

// PowerWords maps words empirically associated with higher click-through to
// their relative weight. Weights feed the title scorer's power-word subscore.
var PowerWords = map[string]float64{
	"free": 1.0, "new": 0.6, "proven": 0.9, "easy": 0.8, "guaranteed": 0.9,
	"secret": 1.0, "exclusive": 0.9, "limited": 0.8, "breakthrough": 0.9,
	"revolutionary": 0.8, "transform": 0.8, "discover": 0.7, "unlock": 0.8,
	"master": 0.7, "essential": 0.8, "powerful": 0.8, "ultimate": 0.9, "best": 0.7,
}

// EmotionCategories lists the emotion lexicon's categories in their fixed
// priority order. Hook takeaways and tie-breaks follow this order.
var EmotionCategories = []string{
	"excitement",
	"fear",
	"anger",
	"surprise",
	"curiosity",
	"urgency",
}

// emotionLexicon maps each trigger word to exactly one emotion category.
var emotionLexicon = map[string]string{
	// excitement
	"amazing": "excitement", "incredible": "excitement", "unbelievable": "excitement",
	"mind-blowing": "excitement", "insane": "excitement", "crazy": "excitement", "epic": "excitement",
	// fear
	"scary": "fear", "terrifying": "fear", "dangerous": "fear", "warning": "fear",
	"alert": "fear", "risk": "fear", "threat": "fear",
	// anger
	"angry": "anger", "furious": "anger", "outraged": "anger", "disgusting": "anger",
	"hate": "anger", "worst": "anger",
	// surprise
	"shocking": "surprise", "unexpected": "surprise", "suddenly": "surprise", "twist": "surprise",
	// curiosity
	"secret": "curiosity", "hidden": "curiosity", "unknown": "curiosity",
	"mystery": "curiosity", "revealed": "curiosity",
	// urgency
	"now": "urgency", "today": "urgency", "immediately": "urgency",
	"quick": "urgency", "fast": "urgency", "urgent": "urgency",
}

// LookupEmotion returns the emotion category for a trigger word, if any.
func LookupEmotion(word string) (string, bool) {
	cat, ok := emotionLexicon[word]
	return cat, ok
}

// CTAPhrases lists call-to-action phrases the SEO analyzer looks for in
// descriptions, in fixed catalog order.
var CTAPhrases = []string{
	"subscribe", "like", "comment", "share", "follow",
	"click", "download", "join", "sign up", "check out",
}

// StopWords is the fixed stop-word set removed before topic extraction.
var StopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"should": true, "could": true, "may": true, "might": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "when": true, "where": true,
	"why": true, "how": true, "all": true, "each": true, "every": true,
	"both": true, "few": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true, "here": true, "there": true,
}
