package taxonomy

// RecipeEntry associates one viral recipe with the pattern tag that selects
// it, plus an example template the generator instantiates with the batch's
// best matching video.
type RecipeEntry struct {
	Tag               string   // Pattern tag that selects this recipe
	Name              string
	Formula           string
	EmotionalTriggers []string
	HowToApply        string
	ExpectedCTR       string // Static expected click-through range
}

var recipeCatalog = []RecipeEntry{
	{
		Tag:     TagCuriosity,
		Name:    "The Curiosity Loop",
		Formula: "Question Hook + Information Gap + Promise of Revelation",
		EmotionalTriggers: []string{
			"FOMO: 'What do successful people know that I don't?'",
			"Curiosity: 'I need to know this secret'",
			"Aspiration: 'I want to be like them'",
		},
		HowToApply:  "1. Start with a counterintuitive question\n2. Challenge a common assumption\n3. Promise a specific, actionable insight",
		ExpectedCTR: "8-12% (2x average)",
	},
	{
		Tag:     TagTransformation,
		Name:    "The Personal Experiment",
		Formula: "Specific Challenge + Exact Timeframe + Measurable Result",
		EmotionalTriggers: []string{
			"Relatability: 'I could try this too'",
			"Proof: 'Real person, real results'",
			"Hope: 'If they can do it, so can I'",
		},
		HowToApply:  "1. Pick a specific, replicable action\n2. Set a clear timeframe (30/60/90 days)\n3. Share exact results with proof",
		ExpectedCTR: "7-10% (1.5x average)",
	},
	{
		Tag:     TagEmotional,
		Name:    "The Sacred Cow Slayer",
		Formula: "Popular Belief + Bold Counter + Evidence",
		EmotionalTriggers: []string{
			"Shock: 'Wait, everything I believed is wrong?'",
			"Vindication: 'I knew something was off!'",
			"Debate: 'I need to defend or attack this position'",
		},
		HowToApply:  "1. Identify a widely accepted belief\n2. Present the opposite view boldly\n3. Back it with data, stories or authority",
		ExpectedCTR: "10-15% (2.5x average) but polarizing",
	},
	{
		Tag:     TagAdvanced,
		Name:    "The Behind-the-Curtain",
		Formula: "Industry Insider + Hidden Truth + Specific Tactics",
		EmotionalTriggers: []string{
			"Exclusivity: 'Insider information others don't have'",
			"Authority: 'From someone who actually knows'",
			"Advantage: 'This gives me an edge'",
		},
		HowToApply:  "1. Establish credibility upfront\n2. Promise specific insider knowledge\n3. Deliver exact scripts, formulas or tactics",
		ExpectedCTR: "9-12% (2x average)",
	},
	{
		Tag:     TagNumberList,
		Name:    "The Oddly Specific",
		Formula: "Odd Number + Unexpected Items + Clear Benefit",
		EmotionalTriggers: []string{
			"Specificity: '7 is precise, this must be researched'",
			"Discovery: 'Hidden gems I haven't found'",
			"ROI: 'Clear value proposition'",
		},
		HowToApply:  "1. Use odd numbers (3, 5, 7, 9, 11)\n2. Promise unknown or hidden resources\n3. Quantify the benefit clearly",
		ExpectedCTR: "6-9% (1.5x average)",
	},
}

// Recipes returns the fixed recipe catalog. The returned slice is shared;
// callers must not modify it.
func Recipes() []RecipeEntry {
	return recipeCatalog
}

// QuickWinEntry is one catalog tip the insights generator emits when a top
// video misses a scoring threshold.
type QuickWinEntry struct {
	Signal string // Subscore the tip addresses: pattern, length, power, structure, seo
	Tip    string
	Why    string
	Impact string // Documented impact range
}

// QuickWinCatalog maps unmet scoring thresholds to actionable tips, in fixed
// catalog order.
var QuickWinCatalog = []QuickWinEntry{
	{
		Signal: "pattern",
		Tip:    "Use a proven title format",
		Why:    "Titles following a recognizable pattern set expectations instantly",
		Impact: "+15-20% CTR on average",
	},
	{
		Signal: "length",
		Tip:    "Keep titles between 6 and 12 words",
		Why:    "Short titles lose context, long ones get truncated in search",
		Impact: "+10-15% CTR improvement",
	},
	{
		Signal: "power",
		Tip:    "Add a power word like 'proven', 'secret' or 'essential'",
		Why:    "Power words trigger an emotional response before the viewer finishes reading",
		Impact: "+15-25% CTR increase",
	},
	{
		Signal: "structure",
		Tip:    "Add a number, question mark or bracketed qualifier",
		Why:    "Numbers and questions stand out in a wall of search results",
		Impact: "+12-23% CTR boost",
	},
	{
		Signal: "seo",
		Tip:    "Expand the description with keywords, timestamps and a call to action",
		Why:    "Descriptions drive search ranking and session watch time",
		Impact: "+10-18% impressions",
	},
}
