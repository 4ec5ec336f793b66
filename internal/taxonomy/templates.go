package taxonomy

import "github.com/aref-vc/youtube-content-analyzer/internal/core"

// TemplateEntry associates one ready-to-use template with the pattern tag
// that makes it relevant to a batch.
type TemplateEntry struct {
	Tag      string // Pattern tag that selects this template
	Template core.ContentTemplate
}

var templateLibrary = []TemplateEntry{
	{
		Tag: TagQuestion,
		Template: core.ContentTemplate{
			Name:         "The Question Opener",
			FillIn:       "Why _______ Is _______",
			Instructions: "Open with a question word; pair a familiar subject with an unexpected claim",
			Examples: []string{
				"Why Sleeping Less Makes You More Productive",
				"Why Expensive Cars Are Actually Cheaper",
				"Why Smart People Make Dumb Decisions",
			},
		},
	},
	{
		Tag: TagNumberList,
		Template: core.ContentTemplate{
			Name:         "The Number List",
			FillIn:       "__ _______ That _______",
			Instructions: "Use odd numbers (3, 5, 7, 9) and be specific about the outcome",
			Examples: []string{
				"7 Morning Habits That Changed My Life",
				"5 Investments That Made Me Rich",
				"3 Books That Destroyed My Limiting Beliefs",
			},
		},
	},
	{
		Tag: TagTransformation,
		Template: core.ContentTemplate{
			Name:         "The Transformation Story",
			FillIn:       "I _______ for _______ - Here's What Happened",
			Instructions: "Name a specific action and timeframe, promise a revelation",
			Examples: []string{
				"I Cold Called 100 CEOs - Here's What Happened",
				"I Meditated for 365 Days - Here's What Happened",
				"I Quit Coffee for a Month - Here's What Happened",
			},
		},
	},
	{
		Tag: TagTutorial,
		Template: core.ContentTemplate{
			Name:         "The Step-by-Step Tutorial",
			FillIn:       "How to _______ in _______",
			Instructions: "Promise a concrete skill inside a concrete timeframe",
			Examples: []string{
				"How to Learn Spanish in 30 Days",
				"How to Build a Website in One Afternoon",
				"How to Edit Videos in 10 Minutes",
			},
		},
	},
	{
		Tag: TagCuriosity,
		Template: core.ContentTemplate{
			Name:         "The Curiosity Gap",
			FillIn:       "The Truth About _______",
			Instructions: "Name a topic your audience thinks it understands, then withhold the twist",
			Examples: []string{
				"The Truth About Passive Income",
				"The Hidden Cost of Success",
				"What Nobody Tells You About Freelancing",
			},
		},
	},
	{
		Tag: TagReview,
		Template: core.ContentTemplate{
			Name:         "The Honest Review",
			FillIn:       "_______ Review: Is It Worth It?",
			Instructions: "Name the product and stake out a verdict the thumbnail can tease",
			Examples: []string{
				"MacBook Air Review: Is It Worth It?",
				"I Tested the Viral Air Fryer",
				"Honest Review: 6 Months With an EV",
			},
		},
	},
}

// Templates returns the fixed template library. The returned slice is shared;
// callers must not modify it.
func Templates() []TemplateEntry {
	return templateLibrary
}
