package enrich

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/match_assessment.md
var matchAssessmentPromptRaw string

// MatchAssessmentTemplate is the parsed prompt template for posting
// classification. Parsed once at package init; reused on every Classify call.
var MatchAssessmentTemplate = template.Must(template.New("match_assessment").Parse(matchAssessmentPromptRaw))
