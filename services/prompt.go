package services

import "fmt"

const ratingPromptTemplate = `Analyze this piece of advice: "%s"

Given under these circumstances: "%s"

Rate this advice on a scale of 1 to 10, where:
- 1 means terrible, potentially harmful advice
- 10 means excellent, well-considered advice

Provide your numerical rating first, followed by a detailed explanation of why you gave this rating.
Format your response as:

Rating: [number]/10

Analysis: [your detailed explanation]
`

// BuildPrompt renders the rating prompt. Both inputs are interpolated verbatim;
// ExtractScore relies on the "Rating: [number]/10" line it asks for.
func BuildPrompt(advice, circumstances string) string {
	return fmt.Sprintf(ratingPromptTemplate, advice, circumstances)
}
