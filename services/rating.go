package services

import (
	"fmt"
	"strconv"
	"strings"

	"advicerater/models"
)

const (
	ratingMarker = "Rating:"
	ratingScale  = "/10"
)

// ExtractScore pulls the integer out of the first "Rating: N/10" line.
// Anything it cannot parse yields ok == false; it never returns an error.
func ExtractScore(text string) (score int, ok bool) {
	_, after, found := strings.Cut(text, ratingMarker)
	if !found {
		return 0, false
	}
	// Only the text up to a second marker belongs to the first rating.
	segment, _, _ := strings.Cut(after, ratingMarker)
	segment, _, _ = strings.Cut(segment, ratingScale)

	n, err := strconv.Atoi(strings.TrimSpace(segment))
	if err != nil {
		return 0, false
	}
	return n, true
}

// BadgeFor maps a score onto one of the four severity bands. Scores outside
// 1..10 get no badge.
func BadgeFor(score int) (models.Badge, bool) {
	var severity, icon, label, message string
	switch {
	case score < 1 || score > 10:
		return models.Badge{}, false
	case score <= 3:
		severity, icon, label = models.SeverityError, "⚠️", "poor advice"
		message = fmt.Sprintf("This is poor advice - rated %d/10", score)
	case score <= 6:
		severity, icon, label = models.SeverityWarning, "⚠️", "questionable advice"
		message = fmt.Sprintf("This advice is questionable - rated %d/10", score)
	case score <= 8:
		severity, icon, label = models.SeverityInfo, "✅", "decent advice"
		message = fmt.Sprintf("This is decent advice - rated %d/10", score)
	default:
		severity, icon, label = models.SeveritySuccess, "🌟", "excellent advice"
		message = fmt.Sprintf("This is excellent advice - rated %d/10", score)
	}
	return models.Badge{Severity: severity, Icon: icon, Label: label, Message: message}, true
}

// Render builds the view for a completion. The raw text is always kept;
// the score and badge are attached only when extraction succeeds.
func Render(rawText string) models.RatingView {
	view := models.RatingView{RawText: rawText}

	score, ok := ExtractScore(rawText)
	if !ok {
		return view
	}
	view.Score = &score
	if badge, ok := BadgeFor(score); ok {
		view.Badge = &badge
	}
	return view
}
