package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/andresilva/stocksight/internal/domain/models"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedAnyRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")

	confidenceRe = regexp.MustCompile(`(\d+)%`)
	bulletRe     = regexp.MustCompile(`^[-•*]\s+`)
	numberedRe   = regexp.MustCompile(`^\d+\.\s+`)
)

// normalizeResponse turns a raw completion body into a Recommendation.
//
// Preference order:
//  1. Content fenced in a ```json (or bare ```) block, else the raw body.
//  2. Strict JSON decode of that content.
//  3. Heuristic derivation from the text: first BUY/SELL/HOLD mention,
//     first "<n>%" as confidence, up to five bullet or numbered lines as
//     key points, with defaults for everything else.
func normalizeResponse(text string) models.Recommendation {
	raw := extractFenced(text)

	var rec models.Recommendation
	if err := json.Unmarshal([]byte(raw), &rec); err == nil {
		return rec
	}

	return models.Recommendation{
		Action:      extractAction(text),
		Confidence:  extractConfidence(text),
		Analysis:    text,
		KeyPoints:   extractKeyPoints(text),
		RiskLevel:   models.RiskMedium,
		RiskFactors: []string{},
	}
}

// extractFenced returns the content of the first code fence, preferring a
// ```json fence, or the input unchanged when there is none.
func extractFenced(text string) string {
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := fencedAnyRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// extractAction picks the first of BUY, SELL, HOLD found case-insensitively
// in the text; HOLD when none appears.
func extractAction(text string) models.Action {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "BUY"):
		return models.ActionBuy
	case strings.Contains(upper, "SELL"):
		return models.ActionSell
	case strings.Contains(upper, "HOLD"):
		return models.ActionHold
	default:
		return models.ActionHold
	}
}

// extractConfidence takes the first integer immediately followed by "%";
// 75 when the text has none.
func extractConfidence(text string) int {
	if m := confidenceRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 75
}

// extractKeyPoints collects up to five lines that start with a bullet
// marker (-, •, *) or a numbered-list marker ("1. "), markers stripped.
func extractKeyPoints(text string) []string {
	points := make([]string, 0, 5)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case bulletRe.MatchString(trimmed):
			points = append(points, strings.TrimSpace(bulletRe.ReplaceAllString(trimmed, "")))
		case numberedRe.MatchString(trimmed):
			points = append(points, strings.TrimSpace(numberedRe.ReplaceAllString(trimmed, "")))
		}
		if len(points) == 5 {
			break
		}
	}
	return points
}
