package services

import (
	"strings"

	"github.com/lingoleap/lingo_api/dto"
)

// NormalizeTopicList trims entries and drops empties. Accepts the raw list
// shape clients send (already comma-split by dto.StringList when needed).
func NormalizeTopicList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// IsRestricted reports whether a generation request touches any
// administratively restricted topic. Matching is case-insensitive substring
// containment against the topic, every keyword and every interest. An empty
// restriction list never matches.
func IsRestricted(req dto.GenerateContentRequest, restrictedTopics []string) bool {
	if len(restrictedTopics) == 0 {
		return false
	}

	haystacks := make([]string, 0, 1+len(req.Keywords)+len(req.Interests))
	haystacks = append(haystacks, strings.ToLower(req.Topic))
	for _, keyword := range NormalizeTopicList(req.Keywords) {
		haystacks = append(haystacks, strings.ToLower(keyword))
	}
	for _, interest := range NormalizeTopicList(req.Interests) {
		haystacks = append(haystacks, strings.ToLower(interest))
	}

	for _, restricted := range restrictedTopics {
		needle := strings.ToLower(strings.TrimSpace(restricted))
		if needle == "" {
			continue
		}
		for _, haystack := range haystacks {
			if strings.Contains(haystack, needle) {
				return true
			}
		}
	}

	return false
}
