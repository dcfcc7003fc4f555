// Package mentions extracts @mention tokens from note text. Mentions are
// returned as structured spans validated against the known-user set so that
// callers render them as data, never by substituting markup into the note
// content.
package mentions

import (
	"sort"
	"strings"
)

// Span is one validated mention occurrence inside the note text.
// Start and End are byte offsets covering the "@Name" token.
type Span struct {
	User  string `json:"user"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Extract scans content for @-prefixed tokens and matches them against the
// known-user set, case-insensitively. When several known names could match
// at the same position the longest one wins ("@John Smithson" is not a
// mention of "John Smith" if "John Smithson" is known). Unknown names are
// ignored.
func Extract(content string, knownUsers []string) []Span {
	if len(knownUsers) == 0 {
		return nil
	}

	// Longest names first so the greedy match below is deterministic.
	users := append([]string(nil), knownUsers...)
	sort.SliceStable(users, func(i, j int) bool {
		return len(users[i]) > len(users[j])
	})

	var spans []Span
	for i := 0; i < len(content); i++ {
		if content[i] != '@' {
			continue
		}
		for _, user := range users {
			// Compare in place so offsets stay in content's byte space;
			// lowercasing can change byte length for some runes.
			end := i + 1 + len(user)
			if end > len(content) {
				continue
			}
			if !strings.EqualFold(content[i+1:end], user) {
				continue
			}
			// The token must end at a word boundary, not in the middle
			// of a longer run of letters.
			if end < len(content) && isNameByte(content[end]) {
				continue
			}
			spans = append(spans, Span{User: user, Start: i, End: end})
			i = end - 1
			break
		}
	}
	return spans
}

// Names reduces spans to the distinct mentioned users, in first-occurrence
// order.
func Names(spans []Span) []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range spans {
		if !seen[s.User] {
			seen[s.User] = true
			names = append(names, s.User)
		}
	}
	return names
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
