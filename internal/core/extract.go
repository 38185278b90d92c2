// ABOUTME: Extraction engine that detects the terminal marker phrase
// ABOUTME: Derives the refined query from a model reply's free text
package core

import (
	"strings"
)

// Marker is the literal phrase signaling the model has produced its
// final answer. Matching is case-insensitive.
const Marker = "here's your refined query:"

// refinedQueryPrefix is prepended to the extracted query before it is
// handed back to the caller.
const refinedQueryPrefix = "User wants to say this: "

// closingPhrases are chatty sign-offs the model sometimes appends on
// the query line despite being told not to. Scanned in order; the
// query is cut before the first phrase found.
var closingPhrases = []string{
	"hope this helps",
	"does that help",
	"hope that helps",
	"let me know",
	"hope this",
	"does that",
}

// ContainsMarker reports whether the accumulated reply text contains
// the marker phrase. Used as the gate that stops token forwarding
// mid-stream.
func ContainsMarker(text string) bool {
	return strings.Contains(strings.ToLower(text), Marker)
}

// ExtractRefinedQuery scans a complete reply for the marker phrase and
// derives the refined query. It returns ("", false) when the reply is
// not a terminal turn: no marker, or nothing usable left after
// truncation. The decision is made purely over the concatenated text,
// so blocking and streamed replies extract identically.
func ExtractRefinedQuery(reply string) (string, bool) {
	idx := strings.Index(strings.ToLower(reply), Marker)
	if idx < 0 {
		return "", false
	}

	candidate := strings.TrimSpace(reply[idx+len(Marker):])

	// Keep only the first paragraph. The query may span several lines,
	// but a blank line means the model moved on to trailing chatter.
	if brk := strings.Index(candidate, "\n\n"); brk >= 0 {
		candidate = strings.TrimSpace(candidate[:brk])
	} else {
		candidate = strings.TrimSpace(strings.TrimRight(candidate, "\n"))
	}

	lower := strings.ToLower(candidate)
	for _, phrase := range closingPhrases {
		if cut := strings.Index(lower, phrase); cut >= 0 {
			candidate = strings.TrimSpace(candidate[:cut])
			break
		}
	}

	if candidate == "" {
		return "", false
	}
	return refinedQueryPrefix + candidate, true
}
