// Package guidance is the static sign-to-text lookup plus a
// pass-through to an external generation endpoint. The text is fixed
// data; there is nothing to compute here.
package guidance

import (
	"fmt"
	"sort"
	"strings"
)

var principles = map[string]string{
	"aries":       "Lead with energy, but finish what you start before opening a new front.",
	"taurus":      "Steadiness is your edge. Change one habit at a time and keep it.",
	"gemini":      "Your curiosity is a tool. Pick two threads today, not ten.",
	"cancer":      "Protect your focus the way you protect the people close to you.",
	"leo":         "Visibility follows generosity. Share credit loudly and often.",
	"virgo":       "Details serve the whole. Ship the imperfect thing, then refine it.",
	"libra":       "Balance is a practice, not a state. Decide, then rebalance tomorrow.",
	"scorpio":     "Depth over breadth. One honest conversation beats ten polite ones.",
	"sagittarius": "Aim far, but pack light. Drop one commitment that no longer fits.",
	"capricorn":   "The summit is a byproduct. Today only the next ledge matters.",
	"aquarius":    "Your odd idea is the useful one. Write it down before it normalizes.",
	"pisces":      "Intuition is data you have not articulated yet. Articulate it.",
}

// Signs returns the twelve sign names in sorted order.
func Signs() []string {
	out := make([]string, 0, len(principles))
	for name := range principles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the static guidance text for a sign.
// Matching is case-insensitive; unknown signs are an error.
func Lookup(sign string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(sign))
	text, ok := principles[key]
	if !ok {
		return "", fmt.Errorf("unknown sign %q (one of: %s)", sign, strings.Join(Signs(), ", "))
	}
	return text, nil
}
