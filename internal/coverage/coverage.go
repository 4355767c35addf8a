// Package coverage scores (subcategory, type_of_question) pairs by how
// under-practiced they are within a trailing window of sessions, relative
// to their peers in the same window.
package coverage

import (
	"sort"

	"github.com/abhisek/catprep/internal/attempt"
)

// DebtBySessions computes coverage debt over the most recent
// sessionsLookback distinct session sequence numbers present in events.
// The window is a set of session numbers, not a count of events.
//
// Pairs seen strictly fewer times in-window receive strictly higher debt;
// ties receive equal debt. Pairs with no in-window events are absent from
// the result entirely. Empty input yields an empty map, never an error.
func DebtBySessions(events []attempt.Event, sessionsLookback int) map[string]float64 {
	debts := make(map[string]float64)
	if len(events) == 0 || sessionsLookback <= 0 {
		return debts
	}

	window := recentSessions(events, sessionsLookback)

	counts := make(map[string]int)
	for _, ev := range events {
		if !window[ev.SessSeq] {
			continue
		}
		counts[ev.Pair()]++
	}
	if len(counts) == 0 {
		return debts
	}

	// Normalized inverse frequency: raw = 1/(1+n), scaled so the rarest
	// in-window pair scores 1.0. Strictly monotone in n, so the ordering
	// contract holds.
	maxRaw := 0.0
	for _, n := range counts {
		if raw := 1.0 / float64(1+n); raw > maxRaw {
			maxRaw = raw
		}
	}
	for pair, n := range counts {
		debts[pair] = (1.0 / float64(1+n)) / maxRaw
	}

	return debts
}

// recentSessions returns the set of the most recent n distinct session
// sequence numbers present in events.
func recentSessions(events []attempt.Event, n int) map[int64]bool {
	seen := make(map[int64]bool)
	for _, ev := range events {
		seen[ev.SessSeq] = true
	}

	seqs := make([]int64, 0, len(seen))
	for s := range seen {
		seqs = append(seqs, s)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] > seqs[j] })

	if len(seqs) > n {
		seqs = seqs[:n]
	}

	window := make(map[int64]bool, len(seqs))
	for _, s := range seqs {
		window[s] = true
	}
	return window
}
