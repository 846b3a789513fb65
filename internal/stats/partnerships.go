package stats

import (
	"awty-football/internal/domain"
	"sort"
)

type PairKey struct {
	A string
	B string
}

// NormalizePair orders the two ids so (a, b) and (b, a) share a key.
func NormalizePair(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

type PartnerPair struct {
	PlayerA       domain.Player `json:"playerA"`
	PlayerB       domain.Player `json:"playerB"`
	Contributions int           `json:"contributions"`
}

// Partnerships counts goals where one player of the pair assisted the other.
// Rows are sorted by count, descending; equal counts keep first-seen order.
func Partnerships(players []domain.Player, games []domain.Game) []PartnerPair {
	byID := make(map[string]domain.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	counts := make(map[PairKey]int)
	var seen []PairKey
	for _, game := range games {
		for _, goal := range game.Goals {
			if goal.AssisterID == "" || goal.AssisterID == goal.ScorerID {
				continue
			}
			key := NormalizePair(goal.ScorerID, goal.AssisterID)
			if _, ok := counts[key]; !ok {
				seen = append(seen, key)
			}
			counts[key]++
		}
	}

	pairs := make([]PartnerPair, 0, len(seen))
	for _, key := range seen {
		a, okA := byID[key.A]
		b, okB := byID[key.B]
		if !okA || !okB {
			continue
		}
		pairs = append(pairs, PartnerPair{PlayerA: a, PlayerB: b, Contributions: counts[key]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Contributions > pairs[j].Contributions
	})
	return pairs
}
