package holdem

import "sort"

// Pot is one layer of the pot partition: either the main pot or a side
// pot, each with the chip amount contributed at its layer and the set of
// seats still eligible to win it.
type Pot struct {
	Amount   int64
	Eligible []int // seat indices, ascending
	CapLevel int64 // the contribution level that closed this layer
}

// PotPartition is the ordered main pot + side pots for one hand.
type PotPartition struct {
	Pots []Pot
}

func (pp PotPartition) Total() int64 {
	var total int64
	for _, p := range pp.Pots {
		total += p.Amount
	}
	return total
}

// PartitionPots collects distinct all-in contribution levels, closes a
// final layer at the highest non-all-in contribution (if any chips were
// bet beyond the last all-in level), then slices the total contribution
// vector into concentric layers. A layer whose eligibility set is empty
// (every contributor to it folded) is never emitted as its own pot; its
// amount folds into the next layer that does have eligible contenders
// (or, when it is the top layer, into the last pot emitted). This also
// covers the uncalled-bet case: a layer left with a single
// eligible seat is, in effect, returned to that seat at showdown without
// any separate bookkeeping step.
func PartitionPots(contributions []int64, folded []bool, allIn []bool) PotPartition {
	n := len(contributions)
	levels := potLevels(contributions, allIn)

	var pots []Pot
	var carry int64
	prev := int64(0)
	for _, level := range levels {
		amount := carry
		carry = 0
		var eligible []int
		for seat := 0; seat < n; seat++ {
			c := contributions[seat]
			layer := minInt64(c, level) - minInt64(c, prev)
			if layer > 0 {
				amount += layer
			}
			if c >= level && !folded[seat] {
				eligible = append(eligible, seat)
			}
		}
		prev = level
		if amount <= 0 {
			continue
		}
		if len(eligible) == 0 {
			carry = amount
			continue
		}
		sort.Ints(eligible)
		pots = append(pots, Pot{Amount: amount, Eligible: eligible, CapLevel: level})
	}

	if carry > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += carry
	}

	logPotPartition(pots)
	return PotPartition{Pots: pots}
}

func potLevels(contributions []int64, allIn []bool) []int64 {
	seen := make(map[int64]bool)
	var levels []int64
	for i, c := range contributions {
		if allIn[i] && c > 0 && !seen[c] {
			seen[c] = true
			levels = append(levels, c)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	lastLevel := int64(0)
	if len(levels) > 0 {
		lastLevel = levels[len(levels)-1]
	}
	var maxNonAllIn int64
	for i, c := range contributions {
		if !allIn[i] && c > maxNonAllIn {
			maxNonAllIn = c
		}
	}
	if maxNonAllIn > lastLevel {
		levels = append(levels, maxNonAllIn)
	}
	return levels
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
