package services

import (
	"logistics/internal/core/domain/model/kernel"
)

// MembershipDiff is the result of comparing a route's previous membership
// with a new selection.
//
//   - ToRelease: orders removed from the route; reset to ready
//   - ToClaim: orders added to the route; set to in progress
//
// Orders present in both lists are untouched. Slice order follows the input
// order so status cascades run in a deterministic sequence.
type MembershipDiff struct {
	ToRelease []kernel.ID
	ToClaim   []kernel.ID
}

// IsEmpty reports whether the diff requires no status synchronization.
func (d MembershipDiff) IsEmpty() bool {
	return len(d.ToRelease) == 0 && len(d.ToClaim) == 0
}

// DiffMembership computes the symmetric difference between a route's previous
// membership and a new selection. Duplicates in either input are ignored
// beyond the first occurrence.
func DiffMembership(previous, next []kernel.ID) MembershipDiff {
	prevSet := toSet(previous)
	nextSet := toSet(next)

	diff := MembershipDiff{}

	for _, id := range previous {
		if _, kept := nextSet[id]; !kept {
			diff.ToRelease = appendOnce(diff.ToRelease, id)
		}
	}

	for _, id := range next {
		if _, existed := prevSet[id]; !existed {
			diff.ToClaim = appendOnce(diff.ToClaim, id)
		}
	}

	return diff
}

func toSet(ids []kernel.ID) map[kernel.ID]struct{} {
	set := make(map[kernel.ID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func appendOnce(ids []kernel.ID, id kernel.ID) []kernel.ID {
	for _, existing := range ids {
		if existing.IsEqual(id) {
			return ids
		}
	}
	return append(ids, id)
}
