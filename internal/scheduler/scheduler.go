// Package scheduler generates every conflict-free section arrangement for
// a list of course requests via depth-first backtracking.
package scheduler

import (
	"github.com/rchalamala/beavered/pkg/model"
)

// Generate returns all ways to pick one section per unlocked, enabled,
// non-arranged request such that no two chosen sections overlap and every
// meeting fits the availability windows. Disabled, locked, and arranged
// requests are not branched over: their current pick is taken as a fixed
// constraint, which is the main thing keeping the search space small.
//
// An empty request list yields no arrangements, same as a request list
// with no valid combination. Output order is deterministic: section
// indices are tried in ascending order at each branching position.
func Generate(requests []model.CourseRequest, avail model.Availability) []model.Arrangement {
	if len(requests) == 0 {
		return []model.Arrangement{}
	}

	output := []model.Arrangement{}
	acc := make([]model.CourseRequest, 0, len(requests))

	var search func(idx int)
	search = func(idx int) {
		if idx == len(requests) {
			output = append(output, model.Shorten(acc))
			return
		}
		request := requests[idx]

		// Pass-through positions: the pick is pinned (locked), irrelevant
		// (disabled), or arranged with no fixed time. Still validated, so a
		// locked pick that collides prunes the whole subtree.
		if !request.Enabled || request.Locked || request.Course.Arranged() {
			acc = append(acc, request)
			if validPrefix(acc, avail) {
				search(idx + 1)
			}
			acc = acc[:len(acc)-1]
			return
		}

		for i := range request.Course.Sections {
			candidate := request.WithSection(i)
			acc = append(acc, candidate)
			if validPrefix(acc, avail) {
				search(idx + 1)
			}
			acc = acc[:len(acc)-1]
		}
	}

	search(0)
	return output
}

// BranchingRequests counts the requests the search actually enumerates
// over. Useful for gauging how expensive a Generate call will be before
// making it.
func BranchingRequests(requests []model.CourseRequest) int {
	count := 0
	for _, r := range requests {
		if r.Enabled && !r.Locked && !r.Course.Arranged() {
			count++
		}
	}
	return count
}
