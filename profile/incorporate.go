package profile

/**
 * Incorporate maintains the invariant that list stays ordered by strictly
 * decreasing DepTime and is Pareto-optimal. It returns the (possibly
 * unchanged) list and whether candidate was new/useful.
 *
 * The pivot is the rightmost entry that still departs no earlier than
 * candidate. Because the list is sorted and already Pareto-optimal, the
 * pivot alone determines whether candidate is non-dominated: anything it
 * could dominate lies strictly after the pivot. A pivot with the same
 * DepTime as an accepted candidate is dominated by it and is replaced.
 */
func Incorporate(list []Profile, candidate Profile) ([]Profile, bool) {
	pivotIdx := -1
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].DepTime >= candidate.DepTime {
			pivotIdx = i
			break
		}
	}

	if pivotIdx >= 0 && !(candidate.ArrTime < list[pivotIdx].ArrTime) {
		return list, false
	}

	survivors := make([]Profile, 0, len(list)-pivotIdx-1)
	for i := pivotIdx + 1; i < len(list); i++ {
		if !candidate.Dominates(list[i]) {
			survivors = append(survivors, list[i])
		}
	}

	kept := pivotIdx + 1
	if pivotIdx >= 0 && list[pivotIdx].DepTime == candidate.DepTime {
		kept = pivotIdx
	}

	updated := make([]Profile, 0, kept+1+len(survivors))
	updated = append(updated, list[:kept]...)
	updated = append(updated, candidate)
	updated = append(updated, survivors...)

	return updated, true
}
