package profile

import "testing"

/**
 * TestIncorporateSequence follows a sequence where a later, worse-on-departure
 * candidate dominates one existing entry but not another. A naive
 * single-filter pass (keep whatever the candidate dominates instead of
 * whatever it doesn't) would drop the entry it can't dominate; this asserts
 * the list stays genuinely Pareto-optimal instead.
 */
func TestIncorporateSequence(t *testing.T) {
	var list []Profile

	list, changed := Incorporate(list, Profile{DepTime: 20, ArrTime: 30})
	if !changed || len(list) != 1 {
		t.Fatalf("first insert: expected len 1, got %d", len(list))
	}

	list, changed = Incorporate(list, Profile{DepTime: 10, ArrTime: 20})
	if !changed || len(list) != 2 {
		t.Fatalf("second insert: expected len 2, got %d", len(list))
	}

	// Dominated by the dep=10 entry on both axes: should be rejected outright.
	list, changed = Incorporate(list, Profile{DepTime: 8, ArrTime: 21})
	if changed || len(list) != 2 {
		t.Fatalf("dominated candidate should be rejected, got len %d changed %v", len(list), changed)
	}
	if list[1].DepTime != 10 {
		t.Fatalf("expected list[1].DepTime == 10, got %d", list[1].DepTime)
	}

	list, changed = Incorporate(list, Profile{DepTime: 0, ArrTime: 10})
	if !changed || len(list) != 3 {
		t.Fatalf("fourth insert: expected len 3, got %d", len(list))
	}

	// dep=11,arr=20 dominates dep=10,arr=20 (equal arrival, better departure)
	// but does NOT dominate dep=0,arr=10 (better arrival, worse departure) -
	// both the dep=20 and dep=0 entries must survive.
	list, changed = Incorporate(list, Profile{DepTime: 11, ArrTime: 20})
	if !changed || len(list) != 3 {
		t.Fatalf("fifth insert: expected len 3, got %d", len(list))
	}
	if list[0].DepTime != 20 {
		t.Fatalf("expected list[0].DepTime == 20, got %d", list[0].DepTime)
	}
	if list[1].DepTime != 11 {
		t.Fatalf("expected list[1].DepTime == 11, got %d", list[1].DepTime)
	}
	if list[2].DepTime != 0 || list[2].ArrTime != 10 {
		t.Fatalf("expected the non-dominated dep=0,arr=10 entry to survive, got %+v", list[2])
	}
}

func TestIncorporateIsIdempotent(t *testing.T) {
	var list []Profile
	list, _ = Incorporate(list, Profile{DepTime: 10, ArrTime: 20})

	_, changed := Incorporate(list, Profile{DepTime: 10, ArrTime: 20})
	if changed {
		t.Fatal("inserting the same profile twice must not report a change")
	}
}

func TestIncorporateKeepsListSortedByDescendingDepTime(t *testing.T) {
	var list []Profile
	for _, c := range []Profile{
		{DepTime: 10, ArrTime: 30},
		{DepTime: 20, ArrTime: 50},
		{DepTime: 5, ArrTime: 10},
	} {
		list, _ = Incorporate(list, c)
	}

	if len(list) != 3 {
		t.Fatalf("expected all three mutually non-dominated entries to survive, got %d: %+v", len(list), list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].DepTime < list[i].DepTime {
			t.Fatalf("list not sorted by descending DepTime: %+v", list)
		}
	}
}
