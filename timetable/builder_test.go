package timetable

import "testing"

func TestBuilderProducesSortedConnections(t *testing.T) {
	tt := NewBuilder().
		Trip().Stop("a", "10:00").Stop("b", "10:10").Stop("c", "10:20").
		Trip().Stop("b", "9:00").Stop("c", "9:15").
		Build()

	if len(tt.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(tt.Stops))
	}
	if len(tt.Connections) != 3 {
		t.Fatalf("expected 3 connections, got %d", len(tt.Connections))
	}

	for i := 1; i < len(tt.Connections); i++ {
		if tt.Connections[i-1].DepTime < tt.Connections[i].DepTime {
			t.Fatalf("connections not sorted by descending DepTime at index %d", i)
		}
	}
}

func TestBuilderAssignsDenseStopIndices(t *testing.T) {
	tt := NewBuilder().
		Trip().Stop("x", "8:00").Stop("y", "8:05").
		Build()

	var x, y int = -1, -1
	for i, s := range tt.Stops {
		switch s.ID {
		case "x":
			x = i
		case "y":
			y = i
		}
	}
	if x != 0 || y != 1 {
		t.Fatalf("expected x=0 y=1, got x=%d y=%d", x, y)
	}

	c := tt.Connections[0]
	if c.DepStop != x || c.ArrStop != y {
		t.Fatalf("connection stop indices do not match builder order: %+v", c)
	}
	if c.DepTime != 8*60 || c.ArrTime != 8*60+5 {
		t.Fatalf("time literal not parsed as minutes: %+v", c)
	}
}

func TestBuilderPanicsOnStopBeforeTrip(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when Stop is called before any Trip")
		}
	}()
	NewBuilder().Stop("a", "10:00")
}

func TestBuilderPanicsOnMalformedTimeLiteral(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on malformed time literal")
		}
	}()
	NewBuilder().Trip().Stop("a", "not-a-time")
}
