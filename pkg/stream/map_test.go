package stream

import (
	"strconv"
	"testing"
)

func TestMap_TypeConversion(t *testing.T) {
	t.Parallel()

	got := Map(Of(1, 22, 333), strconv.Itoa).Collect()
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMap_DelegatesProtocol(t *testing.T) {
	t.Parallel()

	it := Map(Of(1, 2), func(x int) int { return -x }).Iterator()
	if it.EstimateRemaining() != 2 {
		t.Fatalf("expected estimate 2, got %d", it.EstimateRemaining())
	}
	if !it.HasNext() || it.Next() != -1 {
		t.Fatalf("expected -1 as first element")
	}
	if it.EstimateRemaining() != 1 {
		t.Fatalf("expected estimate 1, got %d", it.EstimateRemaining())
	}
}

func TestTap_PassesThroughOncePerElement(t *testing.T) {
	t.Parallel()

	seen := map[int]int{}
	var order []int
	got := Of(5, 6, 5).Tap(func(x int) {
		seen[x]++
		order = append(order, x)
	}).Collect()

	if len(got) != 3 || got[0] != 5 || got[1] != 6 || got[2] != 5 {
		t.Fatalf("expected [5 6 5], got %v", got)
	}
	if seen[5] != 2 || seen[6] != 1 {
		t.Fatalf("expected tap once per element, got %v", seen)
	}
	if len(order) != 3 || order[1] != 6 {
		t.Fatalf("expected tap in traversal order, got %v", order)
	}
}
