package engine

import (
	"sync/atomic"
	"testing"
)

func TestPartitionStrips(t *testing.T) {
	tests := []struct {
		width, count int
		want         []span
	}{
		{640, 8, nil},
		{10, 3, []span{{0, 3}, {3, 6}, {6, 10}}},
		{5, 1, []span{{0, 5}}},
		{3, 8, []span{{0, 1}, {1, 2}, {2, 3}}},
		{4, 0, []span{{0, 4}}},
	}
	for _, tt := range tests {
		got := partitionStrips(tt.width, tt.count)
		covered := 0
		for i, s := range got {
			if s.start != covered || s.end <= s.start {
				t.Fatalf("partitionStrips(%d,%d)[%d] = %+v, not contiguous", tt.width, tt.count, i, s)
			}
			covered = s.end
		}
		if covered != tt.width {
			t.Errorf("partitionStrips(%d,%d) covers %d columns", tt.width, tt.count, covered)
		}
		if tt.want != nil && len(got) != len(tt.want) {
			t.Fatalf("partitionStrips(%d,%d) = %v, want %v", tt.width, tt.count, got, tt.want)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("partitionStrips(%d,%d) = %v, want %v", tt.width, tt.count, got, tt.want)
				break
			}
		}
	}
	if got := partitionStrips(0, 4); got != nil {
		t.Errorf("partitionStrips(0,4) = %v, want nil", got)
	}
}

func TestStripPoolRunsEveryIndex(t *testing.T) {
	const workers = 6
	p := newStripPool(workers)

	for round := 0; round < 50; round++ {
		var hits [workers]atomic.Int32
		p.run(func(i int) { hits[i].Add(1) })
		for i := range hits {
			if n := hits[i].Load(); n != 1 {
				t.Fatalf("round %d: index %d ran %d times", round, i, n)
			}
		}
	}

	p.close()
	var after atomic.Int32
	p.run(func(int) { after.Add(1) })
	if after.Load() != workers {
		t.Errorf("run after close ran %d jobs, want %d", after.Load(), workers)
	}
}
