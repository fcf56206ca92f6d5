package stream

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"
)

const propertyRounds = 64

func randomInts() []int {
	out := make([]int, randomdata.Number(0, 40))
	for i := range out {
		out[i] = randomdata.Number(-100, 100)
	}
	return out
}

func TestProperty_Map(t *testing.T) {
	t.Parallel()

	f := func(x int) int { return x*3 - 1 }
	for range propertyRounds {
		src := randomInts()
		got := Map(FromSlice(src), f).Collect()

		require.Len(t, got, len(src))
		for i, x := range src {
			require.Equal(t, f(x), got[i])
		}
	}
}

func TestProperty_Filter(t *testing.T) {
	t.Parallel()

	for range propertyRounds {
		src := randomInts()
		mod := randomdata.Number(1, 5)
		keep := func(x int) bool { return x%mod == 0 }

		var want []int
		for _, x := range src {
			if keep(x) {
				want = append(want, x)
			}
		}

		require.Equal(t, len(want), FromSlice(src).Filter(keep).Count())
		got := FromSlice(src).Filter(keep).Collect()
		require.Equal(t, len(want), len(got))
		for i := range want {
			require.Equal(t, want[i], got[i])
		}
	}
}

func TestProperty_FlatMap(t *testing.T) {
	t.Parallel()

	for range propertyRounds {
		outer := make([][]int, randomdata.Number(0, 10))
		var want []int
		for i := range outer {
			outer[i] = make([]int, randomdata.Number(0, 4))
			for j := range outer[i] {
				outer[i][j] = randomdata.Number(-100, 100)
			}
			want = append(want, outer[i]...)
		}

		got := FlatMap(FromSlice(outer), FromSlice[int]).Collect()
		require.Equal(t, len(want), len(got))
		for i := range want {
			require.Equal(t, want[i], got[i])
		}
	}
}

func TestProperty_Limit(t *testing.T) {
	t.Parallel()

	for range propertyRounds {
		src := randomInts()
		n := randomdata.Number(-2, 50)

		require.Equal(t, max(min(n, len(src)), 0), FromSlice(src).Limit(n).Count())
		if n >= len(src) {
			require.Equal(t, len(src), len(FromSlice(src).Limit(n).Collect()))
		}
	}
}

func TestProperty_Tap(t *testing.T) {
	t.Parallel()

	for range propertyRounds {
		src := randomInts()
		var seen []int
		got := FromSlice(src).Tap(func(x int) { seen = append(seen, x) }).Collect()

		require.Equal(t, len(src), len(seen))
		for i := range src {
			require.Equal(t, src[i], got[i])
			require.Equal(t, src[i], seen[i])
		}
	}
}
