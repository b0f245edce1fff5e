package distribute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/tmp/%s%03d.obj", prefix, i)
	}
	return out
}

// groupSizes counts how many destinations each source received, in
// source order.
func groupSizes(plan Plan, sources []string) []int {
	index := make(map[string]int, len(sources))
	for i, s := range sources {
		index[s] = i
	}
	sizes := make([]int, len(sources))
	for _, as := range plan {
		sizes[index[as.Source]]++
	}
	return sizes
}

func TestSingleFansOutOneSource(t *testing.T) {
	dests := paths("d", 5)

	plan, err := Single("/tmp/src.obj", dests)
	require.NoError(t, err)
	require.Len(t, plan, 5)

	for i, as := range plan {
		assert.Equal(t, "/tmp/src.obj", as.Source)
		assert.Equal(t, dests[i], as.Dest)
	}
}

func TestSingleEmptyDestinations(t *testing.T) {
	_, err := Single("/tmp/src.obj", nil)
	require.ErrorIs(t, err, ErrNoDestinations)
}

func TestMultiEvenSplitExample(t *testing.T) {
	// 3 sources over 200 targets split 67, 67, 66.
	sources := paths("s", 3)
	dests := paths("d", 200)

	plan, err := Multi(sources, dests)
	require.NoError(t, err)
	require.Len(t, plan, 200)

	assert.Equal(t, []int{67, 67, 66}, groupSizes(plan, sources))

	// Groups are contiguous runs in destination order.
	assert.Equal(t, sources[0], plan[0].Source)
	assert.Equal(t, sources[0], plan[66].Source)
	assert.Equal(t, sources[1], plan[67].Source)
	assert.Equal(t, sources[1], plan[133].Source)
	assert.Equal(t, sources[2], plan[134].Source)
	assert.Equal(t, sources[2], plan[199].Source)
}

func TestMultiGroupSizeInvariants(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for m := 1; m <= 40; m++ {
			t.Run(fmt.Sprintf("%d_sources_%d_dests", n, m), func(t *testing.T) {
				sources := paths("s", n)
				dests := paths("d", m)

				plan, err := Multi(sources, dests)
				require.NoError(t, err)
				require.Len(t, plan, m)

				// Every destination appears exactly once, in order.
				for i, as := range plan {
					assert.Equal(t, dests[i], as.Dest)
				}

				base := m / n
				remainder := m % n
				sizes := groupSizes(plan, sources)
				total := 0
				for i, size := range sizes {
					if i < remainder {
						assert.Equal(t, base+1, size, "source %d", i)
					} else {
						assert.Equal(t, base, size, "source %d", i)
					}
					total += size
				}
				assert.Equal(t, m, total)
			})
		}
	}
}

func TestMultiMoreSourcesThanDests(t *testing.T) {
	sources := paths("s", 5)
	dests := paths("d", 3)

	plan, err := Multi(sources, dests)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, []int{1, 1, 1, 0, 0}, groupSizes(plan, sources))
}

func TestMultiEmptyLists(t *testing.T) {
	_, err := Multi(nil, paths("d", 2))
	require.ErrorIs(t, err, ErrNoSources)

	_, err = Multi(paths("s", 2), nil)
	require.ErrorIs(t, err, ErrNoDestinations)

	// Empty sources win when both lists are empty.
	_, err = Multi(nil, nil)
	require.ErrorIs(t, err, ErrNoSources)
}
