package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/preprocess"
	"github.com/brightmoor/proxsweep/segment"
)

func run(t *testing.T, segs []segment.Segment, tol float64) Result {
	t.Helper()
	tree, err := preprocess.Run(segs, tol)
	require.NoError(t, err)
	result, err := Run(segs, tree, tol, nil)
	require.NoError(t, err)
	return result
}

func findEvent(t *testing.T, result Result, p point.Point, tol float64) event.Entry {
	t.Helper()
	for _, e := range result.Events {
		if e.Point.Eq(p, tol) {
			return e
		}
	}
	t.Fatalf("no event found near %s", p)
	return event.Entry{}
}

func TestRun_S1_TwoCrossingSegments(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(0, 0), point.New(2, 2)),
		segment.New(1, point.New(0, 2), point.New(2, 0)),
	}
	result := run(t, segs, tol)

	for _, p := range []point.Point{point.New(0, 0), point.New(0, 2), point.New(1, 1), point.New(2, 0), point.New(2, 2)} {
		findEvent(t, result, p, tol)
	}

	crossing := findEvent(t, result, point.New(1, 1), tol)
	assert.True(t, crossing.Has(0, event.Interior))
	assert.True(t, crossing.Has(1, event.Interior))
}

func TestRun_S2_PerfectT(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(0, 2), point.New(2, 2)),
		segment.New(1, point.New(1, 2), point.New(1, 0)),
	}
	result := run(t, segs, tol)

	// segment.New's Left/Right rule gives the vertical stem Left=(1,0) (the
	// smaller y) and Right=(1,2) (the larger y), so the stem's own endpoint
	// incidence at (1,2) is Right, not Left.
	stem := findEvent(t, result, point.New(1, 2), tol)
	assert.True(t, stem.Has(0, event.Interior))
	assert.True(t, stem.Has(1, event.Right))

	bottom := findEvent(t, result, point.New(1, 0), tol)
	assert.True(t, bottom.Has(1, event.Left))
}

func TestRun_S4_ThreeConcurrentSegments(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(-1, -1), point.New(1, 1)),
		segment.New(1, point.New(-1, 1), point.New(1, -1)),
		segment.New(2, point.New(-1, 0), point.New(1, 0)),
	}
	result := run(t, segs, tol)

	origin := findEvent(t, result, point.New(0, 0), tol)
	incidentCount := 0
	for _, id := range []int{0, 1, 2} {
		if origin.Has(id, event.Interior) {
			incidentCount++
		}
	}
	assert.Equal(t, 3, incidentCount)
}

func TestRun_S5_CollinearOverlap(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(0, 0), point.New(2, 0)),
		segment.New(1, point.New(1, 0), point.New(3, 0)),
	}
	result := run(t, segs, tol)

	for _, p := range []point.Point{point.New(0, 0), point.New(1, 0), point.New(2, 0), point.New(3, 0)} {
		findEvent(t, result, p, tol)
	}
	mid1 := findEvent(t, result, point.New(1, 0), tol)
	assert.True(t, mid1.Has(0, event.Interior) || mid1.Has(0, event.Left))
	assert.True(t, mid1.Has(1, event.Left))
}

func TestRun_VerticalCrossingSeveralSegments(t *testing.T) {
	// All of a vertical's events share one x, so each crossing is only
	// discovered after the previous same-x event walks the vertical's rank
	// up past its last crossing partner. Missing the second crossing here
	// means the rank is stuck at the vertical's bottom endpoint.
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(1, 0), point.New(1, 4)),
		segment.New(1, point.New(0, 1), point.New(2, 1)),
		segment.New(2, point.New(0, 3), point.New(2, 3)),
	}
	result := run(t, segs, tol)

	low := findEvent(t, result, point.New(1, 1), tol)
	assert.True(t, low.Has(0, event.Interior))
	assert.True(t, low.Has(1, event.Interior))

	high := findEvent(t, result, point.New(1, 3), tol)
	assert.True(t, high.Has(0, event.Interior))
	assert.True(t, high.Has(2, event.Interior))
}

func TestRun_GridOfCrossings(t *testing.T) {
	// 3x3 grid: every horizontal crosses every vertical once. 12 endpoint
	// events plus 9 interior events, each interior carrying exactly the
	// two segments that meet there.
	const tol = 1e-9
	var segs []segment.Segment
	for i := 0; i < 3; i++ {
		y := float64(i + 1)
		segs = append(segs, segment.New(len(segs), point.New(0, y), point.New(4, y)))
	}
	for i := 0; i < 3; i++ {
		x := float64(i + 1)
		segs = append(segs, segment.New(len(segs), point.New(x, 0), point.New(x, 4)))
	}
	result := run(t, segs, tol)

	interiorEvents := 0
	for _, e := range result.Events {
		if len(e.Incidences) == 2 && e.Incidences[0].Role == event.Interior && e.Incidences[1].Role == event.Interior {
			interiorEvents++
		}
	}
	assert.Equal(t, 9, interiorEvents)
	assert.Len(t, result.Events, 21)
}

func TestRun_OutputOrderIsLexicographic(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(0, 0), point.New(2, 2)),
		segment.New(1, point.New(0, 2), point.New(2, 0)),
	}
	result := run(t, segs, tol)

	for i := 1; i < len(result.Events); i++ {
		prev, cur := result.Events[i-1].Point, result.Events[i].Point
		assert.True(t, prev.Less(cur), "events must be strictly increasing: %s then %s", prev, cur)
	}
}

func TestRun_DisjointSegmentsProduceNoInteriorEvents(t *testing.T) {
	const tol = 1e-6
	segs := []segment.Segment{
		segment.New(0, point.New(0, 0), point.New(1, 0)),
		segment.New(1, point.New(0, 5), point.New(1, 5)),
	}
	result := run(t, segs, tol)

	for _, e := range result.Events {
		for _, inc := range e.Incidences {
			assert.NotEqual(t, event.Interior, inc.Role)
		}
	}
}
