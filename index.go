package growth

import (
	"iter"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half-side of the degenerate rectangle a point is
// stored as. R-trees index rectangles, not points, so every point gets a tiny
// box around it.
const pointTolerance = 1e-9

// indexEntry ties a stored point's slice index to its bounding box.
type indexEntry struct {
	i      int
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// SpatialIndex answers radius-bounded neighbor queries over a fixed snapshot
// of points. Because every point may move every step, an index is only valid
// for the step it was built in; [BuildIndex] is called anew each step and
// query results must not be cached across steps.
type SpatialIndex struct {
	tree *rtreego.Rtree
	pts  []Point
}

// BuildIndex indexes the given points. The slice is retained, not copied; it
// must not be modified for the lifetime of the index.
func BuildIndex(pts []Point) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for i, pt := range pts {
		tree.Insert(&indexEntry{
			i:      i,
			bounds: rtreego.Point{pt.X, pt.Y}.ToRect(pointTolerance),
		})
	}
	return &SpatialIndex{
		tree: tree,
		pts:  pts,
	}
}

// Within returns a sequence of (index, distance) pairs for all stored points
// within radius of pt, in unspecified order. Stored points exactly at pt's
// position are not reported; in particular, querying with a stored point
// never reports that point itself.
func (ix *SpatialIndex) Within(pt Point, radius float64) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if radius <= 0 {
			return
		}
		bounds, err := rtreego.NewRect(
			rtreego.Point{pt.X - radius, pt.Y - radius},
			[]float64{2 * radius, 2 * radius},
		)
		if err != nil {
			return
		}
		// The bounding box search overshoots at the corners, so filter by
		// exact distance.
		for _, obj := range ix.tree.SearchIntersect(bounds) {
			e := obj.(*indexEntry)
			d := pt.Distance(ix.pts[e.i])
			if d == 0 || d > radius {
				continue
			}
			if !yield(e.i, d) {
				return
			}
		}
	}
}
