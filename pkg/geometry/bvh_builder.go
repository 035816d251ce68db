package geometry

import (
	"math"
	"sync"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Split heuristic costs. Traversing a node is free; each triangle costs
// objectCost times the surface area of the box it is tested in.
const (
	nodeCost      = 0.0
	objectCost    = 2.0
	minSplitSteps = 5
	maxSplitSteps = 20
	leafMaxCount  = 3
)

type bvhBuilder struct {
	triangles []Triangle
	bounds    []core.AABB
	nodes     []BVHNode
	maxDepth  int
}

// BuildBVH reorders triangles into leaf ranges and returns the flattened
// hierarchy over them. The input slice is not modified.
func BuildBVH(triangles []Triangle, logger core.Logger) *BVH {
	if len(triangles) == 0 {
		return &BVH{}
	}
	start := time.Now()

	b := &bvhBuilder{
		triangles: append([]Triangle(nil), triangles...),
		bounds:    make([]core.AABB, len(triangles)),
		nodes:     make([]BVHNode, 0, len(triangles)*2/3+1),
		maxDepth:  int(math.Log2(float64(len(triangles)))) + 2,
	}

	rootBounds := core.EmptyAABB()
	for i, t := range b.triangles {
		b.bounds[i] = t.Bounds()
		rootBounds = rootBounds.Union(b.bounds[i])
	}
	b.nodes = append(b.nodes, BVHNode{Bounds: rootBounds, Count: uint32(len(triangles))})
	b.split(0, 0)

	bvh := &BVH{Nodes: b.nodes, Triangles: b.triangles}
	if logger != nil {
		stats := bvh.Stats()
		logger.Printf("BVH built: %d triangles, %d nodes, max depth %d, %d leaves (min %d, max %d, avg %.2f triangles) in %v\n",
			stats.Triangles, stats.Nodes, b.maxDepth, stats.Leaves,
			stats.MinLeafCount, stats.MaxLeafCount, stats.AvgLeafCount, time.Since(start))
	}
	return bvh
}

func (b *bvhBuilder) cost(node BVHNode) float64 {
	return nodeCost + objectCost*node.Bounds.SurfaceArea()*float64(node.Count)
}

func (b *bvhBuilder) split(index uint32, depth int) {
	node := b.nodes[index]
	if depth == b.maxDepth || node.Count <= leafMaxCount {
		return
	}

	lo, hi := node.StartIndex, node.StartIndex+node.Count
	cost, axis, threshold := b.chooseSplit(node.Bounds, lo, hi)
	if cost >= b.cost(node) {
		return
	}

	// Objects above the threshold are swapped to the front of the range
	greater := BVHNode{Bounds: core.EmptyAABB(), StartIndex: lo}
	less := BVHNode{Bounds: core.EmptyAABB()}
	for i := lo; i < hi; i++ {
		if b.bounds[i].Center().Axis(axis) > threshold {
			swap := greater.StartIndex + greater.Count
			b.triangles[i], b.triangles[swap] = b.triangles[swap], b.triangles[i]
			b.bounds[i], b.bounds[swap] = b.bounds[swap], b.bounds[i]
			greater.Bounds = greater.Bounds.Union(b.bounds[swap])
			greater.Count++
		} else {
			less.Bounds = less.Bounds.Union(b.bounds[i])
			less.Count++
		}
	}
	less.StartIndex = lo + greater.Count

	if greater.Count == 0 || less.Count == 0 {
		return
	}

	child := uint32(len(b.nodes))
	b.nodes = append(b.nodes, greater, less)
	b.nodes[index].ChildNode = child

	b.split(child, depth+1)
	b.split(child+1, depth+1)
}

type splitCandidate struct {
	cost      float64
	axis      int
	threshold float64
}

// chooseSplit evaluates evenly spaced thresholds along each axis in parallel
// and returns the cheapest.
func (b *bvhBuilder) chooseSplit(bounds core.AABB, lo, hi uint32) (float64, int, float64) {
	count := int(hi - lo)
	steps := max(minSplitSteps, min(maxSplitSteps, count))

	var results [3]splitCandidate
	var wg sync.WaitGroup
	for axis := 0; axis < 3; axis++ {
		wg.Add(1)
		go func(axis int) {
			defer wg.Done()

			minBound, maxBound := bounds.Min.Axis(axis), bounds.Max.Axis(axis)
			// Small ranges get the tighter extent of the objects themselves
			if count < 10 {
				minBound, maxBound = math.Inf(1), math.Inf(-1)
				for i := lo; i < hi; i++ {
					minBound = min(minBound, b.bounds[i].Min.Axis(axis))
					maxBound = max(maxBound, b.bounds[i].Max.Axis(axis))
				}
			}

			step := (maxBound - minBound) / float64(steps)
			best := splitCandidate{cost: math.Inf(1), axis: axis}
			for i := 0; i < steps; i++ {
				threshold := minBound + step*(float64(i)+0.5)
				if c := b.splitCost(lo, hi, axis, threshold); c < best.cost {
					best.cost = c
					best.threshold = threshold
				}
			}
			results[axis] = best
		}(axis)
	}
	wg.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.cost < best.cost {
			best = r
		}
	}
	return best.cost, best.axis, best.threshold
}

func (b *bvhBuilder) splitCost(lo, hi uint32, axis int, threshold float64) float64 {
	boundsGreater, boundsLess := core.EmptyAABB(), core.EmptyAABB()
	countGreater, countLess := 0, 0

	for i := lo; i < hi; i++ {
		if b.bounds[i].Center().Axis(axis) > threshold {
			boundsGreater = boundsGreater.Union(b.bounds[i])
			countGreater++
		} else {
			boundsLess = boundsLess.Union(b.bounds[i])
			countLess++
		}
	}

	// Splits that leave one side empty are never chosen
	if countGreater == 0 || countLess == 0 {
		return math.Inf(1)
	}

	return nodeCost +
		objectCost*boundsGreater.SurfaceArea()*float64(countGreater) +
		objectCost*boundsLess.SurfaceArea()*float64(countLess)
}
