package geometry

import "github.com/df07/go-spectral-pathtracer/pkg/core"

// MaxTraversalDepth is the capacity of the traversal stack. Pushes past it are
// dropped, which can miss geometry in pathologically deep trees.
const MaxTraversalDepth = 32

// BVHNode is one node of a flattened bounding volume hierarchy.
// A node is a leaf iff ChildNode == 0; an inner node's children sit at
// ChildNode and ChildNode+1. Node 0 is the root.
type BVHNode struct {
	Bounds     core.AABB
	StartIndex uint32
	Count      uint32
	ChildNode  uint32
}

// IsLeaf reports whether the node stores triangles directly
func (n BVHNode) IsLeaf() bool {
	return n.ChildNode == 0
}

// BVH pairs a flattened node array with the triangle list it indexes
type BVH struct {
	Nodes     []BVHNode
	Triangles []Triangle
}

type nodeStack struct {
	items [MaxTraversalDepth]uint32
	len   int
}

func (s *nodeStack) push(i uint32) {
	if s.len < MaxTraversalDepth {
		s.items[s.len] = i
		s.len++
	}
}

func (s *nodeStack) pop() uint32 {
	s.len--
	return s.items[s.len]
}

// Intersect returns the closest triangle hit using an iterative walk that
// visits the nearer child first and prunes boxes beyond the best hit so far.
func (b *BVH) Intersect(ray core.Ray) core.Hit {
	closest := core.NoHit()
	if b == nil || len(b.Nodes) == 0 {
		return closest
	}

	var stack nodeStack
	stack.push(0)

	for stack.len > 0 {
		node := b.Nodes[stack.pop()]

		dist, ok := node.Bounds.HitDistance(ray)
		if !ok || (closest.Success && dist > closest.Distance) {
			continue
		}

		if node.IsLeaf() {
			end := node.StartIndex + node.Count
			for i := node.StartIndex; i < end; i++ {
				closest = core.Closest(closest, b.Triangles[i].Intersect(ray))
			}
			continue
		}

		near, far := node.ChildNode, node.ChildNode+1
		distNear, okNear := b.Nodes[near].Bounds.HitDistance(ray)
		distFar, okFar := b.Nodes[far].Bounds.HitDistance(ray)
		if okFar && (!okNear || distFar < distNear) {
			near, far = far, near
			distNear, distFar = distFar, distNear
			okNear, okFar = okFar, okNear
		}

		// Push the farther child first so the nearer one is popped next
		if okFar && (!closest.Success || distFar <= closest.Distance) {
			stack.push(far)
		}
		if okNear && (!closest.Success || distNear <= closest.Distance) {
			stack.push(near)
		}
	}

	return closest
}

// BruteForce tests every triangle and is the reference for Intersect
func (b *BVH) BruteForce(ray core.Ray) core.Hit {
	if b == nil {
		return core.NoHit()
	}
	return IntersectAll(b.Triangles, ray)
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Triangles    int
	Nodes        int
	Leaves       int
	MaxDepth     int
	MinLeafCount int
	MaxLeafCount int
	AvgLeafCount float64
}

// Stats walks the node array and reports counts and depth
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{Triangles: len(b.Triangles), Nodes: len(b.Nodes)}
	if len(b.Nodes) == 0 {
		return stats
	}

	type entry struct {
		index uint32
		depth int
	}
	total := 0
	pending := []entry{{0, 0}}
	for len(pending) > 0 {
		e := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		node := b.Nodes[e.index]
		stats.MaxDepth = max(stats.MaxDepth, e.depth)

		if !node.IsLeaf() {
			pending = append(pending, entry{node.ChildNode, e.depth + 1}, entry{node.ChildNode + 1, e.depth + 1})
			continue
		}

		count := int(node.Count)
		if stats.Leaves == 0 || count < stats.MinLeafCount {
			stats.MinLeafCount = count
		}
		stats.MaxLeafCount = max(stats.MaxLeafCount, count)
		stats.Leaves++
		total += count
	}
	stats.AvgLeafCount = float64(total) / float64(stats.Leaves)
	return stats
}
