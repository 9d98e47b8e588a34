package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// network is the residual network over node slot indices. Arcs come in
// pairs: arc 2k runs along edge k's stored direction and arc 2k+1 back.
type network struct {
	g    *core.Graph
	eps  float64
	head []int32 // per node slot, first outgoing arc or -1
	next []int32
	to   []int32
	cap  []float64 // residual capacity
	orig []float64
	edge []core.EdgeID // per arc pair
	s, t int
}

// buildNetwork validates the endpoints and lays out one arc pair per
// non-loop edge. A directed edge gets reverse capacity 0; an undirected
// edge gets its capacity both ways.
//
// Complexity: O(V + E) time and memory.
func buildNetwork(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts FlowOptions) (*network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := g.Stats()
	n := &network{
		g:    g,
		eps:  opts.Epsilon,
		head: make([]int32, st.NodeCapacity),
		next: make([]int32, 0, 2*st.Edges),
		to:   make([]int32, 0, 2*st.Edges),
		cap:  make([]float64, 0, 2*st.Edges),
		edge: make([]core.EdgeID, 0, st.Edges),
		s:    source.Index(),
		t:    sink.Index(),
	}
	for i := range n.head {
		n.head[i] = -1
	}
	directed := g.Directed()
	for e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		c := opts.Capacity(e.Source, e.Target, e.ID)
		if math.IsNaN(c) || c < -opts.Epsilon {
			return nil, EdgeError{Edge: e.ID, From: e.Source, To: e.Target, Cap: c}
		}
		if c <= opts.Epsilon {
			c = 0
		}
		back := c
		if directed {
			back = 0
		}
		u, v := e.Source.Index(), e.Target.Index()
		n.addArc(u, v, c)
		n.addArc(v, u, back)
		n.edge = append(n.edge, e.ID)
	}
	n.orig = append([]float64(nil), n.cap...)

	return n, nil
}

func (n *network) addArc(u, v int, c float64) {
	n.to = append(n.to, int32(v))
	n.cap = append(n.cap, c)
	n.next = append(n.next, n.head[u])
	n.head[u] = int32(len(n.to) - 1)
}

// push moves f units along arc a.
func (n *network) push(a int32, f float64) {
	n.cap[a] -= f
	n.cap[a^1] += f
}

// result reads flows and the min cut off the final residual network.
func (n *network) result(value float64) Result {
	res := Result{Value: value, Flow: make(map[core.EdgeID]float64)}
	for k, id := range n.edge {
		if f := n.orig[2*k] - n.cap[2*k]; math.Abs(f) > n.eps {
			res.Flow[id] = f
		}
	}

	side := n.reachable()
	for id := range n.g.Nodes() {
		if side[id.Index()] {
			res.SourceSide = append(res.SourceSide, id)
		}
	}
	directed := n.g.Directed()
	for k, id := range n.edge {
		u, v := n.to[2*k+1], n.to[2*k]
		if side[u] != side[v] && (side[u] || !directed) {
			res.Cut = append(res.Cut, id)
		}
	}

	return res
}

// reachable marks node slots reachable from s over arcs with capacity > eps.
func (n *network) reachable() []bool {
	seen := make([]bool, len(n.head))
	seen[n.s] = true
	queue := []int32{int32(n.s)}
	for i := 0; i < len(queue); i++ {
		for a := n.head[queue[i]]; a >= 0; a = n.next[a] {
			v := n.to[a]
			if !seen[v] && n.cap[a] > n.eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// logAugment reports one augmentation when opts.Verbose is set.
func (n *network) logAugment(opts FlowOptions, algo string, pushed, total float64) {
	if opts.Verbose {
		n.g.Logger().Debug("flow: augment", "algorithm", algo, "pushed", pushed, "total", total)
	}
}
