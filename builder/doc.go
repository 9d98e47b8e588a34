// Package builder generates deterministic fixture graphs on a core.Graph:
// paths, cycles, stars, wheels, complete and complete-bipartite graphs,
// orthogonal grids, and Erdős–Rényi-style random graphs.
//
// Each Constructor adds its nodes as one core.Graph.AddNodes batch and its
// edges as core.Graph.AddEdges batches. When the graph carries 2-D
// coordinates, nodes are placed on a unit layout (line, circle, grid or two
// columns) transformed by WithScale, WithOrigin and WithJitter, which makes
// the fixtures usable as spatial skeletons. A graph without coordinates just
// gets the topology; any other dimensionality is ErrUnsupportedGraphMode.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse and jitter.
//   - WithScale(s), WithOrigin(x, y), WithJitter(sigma): layout transform.
//
// Guarantees:
//
//   - Deterministic ids and positions for the same options, seed and
//     constructor order.
//   - Option constructors panic on invalid values; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrUnsupportedGraphMode, ErrConstructFailed).
//   - Directed graphs get mirrored arcs for symmetric shapes (Star, Wheel
//     spokes, Complete, CompleteBipartite, Grid); Path, Cycle and
//     RandomSparse emit forward arcs only.
package builder
