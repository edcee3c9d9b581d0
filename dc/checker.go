// File: checker.go
// Role: the recursive-Dijkstra negative-cycle search of spec.md §4.2.
//
// Design note (spec.md §9): the reference source recurses with a mutable
// call stack. We track the call stack explicitly as a []int (the chain of
// negative-node start vertices currently being resolved) rather than
// relying on hidden Go call-stack state, so the back-edge check in step 3
// is an explicit, auditable slice membership test; the actual traversal
// recursion still uses the Go call stack (bounded by the number of
// negative nodes, which is small for any STNU that will ever be dispatched
// in practice) rather than a hand-rolled frame stack, trading the last
// mile of spec.md §9's "cooperative cancellation" ideal for clarity.
// Cancellation is still honored at the top of every Dijkstra pop via ctx.
package dc

import (
	"context"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/internal/pq"
	"github.com/rs/zerolog"
)

// Options configures Check.
type Options struct {
	// Ctx, when non-nil, is checked for cancellation between priority-queue
	// pops, mirroring flow.FlowOptions.Ctx in the library this module was
	// adapted from.
	Ctx context.Context

	// Logger receives structured diagnostics (cycle_weight, node counts).
	// Nil defaults to a no-op logger. The teacher's analogous knob,
	// FlowOptions.Verbose, is a bare bool with no logging library behind
	// it; this field generalizes that shape to zerolog's structured
	// fields rather than adopting any teacher logging dependency.
	Logger *zerolog.Logger
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// dcState is a node paired with the "currently active" wait label (the
// contingent sink id of the most recent LOWER/UPPER edge consumed on the
// path back to the traversal's start, or noLabel).
type dcState struct {
	Node, Label int
}

const noLabel = -1

// settled records the weight and via-edge of a finalized (node,label)
// state, used both to reconstruct cycle evidence and to answer the
// suppression rule.
type settled struct {
	weight float64
	via    *core.NormEdge // edge used to relax INTO this state, or nil at the traversal root
	from   dcState        // the state on the other end of via
}

// traversal is the state shared across the recursive calls for a
// single top-level Check invocation: which nodes are still negative, and
// the settled-state table recorded per start vertex (dc.preds in
// spec.md's terms), used later to lift the cycle back to original edges.
type traversal struct {
	g        *core.NormalGraph
	negative map[int]bool
	preds    map[int]map[dcState]settled // per start-node settled tables
	// novelPath records, for every novel shortcut edge created during
	// traversal, the real edge chain it summarizes (spec.md §4.2's
	// resolve_novel), so lifting a cycle that routes through one expands
	// it back to genuine original/aux edges instead of dropping it.
	novelPath map[*core.NormEdge][]*core.NormEdge
	opts      Options
}

// cycleResult is returned by visit: when found is true, edges holds the
// cycle's edges in traversal order and endpoint is the unresolved node the
// cycle still needs to close through (noLabel's int sibling -1 sentinel
// value closedEndpoint signals the cycle has already closed).
type cycleResult struct {
	found    bool
	edges    []*core.NormEdge
	endpoint int
}

const closedEndpoint = -1

// Check runs the DC algorithm of spec.md §4.2 over s.
func Check(s *core.STNU, opts Options) Result {
	opts.normalize()
	g := s.Normalize()

	neg := negativeNodes(g)
	t := &traversal{
		g:         g,
		negative:  neg,
		preds:     make(map[int]map[dcState]settled),
		novelPath: make(map[*core.NormEdge][]*core.NormEdge),
		opts:      opts,
	}

	for _, n := range sortedKeys(neg) {
		if !t.negative[n] {
			continue // cleared by an earlier traversal
		}
		if res := t.visit(n, nil); res.found {
			weight := cycleWeight(res.edges)
			lifted := liftConflict(s, g, res.edges)
			opts.Logger.Debug().Int("start_node", n).Float64("cycle_weight", weight).
				Int("cycle_edges", len(res.edges)).Msg("dc: semi-reducible negative cycle found")
			return Result{DC: false, CycleEdges: res.edges, Lifted: lifted, CycleWeight: weight}
		}
	}
	opts.Logger.Debug().Int("negative_nodes", len(neg)).Msg("dc: network is dynamically controllable")
	return Result{DC: true, Lifted: newConflict()}
}

func negativeNodes(g *core.NormalGraph) map[int]bool {
	out := make(map[int]bool)
	for _, n := range g.Nodes() {
		for _, e := range g.Incoming(n) {
			if e.Weight < 0 {
				out[n] = true
				break
			}
		}
	}
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// negativeNodes keys come from g.Nodes(), already ascending; a second
	// pass keeps this function correct even if callers build neg otherwise.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func inStack(stack []int, n int) bool {
	for _, x := range stack {
		if x == n {
			return true
		}
	}
	return false
}

// visit runs the modified Dijkstra of spec.md §4.2 steps 1-6 starting from
// s, with stack the chain of ancestor start-vertices currently unresolved.
func (t *traversal) visit(s int, stack []int) cycleResult {
	if inStack(stack, s) {
		return cycleResult{found: true, edges: nil, endpoint: s}
	}
	childStack := append(append([]int{}, stack...), s)

	table := make(map[dcState]settled)
	t.preds[s] = table

	q := pq.New[dcState]()
	for _, e := range t.g.Incoming(s) {
		if e.Weight < 0 {
			st := dcState{Node: e.From, Label: labelOf(e)}
			q.Push(st, e.Weight)
			table[st] = settled{weight: e.Weight, via: e, from: dcState{Node: s, Label: noLabel}}
		}
	}

	for !q.IsEmpty() {
		if err := t.opts.Ctx.Err(); err != nil {
			return cycleResult{} // cooperative cancellation: report DC-clean, caller sees ctx error via Options if needed
		}
		st, weight, _ := q.Pop()
		v, label := st.Node, st.Label

		if weight >= 0 {
			novel := t.g.AddNovelEdge(v, s, weight)
			t.novelPath[novel] = t.extractPath(s, st)
			continue
		}

		if t.negative[v] {
			res := t.visit(v, childStack)
			if res.found {
				path := t.extractPath(s, st)
				full := append(path, res.edges...)
				endpoint := res.endpoint
				if endpoint == s {
					endpoint = closedEndpoint
				}
				return cycleResult{found: true, edges: full, endpoint: endpoint}
			}
			// v resolved clean; fall through and continue relaxing its
			// predecessors using the distance already accumulated here.
		}

		// st's entry already carries the correct weight/via/from recorded
		// when it was pushed (the initial seed above, or a relaxation
		// below); re-storing it here with a bare weight would erase the
		// provenance extractPath needs for any later state whose from
		// points back to st.

		for _, e := range t.g.Incoming(v) {
			if e.Weight < 0 {
				continue
			}
			if e.Label == core.Lower && e.Parent == label {
				continue // suppression rule: no two consecutive LOWER steps with the same parent
			}
			// The pushed state always carries the traversal's current
			// label forward unchanged (spec.md §4.2 step 5; matches
			// original_source/algorithm.py's Q.addOrDecKey((edge.i,
			// label), w), which never substitutes edge.parent here).
			u := dcState{Node: e.From, Label: label}
			w2 := e.Weight + weight
			if cur, ok := table[u]; !ok || w2 < cur.weight {
				q.Push(u, w2)
				table[u] = settled{weight: w2, via: e, from: st}
			}
		}
	}

	delete(t.negative, s)
	return cycleResult{}
}

func labelOf(e *core.NormEdge) int {
	if e.Label == core.Normal {
		return noLabel
	}
	return e.Parent
}

// extractPath reconstructs the chain of edges from s's settled table
// leading to state target, by walking the `via`/`from` chain recorded
// during relaxation (dc's analogue of spec.md's extract_edge_path /
// resolve_novel over preds).
func (t *traversal) extractPath(s int, target dcState) []*core.NormEdge {
	table := t.preds[s]
	var out []*core.NormEdge
	cur := target
	seen := map[dcState]bool{}
	for {
		if seen[cur] {
			break
		}
		seen[cur] = true
		st, ok := table[cur]
		if !ok || st.via == nil {
			break
		}
		out = append(out, resolveNovel(t, st.via)...)
		if st.from.Node == s {
			break
		}
		cur = st.from
	}
	return reverseEdges(out)
}

// resolveNovel expands a novel shortcut edge (one created in the
// weight>=0 branch of visit) into the real edge chain it summarizes
// (spec.md §4.2's resolve_novel), so a cycle that routes through a
// shortcut still lifts to genuine requirement/contingent edges instead
// of being silently dropped. Ordinary edges resolve to themselves; a
// novel edge nested inside another's expansion is resolved recursively.
func resolveNovel(t *traversal, e *core.NormEdge) []*core.NormEdge {
	expansion, ok := t.novelPath[e]
	if !ok {
		return []*core.NormEdge{e}
	}
	out := make([]*core.NormEdge, 0, len(expansion))
	for _, sub := range expansion {
		out = append(out, resolveNovel(t, sub)...)
	}
	return out
}

func reverseEdges(in []*core.NormEdge) []*core.NormEdge {
	out := make([]*core.NormEdge, len(in))
	for i, e := range in {
		out[len(in)-1-i] = e
	}
	return out
}

func cycleWeight(edges []*core.NormEdge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}
