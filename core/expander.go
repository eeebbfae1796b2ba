package core

// Expander generates child nodes and counts expansions into a run's Metrics.
type Expander[S comparable, A comparable] struct {
	metrics  Metrics
	onExpand func(n *Node[S, A])
}

// NewExpander returns an Expander recording into m. A nil m gets a fresh map.
func NewExpander[S comparable, A comparable](m Metrics) *Expander[S, A] {
	if m == nil {
		m = NewMetrics()
	}

	return &Expander[S, A]{metrics: m}
}

// OnExpand installs fn, called with every node right before it is expanded.
func (e *Expander[S, A]) OnExpand(fn func(n *Node[S, A])) *Expander[S, A] {
	e.onExpand = fn

	return e
}

// Metrics returns the map the expander records into.
func (e *Expander[S, A]) Metrics() Metrics { return e.metrics }

// Expanded returns how many times Expand has been called.
func (e *Expander[S, A]) Expanded() int { return e.metrics.Int(MetricNodesExpanded) }

// Expand builds one child of n per action in p.Actions(n.State), in the order
// Actions yields them. nodesExpanded grows by exactly one per call, however
// many children are produced. An error from p.Result aborts the expansion.
func (e *Expander[S, A]) Expand(p *Problem[S, A], n *Node[S, A]) ([]*Node[S, A], error) {
	if e.onExpand != nil {
		e.onExpand(n)
	}
	e.metrics.Inc(MetricNodesExpanded)

	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		next, err := p.Result(n.State, a)
		if err != nil {
			return nil, err
		}
		children = append(children, link(p, n, a, next))
	}

	return children, nil
}
