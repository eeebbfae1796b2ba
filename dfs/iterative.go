package dfs

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// IterativeDeepening repeats DepthLimited with limits 0, 1, 2, ... and returns
// the first solution, which is a shallowest one.
//
// It stops with core.StatusFailure when an iteration finishes without any
// cutoff (the reachable space is exhausted) or when the next limit would
// exceed WithMaxDepth. Without a cap and without WithAvoidLoops, a problem
// whose goal is unreachable through a cycle never terminates; use a cap or a
// cancellable context there.
//
// Each iteration starts from scratch; only the metrics carry over:
// nodesExpanded is the total across iterations and depthLimit the last limit
// tried.
func IterativeDeepening[S comparable, A comparable](p *core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	log := o.Logger.WithField("algorithm", LabelIterativeDeepening)
	m := core.NewMetrics()
	for limit := 0; o.MaxDepth == noDepthCap || limit <= o.MaxDepth; limit++ {
		res, err := depthLimited(p, limit, o, m)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			core.MetricDepthLimit:    limit,
			"status":                 res.Status.String(),
			core.MetricNodesExpanded: m.Int(core.MetricNodesExpanded),
		}).Debug("iteration finished")

		if res.Status != core.StatusCutoff {
			return res, nil
		}
	}

	return core.Failure[S, A](m), nil
}
