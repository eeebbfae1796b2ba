package instrument_test

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/instrument"
)

// ExampleRecorder_Observe counts two searches on a private registry.
func ExampleRecorder_Observe() {
	reg := prometheus.NewRegistry()
	rec, err := instrument.NewRecorder(reg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rec.Observe("bfs", core.StatusSolved, core.Metrics{core.MetricNodesExpanded: 4}, time.Millisecond)
	rec.Observe("bfs", core.StatusFailure, core.Metrics{core.MetricNodesExpanded: 9}, time.Millisecond)

	n, _ := testutil.GatherAndCount(reg, "lvsearch_searches_total")
	fmt.Println(n)
	// Output:
	// 2
}
