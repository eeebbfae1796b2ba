package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/routemap"
)

// ExampleSearch shows that depth-first search commits to the most recently
// generated branch and finds a long route.
func ExampleSearch() {
	p, _ := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)

	res, err := dfs.Search(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.States(), res.PathCost)
	// Output:
	// [Arad Sibiu Rimnicu Vilcea Craiova Pitesti Bucharest] 605
}

// ExampleIterativeDeepening finds the route with the fewest roads while
// keeping only one path in memory.
func ExampleIterativeDeepening() {
	p, _ := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)

	res, err := dfs.IterativeDeepening(p, dfs.WithMaxDepth(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions, res.Metrics.Int("depthLimit"))
	// Output:
	// [Sibiu Fagaras Bucharest] 3
}
