// Command lvsearch runs the search algorithms of this module on the bundled
// problem domains and prints the outcome.
//
// Every flag can also be set through an LVSEARCH_<FLAG> environment variable
// (dashes become underscores) or a config file passed with --config.
//
//	lvsearch route --from Arad --to Bucharest --algorithm astar
//	lvsearch puzzle --board "7 2 4 5 0 6 8 3 1" --algorithm rbfs
//	lvsearch queens --n 8 --algorithm annealing --seed 7
//	lvsearch grid --cells "111/101/111" --from 0,0 --to 2,0 --conn 8
//	lvsearch online --agent lrta --from Arad --to Bucharest
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
