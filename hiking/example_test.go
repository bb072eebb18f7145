package hiking_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/hiking"
)

// ExampleBestPath compares the two strategies on the canonical map.
func ExampleBestPath() {
	g, err := elevation.ParseString(`Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range []hiking.Strategy{hiking.BruteForce, hiking.Reverse} {
		path, err := hiking.BestPath(g, hiking.WithStrategy(s))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d steps\n", s, path.Steps())
	}
	// Output:
	// brute-force: 29 steps
	// reverse: 29 steps
}
