package main

import (
	"fmt"
	"time"

	"amazons/board"
	"amazons/engine"
)

func main() {
	runSpeedupExperiment()
}

// runSpeedupExperiment searches the opening position at a handful of
// worker-pool sizes and reports attempts-per-second for each, the same
// comparison the teacher's speedup experiment ran across goroutine
// counts.
func runSpeedupExperiment() {
	budget := 2 * time.Second
	workerCounts := []int{1, 4, 8, 16}

	fmt.Printf("Running speedup experiment (%v budget per search)...\n", budget)
	for _, workers := range workerCounts {
		attempts, elapsed, result := runSearch(workers, budget)
		rate := float64(attempts) / elapsed.Seconds()
		fmt.Printf("workers=%-3d attempts=%-10d elapsed=%-12v rate=%.0f/s  chosen=%d->%d/%d value=%.3f pro=%.1f%%\n",
			workers, attempts, elapsed, rate, result.From, result.To, result.Stone, result.Value, result.Pro)
	}
	fmt.Printf("Finished speedup experiment.\n")
}

// runSearch runs one opening-position search with the given worker
// count and returns its attempt count, wall-clock duration, and chosen
// action.
func runSearch(workers int, budget time.Duration) (int, time.Duration, engine.Result) {
	b, q := board.NewOpeningBoard()

	var cells [10][10]int
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cells[r][c] = int(b[board.Pos(r, c)])
		}
	}
	var queens [2][4]int
	queens[0] = q[0]
	queens[1] = q[1]

	start := time.Now()
	result, err := engine.Search(cells, queens, int(board.Red), budget.Seconds(), false, engine.WithWorkers(workers))
	elapsed := time.Since(start)
	if err != nil {
		panic(err)
	}
	return result.Attempt, elapsed, result
}
