// fenwalk replays structured move descriptors against a chess position and
// prints the positions reached.
//
// Each input line is a JSON array of move descriptors for one game, e.g.
//
//	[{"kind":"P","to":"e4"},{"kind":"P","to":"d5"},{"kind":"P","to":"d5","from_file":"e","capture":true}]
//
// Games start from the position given by -fen/-castling/-colour/-ep and are
// replayed concurrently when -workers is above one. Output keeps the input
// line order.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/engine"
	"github.com/phaul/chessdb/internal/output"
	"github.com/phaul/chessdb/internal/worker"
)

var (
	fen      = flag.String("fen", chess.InitialFEN, "FEN placement field of the starting position")
	castling = flag.Int("castling", int(engine.AllCastling), "castling availability bits (0-15)")
	colour   = flag.Int("colour", 0, "active colour (0 white, 1 black)")
	ep       = flag.Int("ep", -1, "en passant square index (0-63, -1 for none)")
	query    = flag.Bool("query", false, "print positions as query strings instead of JSON")
	all      = flag.Bool("all", false, "print every ply, not just the final position")
	workers  = flag.Int("workers", 1, "number of games replayed in parallel")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fenwalk: ")
	flag.Parse()

	start, err := startPosition()
	if err != nil {
		log.Fatal(err)
	}

	jobs, err := readJobs(os.Stdin, start)
	if err != nil {
		log.Fatal(err)
	}

	results := replayAll(jobs)

	failed := false
	for _, r := range results {
		if r.Err != nil {
			log.Printf("game %d: %v", r.Index+1, r.Err)
			failed = true
			continue
		}
		printResult(r)
	}
	if failed {
		os.Exit(1)
	}
}

// startPosition builds the shared starting position from the flags.
func startPosition() (engine.Position, error) {
	var epIndex *int
	if *ep >= 0 {
		epIndex = ep
	}
	return engine.Specific(*fen, *castling, *colour, epIndex)
}

// readJobs parses one descriptor list per input line.
func readJobs(f *os.File, start engine.Position) ([]worker.ReplayJob, error) {
	var jobs []worker.ReplayJob

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var descriptors []output.MoveDescriptor
		if err := json.Unmarshal(scanner.Bytes(), &descriptors); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		moves, err := output.Moves(descriptors)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		jobs = append(jobs, worker.ReplayJob{
			Start: start,
			Moves: moves,
			Index: len(jobs),
		})
	}
	return jobs, scanner.Err()
}

// replayAll runs every job through the pool and returns the results sorted
// back into input order.
func replayAll(jobs []worker.ReplayJob) []worker.ReplayResult {
	pool := worker.NewPool(*workers, len(jobs)+1)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]worker.ReplayResult, 0, len(jobs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

func printResult(r worker.ReplayResult) {
	positions := r.Positions
	if !*all && len(positions) > 0 {
		positions = positions[len(positions)-1:]
	}
	for _, p := range positions {
		if *query {
			fmt.Println(output.Values(p).Encode())
			continue
		}
		data, err := output.JSON(p)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
	}
}
