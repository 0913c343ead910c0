package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/bfs"
	"github.com/katalvlaran/lvlsolve/problem"
)

// ExampleSolve finds a shortest plan in a tiny arithmetic domain:
// starting from 0, add 1 or 2 per move, land exactly on 7.
func ExampleSolve() {
	var p problem.Problem[int, int] = problem.Funcs[int, int]{
		InitialState: 0,
		ActionsFunc:  func(int) []int { return []int{1, 2} },
		ResultFunc:   func(s, a int) (int, error) { return s + a, nil },
		GoalFunc:     func(s int) bool { return s == 7 },
	}

	res, err := bfs.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("solution:", res.Solution)
	fmt.Println("path:    ", res.Path)
	// Output:
	// solution: [1 2 2 2]
	// path:     [0 1 3 5 7]
}

// ExampleSolve_wordLadder shows the engine on string states: transform
// "cat" into "dog" by changing one letter at a time, every intermediate
// word drawn from a fixed dictionary.
func ExampleSolve_wordLadder() {
	dict := []string{"cat", "cot", "cog", "cos", "dog", "dot"}
	oneAway := func(a, b string) bool {
		diff := 0
		for i := range a {
			if a[i] != b[i] {
				diff++
			}
		}
		return diff == 1
	}

	var p problem.Problem[string, string] = problem.Funcs[string, string]{
		InitialState: "cat",
		ActionsFunc: func(s string) []string {
			var next []string
			for _, w := range dict {
				if oneAway(s, w) {
					next = append(next, w)
				}
			}
			return next
		},
		ResultFunc: func(_, a string) (string, error) { return a, nil },
		GoalFunc:   func(s string) bool { return s == "dog" },
	}

	res, err := bfs.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solution)
	// Output:
	// [cot cog dog]
}

// ExampleSolve_maxDepth bounds the plan length: reaching 7 needs four
// moves, so a three-move budget exhausts the space below the limit.
func ExampleSolve_maxDepth() {
	var p problem.Problem[int, int] = problem.Funcs[int, int]{
		InitialState: 0,
		ActionsFunc:  func(int) []int { return []int{1, 2} },
		ResultFunc:   func(s, a int) (int, error) { return s + a, nil },
		GoalFunc:     func(s int) bool { return s == 7 },
	}

	_, err := bfs.Solve(p, bfs.WithMaxDepth(3))
	fmt.Println(err)
	// Output:
	// bfs: no solution found
}

// ExampleSolve_onExpand reports search progress through the expansion
// hook: depths never decrease, the counter never skips.
func ExampleSolve_onExpand() {
	var p problem.Problem[int, int] = problem.Funcs[int, int]{
		InitialState: 0,
		ActionsFunc:  func(int) []int { return []int{1, 2} },
		ResultFunc:   func(s, a int) (int, error) { return s + a, nil },
		GoalFunc:     func(s int) bool { return s == 4 },
	}

	res, err := bfs.Solve(p, bfs.WithOnExpand(func(depth, expanded int) {
		fmt.Printf("expansion %d at depth %d\n", expanded, depth)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("solution:", res.Solution)
	// Output:
	// expansion 1 at depth 0
	// expansion 2 at depth 1
	// expansion 3 at depth 1
	// solution: [2 2]
}
