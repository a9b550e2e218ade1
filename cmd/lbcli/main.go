package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/jsmatfess/ltrbxd"
	"github.com/jsmatfess/ltrbxd/internal/dictionary"
	"github.com/jsmatfess/ltrbxd/internal/nyt"
)

func main() {
	dictFile := flag.String("dict", "", "The file to load dictionary words from")
	sidesArg := flag.String("sides", "", "The four puzzle sides as comma-separated letter groups, e.g. abc,def,ghi,jkl")
	maxWords := flag.Int("max-words", 2, "Maximum number of words in a solution")
	useNYT := flag.Bool("nyt", false, "Fetch today's puzzle, dictionary and reference solution from the NYT page")
	verify := flag.Bool("verify", false, "Classify the puzzle instead of streaming solutions")
	outFile := flag.String("out", "", "Append results to this file")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the search")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var sides []string
	var words []string
	var reference []string
	skipValidation := false
	date := time.Now().Format("2006-01-02")

	if *useNYT {
		if *dictFile != "" || *sidesArg != "" {
			fmt.Println("Cannot use -nyt together with -dict or -sides")
			os.Exit(1)
		}
		fmt.Println("Fetching today's puzzle...")
		gd, err := nyt.Fetch(ctx, "")
		if err != nil {
			fmt.Println("Error fetching puzzle:", err)
			os.Exit(1)
		}
		sides = gd.Sides
		words = gd.Dictionary
		reference = gd.OurSolution
		skipValidation = true
		if gd.PrintDate != "" {
			date = gd.PrintDate
		}
		fmt.Printf("Puzzle %s: sides %s, %d dictionary words\n", date, strings.Join(sides, " "), len(words))
	} else {
		if *dictFile == "" || *sidesArg == "" {
			fmt.Println("Either -nyt or both -dict and -sides are required")
			os.Exit(1)
		}
		sides = strings.Split(*sidesArg, ",")
		var err error
		if words, err = dictionary.Load(*dictFile); err != nil {
			fmt.Println("Error loading words from file:", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d words from %s\n", len(words), *dictFile)
	}

	puzzle, err := ltrbxd.NewPuzzle(sides)
	if err != nil {
		fmt.Println("Invalid puzzle:", err)
		os.Exit(1)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	index := ltrbxd.BuildIndex(words, puzzle, skipValidation)
	fmt.Printf("%d playable words\n", len(index.Valid))

	var record string
	if *verify {
		report := ltrbxd.Classify(ctx, puzzle, index, reference)
		record = fmt.Sprintf("%s %s", date, report)
		fmt.Println(record)
	} else {
		solver := ltrbxd.NewSolver(puzzle, index, *maxWords)
		var best ltrbxd.Solution
		found := false
		for sol := range solver.Solutions(ctx) {
			fmt.Printf("%s (%d letters)\n", strings.Join(sol.Words, " -> "), sol.Letters)
			best = sol
			found = true
		}
		if !found {
			fmt.Printf("No solution found with at most %d words\n", *maxWords)
		} else {
			record = fmt.Sprintf("%s %s (%d letters)", date, strings.Join(best.Words, " -> "), best.Letters)
		}
	}

	if *outFile != "" && record != "" {
		if err := appendLine(*outFile, record); err != nil {
			fmt.Println("Error writing results file:", err)
			os.Exit(1)
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, line)
	return err
}
