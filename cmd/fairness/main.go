package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"classroom/config"
	"classroom/internal/adapter/fs"
	"classroom/internal/domain"
	"classroom/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory holding classroom.yaml")
	rosterPath := flag.String("f", "", "Cold-call roster file (name,excused)")
	sampleSize := flag.Int("n", 0, "Students per draw (default from config)")
	seeds := flag.Int("seeds", 1000, "Number of seeds to draw with, starting at -start")
	start := flag.Int("start", 0, "First seed")
	includeExcused := flag.Bool("include-excused", false, "Include excused students")
	flag.Parse()

	if *rosterPath == "" {
		fmt.Println("Usage: go run ./cmd/fairness -f roster.csv [-n 2] [-seeds 1000]")
		fmt.Println("\nChecks:")
		fmt.Println("  1. Every eligible student is drawn at roughly the same rate")
		fmt.Println("  2. Excused students are never drawn unless included")
		fmt.Println("  3. Identical seeds give identical draws")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *sampleSize <= 0 {
		*sampleSize = cfg.Defaults.SampleSize
	}

	text, err := fs.Reader{}.ReadFile(*rosterPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading roster: %v\n", err)
		os.Exit(1)
	}

	uc := usecase.NewColdCallUseCase(nil)
	req := domain.ColdCallRequest{
		Roster:         text,
		SampleSize:     strconv.Itoa(*sampleSize),
		IncludeExcused: *includeExcused,
	}

	counts := make(map[string]int)
	draws := 0
	repeatable := true
	for s := *start; s < *start+*seeds; s++ {
		req.Seed = strconv.Itoa(s)
		res, err := uc.Run(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if res.Empty {
			fmt.Fprintln(os.Stderr, res.Message)
			os.Exit(1)
		}
		if again, _ := uc.Run(req); strings.Join(again.Names, "\x00") != strings.Join(res.Names, "\x00") {
			repeatable = false
		}
		for _, name := range res.Names {
			counts[name]++
		}
		draws++
	}

	fmt.Println("COLD CALL FAIRNESS")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Roster:      %s\n", filepath.Base(*rosterPath))
	fmt.Printf("Draws:       %d (seeds %d..%d)\n", draws, *start, *start+*seeds-1)
	fmt.Printf("Sample size: %d\n", *sampleSize)
	fmt.Println(strings.Repeat("-", 70))

	names := make([]string, 0, len(counts))
	total := 0
	for name, c := range counts {
		names = append(names, name)
		total += c
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	// Students never drawn don't appear in counts, so the expected rate is
	// only meaningful when everyone eligible was seen at least once.
	expected := float64(total) / float64(len(names))
	chi := 0.0
	for _, name := range names {
		c := counts[name]
		chi += math.Pow(float64(c)-expected, 2) / expected
		fmt.Printf("  %-24s %6d  %5.1f%%\n", name, c, 100*float64(c)/float64(draws))
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("QUALITY METRICS:\n")
	fmt.Printf("  Students drawn:  %d\n", len(names))
	fmt.Printf("  Expected count:  %.1f\n", expected)
	fmt.Printf("  Chi-square:      %.2f (df=%d)\n", chi, len(names)-1)
	fmt.Printf("  Repeatable:      %t\n", repeatable)

	if len(names) > 1 && chi/float64(len(names)-1) < 2 {
		fmt.Println("  Status: GOOD - selection rates look uniform")
	} else if len(names) > 1 {
		fmt.Println("  Status: SKEWED - some students are drawn noticeably more often")
	}
}
