package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"life-engine/internal/core"
	"life-engine/internal/sims/life"
)

type fileList []string

func (l *fileList) String() string {
	return strings.Join(*l, ",")
}

func (l *fileList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type job struct {
	order   int
	pattern life.Pattern
}

type result struct {
	order  int
	report life.Report
	err    error
}

func main() {
	generations := flag.Int("generations", 500, "maximum generations to run per pattern")
	margin := flag.Int("margin", 32, "empty cells padded around each pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var files fileList
	flag.Var(&files, "file", "plaintext pattern file to include (repeatable)")
	flag.Parse()

	patterns := life.Catalog()
	for _, path := range files {
		p, err := loadFile(path)
		if err != nil {
			log.Fatalf("load %s: %v", path, err)
		}
		patterns = append(patterns, p)
	}
	opts := life.CensusOptions{Margin: *margin, MaxGenerations: *generations, Boundary: core.Bounded}

	fmt.Printf("Surveying %d patterns (%d workers, up to %d generations)\n",
		len(patterns), *workers, *generations)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rep, err := life.Census(j.pattern, opts)
				results <- result{order: j.order, report: rep, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, p := range patterns {
			jobs <- job{order: i, pattern: p}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", patterns[res.order].Name(), res.err)
			continue
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].order < all[j].order })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		printReport(res.report)
	}
}

func printReport(r life.Report) {
	detail := ""
	switch r.Class {
	case life.Spaceship:
		detail = fmt.Sprintf(" period=%d shift=(%d,%d)", r.Period, r.DRow, r.DCol)
	case life.Oscillator, life.StillLife:
		detail = fmt.Sprintf(" period=%d", r.Period)
	}
	fmt.Printf("%-22s %-10s gen=%-4d pop=%d->%d peak=%d%s\n",
		r.Name, r.Class, r.Generations, r.Initial, r.Final, r.Peak, detail)
}

func loadFile(path string) (life.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return life.Pattern{}, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return life.ParsePlaintext(name, f)
}
