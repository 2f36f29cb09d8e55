package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"scrib"
	"scrib/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark vault after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "scrib_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	service, err := scrib.New(benchDir,
		scrib.WithLogger(logger),
		scrib.WithAutoInit(true),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.TODO()

	// 1. Populate. Every Create rewrites the whole blob, so this measures
	// the worst case of the single-file storage model.
	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()
	for i := 0; i < *count; i++ {
		tags := []string{"benchmark"}
		if i%2 == 0 {
			tags = append(tags, "even")
		}
		_, err := service.Create(ctx,
			fmt.Sprintf("Note %d", i),
			fmt.Sprintf("Benchmark content for note %d.", i),
			tags,
		)
		if err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v (%v per note)\n", time.Since(startGen), time.Since(startGen)/time.Duration(*count))

	// 2. Full list, same service instance.
	fmt.Println("Running List (Run 1 - same instance)...")
	startList := time.Now()
	list, err := service.List(ctx, core.Query{})
	if err != nil {
		panic(err)
	}
	duration := time.Since(startList)
	fmt.Printf("Run 1 Result: %v (Items: %d)\n", duration, len(list))

	// 3. Re-instantiate to simulate a fresh CLI invocation reading the
	// blob from disk.
	service2, err := scrib.New(benchDir,
		scrib.WithLogger(logger),
		scrib.WithAutoInit(true),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println("Running filtered List (Run 2 - fresh instance)...")
	startList2 := time.Now()
	list2, err := service2.List(ctx, core.Query{Tags: []string{"even"}, Sort: core.SortTitle})
	if err != nil {
		panic(err)
	}
	duration2 := time.Since(startList2)
	fmt.Printf("Run 2 Result: %v (Items: %d)\n", duration2, len(list2))

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Full list:     %v\n", duration)
	fmt.Printf("  Filtered list: %v\n", duration2)
	fmt.Printf("--------------------------------------------------\n")
}
