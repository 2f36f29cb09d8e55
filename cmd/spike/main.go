package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"scrib"
	"scrib/pkg/core"
)

// Exercises the single-blob store under concurrent writers: every Create
// rewrites the whole file, so the service mutex plus the atomic rename
// must keep the blob consistent.
const WorkerCount = 100

func main() {
	log.Println("Starting spike: concurrent writes against one blob")

	tmpDir, err := os.MkdirTemp("", "scrib-spike-*")
	if err != nil {
		log.Fatalf("creating temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	log.Printf("Working directory: %s", tmpDir)

	service, err := scrib.New(tmpDir, scrib.WithAutoInit(true))
	if err != nil {
		log.Fatalf("initializing service: %v", err)
	}

	ctx := context.Background()
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(WorkerCount)
	for i := 0; i < WorkerCount; i++ {
		go func(id int) {
			defer wg.Done()
			title := fmt.Sprintf("Spike note %d", id)
			content := fmt.Sprintf("Written at %s by worker %d.", time.Now().Format(time.RFC3339), id)
			if _, err := service.Create(ctx, title, content, []string{"spike"}); err != nil {
				log.Printf("worker %d: create failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)

	// Verify nothing was lost.
	notes, err := service.List(ctx, core.Query{Tags: []string{"spike"}})
	if err != nil {
		log.Fatalf("listing after spike: %v", err)
	}

	log.Printf("Done in %v: %d/%d notes survived", elapsed, len(notes), WorkerCount)
	if len(notes) != WorkerCount {
		log.Fatal("lost writes detected")
	}
}
