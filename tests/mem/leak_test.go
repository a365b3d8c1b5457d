//go:build test

package mem

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var vocabulary = []string{
	"a", "about", "above", "hello", "help", "helmet", "world", "word", "work",
	"program", "programming", "there", "their", "the", "computer", "compute",
	"international", "development", "develop", "test", "tests", "example",
}

var sentence = strings.Fields("hello wrld ths is a tst of the internatonal devlopment progrm Computer")

func newChecker(cacheSize int) *checker.Checker {
	return checker.New(dictionary.New(vocabulary), 5, checker.WithCacheSize(cacheSize))
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterCount := range []int{100, 500, 1000, 2500} {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestSharedDictionaryConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 1000},
		{workers: 4, iterationsPerWorker: 250},
		{workers: 8, iterationsPerWorker: 125},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	c := newChecker(64)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		_ = c.Check(sentence)
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(iterations)

	t.Logf("iterations=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive retained memory per check: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 0 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

// Checkers share one read-only dictionary; each worker gets its own checker
// and must see the same results as a sequential run.
func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.CreateTemp(t.TempDir(), "concurrent_memory-*.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer memFile.Close()

	dict := dictionary.New(vocabulary)
	want := checker.MisspelledWords(sentence, dict, 5)

	var wg sync.WaitGroup
	errs := make(chan string, workers)

	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := checker.New(dict, 5, checker.WithCacheSize(16))
			for iter := 0; iter < iterationsPerWorker; iter++ {
				got := c.Check(sentence)
				if fmt.Sprint(got) != fmt.Sprint(want) {
					errs <- fmt.Sprintf("worker result diverged: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
}
