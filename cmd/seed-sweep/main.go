package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"tilegen/internal/worldgen"

	"github.com/zyedidia/generic/heap"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type seedResult struct {
	seed        int64
	land        int
	paths       int
	transitions int
	objects     int
	connected   bool
}

func (r seedResult) String() string {
	return fmt.Sprintf("seed=%d land=%d paths=%d transitions=%d objects=%d connected=%v",
		r.seed, r.land, r.paths, r.transitions, r.objects, r.connected)
}

func main() {
	first := flag.Int64("from", 1, "first seed")
	count := flag.Int("count", 500, "number of consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of largest maps to list")
	var overrides kvList
	flag.Var(&overrides, "set", "generator setting in key=value form (repeatable)")
	flag.Parse()

	settings := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		settings[parts[0]] = parts[1]
	}
	base := worldgen.FromMap(settings)
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %dx%d chunks of %d)\n",
		*count, *first, *workers, base.MapSizeInChunks, base.MapSizeInChunks, base.ChunkSize)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSeed(base, seed)
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	largest := heap.New[seedResult](func(a, b seedResult) bool { return a.land < b.land })
	histogram := map[int]int{}
	disconnected := 0
	total := 0
	for res := range results {
		total++
		histogram[res.land]++
		if !res.connected {
			disconnected++
			fmt.Printf("Disconnected landmass: %s\n", res)
		}
		largest.Push(res)
		if largest.Size() > *top {
			largest.Pop()
		}
	}
	elapsed := time.Since(start)

	sizes := make([]int, 0, len(histogram))
	for land := range histogram {
		sizes = append(sizes, land)
	}
	sort.Ints(sizes)
	fmt.Printf("\nLand chunk distribution over %d seeds (elapsed %s):\n", total, elapsed.Round(time.Millisecond))
	for _, land := range sizes {
		fmt.Printf("  %4d %5d %s\n", land, histogram[land], strings.Repeat("*", scaleBar(histogram[land], total)))
	}

	best := make([]seedResult, 0, largest.Size())
	for largest.Size() > 0 {
		res, _ := largest.Pop()
		best = append(best, res)
	}
	fmt.Printf("\nTop %d maps by land:\n", len(best))
	for i := len(best) - 1; i >= 0; i-- {
		fmt.Printf("%2d) %s\n", len(best)-i, best[i])
	}
	if disconnected > 0 {
		log.Fatalf("%d seeds produced a disconnected landmass", disconnected)
	}
}

func runSeed(base worldgen.Config, seed int64) (seedResult, error) {
	cfg := base.Clone()
	cfg.Seed = seed
	world, err := worldgen.Generate(cfg)
	if err != nil {
		return seedResult{}, err
	}
	st := world.Stats()
	return seedResult{
		seed:        seed,
		land:        st.LandChunks,
		paths:       st.PathCells,
		transitions: st.TransitionCells,
		objects:     len(world.Decorations),
		connected:   st.Connected,
	}, nil
}

func scaleBar(n, total int) int {
	if total == 0 {
		return 0
	}
	return (n*60 + total - 1) / total
}
