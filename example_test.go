package hoard_test

import (
	"fmt"

	"github.com/hoard-go/hoard"
)

func ExampleCache() {
	cache, err := hoard.New[string, int](100)
	if err != nil {
		panic(err)
	}

	cache.Set("answer", 42)

	if v, ok := cache.Get("answer"); ok {
		fmt.Println(v)
	}
	// Output: 42
}

func ExampleCache_policies() {
	// LRU evicts least recently used
	lru, _ := hoard.New[string, int](2)
	lru.Set("a", 1)
	lru.Set("b", 2)
	lru.Get("a")    // a is now most recently used
	lru.Set("c", 3) // evicts b
	_, hasB := lru.Get("b")
	fmt.Println("LRU has b:", hasB)

	// FIFO ignores access and evicts the oldest insertion
	fifo, _ := hoard.New[string, int](2,
		hoard.WithPolicy(hoard.NewFIFOPolicy[string, int]()),
	)
	fifo.Set("a", 1)
	fifo.Set("b", 2)
	fifo.Get("a")    // does not refresh a
	fifo.Set("c", 3) // evicts a
	_, hasA := fifo.Get("a")
	fmt.Println("FIFO has a:", hasA)

	// LFU evicts least frequently used
	lfu, _ := hoard.New[string, int](2,
		hoard.WithPolicy(hoard.NewLFUPolicy[string, int]()),
	)
	lfu.Set("a", 1)
	lfu.Set("b", 2)
	lfu.Get("a")
	lfu.Get("a")    // a has higher frequency
	lfu.Set("c", 3) // evicts b
	_, hasB = lfu.Get("b")
	fmt.Println("LFU has b:", hasB)

	// Output:
	// LRU has b: false
	// FIFO has a: false
	// LFU has b: false
}

func ExampleOnEvict() {
	cache, _ := hoard.New[string, int](2,
		hoard.OnEvict(func(key string, value int) {
			fmt.Printf("evicted: %s=%d\n", key, value)
		}),
	)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3) // triggers eviction of a

	// Output: evicted: a=1
}

func ExampleWithLoader() {
	cache, _ := hoard.New[string, string](100,
		hoard.WithLoader(func(key string) (string, error) {
			// simulate loading from database
			return "loaded:" + key, nil
		}),
	)

	// first call loads and caches
	v1, _ := cache.GetOrLoad("user-123")
	fmt.Println(v1)

	// second call returns the cached value
	v2, _ := cache.GetOrLoad("user-123")
	fmt.Println(v2)

	// Output:
	// loaded:user-123
	// loaded:user-123
}

func ExampleCache_Stats() {
	cache, _ := hoard.New[string, int](100)

	cache.Set("a", 1)
	cache.Get("a") // hit
	cache.Get("b") // miss

	stats := cache.Stats()
	fmt.Printf("hits: %d, misses: %d, rate: %.0f%%\n",
		stats.Hits, stats.Misses, stats.HitRate()*100)

	// Output: hits: 1, misses: 1, rate: 50%
}
