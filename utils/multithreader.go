// Package utils provides helpers shared by the other packages.
package utils

import (
	"runtime"
	"sync"
)

// MultiThread runs f for every integer in [start, end), spread over a number of goroutines, and
// returns once every call has finished. It should be called sequentially, not in a separate
// goroutine.
//
// Each goroutine takes opsPerThread consecutive values at a time; threadsPerCPU is the number of
// goroutines created for each CPU. f must be safe to call concurrently for distinct values.
// MultiThread does nothing if end <= start.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}
	if opsPerThread < 1 {
		opsPerThread = 1
	}
	if threadsPerCPU < 1 {
		threadsPerCPU = 1
	}

	numThreads := runtime.NumCPU() * threadsPerCPU
	if max := (end - start + opsPerThread - 1) / opsPerThread; numThreads > max {
		numThreads = max
	}

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					return
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
