package scheduler

import (
	"container/heap"
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/sharedmap/algoconfig"
	"github.com/katalvlaran/sharedmap/item"
	"github.com/katalvlaran/sharedmap/partition"
	"github.com/katalvlaran/sharedmap/stats"
)

// itemHeap is a max-heap over pending Items ordered by subgraph size
// descending (spec §4.4: "the scheduler consumes the largest pending
// subgraph first"), implementing container/heap.Interface.
type itemHeap []*item.Item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return !item.Less(h[i], h[j]) }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item.Item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// Queue implements the QUEUE strategy (spec §4.6, original:
// partitioning/queue.h/.cpp): a shared priority queue guarded by a
// mutex, an atomic available_threads/queue_size pair for the
// termination check (spec §5: "available_threads plus threads
// currently executing ... equals N"), and a semaphore.Weighted(N) that
// actually gates how many threads are checked out at any instant. A
// busy-wait driver loop pops the largest pending Item whenever threads
// and work are both available, hands it a share of the remaining
// threads (ceil(available/queue_size)), and spawns a worker goroutine
// to process it and push its children back onto the queue. The driver
// terminates once every thread has returned to the pool and the queue
// is empty.
func Queue(ctx context.Context, root *item.Item, cfg *algoconfig.Config, adapter *partition.Adapter, sink stats.Sink) ([]uint64, error) {
	pGlobal := make([]uint64, root.Graph.N())
	rootWeight := root.Graph.TotalWeight()
	n := int64(cfg.Threads)

	var mu sync.Mutex
	pq := &itemHeap{root}
	heap.Init(pq)

	var availableThreads atomic.Int64
	availableThreads.Store(n)
	var queueSize atomic.Int64
	queueSize.Store(1)
	sem := semaphore.NewWeighted(n)

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	reportErr := func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}

	for {
		avail := availableThreads.Load()
		qsize := queueSize.Load()
		if avail == n && qsize == 0 {
			break
		}
		if avail <= 0 || qsize <= 0 {
			runtime.Gosched()
			continue
		}

		mu.Lock()
		if pq.Len() == 0 {
			mu.Unlock()
			runtime.Gosched()
			continue
		}
		it := heap.Pop(pq).(*item.Item)
		mu.Unlock()

		nAssigned := ceilDiv(avail, qsize)
		if nAssigned < 1 {
			nAssigned = 1
		}
		if nAssigned > avail {
			nAssigned = avail
		}
		if !sem.TryAcquire(nAssigned) {
			// Only the driver decrements availableThreads, and workers
			// release the semaphore before adding their threads back, so
			// this should never happen; treat it as "not actually
			// available yet" rather than over-committing the pool.
			mu.Lock()
			heap.Push(pq, it)
			mu.Unlock()
			runtime.Gosched()
			continue
		}
		availableThreads.Add(-nAssigned)
		queueSize.Add(-1)

		wg.Add(1)
		go func(it *item.Item, nAssigned int64) {
			defer wg.Done()

			children, err := processItem(ctx, it, cfg, adapter, sink, int(nAssigned), pGlobal, rootWeight)
			it.Release()
			sem.Release(nAssigned)
			if err != nil {
				reportErr(err)
				availableThreads.Add(nAssigned)

				return
			}

			if len(children) > 0 {
				mu.Lock()
				for _, c := range children {
					heap.Push(pq, c)
				}
				mu.Unlock()
				queueSize.Add(int64(len(children)))
			}

			availableThreads.Add(nAssigned)
		}(it, nAssigned)
	}

	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	return pGlobal, nil
}
