package renderer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// TileTask asks a worker to resolve one tile of the current frame
type TileTask struct {
	Ctx    context.Context
	Tile   *Tile
	TaskID int // index into the frame's tile list
	Frame  FrameParams
}

// TileResult reports a finished (or abandoned) tile back to the frame loop
type TileResult struct {
	TaskID int
	Stats  TileStats
	Error  error
}

// WorkerPool resolves tiles in parallel. Every submitted task produces
// exactly one result, so a frame can always drain what it submitted.
type WorkerPool struct {
	renderer   *TileRenderer
	tasks      chan TileTask
	results    chan TileResult
	numWorkers int
	tilesDone  []atomic.Int64 // per worker

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewWorkerPool sizes the pool's queues for numWorkers workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(tileRenderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   tileRenderer,
		tasks:      make(chan TileTask, numWorkers*2),
		results:    make(chan TileResult, numWorkers*2),
		numWorkers: numWorkers,
		tilesDone:  make([]atomic.Int64, numWorkers),
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	wp.wg.Add(wp.numWorkers)
	for id := 0; id < wp.numWorkers; id++ {
		go wp.work(id)
	}
}

// Stop closes the task queue and waits for in-flight tiles. Safe to call twice.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.tasks)
		wp.wg.Wait()
		close(wp.results)
	})
}

// SubmitTask queues a tile. It blocks while the queue is full.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.tasks <- task
}

// GetResult blocks for the next finished tile. ok is false once the pool is stopped.
func (wp *WorkerPool) GetResult() (result TileResult, ok bool) {
	result, ok = <-wp.results
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// TilesRendered returns how many tiles each worker has resolved since Start
func (wp *WorkerPool) TilesRendered() []int64 {
	counts := make([]int64, wp.numWorkers)
	for i := range wp.tilesDone {
		counts[i] = wp.tilesDone[i].Load()
	}
	return counts
}

// work answers a cancelled task without rendering it
func (wp *WorkerPool) work(id int) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		if err := task.Ctx.Err(); err != nil {
			wp.results <- TileResult{TaskID: task.TaskID, Error: err}
			continue
		}
		stats := wp.renderer.RenderTile(task.Tile, task.Frame)
		wp.tilesDone[id].Add(1)
		wp.results <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
