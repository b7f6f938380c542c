package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       Tile
	PixelStats [][]PixelStats // Shared pixel stats array to write to
	Seed       int64          // Base seed; combined with the tile index
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileIndex int
	Samples   int // Total samples taken in this tile
}

// tileRenderer renders one tile into the shared pixel stats array and
// returns the number of samples taken
type tileRenderer interface {
	renderTile(tile Tile, pixelStats [][]PixelStats, random *rand.Rand) int
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	renderer    tileRenderer
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool; numWorkers <= 0 uses the CPU count
func NewWorkerPool(renderer tileRenderer, numWorkers, maxTiles int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		renderer:    renderer,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop signals that no more tasks will arrive and waits for workers to drain
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// Each tile gets its own generator seeded from the base seed and the
		// tile index, so fixed-seed renders are reproducible regardless of
		// worker count or scheduling order.
		random := rand.New(rand.NewSource(task.Seed + int64(task.Tile.Index)))

		// Tiles have non-overlapping bounds, so writing into the shared
		// pixel stats array is safe without locking.
		samples := wp.renderer.renderTile(task.Tile, task.PixelStats, random)

		wp.resultQueue <- TileResult{
			TileIndex: task.Tile.Index,
			Samples:   samples,
		}
	}
}
