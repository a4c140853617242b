package renderer

import (
	"runtime"
	"sync"

	"github.com/raymini/go-sphere-tracer/pkg/tracer"
)

// RowTask represents one scanline rendering task for the worker pool
type RowTask struct {
	Row   int
	Frame *Frame // Shared frame to write to
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Rays int // Primary rays cast for this row
}

// WorkerPool manages parallel scanline rendering. Rows never overlap,
// so workers write to the shared frame without locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders scanlines taken from the pool's task queue
type Worker struct {
	ID          int
	camera      *Camera
	tracer      *tracer.Tracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of
// workers; numWorkers <= 0 means one per CPU. Queues are buffered for
// a full frame of rows so submission never blocks collection.
func NewWorkerPool(camera *Camera, trc *tracer.Tracer, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			camera:      camera,
			tracer:      trc,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}

	return wp
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() RowResult {
	return <-wp.resultQueue
}

// Stop shuts down all workers after the queued tasks drain
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		for x := 0; x < task.Frame.Width; x++ {
			ray := w.camera.GetRay(x, task.Row)
			task.Frame.set(x, task.Row, w.tracer.Trace(ray.Origin, ray.Direction))
		}

		w.resultQueue <- RowResult{Rays: task.Frame.Width}
	}
}
