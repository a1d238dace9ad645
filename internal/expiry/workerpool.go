package expiry

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=expiry

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs cancellation tasks on a fixed set of goroutines.
type WorkerPool struct {
	pool      chan Task
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	size = max(size, 1)
	wp := &WorkerPool{pool: make(chan Task, size)}

	wp.workers.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker(i)
	}
	return wp
}

func (wp *WorkerPool) worker(id int) {
	defer wp.workers.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Int("worker", id), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close blocks until the queued tasks are drained and the workers exit.
// AddTask must not be called after Close.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.pool)
	})
	wp.workers.Wait()
}
