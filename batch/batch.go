// Package batch stages many source files concurrently, one buffer per worker.
package batch

import (
	"bytes"
	"context"
	"errors"
	"scanbuf/config"
	"scanbuf/loader"
	"scanbuf/printer"
	"scanbuf/util/log"
	"scanbuf/util/pool"
	"sync"
)

type Result struct {
	Path      string
	Loaded    int
	Limit     int
	Capacity  int
	Relocated bool
	// Contents holds the printed buffer when printing is enabled
	Contents []byte
	Err      error
}

type Runner struct {
	props   *config.BufferProperties
	buffers *pool.Pool
	workers *pool.WorkerPool
}

func NewRunner(props *config.BufferProperties) (*Runner, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		props:   props,
		buffers: pool.New(props.PoolSize, props.NewBuffer),
		workers: pool.NewWorkerPool(props.Workers),
	}, nil
}

// Run stages every path and returns the results in input order.
func (r *Runner) Run(ctx context.Context, paths []string) []Result {
	// workers outlive a cancelled ctx so every submitted task still reports
	workerCtx, stop := context.WithCancel(context.Background())
	defer stop()
	r.workers.Start(workerCtx)

	results := make([]Result, len(paths))
	wg := sync.WaitGroup{}
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		r.workers.SubmitHashBalance(func() {
			defer wg.Done()
			results[i] = r.stage(ctx, path)
		}, i)
	}
	wg.Wait()
	return results
}

// Close releases the pooled buffers.
func (r *Runner) Close() {
	r.buffers.Close()
}

func (r *Runner) stage(ctx context.Context, path string) Result {
	result := Result{Path: path}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}
	buf, err := r.buffers.Get()
	if err != nil {
		result.Err = err
		return result
	}
	compacted := false
	defer func() {
		// compaction is terminal, the pool replaces a released buffer with a fresh one
		if compacted {
			_ = buf.Free()
		}
		r.buffers.Put(buf)
	}()

	result.Loaded, result.Err = loader.LoadFile(path, buf)
	if result.Err != nil {
		log.Errorf("load %s: %v", path, result.Err)
		return result
	}
	if r.props.Compact {
		if err := buf.Compact(byte(r.props.Sentinel)); err != nil {
			result.Err = err
			return result
		}
		compacted = true
	}
	result.Limit, _ = buf.Limit()
	result.Capacity, _ = buf.Capacity()
	result.Relocated, _ = buf.Relocated()
	if r.props.Print {
		out := &bytes.Buffer{}
		if _, err := printer.Print(out, buf); err != nil && !errors.Is(err, printer.ErrEmptyBuffer) {
			result.Err = err
			return result
		}
		result.Contents = out.Bytes()
	}
	log.Debug("staged %s: %d bytes, capacity %d", path, result.Limit, result.Capacity)
	return result
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
