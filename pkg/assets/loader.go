// Package assets reads asset files off the host loop's goroutine and hands
// the results back to it.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/cbodonnell/tickwheel/pkg/queue"
)

// Callback receives the bytes of a finished load, or the error that ended it.
type Callback func(data []byte, err error)

// Completion is a finished load waiting to be dispatched.
type Completion struct {
	Path     string
	Data     []byte
	Err      error
	callback Callback
}

type Loader struct {
	dir       string
	completed queue.Queue[Completion]
	pending   atomic.Int64
	wg        sync.WaitGroup
}

// NewLoaderOptions contains options for creating a new Loader.
type NewLoaderOptions struct {
	// Dir is prepended to relative asset paths.
	Dir string
	// Queue receives completions from the reader goroutines. Defaults to an
	// in-memory queue.
	Queue queue.Queue[Completion]
}

func NewLoader(opts NewLoaderOptions) *Loader {
	completed := opts.Queue
	if completed == nil {
		completed = queue.NewInMemoryQueue[Completion]()
	}
	return &Loader{
		dir:       opts.Dir,
		completed: completed,
	}
}

// Load starts reading path in the background. cb runs on the goroutine that
// calls Dispatch, never on the reader goroutine.
func (l *Loader) Load(path string, cb Callback) {
	l.pending.Add(1)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		data, err := l.read(path)
		if err != nil {
			log.Warn("Failed to load %s: %v", path, err)
		} else {
			log.Debug("Loaded %s (%d bytes)", path, len(data))
		}
		l.completed.Enqueue(Completion{Path: path, Data: data, Err: err, callback: cb})
	}()
}

func (l *Loader) read(path string) ([]byte, error) {
	full := path
	if l.dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.dir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset: %v", err)
	}
	if strings.HasSuffix(full, CompressedExt) {
		data, err = Decompress(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Dispatch runs the callbacks of every load finished so far, in completion
// order, and returns how many ran.
func (l *Loader) Dispatch() int {
	completions := l.completed.ReadAllMessages()
	for _, c := range completions {
		l.pending.Add(-1)
		if c.callback != nil {
			c.callback(c.Data, c.Err)
		}
	}
	return len(completions)
}

// Pending returns the number of loads whose callbacks have not run yet.
func (l *Loader) Pending() int {
	return int(l.pending.Load())
}

// Wait blocks until every started read has finished. Callbacks still need
// a Dispatch.
func (l *Loader) Wait() {
	l.wg.Wait()
}
