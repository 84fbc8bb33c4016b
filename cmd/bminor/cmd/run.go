package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// processFunc handles one source file and writes its report to w.
type processFunc func(path string, w io.Writer) error

// run processes the given files once, or keeps watching them when the
// watch flag is set.
func run(paths []string, process processFunc) error {
	if watchFiles {
		return watchAndProcess(paths, process)
	}
	return processAll(paths, process)
}

// processAll handles every file concurrently but prints the buffered
// reports in argument order. The first error wins; remaining reports are
// still printed so a bad file does not hide good ones.
func processAll(paths []string, process processFunc) error {
	outs := make([]bytes.Buffer, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			return process(path, &outs[i])
		})
	}
	err := g.Wait()
	for i := range outs {
		os.Stdout.Write(outs[i].Bytes())
	}
	return err
}

// watchAndProcess processes every file once, then reprocesses a file each
// time it is written. Errors are reported but do not stop the watch; the
// loop runs until the watcher is torn down.
func watchAndProcess(paths []string, process processFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}
	if err := processAll(paths, process); err != nil {
		fmt.Fprintln(os.Stderr, "bminor:", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			var out bytes.Buffer
			if err := process(event.Name, &out); err != nil {
				fmt.Fprintln(os.Stderr, "bminor:", err)
				continue
			}
			os.Stdout.Write(out.Bytes())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "bminor:", err)
		}
	}
}
