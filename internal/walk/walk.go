/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package walk discovers JSON files under a root path and fans work for each
// one out across a bounded worker pool.
package walk

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Result carries the outcome of processing a single discovered file.
type Result struct {
	Path string
	Err  error
}

// Workers returns a worker-pool size derived from the logical core count:
// half the logical cores, rounded up, and never less than 1.
func Workers() int {
	n := (cpuid.CPU.LogicalCores + 1) / 2
	if n < 1 {
		return 1
	}
	return n
}

// DefaultSuffixes is the suffix set Files uses when called with a nil or
// empty suffixes slice: plain ".json" files only.
var DefaultSuffixes = []string{".json"}

// Files runs fn for every regular file under root whose name ends, case-
// insensitively, in one of suffixes (DefaultSuffixes when nil/empty),
// skipping dotfiles/dot-directories. It fans work out across a bounded pool
// sized by workers (use Workers() for the default) and returns once every
// discovered file has been processed, in no particular order.
func Files(root string, workers int, suffixes []string, fn func(path string) error) []Result {
	if workers < 1 {
		workers = 1
	}
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}

	paths := make(chan string, workers*2)
	results := make(chan Result, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for p := range paths {
				results <- Result{Path: p, Err: fn(p)}
			}
		}()
	}

	go func() {
		defer close(paths)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				results <- Result{Path: path, Err: err}
				return nil
			}
			name := d.Name()
			if d.IsDir() {
				if name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			if !hasAnySuffixFold(name, suffixes) {
				return nil
			}
			paths <- path
			return nil
		})
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []Result
	for r := range results {
		out = append(out, r)
	}
	return out
}

// hasAnySuffixFold reports whether name ends, case-insensitively, with any
// of suffixes.
func hasAnySuffixFold(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
