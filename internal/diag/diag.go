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

// Package diag prints CLI progress and summary output. It wraps the
// standard logger rather than introducing a structured logging dependency,
// since the command line driver has no structured log consumer.
package diag

import (
	"log"
	"os"
)

// Logger reports per-file progress and a final run summary. The zero value
// is ready to use in quiet mode (Verbose false suppresses per-file lines).
type Logger struct {
	Verbose bool

	files    int
	shrunk   int64
	original int64
	failed   int
}

// New returns a Logger writing to stderr, matching the driver's convention
// of keeping stdout free for any piped output.
func New(verbose bool) *Logger {
	return &Logger{Verbose: verbose}
}

var std = log.New(os.Stderr, "", 0)

// Processed records a successfully minified file.
func (l *Logger) Processed(path string, before, after int) {
	l.files++
	l.original += int64(before)
	l.shrunk += int64(after)
	if l.Verbose {
		pct := 0.0
		if before > 0 {
			pct = 100 * (1 - float64(after)/float64(before))
		}
		std.Printf("%s: %d -> %d bytes (%.1f%% smaller)", path, before, after, pct)
	}
}

// Failed records a file that could not be processed.
func (l *Logger) Failed(path string, err error) {
	l.failed++
	std.Printf("%s: %v", path, err)
}

// Summary prints the totals for the run.
func (l *Logger) Summary() {
	saved := l.original - l.shrunk
	pct := 0.0
	if l.original > 0 {
		pct = 100 * float64(saved) / float64(l.original)
	}
	std.Printf("minified %d file(s), %d failed, saved %d bytes (%.1f%%)", l.files, l.failed, saved, pct)
}

// Fatalf logs a message and exits with status 1, the driver's convention
// for configuration errors that prevent any work from starting.
func Fatalf(format string, args ...interface{}) {
	std.Fatalf(format, args...)
}

// Warnf logs a non-fatal warning, the driver's convention for a setting that
// gets silently corrected rather than rejected. It is suppressed in quiet
// mode like per-file progress output.
func Warnf(quiet bool, format string, args ...interface{}) {
	if quiet {
		return
	}
	std.Printf("warning: "+format, args...)
}
