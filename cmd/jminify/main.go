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

package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	jminify "github.com/minio/jminify"
	"github.com/minio/jminify/internal/diag"
	"github.com/minio/jminify/internal/fileio"
	"github.com/minio/jminify/internal/verify"
	"github.com/minio/jminify/internal/walk"
)

var version = "dev"

type options struct {
	Precision    int64  `short:"p" long:"precision" description:"Decimal places to round numbers to; negative values round left of the decimal point (omit for no rounding)" value-name:"digits"`
	Newlines     string `short:"n" long:"newlines" description:"Newline handling: off, ndjson, or ndjson-preserve" value-name:"mode" default:"off"`
	Workers      int    `long:"workers" description:"Number of files to process concurrently (default: half the logical cores)" value-name:"n"`
	Verify       bool   `long:"verify" description:"Decode the original and minified forms with two independent JSON libraries and fail the file if they disagree"`
	Zstd         bool   `long:"zstd" description:"Transparently decompress/recompress zstd-framed .zst files and include them in directory traversal"`
	Quiet        bool   `short:"q" long:"quiet" description:"Suppress per-file progress output"`
	Help         bool   `short:"h" long:"help" description:"Show this help"`
	Version      bool   `long:"version" description:"Show this version"`
	PrecisionSet bool
}

func parseArgs(args []string) (*options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] path [path...]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		diag.Fatalf("%v", err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if opt := parser.FindOptionByLongName("precision"); opt != nil && opt.IsSet() {
		opts.PrecisionSet = true
	}
	return &opts, rest
}

func newlineMode(s string) jminify.NewlineMode {
	switch s {
	case "off", "":
		return jminify.NewlinesOff
	case "ndjson":
		return jminify.NewlinesNDJSON
	case "ndjson-preserve":
		return jminify.NewlinesNDJSONPreserve
	default:
		diag.Fatalf("unrecognized --newlines mode %q", s)
		return jminify.NewlinesOff
	}
}

// clampPrecision enforces the spec's out-of-range rule: a -p value beyond a
// plausible digit count is clamped to NoRounding with a warning rather than
// aborting the run, so a typo in one flag doesn't cost every file.
func clampPrecision(opts *options) {
	if !opts.PrecisionSet {
		return
	}
	if opts.Precision > int64(math.MaxInt32) || opts.Precision < -int64(math.MaxInt32) {
		diag.Warnf(opts.Quiet, "--precision %d is out of range, disabling rounding", opts.Precision)
		opts.Precision = jminify.NoRounding
		opts.PrecisionSet = false
	}
}

func buildConfig(opts *options) jminify.Config {
	var configOpts []jminify.ParserOption
	if opts.PrecisionSet {
		configOpts = append(configOpts, jminify.WithPrecision(opts.Precision))
	}
	configOpts = append(configOpts, jminify.WithNewlines(newlineMode(opts.Newlines)))
	return jminify.NewConfig(configOpts...)
}

// isZstdPath reports whether path names a zstd-framed file by its ".zst"
// suffix, matched case-insensitively (e.g. "data.json.zst", "log.ndjson.zst").
func isZstdPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

// suffixesFor returns the set of file-name suffixes the tree walker should
// discover for the given options: plain JSON always, NDJSON additionally
// when newline handling is enabled, and the zstd-compressed variant of each
// when --zstd is set.
func suffixesFor(opts *options) []string {
	suffixes := []string{".json"}
	if opts.Newlines != "off" && opts.Newlines != "" {
		suffixes = append(suffixes, ".ndjson")
	}
	if opts.Zstd {
		withZst := make([]string, 0, len(suffixes)*2)
		for _, s := range suffixes {
			withZst = append(withZst, s, s+".zst")
		}
		suffixes = withZst
	}
	return suffixes
}

func processFile(path string, cfg jminify.Config, log *diag.Logger, doVerify bool, zstdAware bool) error {
	compressed := zstdAware && isZstdPath(path)
	buf, mode, err := fileio.Load(path, compressed)
	if err != nil {
		return err
	}
	before := len(buf)

	var original []byte
	if doVerify {
		original = append([]byte(nil), buf...)
	}

	n := jminify.Minify(buf, cfg)

	if doVerify {
		if err := verify.Document(original, buf[:n]); err != nil {
			return err
		}
	}

	if err := fileio.Store(path, buf, n, mode, compressed); err != nil {
		return err
	}
	log.Processed(path, before, n)
	return nil
}

func main() {
	opts, paths := parseArgs(os.Args[1:])
	if len(paths) == 0 {
		diag.Fatalf("no input paths given")
	}
	clampPrecision(opts)

	cfg := buildConfig(opts)
	log := diag.New(!opts.Quiet)

	workers := opts.Workers
	if workers <= 0 {
		workers = walk.Workers()
	}

	suffixes := suffixesFor(opts)
	exitCode := 0
	for _, root := range paths {
		if info, err := os.Stat(root); err == nil && !info.IsDir() {
			if err := processFile(root, cfg, log, opts.Verify, opts.Zstd); err != nil {
				log.Failed(root, err)
				exitCode = 1
			}
			continue
		}
		results := walk.Files(root, workers, suffixes, func(path string) error {
			return processFile(path, cfg, log, opts.Verify, opts.Zstd)
		})
		for _, r := range results {
			if r.Err != nil {
				log.Failed(r.Path, r.Err)
				exitCode = 1
			}
		}
	}
	log.Summary()
	os.Exit(exitCode)
}
