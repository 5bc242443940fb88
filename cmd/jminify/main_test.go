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
	"math"
	"testing"

	jminify "github.com/minio/jminify"
)

func TestNewlineMode(t *testing.T) {
	tests := map[string]jminify.NewlineMode{
		"off":             jminify.NewlinesOff,
		"":                jminify.NewlinesOff,
		"ndjson":          jminify.NewlinesNDJSON,
		"ndjson-preserve": jminify.NewlinesNDJSONPreserve,
	}
	for in, want := range tests {
		if got := newlineMode(in); got != want {
			t.Errorf("newlineMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuildConfig_DefaultHasNoRounding(t *testing.T) {
	cfg := buildConfig(&options{Newlines: "off"})
	if cfg.Precision != jminify.NoRounding {
		t.Errorf("default Precision = %d, want NoRounding", cfg.Precision)
	}
}

func TestBuildConfig_ExplicitPrecision(t *testing.T) {
	cfg := buildConfig(&options{Newlines: "off", Precision: 2, PrecisionSet: true})
	if cfg.Precision != 2 {
		t.Errorf("Precision = %d, want 2", cfg.Precision)
	}
}

func TestParseArgs_PrecisionSet(t *testing.T) {
	tests := map[string][]string{
		"short-attached": {"-p2", "a.json"},
		"short-separate": {"-p", "2", "a.json"},
		"long-separate":  {"--precision", "2", "a.json"},
		"long-equals":    {"--precision=2", "a.json"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			opts, rest := parseArgs(args)
			if !opts.PrecisionSet {
				t.Errorf("parseArgs(%v).PrecisionSet = false, want true", args)
			}
			if opts.Precision != 2 {
				t.Errorf("parseArgs(%v).Precision = %d, want 2", args, opts.Precision)
			}
			if len(rest) != 1 || rest[0] != "a.json" {
				t.Errorf("parseArgs(%v) rest = %v, want [a.json]", args, rest)
			}
		})
	}
}

func TestParseArgs_PrecisionNotSet(t *testing.T) {
	opts, _ := parseArgs([]string{"a.json"})
	if opts.PrecisionSet {
		t.Error("parseArgs without --precision set PrecisionSet = true, want false")
	}
}

func TestClampPrecision_InRangeUntouched(t *testing.T) {
	opts := &options{Precision: 2, PrecisionSet: true}
	clampPrecision(opts)
	if !opts.PrecisionSet || opts.Precision != 2 {
		t.Errorf("clampPrecision altered in-range value: %+v", opts)
	}
}

func TestClampPrecision_OutOfRangeClampsAndContinues(t *testing.T) {
	tests := []int64{math.MaxInt64, int64(math.MaxInt32) + 1, -int64(math.MaxInt32) - 1, math.MinInt64}
	for _, p := range tests {
		opts := &options{Precision: p, PrecisionSet: true, Quiet: true}
		clampPrecision(opts)
		if opts.PrecisionSet {
			t.Errorf("clampPrecision(%d): PrecisionSet = true, want false", p)
		}
		if opts.Precision != jminify.NoRounding {
			t.Errorf("clampPrecision(%d): Precision = %d, want NoRounding", p, opts.Precision)
		}
	}
}

func TestClampPrecision_NotSetUntouched(t *testing.T) {
	opts := &options{Precision: math.MaxInt64}
	clampPrecision(opts)
	if opts.PrecisionSet {
		t.Error("clampPrecision set PrecisionSet on an unset flag")
	}
	if opts.Precision != math.MaxInt64 {
		t.Error("clampPrecision modified Precision on an unset flag")
	}
}

func TestIsZstdPath(t *testing.T) {
	tests := map[string]bool{
		"data.json":       false,
		"data.json.zst":   true,
		"data.JSON.ZST":   true,
		"data.ndjson":     false,
		"data.ndjson.zst": true,
	}
	for path, want := range tests {
		if got := isZstdPath(path); got != want {
			t.Errorf("isZstdPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSuffixesFor(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want []string
	}{
		{"plain", options{Newlines: "off"}, []string{".json"}},
		{"ndjson", options{Newlines: "ndjson"}, []string{".json", ".ndjson"}},
		{"zstd-plain", options{Newlines: "off", Zstd: true}, []string{".json", ".json.zst"}},
		{"zstd-ndjson", options{Newlines: "ndjson", Zstd: true}, []string{".json", ".json.zst", ".ndjson", ".ndjson.zst"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suffixesFor(&tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("suffixesFor() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("suffixesFor()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
