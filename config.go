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

package jminify

import "math"

// NewlineMode selects how the value driver treats top-level '\n' bytes.
type NewlineMode int

const (
	// NewlinesOff treats '\n' as ordinary insignificant whitespace.
	NewlinesOff NewlineMode = iota
	// NewlinesNDJSON treats the input as newline-delimited JSON: runs of
	// blank lines collapse to a single record separator, and a trailing
	// separator after the last record is trimmed.
	NewlinesNDJSON
	// NewlinesNDJSONPreserve behaves like NewlinesNDJSON but emits every
	// source '\n' verbatim, including blank lines.
	NewlinesNDJSONPreserve
)

// NoRounding is the Precision sentinel meaning "do not round numbers".
const NoRounding int64 = math.MaxInt64

// Config bundles the options the core consults. The caller owns and passes
// a Config explicitly; the core never reaches for process-wide state.
type Config struct {
	// Precision is the decimal place to round to: N keeps N fractional
	// digits, a negative N rounds to a power of ten above the decimal
	// point. NoRounding disables rounding entirely.
	Precision int64
	// Newlines selects plain, NDJSON, or blank-line-preserving NDJSON
	// handling of top-level '\n' bytes.
	Newlines NewlineMode
}

// ParserOption configures a Config via functional options.
type ParserOption func(*Config)

// WithPrecision sets the rounding precision. See Config.Precision.
func WithPrecision(p int64) ParserOption {
	return func(c *Config) { c.Precision = p }
}

// WithNewlines sets the newline handling mode. See Config.Newlines.
func WithNewlines(m NewlineMode) ParserOption {
	return func(c *Config) { c.Newlines = m }
}

// NewConfig builds a Config with no rounding and newlines off, then applies
// opts in order.
func NewConfig(opts ...ParserOption) Config {
	c := Config{Precision: NoRounding, Newlines: NewlinesOff}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
