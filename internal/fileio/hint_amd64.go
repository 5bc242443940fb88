//+build !appengine
//+build !noasm
//+build gc

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

package fileio

import "github.com/klauspost/cpuid/v2"

// readBufferHint sizes the initial read allocation. On CPUs with wide AVX2
// register files we assume a larger L2 working set and size more
// aggressively to avoid realloc-copy cycles on large documents.
func readBufferHint(size int64) int64 {
	if size <= 0 {
		if cpuid.CPU.Supports(cpuid.AVX2) {
			return 64 << 10
		}
		return 16 << 10
	}
	return size
}
