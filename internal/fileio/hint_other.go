// +build !amd64 appengine !gc noasm

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

// readBufferHint sizes the initial read allocation without consulting CPU
// feature bits, since no assembly-tuned path exists on this platform.
func readBufferHint(size int64) int64 {
	if size <= 0 {
		return 16 << 10
	}
	return size
}
