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

package verify

import "testing"

func TestDocument_AgreesOnCompaction(t *testing.T) {
	original := []byte(`{ "a" : 1, "b" : [2, 3.00] }`)
	minified := []byte(`{"a":1,"b":[2,3]}`)
	if err := Document(original, minified); err != nil {
		t.Fatalf("expected compaction to verify clean, got %v", err)
	}
}

func TestDocument_CatchesDroppedField(t *testing.T) {
	original := []byte(`{"a":1,"b":2}`)
	minified := []byte(`{"a":1}`)
	if err := Document(original, minified); err == nil {
		t.Fatal("expected a mismatch error for a dropped field")
	}
}

func TestDocument_CatchesMalformedOutput(t *testing.T) {
	original := []byte(`{"a":1}`)
	minified := []byte(`{"a":}`)
	if err := Document(original, minified); err == nil {
		t.Fatal("expected a mismatch error for malformed minified JSON")
	}
}
