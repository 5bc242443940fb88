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

// Package verify checks that minification preserved a document's decoded
// value. It decodes both the original and minified bytes with two
// independently implemented JSON libraries and requires all four decodes to
// agree, so a bug unique to either library's own parser cannot mask a real
// semantic change introduced by the minifier.
package verify

import (
	"fmt"
	"reflect"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

var compatJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Mismatch describes a semantic difference between the original and
// minified forms of a document, or a decode failure on either side.
type Mismatch struct {
	Decoder string // "sonic", "jsoniter", or "sonic-vs-jsoniter"
	Reason  string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("verify: %s: %s", m.Decoder, m.Reason)
}

// decodeBoth decodes a single buffer with both decoders and returns them, or
// a Mismatch if either decoder fails.
func decodeBoth(buf []byte) (sonicVal, iterVal interface{}, err error) {
	if e := sonic.Unmarshal(buf, &sonicVal); e != nil {
		return nil, nil, Mismatch{Decoder: "sonic", Reason: e.Error()}
	}
	if e := compatJSON.Unmarshal(buf, &iterVal); e != nil {
		return nil, nil, Mismatch{Decoder: "jsoniter", Reason: e.Error()}
	}
	return sonicVal, iterVal, nil
}

// Document reports whether minified is a semantically faithful compaction
// of original: both buffers must decode identically under both sonic and
// jsoniter, and all four resulting values must be equal to each other.
func Document(original, minified []byte) error {
	origSonic, origIter, err := decodeBoth(original)
	if err != nil {
		return fmt.Errorf("verify: decoding original: %w", err)
	}
	newSonic, newIter, err := decodeBoth(minified)
	if err != nil {
		return fmt.Errorf("verify: decoding minified: %w", err)
	}
	if !reflect.DeepEqual(origSonic, origIter) {
		return Mismatch{Decoder: "sonic-vs-jsoniter", Reason: "original document decodes differently depending on library"}
	}
	if !reflect.DeepEqual(newSonic, newIter) {
		return Mismatch{Decoder: "sonic-vs-jsoniter", Reason: "minified document decodes differently depending on library"}
	}
	if !reflect.DeepEqual(origSonic, newSonic) {
		return Mismatch{Decoder: "sonic", Reason: "minified value differs from original value"}
	}
	return nil
}
