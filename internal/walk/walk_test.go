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

package walk

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

func TestFiles_FindsOnlyJSON(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.json", `{}`)
	write("b.JSON", `{}`)
	write("sub/c.json", `[]`)
	write("sub/skip.txt", `not json`)
	write(".hidden/d.json", `{}`)

	var mu sync.Mutex
	var seen []string
	results := Files(dir, 2, nil, func(path string) error {
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
		return nil
	})

	if len(results) != len(seen) {
		t.Fatalf("results len %d != seen len %d", len(results), len(seen))
	}
	sort.Strings(seen)
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.JSON"),
		filepath.Join(dir, "sub/c.json"),
	}
	sort.Strings(want)
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestWorkers_AtLeastOne(t *testing.T) {
	if Workers() < 1 {
		t.Fatal("Workers() returned < 1")
	}
}

func TestFiles_CustomSuffixesIncludeCompressed(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(dir, rel)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.json", `{}`)
	write("b.json.zst", "compressed-stand-in")
	write("c.ndjson", `{}`)
	write("skip.txt", `nope`)

	var mu sync.Mutex
	var seen []string
	results := Files(dir, 2, []string{".json", ".ndjson", ".json.zst"}, func(path string) error {
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
		return nil
	})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3: %v", len(results), seen)
	}
}
