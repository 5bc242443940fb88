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

// Minify rewrites buf in place to its shortest equivalent JSON text and
// returns the length of the valid, minified prefix: buf[:n] is the result.
// The core never reallocates or reslices buf; it only ever shrinks the
// region considered valid.
//
// Minify never fails: malformed input is forwarded tolerantly rather than
// rejected, so the returned length is always well-defined.
func Minify(buf []byte, cfg Config) int {
	c := newCursor(buf)
	var nest nesting

	comma := false       // true once a value has just completed
	pendingSep := false  // a collapsed top-level '\n' awaiting a following record
	sawValue := false    // content has been emitted since the last separator

	emitPendingSeparator := func() {
		if pendingSep {
			c.skip(0)
			c.emit('\n')
			pendingSep = false
		}
	}

	for !c.done() {
		b := c.peek()
		switch {
		case b == '"':
			emitPendingSeparator()
			rewriteString(c)
			comma = true
			sawValue = true

		case b == '{':
			emitPendingSeparator()
			c.pass(1)
			nest.pushObject()
			comma = false
			sawValue = true
			consumeObjectLabel(c)

		case b == '}':
			if nest.top() == containerObject {
				c.pass(1)
				nest.pop()
				comma = true
			} else {
				c.skip(1)
			}

		case b == '[':
			emitPendingSeparator()
			c.pass(1)
			nest.pushArray()
			comma = false
			sawValue = true

		case b == ']':
			if nest.top() == containerArray {
				c.pass(1)
				nest.pop()
				comma = true
			} else {
				c.skip(1)
			}

		case b == ',':
			if comma && nest.top() != containerEmpty {
				c.pass(1)
				if nest.top() == containerObject {
					consumeObjectLabel(c)
				}
			} else {
				c.skip(1)
			}

		case b == 't':
			emitPendingSeparator()
			matchLiteral(c, "true")
			comma = true
			sawValue = true

		case b == 'f':
			emitPendingSeparator()
			matchLiteral(c, "false")
			comma = true
			sawValue = true

		case b == 'n':
			emitPendingSeparator()
			matchLiteral(c, "null")
			comma = true
			sawValue = true

		case b == '-' || isDigit(b):
			emitPendingSeparator()
			rewriteNumber(c, cfg)
			comma = true
			sawValue = true

		case b == '\n':
			handleNewline(c, cfg, &nest, &pendingSep, &sawValue)

		default:
			c.skip(1)
		}
	}

	c.skip(0) // commit any trailing pending passthrough
	return c.len()
}

// matchLiteral accepts lit verbatim if it appears at c.read, else drops one
// byte so the driver keeps making forward progress on garbage input.
func matchLiteral(c *cursor, lit string) {
	n := len(lit)
	if c.end-c.read < n {
		c.skip(1)
		return
	}
	for i := 0; i < n; i++ {
		if c.data[c.read+i] != lit[i] {
			c.skip(1)
			return
		}
	}
	c.pass(n)
}

// consumeObjectLabel consumes whitespace, a quoted label, whitespace, and
// the ':' that follows it. Triggered after '{' and after each in-object ','.
func consumeObjectLabel(c *cursor) {
	skipPlainWhitespace(c)
	if c.done() || c.peek() != '"' {
		return // tolerant: a malformed/absent label is left for the main loop
	}
	rewriteString(c)
	skipPlainWhitespace(c)
	if !c.done() && c.peek() == ':' {
		c.pass(1)
	}
}

func skipPlainWhitespace(c *cursor) {
	for !c.done() {
		switch c.peek() {
		case ' ', '\t', '\r', '\n':
			c.skip(1)
		default:
			return
		}
	}
}

// handleNewline implements NDJSON record-separator semantics: a top-level
// '\n' (nesting empty) is a candidate separator; anywhere else it is
// ordinary whitespace. In preserve mode every top-level newline is kept
// verbatim. In collapsing mode, runs of newlines collapse to a single
// pending separator that is only actually emitted once more content
// follows, which is what makes a trailing newline on the final record
// disappear for free.
func handleNewline(c *cursor, cfg Config, nest *nesting, pendingSep *bool, sawValue *bool) {
	if cfg.Newlines == NewlinesOff || nest.top() != containerEmpty {
		c.skip(1)
		return
	}
	if cfg.Newlines == NewlinesNDJSONPreserve {
		c.pass(1)
		return
	}
	// NewlinesNDJSON: collapse.
	if *sawValue {
		*pendingSep = true
		*sawValue = false
	}
	c.skip(1)
}
