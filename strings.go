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

// rewriteString consumes a quoted string starting at c.read ('"') and
// normalises its escapes. Unescaped bytes, including UTF-8 continuation
// bytes, pass straight through. A malformed \u escape is skipped past (the
// backslash, the 'u', and up to four following bytes) rather than
// re-examined.
func rewriteString(c *cursor) {
	c.pass(1) // opening quote
	for {
		if c.done() {
			return // unterminated string: tolerant, keep what we have
		}
		b := c.peek()
		switch {
		case b == '"':
			c.pass(1)
			return
		case b == '\\':
			next, ok := c.peekAt(1)
			if !ok {
				return // trailing backslash at EOF: unterminated, tolerant
			}
			switch next {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				c.pass(2)
			case 'u':
				rewriteUnicodeEscape(c)
			default:
				// Strip the backslash; the byte after it is re-examined by
				// this same loop as an ordinary string byte.
				c.skip(1)
			}
		default:
			c.pass(1)
		}
	}
}

// rewriteUnicodeEscape handles one \uXXXX sequence with c.read at the
// backslash. It decodes the codepoint (combining a following low surrogate
// if present) and rewrites it per the canonicalisation table, or skips past
// a malformed escape.
func rewriteUnicodeEscape(c *cursor) {
	cp, ok := readHex4(c, 2)
	if !ok {
		skipMalformedEscape(c)
		return
	}

	if cp >= 0xD800 && cp <= 0xDBFF {
		if b6, ok6 := c.peekAt(6); ok6 && b6 == '\\' {
			if b7, ok7 := c.peekAt(7); ok7 && b7 == 'u' {
				if low, lowOK := readHex4(c, 8); lowOK && low >= 0xDC00 && low <= 0xDFFF {
					astral := 0x10000 + (cp-0xD800)*0x400 + (low - 0xDC00)
					c.skip(12)
					emitUTF8(c, astral)
					return
				}
			}
		}
		// Lone high surrogate: no valid low surrogate follows. Keep the
		// original escape unchanged.
		c.pass(6)
		return
	}

	switch cp {
	case 0x08:
		c.skip(6)
		c.emit('\\')
		c.emit('b')
	case 0x0C:
		c.skip(6)
		c.emit('\\')
		c.emit('f')
	case 0x0A:
		c.skip(6)
		c.emit('\\')
		c.emit('n')
	case 0x0D:
		c.skip(6)
		c.emit('\\')
		c.emit('r')
	case 0x09:
		c.skip(6)
		c.emit('\\')
		c.emit('t')
	default:
		switch {
		case cp < 0x20:
			c.pass(6) // keep the original \uXXXX form
		case cp < 0x80:
			c.skip(6)
			switch cp {
			case '"':
				c.emit('\\')
				c.emit('"')
			case '\\':
				c.emit('\\')
				c.emit('\\')
			default:
				c.emit(byte(cp))
			}
		default:
			c.skip(6)
			emitUTF8(c, cp)
		}
	}
}

// readHex4 decodes the four hex digits at offset off from c.read, returning
// false if fewer than four remain or any byte is not a hex digit.
func readHex4(c *cursor, off int) (int, bool) {
	v := 0
	for i := 0; i < 4; i++ {
		b, ok := c.peekAt(off + i)
		if !ok || !isHexDigit(b) {
			return 0, false
		}
		v = v<<4 | hexVal(b)
	}
	return v, true
}

// skipMalformedEscape drops "\u" plus however many of the following four
// bytes are actually present in the buffer, then lets the outer loop resume
// scanning from there.
func skipMalformedEscape(c *cursor) {
	avail := c.end - (c.read + 2)
	if avail < 0 {
		avail = 0
	}
	if avail > 4 {
		avail = 4
	}
	c.skip(2 + avail)
}

// emitUTF8 writes the minimal UTF-8 encoding of codepoint cp. The caller
// must have already committed pending passthrough (via skip) so write sits
// at a position safe to emit into.
func emitUTF8(c *cursor, cp int) {
	switch {
	case cp < 0x80:
		c.emit(byte(cp))
	case cp < 0x800:
		c.emit(byte(0xC0 | (cp >> 6)))
		c.emit(byte(0x80 | (cp & 0x3F)))
	case cp < 0x10000:
		c.emit(byte(0xE0 | (cp >> 12)))
		c.emit(byte(0x80 | ((cp >> 6) & 0x3F)))
		c.emit(byte(0x80 | (cp & 0x3F)))
	default:
		c.emit(byte(0xF0 | (cp >> 18)))
		c.emit(byte(0x80 | ((cp >> 12) & 0x3F)))
		c.emit(byte(0x80 | ((cp >> 6) & 0x3F)))
		c.emit(byte(0x80 | (cp & 0x3F)))
	}
}
