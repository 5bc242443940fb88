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

import "strconv"

// rewriteNumber replaces the numeric token at c.read with the shortest
// textual form representing the same value after rounding to cfg.Precision
// decimal places. c.read must point at '-' or a digit.
//
// The rewrite happens in five phases: tokenise the original digits without
// touching the cursor, locate the non-zero span and its max/min decimal-place
// exponents, round
// if configured, pick plain/fixed/exponential shape, then issue exactly one
// skip (dropping the whole original token) followed by the emits that
// produce the replacement.
func rewriteNumber(c *cursor, cfg Config) {
	start := c.read
	data := c.data
	end := c.end

	p := start
	negative := false
	if data[p] == '-' {
		negative = true
		p++
	}

	intStart := p
	for p < end && isDigit(data[p]) {
		p++
	}
	intEnd := p

	hasDot := false
	fracStart, fracEnd := 0, 0
	if p < end && data[p] == '.' {
		dot := p
		p++
		fracStart = p
		for p < end && isDigit(data[p]) {
			p++
		}
		fracEnd = p
		if fracEnd > fracStart {
			hasDot = true
		} else {
			// "1." with nothing after: the dot isn't part of a valid
			// fraction span: back off so it's left for the driver to
			// dispatch as ordinary noise.
			p = dot
		}
	}

	var exponentValue int64
	if p < end && (data[p] == 'e' || data[p] == 'E') {
		p2 := p + 1
		eneg := false
		if p2 < end && (data[p2] == '+' || data[p2] == '-') {
			eneg = data[p2] == '-'
			p2++
		}
		digStart := p2
		for p2 < end && isDigit(data[p2]) {
			p2++
		}
		if p2 > digStart {
			exponentValue = parseDigitsInt64(data[digStart:p2])
			if eneg {
				exponentValue = -exponentValue
			}
			p = p2
		}
	}
	tokenEnd := p

	intLen := intEnd - intStart
	fracLen := 0
	if hasDot {
		fracLen = fracEnd - fracStart
	}

	nzStartOff, nzEndOff := -1, -1
	var maxExp, minExp int64
	for k := 0; k < intLen; k++ {
		if data[intStart+k] != '0' {
			place := int64(intLen-1-k) + exponentValue
			if nzStartOff == -1 {
				nzStartOff = intStart + k
				maxExp = place
			}
			nzEndOff = intStart + k
			minExp = place
		}
	}
	for k := 0; k < fracLen; k++ {
		if data[fracStart+k] != '0' {
			place := -int64(k+1) + exponentValue
			if nzStartOff == -1 {
				nzStartOff = fracStart + k
				maxExp = place
			}
			nzEndOff = fracStart + k
			minExp = place
		}
	}

	if nzStartOff == -1 {
		// No non-zero digit anywhere: the value is exactly zero.
		emitZero(c, tokenEnd)
		return
	}

	digits := make([]byte, 0, nzEndOff-nzStartOff+1)
	for off := nzStartOff; off <= nzEndOff; off++ {
		if data[off] == '.' {
			continue
		}
		digits = append(digits, data[off])
	}

	if cfg.Precision != NoRounding {
		negPrecision := -cfg.Precision
		switch {
		case negPrecision > maxExp:
			emitZero(c, tokenEnd)
			return
		case negPrecision > minExp:
			keep := int(maxExp-negPrecision) + 1
			roundUp := keep < len(digits) && digits[keep] >= '5'
			digits = digits[:keep]
			minExp = negPrecision

			if roundUp {
				i := len(digits) - 1
				for ; i >= 0; i-- {
					if digits[i] == '9' {
						digits[i] = '0'
						continue
					}
					digits[i]++
					break
				}
				if i < 0 {
					grown := make([]byte, 0, len(digits)+1)
					grown = append(grown, '1')
					grown = append(grown, digits...)
					digits = grown
					maxExp++
				}
			}

			for len(digits) > 1 && digits[len(digits)-1] == '0' {
				digits = digits[:len(digits)-1]
				minExp++
			}
			if len(digits) == 1 && digits[0] == '0' {
				emitZero(c, tokenEnd)
				return
			}
		}
	}

	var zeros int64
	switch {
	case minExp > 0:
		zeros = minExp
	case maxExp < 0:
		zeros = -maxExp
	}

	c.skip(tokenEnd - c.read)
	if negative {
		c.emit('-')
	}

	if zeros >= 3 {
		// Exponential form. The exponent anchors the decimal point after
		// the first (most significant) retained digit, so it is always
		// max_exponent: see DESIGN.md for why this departs from a literal
		// reading of "new_exponent = min_exponent".
		c.emit(digits[0])
		if len(digits) > 1 {
			c.emit('.')
			c.emitBytes(digits[1:])
		}
		c.emit('E')
		emitExponent(c, maxExp)
		return
	}

	if minExp < 0 {
		if maxExp < 0 {
			c.emit('0')
			c.emit('.')
			for i := int64(0); i < zeros-1; i++ {
				c.emit('0')
			}
			c.emitBytes(digits)
		} else {
			intDigits := int(maxExp) + 1
			c.emitBytes(digits[:intDigits])
			c.emit('.')
			c.emitBytes(digits[intDigits:])
		}
		return
	}

	c.emitBytes(digits)
	for i := int64(0); i < zeros; i++ {
		c.emit('0')
	}
}

// emitZero drops the whole token, dropping any sign, and writes the single
// byte "0".
func emitZero(c *cursor, tokenEnd int) {
	c.skip(tokenEnd - c.read)
	c.emit('0')
}

func emitExponent(c *cursor, exp int64) {
	if exp < 0 {
		c.emit('-')
		exp = -exp
	}
	var buf [20]byte
	out := strconv.AppendInt(buf[:0], exp, 10)
	c.emitBytes(out)
}

func parseDigitsInt64(b []byte) int64 {
	var v int64
	for _, d := range b {
		v = v*10 + int64(d-'0')
	}
	return v
}
