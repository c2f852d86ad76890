// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// epochShift is the number of days from 0000-03-01, the start of the era
// containing the epoch, to 1970-01-01.
const epochShift = 719468

// scaleAdd returns v*f + a, avoiding intermediate overflow where possible.
//
// When v*f is close to the limits of int64, adding a could overflow even if
// the result fits. Scaling v one step towards zero first and adding the
// missing f last keeps the intermediate values in range.
func scaleAdd(v, f, a int64) int64 {
	if v < 0 {
		return ((v+1)*f + a) - f
	}
	return ((v-1)*f + a) + f
}

// ymdOrd returns the number of days from 1970-01-01 to the given normalized
// date. It overflows for years outside about [-2.5e16, 2.5e16].
func ymdOrd(y int64, m, d int8) int64 {
	// Eras are 400 year cycles starting on March 1st.
	ey := y
	if m <= 2 {
		ey--
	}
	era := ey
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := ey - era*400 // [0, 399]

	// Month index starting with March.
	mp := int64(m) + 9
	if m > 2 {
		mp = int64(m) - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1              // [0, 365]
	doe := yoe*daysPerYear + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPer400Years + doe - epochShift
}

// dayDifference returns the number of days from y2-m2-d2 to y1-m1-d1.
//
// ymdOrd overflows for extreme years, even when the two dates are close
// together, so only the years modulo 400 are passed to it. The whole cycles
// are accounted for separately.
func dayDifference(y1 int64, m1, d1 int8, y2 int64, m2, d2 int8) int64 {
	a := y1 % 400
	b := y2 % 400
	c4 := (y1 - a) - (y2 - b)
	delta := ymdOrd(a, m1, d1) - ymdOrd(b, m2, d2)
	// Move two cycles from the cycle count to delta if their signs differ,
	// so that combining them never overflows when the result fits.
	if c4 > 0 && delta < 0 {
		delta += 2 * daysPer400Years
		c4 -= 2 * 400
	} else if c4 < 0 && delta > 0 {
		delta -= 2 * daysPer400Years
		c4 += 2 * 400
	}
	return c4/400*daysPer400Years + delta
}
