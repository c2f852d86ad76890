// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "cmp"

// Days in a given period of years.
const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1460
	daysPerYear     = 365
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. daysBefore[0] is unused.
var daysBefore = [...]int{
	-1,
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

// daysIn counts the number of days in a given month of a non-leap year.
var daysIn = [...]int64{-1, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// fields holds a normalized civil time. A fields value is always valid: m is
// in [1,12], d in [1,daysPerMonth(y, m)], hh in [0,23], mm and ss in [0,59].
type fields struct {
	y          int64
	m, d       int8
	hh, mm, ss int8
}

// compare returns -1, 0 or +1, comparing f and g field by field, starting
// with the year.
func (f fields) compare(g fields) int {
	if c := cmp.Compare(f.y, g.y); c != 0 {
		return c
	}
	if c := cmp.Compare(f.m, g.m); c != 0 {
		return c
	}
	if c := cmp.Compare(f.d, g.d); c != 0 {
		return c
	}
	if c := cmp.Compare(f.hh, g.hh); c != 0 {
		return c
	}
	if c := cmp.Compare(f.mm, g.mm); c != 0 {
		return c
	}
	return cmp.Compare(f.ss, g.ss)
}

func isLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// yearIndex returns the position of y in the 400-year Gregorian cycle, in
// [0,400). Years are counted from March, so that February, and thus the leap
// day, is the end of the year: if m is after February, y counts as y+1.
func yearIndex(y int64, m int8) int {
	yi := y % 400
	if m > 2 {
		yi++
	}
	if yi < 0 {
		yi += 400
	}
	return int(yi % 400)
}

// daysPerCentury returns the number of days in the 100 years starting at the
// cycle position yi.
func daysPerCentury(yi int) int64 {
	if yi == 0 || yi > 300 {
		return daysPer100Years + 1
	}
	return daysPer100Years
}

// daysPer4YearsAt returns the number of days in the 4 years starting at the
// cycle position yi.
func daysPer4YearsAt(yi int) int64 {
	if yi == 0 || yi > 300 || (yi-1)%100 < 96 {
		return daysPer4Years + 1
	}
	return daysPer4Years
}

// daysPerYearAt returns the number of days in the March-based year containing
// the month m of year y.
func daysPerYearAt(y int64, m int8) int64 {
	if m > 2 {
		y++
	}
	if isLeap(y) {
		return daysPerYear + 1
	}
	return daysPerYear
}

func daysPerMonth(y int64, m int8) int64 {
	if m == 2 && isLeap(y) {
		return 29
	}
	return daysIn[m]
}

// valid reports whether f is a valid civil time. Only fields from outside the
// package need to be checked, all others are valid by construction.
func (f fields) valid() bool {
	return 1 <= f.m && f.m <= 12 &&
		1 <= f.d && int64(f.d) <= daysPerMonth(f.y, f.m) &&
		0 <= f.hh && f.hh < 24 &&
		0 <= f.mm && f.mm < 60 &&
		0 <= f.ss && f.ss < 60
}
