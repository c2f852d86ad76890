// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// A Unit is the alignment of a civil time: the field which arithmetic on it
// operates on. All fields finer than the unit are pinned to their minimum.
//
// The set of units is closed. It consists of the unexported types behind
// [Second], [Minute], [Hour], [Day], [Month] and [Year].
type Unit interface {
	// step adds n to the aligned field of f and normalizes the result.
	step(f fields, n int64) fields
	// difference returns f1-f2 in units of the aligned field. Both must
	// be aligned to the unit.
	difference(f1, f2 fields) int64
	// align sets all fields finer than the unit to their minimum.
	align(f fields) fields

	// layout returns the layout String uses for the unit.
	layout() string
	// constructor returns the name of the constructor and its number of
	// arguments, for GoString.
	constructor() (name string, n int)
}

type (
	seconds struct{}
	minutes struct{}
	hours   struct{}
	days    struct{}
	months  struct{}
	years   struct{}
)

func (seconds) step(f fields, n int64) fields {
	return nSec(f.y, int64(f.m), int64(f.d), int64(f.hh), int64(f.mm)+n/60, int64(f.ss)+n%60)
}

func (seconds) difference(f1, f2 fields) int64 {
	return scaleAdd(minutes{}.difference(f1, f2), 60, int64(f1.ss-f2.ss))
}

func (seconds) align(f fields) fields {
	return f
}

func (seconds) layout() string { return RFC3339 }

func (seconds) constructor() (string, int) { return "NewSecond", 6 }

func (minutes) step(f fields, n int64) fields {
	return nMin(f.y, int64(f.m), int64(f.d), int64(f.hh)+n/60, 0, int64(f.mm)+n%60, f.ss)
}

func (minutes) difference(f1, f2 fields) int64 {
	return scaleAdd(hours{}.difference(f1, f2), 60, int64(f1.mm-f2.mm))
}

func (minutes) align(f fields) fields {
	f.ss = 0
	return f
}

func (minutes) layout() string { return "2006-01-02T15:04" }

func (minutes) constructor() (string, int) { return "NewMinute", 5 }

func (hours) step(f fields, n int64) fields {
	return nHour(f.y, int64(f.m), int64(f.d)+n/24, 0, int64(f.hh)+n%24, f.mm, f.ss)
}

func (hours) difference(f1, f2 fields) int64 {
	return scaleAdd(days{}.difference(f1, f2), 24, int64(f1.hh-f2.hh))
}

func (hours) align(f fields) fields {
	f.mm, f.ss = 0, 0
	return f
}

func (hours) layout() string { return "2006-01-02T15" }

func (hours) constructor() (string, int) { return "NewHour", 4 }

func (days) step(f fields, n int64) fields {
	return nDay(f.y, f.m, int64(f.d), n, f.hh, f.mm, f.ss)
}

func (days) difference(f1, f2 fields) int64 {
	return dayDifference(f1.y, f1.m, f1.d, f2.y, f2.m, f2.d)
}

func (days) align(f fields) fields {
	f.hh, f.mm, f.ss = 0, 0, 0
	return f
}

func (days) layout() string { return DateOnly }

func (days) constructor() (string, int) { return "NewDay", 3 }

func (months) step(f fields, n int64) fields {
	return nMon(f.y+n/12, int64(f.m)+n%12, int64(f.d), 0, f.hh, f.mm, f.ss)
}

func (months) difference(f1, f2 fields) int64 {
	return scaleAdd(years{}.difference(f1, f2), 12, int64(f1.m-f2.m))
}

func (months) align(f fields) fields {
	f.d, f.hh, f.mm, f.ss = 1, 0, 0, 0
	return f
}

func (months) layout() string { return "2006-01" }

func (months) constructor() (string, int) { return "NewMonth", 2 }

// The year has no coarser field to carry into, so stepping it never needs
// normalization.
func (years) step(f fields, n int64) fields {
	f.y += n
	return f
}

func (years) difference(f1, f2 fields) int64 {
	return f1.y - f2.y
}

func (years) align(f fields) fields {
	f.m, f.d, f.hh, f.mm, f.ss = 1, 1, 0, 0, 0
	return f
}

func (years) layout() string { return "2006" }

func (years) constructor() (string, int) { return "NewYear", 1 }
