// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// A Builder collects the fields of a civil time one at a time. Fields which
// are never set default to the zero Time, 1970-01-01T00:00:00.
//
// Setters return the updated Builder, so calls can be chained:
//
//	d := civil.NewBuilder().Year(2024).Month(2).Day(30).BuildDay() // 2024-03-01
//
// Like the constructors, the Build methods normalize out of range fields.
type Builder struct {
	year, month, day int64
	hour, min, sec   int64

	// set records which of year, month and day have been set, as their
	// defaults are not zero.
	set uint8
}

const (
	setYear uint8 = 1 << iota
	setMonth
	setDay
)

// NewBuilder returns a Builder for the zero Time. It is equivalent to the
// zero Builder.
func NewBuilder() Builder {
	return Builder{}
}

// Year sets the year.
func (b Builder) Year(y int64) Builder {
	b.year = y
	b.set |= setYear
	return b
}

// Month sets the month.
func (b Builder) Month(m int64) Builder {
	b.month = m
	b.set |= setMonth
	return b
}

// Day sets the day of the month.
func (b Builder) Day(d int64) Builder {
	b.day = d
	b.set |= setDay
	return b
}

// Hour sets the hour.
func (b Builder) Hour(hh int64) Builder {
	b.hour = hh
	return b
}

// Minute sets the minute.
func (b Builder) Minute(mm int64) Builder {
	b.min = mm
	return b
}

// Second sets the second.
func (b Builder) Second(ss int64) Builder {
	b.sec = ss
	return b
}

func (b Builder) fields() fields {
	y, m, d := int64(epochYear), int64(1), int64(1)
	if b.set&setYear != 0 {
		y = b.year
	}
	if b.set&setMonth != 0 {
		m = b.month
	}
	if b.set&setDay != 0 {
		d = b.day
	}
	return nSec(y, m, d, b.hour, b.min, b.sec)
}

// BuildSecond returns the collected fields as a Second.
func (b Builder) BuildSecond() Second { return of[seconds](b.fields()) }

// BuildMinute returns the collected fields as a Minute. The second is
// normalized into the other fields before it is dropped.
func (b Builder) BuildMinute() Minute { return of[minutes](b.fields()) }

// BuildHour returns the collected fields as an Hour.
func (b Builder) BuildHour() Hour { return of[hours](b.fields()) }

// BuildDay returns the collected fields as a Day.
func (b Builder) BuildDay() Day { return of[days](b.fields()) }

// BuildMonth returns the collected fields as a Month.
func (b Builder) BuildMonth() Month { return of[months](b.fields()) }

// BuildYear returns the collected fields as a Year.
func (b Builder) BuildYear() Year { return of[years](b.fields()) }
