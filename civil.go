// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil contains Gregorian civil-time types.
//
// The term "civil time" refers to the human-scale time that is represented by
// the six fields YYYY-MM-DD hh:mm:ss. Civil time follows the Gregorian
// calendar and is independent of time zones. There are no daylight saving
// transitions and no leap seconds: every day has 24 hours of 60 minutes of 60
// seconds. A date is the most common example of a civil time.
//
// The package provides six types, [Second], [Minute], [Hour], [Day], [Month]
// and [Year]. They all carry the same six fields, but differ in their
// alignment, which is the field that arithmetic operates on. All fields finer
// than the alignment are set to their minimum value: 1 for month and day, 0
// for hour, minute and second. For example, the fields representing November
// 22, 2015 at 12:34:56 are aligned as
//
//	Second  2015-11-22T12:34:56
//	Minute  2015-11-22T12:34
//	Hour    2015-11-22T12
//	Day     2015-11-22
//	Month   2015-11
//	Year    2015
//
// Constructors accept fields that are out of their usual ranges and normalize
// them. For example, October 32 converts to November 1. It is not possible to
// create an invalid civil time. Adding 1 to a [Day] increments its day field,
// subtracting 7 from a [Month] operates on its month field. [Time.Diff]
// requires both operands to have the same alignment, which is checked by the
// compiler, and returns the result in units of that alignment.
//
// There is no way to add a month to a [Day]: the answer to "what is January
// 31st plus one month" is ambiguous. Instead, a program has to choose an
// answer explicitly, for example by passing an out-of-range month to
// [NewDay] to rely on normalization, or by capping the result to the end of
// the next [Month].
//
// Years are int64 and cover its whole range. Differences and steps are int64
// as well. Results that do not fit into an int64 wrap around; the package
// takes care to not overflow in intermediate results, so this only happens if
// the mathematically correct result is not representable.
package civil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

// epochYear is the year of the zero Time.
const epochYear = 1970

// Time is a civil time aligned to the unit U. Its zero value is
// 1970-01-01T00:00:00.
//
// Values of the same alignment can be compared with ==. Use [Time.Compare] to
// order them, or to compare values of different alignments.
type Time[U Unit] struct {
	// Fields are stored relative to the zero value, so every Time is valid.
	// The year offset wraps around, which keeps every int64 year
	// representable.
	y          int64
	m, d       int8
	hh, mm, ss int8
}

type (
	// Second is a civil time aligned to the second.
	Second = Time[seconds]
	// Minute is a civil time aligned to the minute.
	Minute = Time[minutes]
	// Hour is a civil time aligned to the hour.
	Hour = Time[hours]
	// Day is a civil time aligned to the day, that is a date.
	Day = Time[days]
	// Month is a civil time aligned to the month.
	Month = Time[months]
	// Year is a civil time aligned to the year.
	Year = Time[years]
)

// A Value is a civil time of any alignment. It is implemented by [Second],
// [Minute], [Hour], [Day], [Month] and [Year] and can not be implemented
// outside this package.
type Value interface {
	Year() int64
	Month() time.Month
	Day() int
	Hour() int
	Minute() int
	Second() int
	Weekday() Weekday
	YearDay() int
	Format(layout string) string
	String() string

	canonical() fields
}

// The minimum and maximum values of each alignment.
var (
	MinSecond = NewSecond(math.MinInt64, 1, 1, 0, 0, 0)
	MaxSecond = NewSecond(math.MaxInt64, 12, 31, 23, 59, 59)
	MinMinute = NewMinute(math.MinInt64, 1, 1, 0, 0)
	MaxMinute = NewMinute(math.MaxInt64, 12, 31, 23, 59)
	MinHour   = NewHour(math.MinInt64, 1, 1, 0)
	MaxHour   = NewHour(math.MaxInt64, 12, 31, 23)
	MinDay    = NewDay(math.MinInt64, 1, 1)
	MaxDay    = NewDay(math.MaxInt64, 12, 31)
	MinMonth  = NewMonth(math.MinInt64, 1)
	MaxMonth  = NewMonth(math.MaxInt64, 12)
	MinYear   = NewYear(math.MinInt64)
	MaxYear   = NewYear(math.MaxInt64)
)

// of aligns f to U and returns it as a Time.
func of[U Unit](f fields) Time[U] {
	var unit U
	f = unit.align(f)
	return Time[U]{
		y:  f.y - epochYear,
		m:  f.m - 1,
		d:  f.d - 1,
		hh: f.hh,
		mm: f.mm,
		ss: f.ss,
	}
}

func (t Time[U]) canonical() fields {
	return fields{
		y:  t.y + epochYear,
		m:  t.m + 1,
		d:  t.d + 1,
		hh: t.hh,
		mm: t.mm,
		ss: t.ss,
	}
}

// NewSecond returns the Second corresponding to the given fields.
//
// The arguments may be outside their usual ranges and will be normalized
// during the conversion. For example, 17:14:121 converts to 17:16:01.
func NewSecond(year, month, day, hour, min, sec int64) Second {
	return of[seconds](nSec(year, month, day, hour, min, sec))
}

// NewMinute returns the Minute corresponding to the given fields, normalizing
// them like [NewSecond].
func NewMinute(year, month, day, hour, min int64) Minute {
	return of[minutes](nSec(year, month, day, hour, min, 0))
}

// NewHour returns the Hour corresponding to the given fields, normalizing
// them like [NewSecond].
func NewHour(year, month, day, hour int64) Hour {
	return of[hours](nSec(year, month, day, hour, 0, 0))
}

// NewDay returns the Day corresponding to the given fields, normalizing them
// like [NewSecond]. For example, October 32 converts to November 1.
func NewDay(year, month, day int64) Day {
	return of[days](nSec(year, month, day, 0, 0, 0))
}

// NewMonth returns the Month corresponding to the given fields, normalizing
// them like [NewSecond].
func NewMonth(year, month int64) Month {
	return of[months](nSec(year, month, 1, 0, 0, 0))
}

// NewYear returns the Year y.
func NewYear(year int64) Year {
	return of[years](nSec(year, 1, 1, 0, 0, 0))
}

// SecondOf returns v aligned to the second. As v has at least that
// precision, this does not change its fields.
func SecondOf(v Value) Second { return of[seconds](v.canonical()) }

// MinuteOf returns v aligned to the minute.
func MinuteOf(v Value) Minute { return of[minutes](v.canonical()) }

// HourOf returns v aligned to the hour.
func HourOf(v Value) Hour { return of[hours](v.canonical()) }

// DayOf returns v aligned to the day.
func DayOf(v Value) Day { return of[days](v.canonical()) }

// MonthOf returns v aligned to the month.
func MonthOf(v Value) Month { return of[months](v.canonical()) }

// YearOf returns v aligned to the year.
func YearOf(v Value) Year { return of[years](v.canonical()) }

// FromTime returns the wall clock of t as a Second. Fractional seconds are
// dropped.
func FromTime(t time.Time) Second {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return NewSecond(int64(year), int64(month), int64(day), int64(hour), int64(min), int64(sec))
}

// Now returns the current civil time in the given location.
func Now(loc *time.Location) Second {
	return FromTime(time.Now().In(loc))
}

// In returns the instant at which the wall clock in loc shows t. Years outside
// the range of int are truncated. In the presence of daylight saving
// transitions, the same caveats as for [time.Date] apply.
func (t Time[U]) In(loc *time.Location) time.Time {
	f := t.canonical()
	return time.Date(int(f.y), time.Month(f.m), int(f.d), int(f.hh), int(f.mm), int(f.ss), 0, loc)
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Day {
	return DayOf(Now(loc))
}

// Add returns t with n added to its aligned field, normalizing the result.
func (t Time[U]) Add(n int64) Time[U] {
	var unit U
	return of[U](unit.step(t.canonical(), n))
}

// Sub returns t with n subtracted from its aligned field, normalizing the
// result.
func (t Time[U]) Sub(n int64) Time[U] {
	var unit U
	f := t.canonical()
	if n == math.MinInt64 {
		// -n is not representable.
		return of[U](unit.step(unit.step(f, -(n+1)), 1))
	}
	return of[U](unit.step(f, -n))
}

// Diff returns t-u in units of the alignment. For example, the Diff of two
// [Hour] values is a number of hours.
func (t Time[U]) Diff(u Time[U]) int64 {
	var unit U
	return unit.difference(t.canonical(), u.canonical())
}

// Compare compares t and v, considering all six fields regardless of their
// alignment. It returns -1 if t is before v, 0 if they are the same civil
// time and +1 if t is after v.
func (t Time[U]) Compare(v Value) int {
	return t.canonical().compare(v.canonical())
}

// Equal reports whether t and v represent the same civil time. Values of
// different alignment are equal if all their fields are.
func (t Time[U]) Equal(v Value) bool {
	return t.canonical() == v.canonical()
}

// Before reports whether t is before v.
func (t Time[U]) Before(v Value) bool {
	return t.Compare(v) < 0
}

// After reports whether t is after v.
func (t Time[U]) After(v Value) bool {
	return t.Compare(v) > 0
}

// Compare compares a and b like [Time.Compare]. It can be used with
// [slices.SortFunc].
func Compare(a, b Value) int {
	return a.canonical().compare(b.canonical())
}

// Year returns the year of t.
func (t Time[U]) Year() int64 {
	return t.y + epochYear
}

// Month returns the month of the year of t.
func (t Time[U]) Month() time.Month {
	return time.Month(t.m + 1)
}

// Day returns the day of the month of t, in the range [1,31].
func (t Time[U]) Day() int {
	return int(t.d) + 1
}

// Hour returns the hour of t, in the range [0,23].
func (t Time[U]) Hour() int {
	return int(t.hh)
}

// Minute returns the minute of t, in the range [0,59].
func (t Time[U]) Minute() int {
	return int(t.mm)
}

// Second returns the second of t, in the range [0,59].
func (t Time[U]) Second() int {
	return int(t.ss)
}

// Date returns the year, month and day of t.
func (t Time[U]) Date() (year int64, month time.Month, day int) {
	return t.Year(), t.Month(), t.Day()
}

// Clock returns the hour, minute and second of t.
func (t Time[U]) Clock() (hour, min, sec int) {
	return t.Hour(), t.Minute(), t.Second()
}

// GoString implements fmt.GoStringer and formats t to be printed in Go source
// code.
func (t Time[U]) GoString() string {
	var unit U
	name, n := unit.constructor()
	f := t.canonical()
	args := [...]int64{f.y, int64(f.m), int64(f.d), int64(f.hh), int64(f.mm), int64(f.ss)}
	b := make([]byte, 0, 64)
	b = fmt.Appendf(b, "civil.%s(", name)
	for i, a := range args[:n] {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "%d", a)
	}
	return string(append(b, ')'))
}

// String returns t formatted in the ISO 8601 like layout of its alignment:
// "2006-01-02T15:04:05" for a [Second], down to "2006" for a [Year].
func (t Time[U]) String() string {
	var unit U
	return t.Format(unit.layout())
}

// MarshalText implements the encoding.TextMarshaler interface. The civil time
// is formatted like String.
func (t Time[U]) MarshalText() ([]byte, error) {
	var unit U
	return t.AppendFormat(nil, unit.layout()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// must be in the format written by MarshalText.
func (t *Time[U]) UnmarshalText(b []byte) error {
	var unit U
	f, err := parse(unit.layout(), string(b))
	if err == nil {
		*t = of[U](f)
	}
	return err
}

// binaryLen is the length of the encoding of the fields following the year.
const binaryLen = 5

// MarshalBinary implements the encoding.BinaryMarshaler interface. The civil
// time is represented as a [binary.Varint] year, followed by one byte for each
// of month, day, hour, minute and second.
func (t Time[U]) MarshalBinary() ([]byte, error) {
	f := t.canonical()
	b := make([]byte, binary.MaxVarintLen64+binaryLen)
	n := binary.PutVarint(b, f.y)
	n += copy(b[n:], []byte{byte(f.m), byte(f.d), byte(f.hh), byte(f.mm), byte(f.ss)})
	return b[:n], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. It
// rejects encodings of invalid civil times and of civil times which are not
// aligned to U.
func (t *Time[U]) UnmarshalBinary(b []byte) error {
	y, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded civil time truncated")
	case i < 0:
		return errors.New("encoded year overflows int64")
	case len(b)-i < binaryLen:
		return errors.New("encoded civil time truncated")
	case len(b)-i > binaryLen:
		return errors.New("extra data after civil time")
	}
	b = b[i:]
	f := fields{y: y, m: int8(b[0]), d: int8(b[1]), hh: int8(b[2]), mm: int8(b[3]), ss: int8(b[4])}
	if !f.valid() {
		return errors.New("encoded civil time out of range")
	}
	var unit U
	if unit.align(f) != f {
		return errors.New("encoded civil time is not aligned")
	}
	*t = of[U](f)
	return nil
}
