// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "fmt"

// A Weekday specifies a day of the week. Unlike [time.Weekday], weeks start on
// Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns the English name of the day ("Monday", "Tuesday", …).
func (wd Weekday) String() string {
	if Monday <= wd && wd <= Sunday {
		return longDayNames[wd]
	}
	return fmt.Sprintf("%%!Weekday(%d)", int(wd))
}

// ParseWeekday returns the Weekday with the given English name. Both full
// ("Monday") and abbreviated ("Mon") names are accepted, ignoring case.
func ParseWeekday(s string) (Weekday, error) {
	for _, names := range [...][]string{longDayNames, shortDayNames} {
		for i, name := range names {
			if len(s) == len(name) && match(s, name) {
				return Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// weekdayOffsets are the offsets of the first day of each month in a
// March-based year, modulo 7.
var weekdayOffsets = [...]int64{-1, 0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// weekdayOf returns the day of the week of f.
func weekdayOf(f fields) Weekday {
	// Only the year modulo 400 matters. Shifting it into the positive
	// range keeps all intermediate values small and non-negative.
	y := 2400 + f.y%400
	if f.m < 3 {
		y--
	}
	wd := y + y/4 - y/100 + y/400
	wd += weekdayOffsets[f.m] + int64(f.d)
	// wd%7 is 0 for Sunday.
	return Weekday((wd%7 + 6) % 7)
}

// weekdaysForward and weekdaysBackward list two weeks in order and in
// reverse, so the distance between any two days can be found by scanning
// from the first occurrence of one of them.
var (
	weekdaysForward  = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	weekdaysBackward = [...]Weekday{Sunday, Saturday, Friday, Thursday, Wednesday, Tuesday, Monday, Sunday, Saturday, Friday, Thursday, Wednesday, Tuesday, Monday}
)

// weekdayDistance returns the number of steps in [1,7] from the first
// occurrence of base in seq to the next occurrence of wd.
func weekdayDistance(seq *[14]Weekday, base, wd Weekday) int64 {
	for i := 0; i < 7; i++ {
		if seq[i] != base {
			continue
		}
		for j := i + 1; j <= i+7; j++ {
			if seq[j] == wd {
				return int64(j - i)
			}
		}
	}
	panic(fmt.Sprintf("invalid weekday %d", int(wd)))
}

// Weekday returns the day of the week of t.
func (t Time[U]) Weekday() Weekday {
	return weekdayOf(t.canonical())
}

// YearDay returns the day of the year of t, in the range [1,365] for non-leap
// years, and [1,366] in leap years.
func (t Time[U]) YearDay() int {
	return yearDay(t.canonical())
}

// NextWeekday returns the first Day strictly after t that falls on wd. If t
// is already on wd, that is the same day of the following week. NextWeekday
// panics if wd is not one of the seven defined days.
func (t Time[U]) NextWeekday(wd Weekday) Day {
	d := DayOf(t)
	return d.Add(weekdayDistance(&weekdaysForward, d.Weekday(), wd))
}

// PrevWeekday returns the last Day strictly before t that falls on wd. If t
// is already on wd, that is the same day of the previous week.
func (t Time[U]) PrevWeekday(wd Weekday) Day {
	d := DayOf(t)
	return d.Sub(weekdayDistance(&weekdaysBackward, d.Weekday(), wd))
}

// ISOWeek returns the ISO 8601 year and week number in which t occurs. Week
// ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to week 52 or
// 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (t Time[U]) ISOWeek() (year int64, week int) {
	// Weeks start on Monday, so the Thursday of t's week decides the year.
	d := DayOf(t)
	d = d.Add(int64(Thursday - d.Weekday()))
	return d.Year(), (d.YearDay()-1)/7 + 1
}
