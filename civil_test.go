// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math"
	"slices"
	"strconv"
	"testing"
	"time"
)

// checkFields fails t if v does not have the given fields.
func checkFields(t *testing.T, v Value, y int64, m time.Month, d, hh, mm, ss int) {
	t.Helper()
	if gy, gm, gd := v.Year(), v.Month(), v.Day(); gy != y || gm != m || gd != d {
		t.Errorf("%v: date = %d-%d-%d, want %d-%d-%d", v, gy, gm, gd, y, m, d)
	}
	if ghh, gmm, gss := v.Hour(), v.Minute(), v.Second(); ghh != hh || gmm != mm || gss != ss {
		t.Errorf("%v: clock = %d:%d:%d, want %d:%d:%d", v, ghh, gmm, gss, hh, mm, ss)
	}
}

func TestNormalize(t *testing.T) {
	tcs := []struct {
		name                string
		y, m, d, hh, mm, ss int64
		wy                  int64
		wm                  time.Month
		wd, whh, wmm, wss   int
	}{
		{"normal", 2016, 1, 28, 17, 14, 12, 2016, 1, 28, 17, 14, 12},
		{"second overflow", 2016, 1, 28, 17, 14, 121, 2016, 1, 28, 17, 16, 1},
		{"second underflow", 2016, 1, 28, 17, 14, -121, 2016, 1, 28, 17, 11, 59},
		{"minute overflow", 2016, 1, 28, 17, 121, 12, 2016, 1, 28, 19, 1, 12},
		{"minute underflow", 2016, 1, 28, 17, -121, 12, 2016, 1, 28, 14, 59, 12},
		{"hour overflow", 2016, 1, 28, 49, 14, 12, 2016, 1, 30, 1, 14, 12},
		{"hour underflow", 2016, 1, 28, -49, 14, 12, 2016, 1, 25, 23, 14, 12},
		{"month overflow", 2016, 25, 28, 17, 14, 12, 2018, 1, 28, 17, 14, 12},
		{"month underflow", 2016, -25, 28, 17, 14, 12, 2013, 11, 28, 17, 14, 12},
		{"400 years overflow", 2016, 1, 292195, 17, 14, 12, 2816, 1, 1, 17, 14, 12},
		{"400 years underflow", 2016, 1, -292195, 17, 14, 12, 1215, 12, 30, 17, 14, 12},
		{"mixed", 2016, -42, 122, 99, -147, 4949, 2012, 10, 4, 1, 55, 29},
		{"day zero", 2016, 3, 0, 0, 0, 0, 2016, 2, 29, 0, 0, 0},
		{"october 32", 2015, 10, 32, 0, 0, 0, 2015, 11, 1, 0, 0, 0},
		{"huge year", -math.MaxInt64, 1, 1, -1, 0, 0, math.MinInt64, 12, 31, 23, 0, 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSecond(tc.y, tc.m, tc.d, tc.hh, tc.mm, tc.ss)
			checkFields(t, s, tc.wy, tc.wm, tc.wd, tc.whh, tc.wmm, tc.wss)
		})
	}
}

func TestNewLimits(t *testing.T) {
	max, min := int64(math.MaxInt32), int64(math.MinInt32)
	tcs := []struct {
		got  Second
		want string
	}{
		{NewSecond(1970, 1, 1, 0, 0, max), "2038-01-19T03:14:07"},
		{NewSecond(1970, 1, 1, 0, max, max), "6121-02-11T05:21:07"},
		{NewSecond(1970, 1, 1, max, max, max), "251104-11-20T12:21:07"},
		{NewSecond(1970, 1, max, max, max, max), "6130715-05-30T12:21:07"},
		{NewSecond(1970, max, max, max, max, max), "185087685-11-26T12:21:07"},
		{NewSecond(1970, 1, 1, 0, 0, min), "1901-12-13T20:45:52"},
		{NewSecond(1970, 1, 1, 0, min, min), "-2182-11-20T18:37:52"},
		{NewSecond(1970, 1, 1, min, min, min), "-247165-02-11T10:37:52"},
		{NewSecond(1970, 1, min, min, min, min), "-6126776-08-01T10:37:52"},
		{NewSecond(1970, min, min, min, min, min), "-185083747-10-31T10:37:52"},
	}
	for i, tc := range tcs {
		if got := tc.got.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	tcs := []struct {
		v    Value
		want string
	}{
		{Second{}, "1970-01-01T00:00:00"},
		{Minute{}, "1970-01-01T00:00"},
		{Hour{}, "1970-01-01T00"},
		{Day{}, "1970-01-01"},
		{Month{}, "1970-01"},
		{Year{}, "1970"},
	}
	for _, tc := range tcs {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("zero %T = %q, want %q", tc.v, got, tc.want)
		}
	}
	if got, want := NewDay(1970, 1, 1), (Day{}); got != want {
		t.Errorf("NewDay(1970, 1, 1) = %#v, want %#v", got, want)
	}
}

func TestString(t *testing.T) {
	tcs := []struct {
		v    Value
		want string
	}{
		{NewYear(2016), "2016"},
		{NewYear(123), "0123"},
		{NewYear(0), "0000"},
		{NewYear(-1), "-0001"},
		{NewYear(math.MaxInt64), "9223372036854775807"},
		{NewYear(math.MinInt64), "-9223372036854775808"},
		{NewMonth(2016, 2), "2016-02"},
		{NewDay(2016, 2, 3), "2016-02-03"},
		{NewHour(2016, 2, 3, 4), "2016-02-03T04"},
		{NewMinute(2016, 2, 3, 4, 5), "2016-02-03T04:05"},
		{NewSecond(2016, 2, 3, 4, 5, 6), "2016-02-03T04:05:06"},
	}
	for _, tc := range tcs {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestGoString(t *testing.T) {
	tcs := []struct {
		v    any
		want string
	}{
		{NewSecond(2015, 2, 3, 4, 5, 6), "civil.NewSecond(2015, 2, 3, 4, 5, 6)"},
		{NewMinute(2015, 2, 3, 4, 5), "civil.NewMinute(2015, 2, 3, 4, 5)"},
		{NewHour(2015, 2, 3, 4), "civil.NewHour(2015, 2, 3, 4)"},
		{NewDay(2015, 2, 3), "civil.NewDay(2015, 2, 3)"},
		{NewMonth(2015, 2), "civil.NewMonth(2015, 2)"},
		{NewYear(-2015), "civil.NewYear(-2015)"},
	}
	for _, tc := range tcs {
		if got := tc.v.(interface{ GoString() string }).GoString(); got != tc.want {
			t.Errorf("GoString() = %q, want %q", got, tc.want)
		}
	}
}

func TestAlignment(t *testing.T) {
	s := NewSecond(2015, 2, 3, 4, 5, 6)
	checkFields(t, s, 2015, 2, 3, 4, 5, 6)
	checkFields(t, MinuteOf(s), 2015, 2, 3, 4, 5, 0)
	checkFields(t, HourOf(s), 2015, 2, 3, 4, 0, 0)
	checkFields(t, DayOf(s), 2015, 2, 3, 0, 0, 0)
	checkFields(t, MonthOf(s), 2015, 2, 1, 0, 0, 0)
	checkFields(t, YearOf(s), 2015, 1, 1, 0, 0, 0)

	// Realigning to a finer unit keeps the fields.
	y := NewYear(2014)
	if got, want := SecondOf(DayOf(y)), NewSecond(2014, 1, 1, 0, 0, 0); got != want {
		t.Errorf("SecondOf(DayOf(%v)) = %v, want %v", y, got, want)
	}
	if got, want := MonthOf(NewMinute(2015, 2, 3, 4, 5)), NewMonth(2015, 2); got != want {
		t.Errorf("MonthOf = %v, want %v", got, want)
	}
}

func TestArithmetic(t *testing.T) {
	s := NewSecond(2015, 1, 2, 3, 4, 5).Add(1)
	checkString(t, s, "2015-01-02T03:04:06")
	checkString(t, s.Add(1), "2015-01-02T03:04:07")
	checkString(t, s.Sub(1), "2015-01-02T03:04:05")

	mi := NewMinute(2015, 1, 2, 3, 4).Add(1)
	checkString(t, mi, "2015-01-02T03:05")
	checkString(t, mi.Add(1), "2015-01-02T03:06")
	checkString(t, mi.Sub(1), "2015-01-02T03:04")

	h := NewHour(2015, 1, 2, 3).Add(1)
	checkString(t, h, "2015-01-02T04")
	checkString(t, h.Add(1), "2015-01-02T05")
	checkString(t, h.Sub(1), "2015-01-02T03")

	d := NewDay(2015, 1, 2).Add(1)
	checkString(t, d, "2015-01-03")
	checkString(t, d.Add(1), "2015-01-04")
	checkString(t, d.Sub(1), "2015-01-02")

	mo := NewMonth(2015, 1).Add(1)
	checkString(t, mo, "2015-02")
	checkString(t, mo.Add(1), "2015-03")
	checkString(t, mo.Sub(1), "2015-01")

	y := NewYear(2015).Add(1)
	checkString(t, y, "2016")
	checkString(t, y.Add(1), "2017")
	checkString(t, y.Sub(1), "2015")

	checkString(t, NewSecond(2016, 1, 28, 17, 14, 12).Add(50), "2016-01-28T17:15:02")
	checkString(t, NewSecond(2016, 1, 28, 17, 14, 12).Sub(50), "2016-01-28T17:13:22")
}

func checkString(t *testing.T, v Value, want string) {
	t.Helper()
	if got := v.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArithmeticLimits(t *testing.T) {
	max, min := int64(math.MaxInt32), int64(math.MinInt32)

	s := NewSecond(1970, 1, 1, 0, 0, 0)
	checkString(t, s.Add(max), "2038-01-19T03:14:07")
	checkString(t, s.Add(max).Sub(max), "1970-01-01T00:00:00")
	checkString(t, s.Add(min), "1901-12-13T20:45:52")
	checkString(t, s.Add(min).Sub(min), "1970-01-01T00:00:00")

	mi := NewMinute(1970, 1, 1, 0, 0)
	checkString(t, mi.Add(max), "6053-01-23T02:07")
	checkString(t, mi.Add(max).Sub(max), "1970-01-01T00:00")
	checkString(t, mi.Add(min), "-2114-12-08T21:52")
	checkString(t, mi.Add(min).Sub(min), "1970-01-01T00:00")

	h := NewHour(1970, 1, 1, 0)
	checkString(t, h.Add(max), "246953-10-09T07")
	checkString(t, h.Add(max).Sub(max), "1970-01-01T00")
	checkString(t, h.Add(min), "-243014-03-24T16")
	checkString(t, h.Add(min).Sub(min), "1970-01-01T00")

	d := NewDay(1970, 1, 1)
	checkString(t, d.Add(max), "5881580-07-11")
	checkString(t, d.Add(max).Sub(max), "1970-01-01")
	checkString(t, d.Add(min), "-5877641-06-23")
	checkString(t, d.Add(min).Sub(min), "1970-01-01")

	mo := NewMonth(1970, 1)
	checkString(t, mo.Add(max), "178958940-08")
	checkString(t, mo.Add(max).Sub(max), "1970-01")
	checkString(t, mo.Add(min), "-178955001-05")
	checkString(t, mo.Add(min).Sub(min), "1970-01")

	y := NewYear(0)
	checkString(t, y.Add(max), "2147483647")
	checkString(t, y.Add(max).Sub(max), "0000")
	checkString(t, y.Add(min), "-2147483648")
	checkString(t, y.Add(min).Sub(min), "0000")
}

func TestSubMinInt64(t *testing.T) {
	y := NewYear(-1)
	if got, want := y.Sub(math.MinInt64), NewYear(math.MaxInt64); got != want {
		t.Errorf("%v.Sub(MinInt64) = %v, want %v", y, got, want)
	}
	s := NewSecond(1970, 1, 1, 0, 0, 0)
	if got, want := s.Sub(math.MinInt64), s.Add(math.MaxInt64).Add(1); got != want {
		t.Errorf("%v.Sub(MinInt64) = %v, want %v", s, got, want)
	}
}

func TestWrap(t *testing.T) {
	if got := MaxDay.Add(1); got != MinDay {
		t.Errorf("MaxDay.Add(1) = %v, want %v", got, MinDay)
	}
	if got := MinDay.Sub(1); got != MaxDay {
		t.Errorf("MinDay.Sub(1) = %v, want %v", got, MaxDay)
	}
	if got := MaxYear.Add(1); got != MinYear {
		t.Errorf("MaxYear.Add(1) = %v, want %v", got, MinYear)
	}
	if got := MaxSecond.Add(1); got != MinSecond {
		t.Errorf("MaxSecond.Add(1) = %v, want %v", got, MinSecond)
	}
}

func TestNormalizeHugeYear(t *testing.T) {
	c := NewMonth(math.MaxInt64, 1)
	checkString(t, c, "9223372036854775807-01")
	checkString(t, c.Sub(1), "9223372036854775806-12")

	c = NewMonth(math.MinInt64, 1)
	checkString(t, c, "-9223372036854775808-01")
	checkString(t, c.Add(12), "-9223372036854775807-01")
}

func TestDiff(t *testing.T) {
	if got := NewDay(2016, 1, 28).Diff(NewDay(2015, 1, 28)); got != 365 {
		t.Errorf("Diff = %d, want 365", got)
	}

	s := NewSecond(2015, 1, 2, 3, 4, 5)
	mi := NewMinute(2015, 1, 2, 3, 4)
	h := NewHour(2015, 1, 2, 3)
	d := NewDay(2015, 1, 2)
	mo := NewMonth(2015, 1)
	y := NewYear(2015)
	for _, n := range []int64{0, 10, -10, 1000, -1000} {
		if got := s.Add(n).Diff(s); got != n {
			t.Errorf("Second: %d, want %d", got, n)
		}
		if got := mi.Add(n).Diff(mi); got != n {
			t.Errorf("Minute: %d, want %d", got, n)
		}
		if got := h.Add(n).Diff(h); got != n {
			t.Errorf("Hour: %d, want %d", got, n)
		}
		if got := d.Add(n).Diff(d); got != n {
			t.Errorf("Day: %d, want %d", got, n)
		}
		if got := mo.Add(n).Diff(mo); got != n {
			t.Errorf("Month: %d, want %d", got, n)
		}
		if got := y.Add(n).Diff(y); got != n {
			t.Errorf("Year: %d, want %d", got, n)
		}
	}
}

func TestDiffLimits(t *testing.T) {
	maxDay := NewDay(math.MaxInt64, 12, 31)
	if got := maxDay.Diff(maxDay.Sub(1)); got != 1 {
		t.Errorf("maxDay - (maxDay-1) = %d, want 1", got)
	}
	if got := maxDay.Sub(1).Diff(maxDay); got != -1 {
		t.Errorf("(maxDay-1) - maxDay = %d, want -1", got)
	}

	minDay := NewDay(math.MinInt64, 1, 1)
	if got := minDay.Add(1).Diff(minDay); got != 1 {
		t.Errorf("(minDay+1) - minDay = %d, want 1", got)
	}
	if got := minDay.Diff(minDay.Add(1)); got != -1 {
		t.Errorf("minDay - (minDay+1) = %d, want -1", got)
	}

	d1, d2 := NewDay(1970, 1, 1), NewDay(5881580, 7, 11)
	if got := d2.Diff(d1); got != math.MaxInt32 {
		t.Errorf("d2 - d1 = %d, want %d", got, math.MaxInt32)
	}
	if got := d1.Diff(d2.Add(1)); got != math.MinInt32 {
		t.Errorf("d1 - (d2+1) = %d, want %d", got, math.MinInt32)
	}
}

func TestDiffHugeYear(t *testing.T) {
	tcs := []struct {
		a, b Day
		want int64
	}{
		{NewDay(math.MaxInt64, 12, 31), NewDay(math.MaxInt64, 1, 1), 364},
		{NewDay(math.MinInt64, 12, 31), NewDay(math.MinInt64, 1, 1), 365},
		// Limits of the result at the end of the year range.
		{NewDay(math.MaxInt64, 1, 1), NewDay(9198119301927009252, 6, 6), math.MaxInt64},
		{NewDay(9198119301927009252, 6, 6).Sub(1), NewDay(math.MaxInt64, 1, 1), math.MinInt64},
		// Limits of the result at the start of the year range.
		{NewDay(-9198119301927009254, 7, 28), NewDay(math.MinInt64, 1, 1), math.MaxInt64},
		{NewDay(math.MinInt64, 1, 1), NewDay(-9198119301927009254, 7, 28).Add(1), math.MinInt64},
		// Limits of the result from either side of year 0.
		{NewDay(12626367463883277, 3, 28), NewDay(-12626367463883278, 9, 3), math.MaxInt64},
		{NewDay(-12626367463883278, 9, 3), NewDay(12626367463883277, 3, 28).Add(1), math.MinInt64},
	}
	for i, tc := range tcs {
		if got := tc.a.Diff(tc.b); got != tc.want {
			t.Errorf("%d: %v - %v = %d, want %d", i, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDiffNoIntermediateOverflow(t *testing.T) {
	// Up to the minute field, the difference is below MinInt64. The extra
	// 52 seconds bring it back to the minimum.
	s1 := NewSecond(-292277022657, 1, 27, 8, 29-1, 52)
	s2 := NewSecond(1970, 1, 1, 0, 0-1, 0)
	if got := s1.Diff(s2); got != math.MinInt64 {
		t.Errorf("%v - %v = %d, want %d", s1, s2, got, int64(math.MinInt64))
	}

	// Up to the minute field, the difference is above MaxInt64. The extra
	// -7 seconds bring it back to the maximum.
	s1 = NewSecond(292277026596, 12, 4, 15, 30, 7-7)
	s2 = NewSecond(1970, 1, 1, 0, 0, 0-7)
	if got := s1.Diff(s2); got != math.MaxInt64 {
		t.Errorf("%v - %v = %d, want %d", s1, s2, got, int64(math.MaxInt64))
	}
}

func TestLeapYears(t *testing.T) {
	tcs := []struct {
		year  int64
		days  int64
		month time.Month
		day   int
	}{
		{1900, 365, 3, 1},
		{1999, 365, 3, 1},
		{2000, 366, 2, 29},
		{2001, 365, 3, 1},
		{2002, 365, 3, 1},
		{2003, 365, 3, 1},
		{2004, 366, 2, 29},
		{2005, 365, 3, 1},
		{2006, 365, 3, 1},
		{2007, 365, 3, 1},
		{2008, 366, 2, 29},
		{2009, 365, 3, 1},
		{2100, 365, 3, 1},
	}
	for _, tc := range tcs {
		t.Run(strconv.FormatInt(tc.year, 10), func(t *testing.T) {
			feb28 := NewDay(tc.year, 2, 28)
			next := feb28.Add(1)
			if next.Month() != tc.month || next.Day() != tc.day {
				t.Errorf("%v + 1 = %v, want %v %d", feb28, next, tc.month, tc.day)
			}
			y := YearOf(feb28)
			if got := DayOf(y.Add(1)).Diff(DayOf(y)); got != tc.days {
				t.Errorf("days in %v = %d, want %d", y, got, tc.days)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	y := NewYear(2014)
	mo := MonthOf(y)
	d := DayOf(mo)
	h := HourOf(d)
	mi := MinuteOf(h)
	s := SecondOf(mi)
	vs := []Value{s, mi, h, d, mo, y}
	for _, a := range vs {
		for _, b := range vs {
			if c := Compare(a, b); c != 0 {
				t.Errorf("Compare(%#v, %#v) = %d, want 0", a, b, c)
			}
		}
	}
	if !d.Equal(y) {
		t.Errorf("%v.Equal(%v) = false, want true", d, y)
	}

	checkOrder := func(older, younger Value) {
		t.Helper()
		if Compare(older, older) != 0 || Compare(younger, younger) != 0 {
			t.Errorf("values do not compare equal to themselves: %v, %v", older, younger)
		}
		if c := Compare(older, younger); c != -1 {
			t.Errorf("Compare(%v, %v) = %d, want -1", older, younger, c)
		}
		if c := Compare(younger, older); c != 1 {
			t.Errorf("Compare(%v, %v) = %d, want 1", younger, older, c)
		}
	}
	checkOrder(NewSecond(2014, 1, 1, 0, 0, 0), NewSecond(2015, 1, 1, 0, 0, 0))
	checkOrder(NewSecond(2014, 1, 1, 0, 0, 0), NewSecond(2014, 2, 1, 0, 0, 0))
	checkOrder(NewSecond(2014, 1, 1, 0, 0, 0), NewSecond(2014, 1, 2, 0, 0, 0))
	checkOrder(NewSecond(2014, 1, 1, 0, 0, 0), NewSecond(2014, 1, 1, 1, 0, 0))
	checkOrder(NewSecond(2014, 1, 1, 1, 0, 0), NewSecond(2014, 1, 1, 1, 1, 0))
	checkOrder(NewSecond(2014, 1, 1, 1, 1, 0), NewSecond(2014, 1, 1, 1, 1, 1))
	checkOrder(NewDay(2014, 1, 1), NewMinute(2014, 1, 1, 1, 1))
	checkOrder(NewDay(2014, 1, 1), NewMonth(2014, 2))
	checkOrder(MinSecond, MaxYear)

	day := NewDay(2014, 1, 1)
	if !day.Before(NewMonth(2014, 2)) || day.After(NewMonth(2014, 2)) {
		t.Errorf("%v is not before 2014-02", day)
	}

	days := []Day{NewDay(2016, 1, 1), NewDay(-5, 3, 1), NewDay(2015, 12, 31)}
	slices.SortFunc(days, func(a, b Day) int { return a.Compare(b) })
	want := []Day{NewDay(-5, 3, 1), NewDay(2015, 12, 31), NewDay(2016, 1, 1)}
	if !slices.Equal(days, want) {
		t.Errorf("sorted = %v, want %v", days, want)
	}
}

func TestFromTime(t *testing.T) {
	tm := time.Date(2024, 1, 10, 13, 24, 42, 999, time.UTC)
	if got, want := FromTime(tm), NewSecond(2024, 1, 10, 13, 24, 42); got != want {
		t.Errorf("FromTime(%v) = %v, want %v", tm, got, want)
	}
	if got, want := Today(time.UTC), DayOf(FromTime(time.Now().UTC())); got != want {
		// Tolerate running across midnight.
		if got != want.Sub(1) {
			t.Errorf("Today(time.UTC) = %v, want %v", got, want)
		}
	}
}

// FuzzNewSecond compares normalization to [time.Date].
func FuzzNewSecond(f *testing.F) {
	f.Add(int64(2016), int64(1), int64(28), int64(17), int64(14), int64(12))
	f.Add(int64(2016), int64(-42), int64(122), int64(99), int64(-147), int64(4949))
	f.Add(int64(2016), int64(1), int64(-292195), int64(17), int64(14), int64(12))
	f.Add(int64(-1), int64(3), int64(0), int64(-1), int64(60), int64(-1))
	f.Fuzz(func(t *testing.T, y, m, d, hh, mm, ss int64) {
		const lim = 1 << 24
		for _, v := range []int64{y, m, d, hh, mm, ss} {
			if v < -lim || v > lim {
				return
			}
		}
		s := NewSecond(y, m, d, hh, mm, ss)
		tm := time.Date(int(y), time.Month(m), int(d), int(hh), int(mm), int(ss), 0, time.UTC)
		if want := FromTime(tm); s != want {
			t.Fatalf("NewSecond(%d, %d, %d, %d, %d, %d) = %v, want %v", y, m, d, hh, mm, ss, s, want)
		}
	})
}

// FuzzDiff compares differences to [time.Time.Unix].
func FuzzDiff(f *testing.F) {
	f.Add(int64(0), int64(86400*365))
	f.Add(int64(-1), int64(1))
	f.Add(int64(951782400), int64(-62135596800))
	f.Fuzz(func(t *testing.T, a, b int64) {
		const lim = 1 << 40
		if a < -lim || a > lim || b < -lim || b > lim {
			return
		}
		sa, sb := NewSecond(1970, 1, 1, 0, 0, a), NewSecond(1970, 1, 1, 0, 0, b)
		if want := FromTime(time.Unix(a, 0).UTC()); sa != want {
			t.Fatalf("NewSecond(1970, 1, 1, 0, 0, %d) = %v, want %v", a, sa, want)
		}
		if got := sa.Diff(sb); got != a-b {
			t.Fatalf("%v - %v = %d, want %d", sa, sb, got, a-b)
		}
		if got := sb.Add(a - b); got != sa {
			t.Fatalf("%v + %d = %v, want %v", sb, a-b, got, sa)
		}
		da, db := DayOf(sa), DayOf(sb)
		if got, want := da.Diff(db), SecondOf(da).Diff(SecondOf(db))/86400; got != want {
			t.Fatalf("%v - %v = %d days, want %d", da, db, got, want)
		}
	})
}
