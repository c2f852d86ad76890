// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"fmt"
	"strings"

	"gonih.org/civil"
)

// Alignment names, as accepted by --align and --to.
var alignments = []string{"second", "minute", "hour", "day", "month", "year"}

func decode[T civil.Value, P interface {
	*T
	encoding.TextUnmarshaler
}](s string) (civil.Value, error) {
	var t T
	if err := P(&t).UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return t, nil
}

// parseValue parses s in the default layout of its alignment, which is
// determined by the shape of s.
//
//	2006-01-02T15:04:05  Second
//	2006-01-02T15:04     Minute
//	2006-01-02T15        Hour
//	2006-01-02           Day
//	2006-01              Month
//	2006                 Year
func parseValue(s string) (civil.Value, error) {
	date, clock, ok := strings.Cut(s, "T")
	if ok {
		switch strings.Count(clock, ":") {
		case 2:
			return decode[civil.Second](s)
		case 1:
			return decode[civil.Minute](s)
		case 0:
			return decode[civil.Hour](s)
		}
		return nil, fmt.Errorf("invalid civil time %q", s)
	}
	switch strings.Count(strings.TrimPrefix(date, "-"), "-") {
	case 2:
		return decode[civil.Day](s)
	case 1:
		return decode[civil.Month](s)
	case 0:
		return decode[civil.Year](s)
	}
	return nil, fmt.Errorf("invalid civil time %q", s)
}

// alignmentOf returns the name of the alignment of v.
func alignmentOf(v civil.Value) string {
	switch v.(type) {
	case civil.Second:
		return "second"
	case civil.Minute:
		return "minute"
	case civil.Hour:
		return "hour"
	case civil.Day:
		return "day"
	case civil.Month:
		return "month"
	case civil.Year:
		return "year"
	}
	panic(fmt.Sprintf("unknown civil time %T", v))
}

// realign truncates or extends v to the named alignment.
func realign(v civil.Value, alignment string) (civil.Value, error) {
	switch strings.TrimSuffix(strings.ToLower(alignment), "s") {
	case "second":
		return civil.SecondOf(v), nil
	case "minute":
		return civil.MinuteOf(v), nil
	case "hour":
		return civil.HourOf(v), nil
	case "day":
		return civil.DayOf(v), nil
	case "month":
		return civil.MonthOf(v), nil
	case "year":
		return civil.YearOf(v), nil
	}
	return nil, fmt.Errorf("unknown alignment %q: must be one of %s", alignment, strings.Join(alignments, ", "))
}

// add returns v with n added in its alignment.
func add(v civil.Value, n int64) civil.Value {
	switch v := v.(type) {
	case civil.Second:
		return v.Add(n)
	case civil.Minute:
		return v.Add(n)
	case civil.Hour:
		return v.Add(n)
	case civil.Day:
		return v.Add(n)
	case civil.Month:
		return v.Add(n)
	case civil.Year:
		return v.Add(n)
	}
	panic(fmt.Sprintf("unknown civil time %T", v))
}

// sub returns v with n subtracted in its alignment.
func sub(v civil.Value, n int64) civil.Value {
	switch v := v.(type) {
	case civil.Second:
		return v.Sub(n)
	case civil.Minute:
		return v.Sub(n)
	case civil.Hour:
		return v.Sub(n)
	case civil.Day:
		return v.Sub(n)
	case civil.Month:
		return v.Sub(n)
	case civil.Year:
		return v.Sub(n)
	}
	panic(fmt.Sprintf("unknown civil time %T", v))
}

func diffAs[T interface {
	civil.Value
	Diff(T) int64
}](a T, b civil.Value) (int64, error) {
	u, ok := b.(T)
	if !ok {
		return 0, fmt.Errorf("can not subtract %s %v from %s %v", alignmentOf(b), b, alignmentOf(a), a)
	}
	return a.Diff(u), nil
}

// diff returns a-b in units of their common alignment.
func diff(a, b civil.Value) (int64, error) {
	switch a := a.(type) {
	case civil.Second:
		return diffAs(a, b)
	case civil.Minute:
		return diffAs(a, b)
	case civil.Hour:
		return diffAs(a, b)
	case civil.Day:
		return diffAs(a, b)
	case civil.Month:
		return diffAs(a, b)
	case civil.Year:
		return diffAs(a, b)
	}
	panic(fmt.Sprintf("unknown civil time %T", a))
}
