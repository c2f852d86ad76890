// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonih.org/civil/internal/memo"
)

// These are predefined layouts for use in [Time.Format] and [Parse]. The
// reference time used in these layouts is the specific civil time:
//
//	01/02 03:04:05PM '06
//
// That is January 2, 2006 at 15:04:05. The reference time is chosen for
// compatibility with package [time].
//
// The format specification works the same as [time.Layout], except that
// there are no time zones and no fractional seconds. Specifically, the
// recognized components are
//
//	Year: "2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//	Hour: "15" "3" "03" (PM or AM)
//	Minute: "4" "04"
//	Second: "5" "05"
//	AM/PM mark: "PM" "pm"
//
// Unlike [time.Parse], a "2006" year that is not immediately followed by
// another numeric component accepts a leading minus sign and more than four
// digits, so that every year written by [Time.Format] can be read back.
const (
	Layout   = "01/02 03:04:05PM '06" // The reference time, in numerical order
	RFC822   = "02 Jan 06 15:04"
	RFC1123  = "Mon, 02 Jan 2006 15:04:05"
	RFC3339  = "2006-01-02T15:04:05"
	Kitchen  = "3:04PM"
	DateTime = "2006-01-02 15:04:05"
	DateOnly = "2006-01-02"
	TimeOnly = "15:04:05"
)

var longDayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var shortDayNames = []string{
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
	"Sun",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opHour
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // package time treats this as "_"+opLongYear, but it is simpler to just handle it with an extra opcode
	opUnderDay
	opUnderYearDay
	opZeroHour12
	opHour12
	opZeroMinute
	opMinute
	opZeroSecond
	opSecond
	opPM
	opPMLower

	opInvalid
)

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	switch op {
	case opLiteral:
		return "<literal>"
	case opLongMonth:
		return "January"
	case opMonth:
		return "Jan"
	case opLongWeekDay:
		return "Monday"
	case opWeekDay:
		return "Mon"
	case opZeroYearDay:
		return "002"
	case opZeroMonth:
		return "01"
	case opZeroDay:
		return "02"
	case opYear:
		return "06"
	case opHour:
		return "15"
	case opNumMonth:
		return "1"
	case opLongYear:
		return "2006"
	case opDay:
		return "2"
	case opUnderLongYear:
		return "_2006"
	case opUnderDay:
		return "_2"
	case opUnderYearDay:
		return "__2"
	case opZeroHour12:
		return "03"
	case opHour12:
		return "3"
	case opZeroMinute:
		return "04"
	case opMinute:
		return "4"
	case opZeroSecond:
		return "05"
	case opSecond:
		return "5"
	case opPM:
		return "PM"
	case opPMLower:
		return "pm"
	}
	panic("invalid fmtOp")
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// numeric reports whether op reads a run of digits when parsing.
func (op fmtOp) numeric() bool {
	switch op {
	case opLiteral, opLongMonth, opMonth, opLongWeekDay, opWeekDay, opPM, opPMLower, opInvalid:
		return false
	}
	return true
}

// memoize compiled layout strings.
var programs memo.Table[string, []inst]

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) []inst {
	var prog []inst
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// Format returns a textual representation of t formatted according to the
// layout defined by the argument. See the documentation for the constant
// called Layout to see how to represent the layout format.
func (t Time[U]) Format(layout string) string {
	const bufSize = 64
	var b []byte
	max := len(layout) + 10
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	return string(t.AppendFormat(b, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (t Time[U]) AppendFormat(b []byte, layout string) []byte {
	return appendFormat(b, t.canonical(), layout)
}

// appendPad appends v, zero or space padded on the left to width.
func appendPad(b []byte, v uint64, width int, pad byte) []byte {
	for w := uint64(10); width > 1; width-- {
		if v < w {
			b = append(b, pad)
		}
		w *= 10
	}
	return strconv.AppendUint(b, v, 10)
}

func appendFormat(b []byte, f fields, layout string) []byte {
	prog := programs.Load(layout, parseLayout)

	for _, i := range prog {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := f.y % 100
			if y < 0 {
				y = -y
			}
			b = appendPad(b, uint64(y), 2, '0')
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			// The magnitude of math.MinInt64 only fits into a uint64.
			y := uint64(f.y)
			if f.y < 0 {
				b = append(b, '-')
				y = -y
			}
			b = appendPad(b, y, 4, '0')
		case opMonth:
			b = append(b, shortMonthNames[f.m-1]...)
		case opLongMonth:
			b = append(b, longMonthNames[f.m-1]...)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(f.m), 10)
		case opZeroMonth:
			b = appendPad(b, uint64(f.m), 2, '0')
		case opWeekDay:
			b = append(b, shortDayNames[weekdayOf(f)]...)
		case opLongWeekDay:
			b = append(b, longDayNames[weekdayOf(f)]...)
		case opDay:
			b = strconv.AppendInt(b, int64(f.d), 10)
		case opUnderDay:
			b = appendPad(b, uint64(f.d), 2, ' ')
		case opZeroDay:
			b = appendPad(b, uint64(f.d), 2, '0')
		case opUnderYearDay:
			b = appendPad(b, uint64(yearDay(f)), 3, ' ')
		case opZeroYearDay:
			b = appendPad(b, uint64(yearDay(f)), 3, '0')
		case opHour:
			b = appendPad(b, uint64(f.hh), 2, '0')
		case opHour12, opZeroHour12:
			hr := f.hh % 12
			if hr == 0 {
				hr = 12
			}
			if i.op == opZeroHour12 {
				b = appendPad(b, uint64(hr), 2, '0')
			} else {
				b = strconv.AppendInt(b, int64(hr), 10)
			}
		case opMinute:
			b = strconv.AppendInt(b, int64(f.mm), 10)
		case opZeroMinute:
			b = appendPad(b, uint64(f.mm), 2, '0')
		case opSecond:
			b = strconv.AppendInt(b, int64(f.ss), 10)
		case opZeroSecond:
			b = appendPad(b, uint64(f.ss), 2, '0')
		case opPM:
			if f.hh >= 12 {
				b = append(b, "PM"...)
			} else {
				b = append(b, "AM"...)
			}
		case opPMLower:
			if f.hh >= 12 {
				b = append(b, "pm"...)
			} else {
				b = append(b, "am"...)
			}
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// Parse parses a formatted string and returns the civil time it represents.
// See the documentation for the constant called Layout to see how to
// represent the format. The second argument must be parseable using the
// format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. Unlike the constructors, Parse does not normalize: fields
// out of their range are an error. The day of the week is checked for syntax
// but is otherwise ignored.
//
// For layouts specifying the two-digit year 06, a value NN >= 69 will be
// treated as 19NN and a value NN < 69 will be treated as 20NN.
//
// To get a civil time of another alignment, convert the result, for example
// with [DayOf].
func Parse(layout, value string) (Second, error) {
	f, err := parse(layout, value)
	if err != nil {
		return Second{}, err
	}
	return of[seconds](f), nil
}

func parse(layout, value string) (fields, error) {
	p := newParser(value)
	var (
		// kept around for error reporting
		alayout, avalue = layout, value
		year            int64
		month           int = -1
		day             int = -1
		yday            int = -1
		hour            int
		min             int
		sec             int
		pmSet, amSet    bool
	)

	prog := programs.Load(layout, parseLayout)

	// Execute the parsing instructions
	for k, i := range prog {
		p.setInst(i)
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opYear:
			year = int64(p.getnumN(2, true))
			if year >= 69 { // Unix time starts Dec 31 1969 in some time zones
				year += 1900
			} else {
				year += 2000
			}
		case opUnderLongYear:
			p.accept("_")
			fallthrough
		case opLongYear:
			greedy := k+1 == len(prog) || !prog[k+1].op.numeric()
			year = p.year(greedy)
		case opMonth:
			month = p.lookup(shortMonthNames) + 1
		case opLongMonth:
			month = p.lookup(longMonthNames) + 1
		case opNumMonth, opZeroMonth:
			month = p.num(i.op == opZeroMonth)
			if !p.hasErr && (month <= 0 || 12 < month) {
				p.invalid("month out of range")
			}
		case opWeekDay:
			// ignore weekday, except for parsing
			p.lookup(shortDayNames)
		case opLongWeekDay:
			// ignore weekday, except for parsing
			p.lookup(longDayNames)
		case opUnderDay:
			p.skipByte(' ')
			fallthrough
		case opDay, opZeroDay:
			day = p.num(i.op == opZeroDay)
		case opUnderYearDay:
			p.skipByte(' ')
			p.skipByte(' ')
			fallthrough
		case opZeroYearDay:
			yday = p.num3(i.op == opZeroYearDay)
		case opHour:
			hour = p.num(false)
			if !p.hasErr && (hour < 0 || 24 <= hour) {
				p.invalid("hour out of range")
			}
		case opHour12, opZeroHour12:
			hour = p.num(i.op == opZeroHour12)
			if !p.hasErr && (hour < 0 || 12 < hour) {
				p.invalid("hour out of range")
			}
		case opMinute, opZeroMinute:
			min = p.num(i.op == opZeroMinute)
			if !p.hasErr && (min < 0 || 60 <= min) {
				p.invalid("minute out of range")
			}
		case opSecond, opZeroSecond:
			sec = p.num(i.op == opZeroSecond)
			if !p.hasErr && (sec < 0 || 60 <= sec) {
				p.invalid("second out of range")
			}
		case opPM, opPMLower:
			am, pm := "AM", "PM"
			if i.op == opPMLower {
				am, pm = "am", "pm"
			}
			switch {
			case strings.HasPrefix(p.value, pm):
				pmSet = true
			case strings.HasPrefix(p.value, am):
				amSet = true
			default:
				p.parseFailed()
			}
			if !p.hasErr {
				p.value = p.value[2:]
			}
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return fields{}, p.err(alayout, avalue)
		}
	}
	if len(p.value) > 0 {
		p.invalid("extra text: " + strconv.Quote(p.value))
		return fields{}, p.err(alayout, avalue)
	}
	p.finish()

	if pmSet && hour < 12 {
		hour += 12
	} else if amSet && hour == 12 {
		hour = 0
	}

	// Validate the parsed date
	if yday >= 0 {
		var (
			d int
			m int
		)
		if isLeap(year) {
			if yday == 31+29 {
				m = 2
				d = 29
			} else if yday > 31+29 {
				yday--
			}
		}
		if yday < 1 || yday > daysPerYear {
			p.invalid("day-of-year out of range")
			return fields{}, p.err(alayout, avalue)
		}
		if m == 0 {
			// Estimate the month assuming 31 days each. The estimate
			// may be too low by at most one month.
			m = (yday-1)/31 + 1
			if m < 12 && daysBefore[m+1] < yday {
				m++
			}
			d = yday - daysBefore[m]
		}
		// If month, day already seen, yday's m, d must match.
		// Otherwise, set them from m, d.
		if month >= 0 && month != m {
			p.invalid("day-of-year does not match month")
			return fields{}, p.err(alayout, avalue)
		}
		month = m
		if day >= 0 && day != d {
			p.invalid("day-of-year does not match day")
			return fields{}, p.err(alayout, avalue)
		}
		day = d
	} else {
		if month < 0 {
			month = 1
		}
		if day < 0 {
			day = 1
		}
	}
	// Validate the day of the month.
	if day < 1 || int64(day) > daysPerMonth(year, int8(month)) {
		p.invalid("day out of range")
		return fields{}, p.err(alayout, avalue)
	}
	return fields{y: year, m: int8(month), d: int8(day), hh: int8(hour), mm: int8(min), ss: int8(sec)}, nil
}

// yearDay returns the day of the year of f, in [1,366].
func yearDay(f fields) int {
	yday := daysBefore[f.m] + int(f.d)
	if f.m > 2 && isLeap(f.y) {
		yday++
	}
	return yday
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

// parser holds the state of a single call to Parse. Its methods record the
// first failure and turn into no-ops afterwards, so the instructions can be
// executed without checking for errors after every step.
type parser struct {
	inst   inst
	hasErr bool
	value  string
	valEl  string
	errMsg string
}

func newParser(value string) *parser {
	return &parser{
		value: value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

// invalid signals that the parse succeeded, but the values where invalid
// (e.g. out of range). msg describes the validation failure.
func (p *parser) invalid(msg string) {
	p.hasErr = true
	p.errMsg = msg
}

func (p *parser) err(layout, value string) error {
	// Cloning the strings here, instead of storing them, means that value
	// does not escape in the happy path, which saves an allocation in Parse.
	v := strings.Clone(value)
	if p.errMsg == "" {
		return &ParseError{
			Layout:     layout,
			Value:      v,
			LayoutElem: strings.Clone(p.inst.String()),
			ValueElem:  strings.Clone(p.valEl),
		}
	}
	return &ParseError{
		Layout:  layout,
		Value:   v,
		Message: p.errMsg,
	}
}

// skipByte skips the given byte, if the input starts with it.
func (p *parser) skipByte(b byte) {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// year accepts a year of four digits. If greedy is set, it also accepts a
// leading minus sign and any number of further digits.
func (p *parser) year(greedy bool) int64 {
	n := 0
	if greedy && strings.HasPrefix(p.value, "-") {
		n++
	}
	digits := n
	for isDigit(p.value, n) && (greedy || n < 4) {
		n++
	}
	if n-digits < 4 {
		p.parseFailed()
		return 0
	}
	y, err := strconv.ParseInt(p.value[:n], 10, 64)
	if err != nil {
		p.invalid("year out of range")
		return 0
	}
	p.value = p.value[n:]
	return y
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// num3 parses s[:1], s[:2] or s[:3] (fixed forces s[:3]) as a decimal integer.
func (p *parser) num3(fixed bool) int {
	return p.getnumN(3, fixed)
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// ParseError describes a problem parsing a civil time string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing civil time %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing civil time %q: %s", e.Value, e.Message)
}
