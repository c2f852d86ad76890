// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// The normalization functions turn arbitrary field values into fields. Each
// one normalizes a single magnitude and hands the carry to the next coarser
// one, so that no intermediate value is ever scaled up to a smaller unit. A
// day count over the full int64 range of years would not fit into an int64.
//
// The argument lists follow the same pattern: already normalized fields are
// passed as int8, the rest as int64. A "c" prefix denotes a carry into that
// field, which is kept separate from the field itself to avoid overflowing
// their sum.

// nDay normalizes the day d of month m in year y, plus the carry cd.
func nDay(y int64, m int8, d, cd int64, hh, mm, ss int8) fields {
	// Work on a small year ey that is congruent to y modulo 400 and add the
	// change back at the end. The Gregorian calendar repeats itself every
	// 400 years, so ey computes the same calendar as y.
	ey := y % 400
	oey := ey

	ey += (cd / daysPer400Years) * 400
	cd %= daysPer400Years
	if cd < 0 {
		ey -= 400
		cd += daysPer400Years
	}
	ey += (d / daysPer400Years) * 400
	d = d%daysPer400Years + cd
	if d > 0 {
		if d > daysPer400Years {
			ey += 400
			d -= daysPer400Years
		}
	} else {
		if d > -daysPerYear {
			// Stepping backwards into the previous year is common, so
			// handle it directly instead of counting up from 400 years
			// before.
			ey--
			d += daysPerYearAt(ey, m)
		} else {
			ey -= 400
			d += daysPer400Years
		}
	}
	// 0 < d <= 146097

	if d > daysPerYear {
		yi := yearIndex(ey, m)
		for {
			n := daysPerCentury(yi)
			if d <= n {
				break
			}
			d -= n
			ey += 100
			yi += 100
			if yi >= 400 {
				yi -= 400
			}
		}
		for {
			n := daysPer4YearsAt(yi)
			if d <= n {
				break
			}
			d -= n
			ey += 4
			yi += 4
			if yi >= 400 {
				yi -= 400
			}
		}
		for {
			n := daysPerYearAt(ey, m)
			if d <= n {
				break
			}
			d -= n
			ey++
		}
	}
	if d > 28 {
		for {
			n := daysPerMonth(ey, m)
			if d <= n {
				break
			}
			d -= n
			m++
			if m > 12 {
				ey++
				m = 1
			}
		}
	}
	return fields{
		y:  y + (ey - oey),
		m:  m,
		d:  int8(d),
		hh: hh,
		mm: mm,
		ss: ss,
	}
}

// nMon normalizes the month m of year y and passes the rest on to nDay.
func nMon(y, m, d, cd int64, hh, mm, ss int8) fields {
	if m != 12 {
		y += m / 12
		m %= 12
		if m <= 0 {
			y--
			m += 12
		}
	}
	return nDay(y, int8(m), d, cd, hh, mm, ss)
}

// nHour normalizes the hour hh, adding its carry to the day carry cd.
func nHour(y, m, d, cd, hh int64, mm, ss int8) fields {
	cd += hh / 24
	hh %= 24
	if hh < 0 {
		cd--
		hh += 24
	}
	return nMon(y, m, d, cd, int8(hh), mm, ss)
}

// nMin normalizes the minute mm. Its carry ch is split into days and hours
// before being combined with hh, which may already be arbitrarily large.
func nMin(y, m, d, hh, ch, mm int64, ss int8) fields {
	ch += mm / 60
	mm %= 60
	if mm < 0 {
		ch--
		mm += 60
	}
	return nHour(y, m, d, hh/24+ch/24, hh%24+ch%24, int8(mm), ss)
}

// nSec normalizes all fields, starting with the second ss.
func nSec(y, m, d, hh, mm, ss int64) fields {
	// Fast path for fields that are already normalized. A day up to 28 is
	// valid in every month, so no calendar lookup is needed.
	if 0 <= ss && ss < 60 {
		nss := int8(ss)
		if 0 <= mm && mm < 60 {
			nmm := int8(mm)
			if 0 <= hh && hh < 24 {
				nhh := int8(hh)
				if 1 <= d && d <= 28 && 1 <= m && m <= 12 {
					return fields{y: y, m: int8(m), d: int8(d), hh: nhh, mm: nmm, ss: nss}
				}
				return nMon(y, m, d, 0, nhh, nmm, nss)
			}
			return nHour(y, m, d, hh/24, hh%24, nmm, nss)
		}
		return nMin(y, m, d, hh, mm/60, mm%60, nss)
	}
	cm := ss / 60
	ss %= 60
	if ss < 0 {
		cm--
		ss += 60
	}
	return nMin(y, m, d, hh, mm/60+cm/60, mm%60+cm%60, int8(ss))
}
