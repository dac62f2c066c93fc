// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	gotime "time"
)

// CoreTime is the internal struct type for Time.
// The calendar fields are packed into one uint64:
//
//	| year: 14 bits | month: 4 bits | day: 5 bits | hour: 5 bits |
//	| minute: 6 bits | second: 6 bits | microsecond: 20 bits | reserved: 4 bits |
type CoreTime uint64

// ZeroCoreTime is the zero value for CoreTime type.
var ZeroCoreTime = CoreTime(0)

// Year returns the year value.
func (t CoreTime) Year() int {
	return int((uint64(t) & yearBitFieldMask) >> yearBitFieldOffset)
}

// Month returns the month value.
func (t CoreTime) Month() int {
	return int((uint64(t) & monthBitFieldMask) >> monthBitFieldOffset)
}

// Day returns the day value.
func (t CoreTime) Day() int {
	return int((uint64(t) & dayBitFieldMask) >> dayBitFieldOffset)
}

// Hour returns the hour value.
func (t CoreTime) Hour() int {
	return int((uint64(t) & hourBitFieldMask) >> hourBitFieldOffset)
}

// Minute returns the minute value.
func (t CoreTime) Minute() int {
	return int((uint64(t) & minuteBitFieldMask) >> minuteBitFieldOffset)
}

// Second returns the second value.
func (t CoreTime) Second() int {
	return int((uint64(t) & secondBitFieldMask) >> secondBitFieldOffset)
}

// Microsecond returns the microsecond value.
func (t CoreTime) Microsecond() int {
	return int((uint64(t) & microsecondBitFieldMask) >> microsecondBitFieldOffset)
}

// IsLeapYear returns if it's leap year.
func (t CoreTime) IsLeapYear() bool {
	return isLeapYear(uint16(t.Year()))
}

// Weekday returns weekday value.
func (t CoreTime) Weekday() gotime.Weekday {
	daynr := calcDaynr(t.Year(), t.Month(), t.Day())
	weekday := calcWeekday(daynr, true)
	return gotime.Weekday(weekday)
}

// YearDay returns year day value.
func (t CoreTime) YearDay() int {
	if t.Month() == 0 || t.Day() == 0 {
		return 0
	}
	return calcDaynr(t.Year(), t.Month(), t.Day()) -
		calcDaynr(t.Year(), 1, 1) + 1
}

// defaultWeekBehaviour is the only week numbering this evaluator uses:
// Monday is the first day of the week and week one is the first week holding
// four or more days of the new year. The multi-mode WEEK() family is out of
// scope, so the format directives all share this behaviour.
const defaultWeekBehaviour = weekBehaviourMondayFirst | weekBehaviourYear

// Week returns the week value.
func (t CoreTime) Week() int {
	if t.Month() == 0 || t.Day() == 0 {
		return 0
	}
	_, week := calcWeek(t, defaultWeekBehaviour)
	return week
}

// YearWeek returns year and week. The year may differ from the calendar year
// for dates belonging to the last week of the previous year or the first week
// of the next one.
func (t CoreTime) YearWeek() (year int, week int) {
	return calcWeek(t, defaultWeekBehaviour)
}

func isLeapYear(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysByMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// GetLastDay returns the last day of the month.
func GetLastDay(year, month int) int {
	var day = 0
	if month > 0 && month <= 12 {
		day = daysByMonth[month-1]
	}
	if month == 2 && isLeapYear(uint16(year)) {
		day = 29
	}
	return day
}

// calcDaynr calculates days since 0000-00-00.
func calcDaynr(year, month, day int) int {
	if year == 0 && month == 0 {
		return 0
	}

	delsum := 365*year + 31*(month-1) + day
	if month <= 2 {
		year--
	} else {
		delsum -= (month*4 + 23) / 10
	}
	temp := ((year/100 + 1) * 3) / 4
	return delsum + year/4 - temp
}

// calcDaysInYear calculates days in one year, it works with 0 <= year <= 99.
func calcDaysInYear(year int) int {
	if (year&3) == 0 && (year%100 != 0 || (year%400 == 0 && (year != 0))) {
		return 366
	}
	return 365
}

// calcWeekday calculates weekday from daynr, returns 0 for Monday, 1 for Tuesday ...
// if sundayFirstDayOfWeek is true, 0 is Sunday, 1 is Monday ...
func calcWeekday(daynr int, sundayFirstDayOfWeek bool) int {
	daynr += 5
	if sundayFirstDayOfWeek {
		daynr++
	}
	return daynr % 7
}

type weekBehaviour uint

const (
	// weekBehaviourMondayFirst set Monday as first day of week; otherwise Sunday is first day of week
	weekBehaviourMondayFirst weekBehaviour = 1 << iota
	// If set, Week is in range 1-53, otherwise Week is in range 0-53.
	// Note that this flag is only relevant if WEEK_JANUARY is not set.
	weekBehaviourYear
	// If not set, Weeks are numbered according to ISO 8601:1988.
	// If set, the week that contains the first 'first-day-of-week' is week 1.
	weekBehaviourFirstWeekday
)

func (v weekBehaviour) test(flag weekBehaviour) bool {
	return (v & flag) != 0
}

// calcWeek calculates week and year for the CoreTime.
func calcWeek(t CoreTime, wb weekBehaviour) (year int, week int) {
	var days int
	ty, tm, td := t.Year(), t.Month(), t.Day()
	daynr := calcDaynr(ty, tm, td)
	firstDaynr := calcDaynr(ty, 1, 1)
	mondayFirst := wb.test(weekBehaviourMondayFirst)
	weekYear := wb.test(weekBehaviourYear)
	firstWeekday := wb.test(weekBehaviourFirstWeekday)
	weekday := calcWeekday(firstDaynr, !mondayFirst)

	year = ty

	if tm == 1 && td <= 7-weekday {
		if !weekYear &&
			((firstWeekday && weekday != 0) || (!firstWeekday && weekday >= 4)) {
			week = 0
			return
		}
		weekYear = true
		year--
		days = calcDaysInYear(year)
		firstDaynr -= days
		weekday = (weekday + 53*7 - days) % 7
	}

	if (firstWeekday && weekday != 0) ||
		(!firstWeekday && weekday >= 4) {
		days = daynr - (firstDaynr + 7 - weekday)
	} else {
		days = daynr - (firstDaynr - weekday)
	}

	if weekYear && days >= 52*7 {
		weekday = (weekday + calcDaysInYear(year)) % 7
		if (!firstWeekday && weekday < 4) ||
			(firstWeekday && weekday == 0) {
			year++
			week = 1
			return
		}
	}
	week = days/7 + 1
	return
}

// getDateFromDaynr changes a daynr to year, month and day,
// daynr 0 is returned as date 00.00.00
func getDateFromDaynr(daynr uint) (year uint, month uint, day uint) {
	if daynr <= 365 || daynr >= 3652500 {
		return
	}

	year = daynr * 100 / 36525
	temp := (((year - 1) / 100 + 1) * 3) / 4
	dayOfYear := daynr - year*365 - (year-1)/4 + temp

	daysInYear := uint(calcDaysInYear(int(year)))
	for dayOfYear > daysInYear {
		dayOfYear -= daysInYear
		year++
		daysInYear = uint(calcDaysInYear(int(year)))
	}

	leapDay := uint(0)
	if daysInYear == 366 {
		if dayOfYear > 31+28 {
			dayOfYear--
			if dayOfYear == 31+28 {
				// Handle leapyears leapday.
				leapDay = 1
			}
		}
	}

	month = 1
	for _, days := range daysByMonth {
		if dayOfYear <= uint(days) {
			break
		}
		dayOfYear -= uint(days)
		month++
	}

	day = dayOfYear + leapDay
	return
}

func datetimeToUint64(t CoreTime) uint64 {
	return dateToUint64(t)*1e6 + timeToUint64(t)
}

func dateToUint64(t CoreTime) uint64 {
	return uint64(t.Year())*1e4 +
		uint64(t.Month())*1e2 +
		uint64(t.Day())
}

func timeToUint64(t CoreTime) uint64 {
	return uint64(t.Hour())*1e4 +
		uint64(t.Minute())*1e2 +
		uint64(t.Second())
}

// compareTime compare two CoreTime.
// return:
//
//	 0: if a == b
//	 1: if a > b
//	-1: if a < b
func compareTime(a, b CoreTime) int {
	ta := datetimeToUint64(a)
	tb := datetimeToUint64(b)

	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}

	switch {
	case a.Microsecond() < b.Microsecond():
		return -1
	case a.Microsecond() > b.Microsecond():
		return 1
	}

	return 0
}
