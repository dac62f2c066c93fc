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
	"testing"
	gotime "time"

	"github.com/stretchr/testify/require"
)

func TestCoreTimeFields(t *testing.T) {
	ct := FromDate(2019, 11, 25, 23, 59, 58, 999999)
	require.Equal(t, 2019, ct.Year())
	require.Equal(t, 11, ct.Month())
	require.Equal(t, 25, ct.Day())
	require.Equal(t, 23, ct.Hour())
	require.Equal(t, 59, ct.Minute())
	require.Equal(t, 58, ct.Second())
	require.Equal(t, 999999, ct.Microsecond())
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		year, month, day int
		expect           gotime.Weekday
	}{
		{2018, 12, 3, gotime.Monday},
		{2018, 12, 4, gotime.Tuesday},
		{2018, 12, 7, gotime.Friday},
		{2018, 12, 8, gotime.Saturday},
		{2018, 12, 9, gotime.Sunday},
		{2010, 1, 7, gotime.Thursday},
		{2016, 9, 3, gotime.Saturday},
	}
	for _, tt := range tests {
		ct := FromDate(tt.year, tt.month, tt.day, 0, 0, 0, 0)
		require.Equal(t, tt.expect, ct.Weekday())
	}
}

func TestYearDay(t *testing.T) {
	tests := []struct {
		year, month, day int
		expect           int
	}{
		{2018, 1, 1, 1},
		{2018, 2, 28, 59},
		{2018, 12, 31, 365},
		{2020, 2, 29, 60},
		{2020, 3, 1, 61},
		{2020, 12, 31, 366},
		{2012, 12, 21, 356},
		{2018, 0, 10, 0},
		{2018, 10, 0, 0},
	}
	for _, tt := range tests {
		ct := FromDate(tt.year, tt.month, tt.day, 0, 0, 0, 0)
		require.Equal(t, tt.expect, ct.YearDay())
	}
}

func TestYearWeek(t *testing.T) {
	tests := []struct {
		year, month, day int
		wantYear         int
		wantWeek         int
	}{
		{2010, 1, 7, 2010, 1},
		{2012, 10, 1, 2012, 40},
		{2012, 12, 21, 2012, 51},
		{2016, 9, 3, 2016, 35},
		// January 1st of year 0 belongs to the last week of year -1.
		{0, 1, 1, -1, 52},
	}
	for _, tt := range tests {
		ct := FromDate(tt.year, tt.month, tt.day, 0, 0, 0, 0)
		year, week := ct.YearWeek()
		require.Equal(t, tt.wantYear, year, "date %04d-%02d-%02d", tt.year, tt.month, tt.day)
		require.Equal(t, tt.wantWeek, week, "date %04d-%02d-%02d", tt.year, tt.month, tt.day)
	}
}

func TestWeekZeroGuard(t *testing.T) {
	require.Equal(t, 0, FromDate(2019, 0, 1, 0, 0, 0, 0).Week())
	require.Equal(t, 0, FromDate(2019, 1, 0, 0, 0, 0, 0).Week())
	require.Equal(t, 1, FromDate(2010, 1, 7, 0, 0, 0, 0).Week())
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year   int
		expect bool
	}{
		{1900, false},
		{1996, true},
		{2000, true},
		{2100, false},
		{2012, true},
		{2019, false},
	}
	for _, tt := range tests {
		ct := FromDate(tt.year, 1, 1, 0, 0, 0, 0)
		require.Equal(t, tt.expect, ct.IsLeapYear())
	}
}

func TestGetLastDay(t *testing.T) {
	tests := []struct {
		year, month int
		expect      int
	}{
		{2000, 1, 31},
		{2000, 2, 29},
		{2001, 2, 28},
		{2004, 4, 30},
		{2004, 13, 0},
		{2004, 0, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expect, GetLastDay(tt.year, tt.month))
	}
}

func TestCompareTime(t *testing.T) {
	tests := []struct {
		a, b   CoreTime
		expect int
	}{
		{FromDate(2019, 3, 17, 12, 13, 14, 0), FromDate(2019, 3, 17, 12, 13, 14, 0), 0},
		{FromDate(2019, 4, 5, 1, 2, 3, 4), FromDate(2018, 4, 5, 1, 2, 3, 4), 1},
		{FromDate(2019, 4, 5, 1, 2, 3, 4), FromDate(2019, 4, 5, 1, 2, 3, 5), -1},
		{FromDate(0, 0, 0, 0, 0, 0, 0), FromDate(2019, 4, 5, 1, 2, 3, 4), -1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expect, compareTime(tt.a, tt.b))
		require.Equal(t, -tt.expect, compareTime(tt.b, tt.a))
	}
}

func TestGetDateFromDaynr(t *testing.T) {
	tests := []struct {
		daynr            uint
		year, month, day uint
	}{
		{0, 0, 0, 0},
		{100, 0, 0, 0},
		{365, 0, 0, 0},
		{366, 1, 1, 1},
		{734927, 2012, 2, 29},
		{735000, 2012, 5, 12},
		{3652424, 9999, 12, 31},
		{3652500, 0, 0, 0},
	}
	for _, tt := range tests {
		year, month, day := getDateFromDaynr(tt.daynr)
		require.Equal(t, tt.year, year, "daynr %d", tt.daynr)
		require.Equal(t, tt.month, month, "daynr %d", tt.daynr)
		require.Equal(t, tt.day, day, "daynr %d", tt.daynr)
	}
}

func TestCalcDaynr(t *testing.T) {
	require.Equal(t, 0, calcDaynr(0, 0, 0))
	require.Equal(t, 3652424, calcDaynr(9999, 12, 31))
	require.Equal(t, 366, calcDaynr(1, 1, 1))
	require.Equal(t, 735000, calcDaynr(2012, 5, 12))
}
