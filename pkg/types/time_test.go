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

package types_test

import (
	"testing"
	gotime "time"

	"github.com/stretchr/testify/require"

	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/types"
)

func TestTimeTypeAndFsp(t *testing.T) {
	ct := types.FromDate(2019, 11, 25, 12, 30, 45, 123456)

	dt := types.NewTime(ct, mysql.TypeDatetime, 6)
	require.Equal(t, mysql.TypeDatetime, dt.Type())
	require.Equal(t, 6, dt.Fsp())
	require.Equal(t, ct, dt.CoreTime())

	ts := types.NewTime(ct, mysql.TypeTimestamp, 3)
	require.Equal(t, mysql.TypeTimestamp, ts.Type())
	require.Equal(t, 3, ts.Fsp())

	d := types.NewTime(ct, mysql.TypeDate, 6)
	require.Equal(t, mysql.TypeDate, d.Type())
	require.Equal(t, 0, d.Fsp())

	unspec := types.NewTime(ct, mysql.TypeDatetime, types.UnspecifiedFsp)
	require.Equal(t, types.DefaultFsp, unspec.Fsp())
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		time   types.Time
		expect string
	}{
		{types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 123456), mysql.TypeDatetime, 6), "2012-12-21 23:12:34.123456"},
		{types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 123456), mysql.TypeDatetime, 2), "2012-12-21 23:12:34.12"},
		{types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 0), mysql.TypeDatetime, 0), "2012-12-21 23:12:34"},
		{types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 123456), mysql.TypeDate, 0), "2012-12-21"},
		{types.ZeroDatetime, types.ZeroDatetimeStr},
		{types.ZeroDate, types.ZeroDateStr},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expect, tt.time.String())
	}
}

func TestIsZeroAndInvalidZero(t *testing.T) {
	require.True(t, types.ZeroDatetime.IsZero())
	require.True(t, types.ZeroDatetime.InvalidZero())

	partial := types.NewTime(types.FromDate(2019, 0, 1, 0, 0, 0, 0), mysql.TypeDate, 0)
	require.False(t, partial.IsZero())
	require.True(t, partial.InvalidZero())

	partial = types.NewTime(types.FromDate(2019, 1, 0, 0, 0, 0, 0), mysql.TypeDate, 0)
	require.False(t, partial.IsZero())
	require.True(t, partial.InvalidZero())

	normal := types.NewTime(types.FromDate(2019, 1, 1, 0, 0, 0, 0), mysql.TypeDate, 0)
	require.False(t, normal.IsZero())
	require.False(t, normal.InvalidZero())
}

func TestTimeCompare(t *testing.T) {
	a := types.NewTime(types.FromDate(2019, 3, 17, 12, 13, 14, 0), mysql.TypeDatetime, 0)
	b := types.NewTime(types.FromDate(2019, 3, 17, 12, 13, 14, 1), mysql.TypeDatetime, 6)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))

	// Type and fsp bits do not take part in comparison.
	c := types.NewTime(types.FromDate(2019, 3, 17, 12, 13, 14, 0), mysql.TypeDate, 0)
	require.Equal(t, 0, a.Compare(c))

	mx := types.NewTime(types.MaxDatetime, mysql.TypeDatetime, 6)
	mn := types.NewTime(types.MinDatetime, mysql.TypeDatetime, 0)
	require.Equal(t, 1, mx.Compare(mn))
}

func TestFromDateChecked(t *testing.T) {
	_, ok := types.FromDateChecked(2019, 11, 25, 23, 59, 59, 999999)
	require.True(t, ok)

	_, ok = types.FromDateChecked(2019, 16, 25, 0, 0, 0, 0)
	require.False(t, ok)
	_, ok = types.FromDateChecked(2019, 11, 32, 0, 0, 0, 0)
	require.False(t, ok)
	_, ok = types.FromDateChecked(2019, 11, 25, 32, 0, 0, 0)
	require.False(t, ok)
	_, ok = types.FromDateChecked(2019, 11, 25, 0, 64, 0, 0)
	require.False(t, ok)
	_, ok = types.FromDateChecked(2019, 11, 25, 0, 0, 64, 0)
	require.False(t, ok)
	_, ok = types.FromDateChecked(2019, 11, 25, 0, 0, 0, 1<<20)
	require.False(t, ok)
}

func TestFromGoTime(t *testing.T) {
	v := gotime.Date(2019, gotime.November, 25, 12, 30, 45, 123456000, gotime.UTC)
	ct := types.FromGoTime(v)
	require.Equal(t, types.FromDate(2019, 11, 25, 12, 30, 45, 123456), ct)
}

func TestTimeFromDays(t *testing.T) {
	tests := []struct {
		days   int64
		expect string
	}{
		{-140, "0000-00-00"},
		{0, "0000-00-00"},
		{140, "0000-00-00"},
		{365, "0000-00-00"},
		{366, "0001-01-01"},
		{734927, "2012-02-29"},
		{735000, "2012-05-12"},
		{3652424, "9999-12-31"},
		{3652425, "0000-00-00"},
	}
	for _, tt := range tests {
		got := types.TimeFromDays(tt.days)
		require.Equal(t, mysql.TypeDate, got.Type())
		require.Equal(t, tt.expect, got.String(), "days %d", tt.days)
	}
}

func TestDateFormat(t *testing.T) {
	tests := []struct {
		time   types.Time
		layout string
		expect string
	}{
		{
			types.NewTime(types.FromDate(2010, 1, 7, 23, 12, 34, 123450), mysql.TypeDatetime, 6),
			"%b %M %m %c %D %d %e %j %k %h %i %p %r %T %s %f %U %u %V %v %a %W %w %X %x %Y %y %%",
			"Jan January 01 1 7th 07 7 007 23 11 12 PM 11:12:34 PM 23:12:34 34 123450 01 01 01 01 Thu Thursday 4 2010 2010 2010 10 %",
		},
		{
			types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 123456), mysql.TypeDatetime, 6),
			"%b %M %m %c %D %d %e %j %k %h %i %p %r %T %s %f %U %u %V %v %a %W %w %X %x %Y %y %%",
			"Dec December 12 12 21st 21 21 356 23 11 12 PM 11:12:34 PM 23:12:34 34 123456 51 51 51 51 Fri Friday 5 2012 2012 2012 12 %",
		},
		{
			types.NewTime(types.FromDate(0, 1, 1, 0, 0, 0, 123456), mysql.TypeDatetime, 6),
			"%b %M %m %c %D %d %e %j %k %h %i %p %r %T %s %f %v %x %Y %y",
			"Jan January 01 1 1st 01 1 001 0 12 00 AM 12:00:00 AM 00:00:00 00 123456 52 4294967295 0000 00",
		},
		{
			types.NewTime(types.FromDate(2016, 9, 3, 0, 0, 0, 0), mysql.TypeDate, 0),
			"%U %u %V %v %X %x %W %a %%abc %z",
			"35 35 35 35 2016 2016 Saturday Sat %abc z",
		},
		{
			types.NewTime(types.FromDate(2012, 10, 1, 0, 0, 0, 0), mysql.TypeDate, 0),
			"%Y-%m-%d %v %x",
			"2012-10-01 40 2012",
		},
		{
			types.NewTime(types.FromDate(2012, 10, 1, 0, 0, 0, 0), mysql.TypeDate, 0),
			"plain text",
			"plain text",
		},
		{
			types.NewTime(types.FromDate(2012, 10, 1, 0, 0, 0, 0), mysql.TypeDate, 0),
			"100%",
			"100%",
		},
	}
	for _, tt := range tests {
		got, err := tt.time.DateFormat(tt.layout)
		require.NoError(t, err)
		require.Equal(t, tt.expect, got, "layout %q", tt.layout)
	}
}

func TestDateFormatMonthNameOfMonthZero(t *testing.T) {
	zeroMonth := types.NewTime(types.FromDate(2019, 0, 1, 0, 0, 0, 0), mysql.TypeDate, 0)
	_, err := zeroMonth.DateFormat("%M")
	require.Error(t, err)
	require.True(t, types.ErrWrongValue.Equal(err))
	_, err = zeroMonth.DateFormat("%b")
	require.Error(t, err)
}

func BenchmarkDateFormat(b *testing.B) {
	v := types.NewTime(types.FromDate(2012, 12, 21, 23, 12, 34, 123456), mysql.TypeDatetime, 6)
	layout := "%Y-%m-%d %H:%i:%s.%f"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.DateFormat(layout); err != nil {
			b.Fatal(err)
		}
	}
}
