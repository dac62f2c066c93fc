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

package expression

import (
	"fmt"
	"unicode/utf8"

	"github.com/pelicandb/pelican/pkg/types"
)

// The typed functions below follow one convention: pointer arguments carry
// SQL NULL as nil, results carry it as isNull. Invalid calendar values go
// through EvalContext.HandleInvalidTimeError, so a nil error together with
// isNull means the value was downgraded to a warning.

// DateFormat implements the DATE_FORMAT(date, format) scalar function.
func DateFormat(ctx *EvalContext, t *types.Time, layout []byte) ([]byte, bool, error) {
	if t == nil || layout == nil {
		return nil, true, nil
	}
	if t.InvalidZero() {
		return nil, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
	}
	if !utf8.Valid(layout) {
		return nil, true, errInvalidCharacterString.GenWithStackByArgs("utf8", fmt.Sprintf("%X", layout))
	}
	res, err := t.DateFormat(string(layout))
	if err != nil {
		return nil, true, ctx.HandleInvalidTimeError(err)
	}
	return []byte(res), false, nil
}

// WeekDay implements the WEEKDAY(date) scalar function.
// The result is the weekday index: 0 for Monday through 6 for Sunday.
func WeekDay(ctx *EvalContext, t *types.Time) (int64, bool, error) {
	if t == nil {
		return 0, true, nil
	}
	if t.InvalidZero() {
		return 0, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
	}
	return int64(t.Weekday()+6) % 7, false, nil
}

// DayOfYear implements the DAYOFYEAR(date) scalar function.
func DayOfYear(ctx *EvalContext, t *types.Time) (int64, bool, error) {
	if t == nil {
		return 0, true, nil
	}
	if t.InvalidZero() {
		return 0, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
	}
	return int64(t.YearDay()), false, nil
}

// FromDays implements the FROM_DAYS(n) scalar function. It is total: day
// numbers outside the supported calendar map to the zero date, not an error.
func FromDays(n *int64) (types.Time, bool, error) {
	if n == nil {
		return types.ZeroDate, true, nil
	}
	return types.TimeFromDays(*n), false, nil
}

// Month implements the MONTH(date) scalar function.
// The month of the zero date is 0, without error or warning.
func Month(t *types.Time) (int64, bool, error) {
	if t == nil {
		return 0, true, nil
	}
	return int64(t.Month()), false, nil
}

// MonthName implements the MONTHNAME(date) scalar function.
func MonthName(ctx *EvalContext, t *types.Time) ([]byte, bool, error) {
	if t == nil {
		return nil, true, nil
	}
	if t.IsZero() && ctx.Cfg.SQLMode.HasNoZeroDateMode() {
		return nil, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
	}
	mon := t.Month()
	if mon == 0 || mon > len(types.MonthNames) {
		// A month with no name resolves to NULL, not an error.
		return nil, true, nil
	}
	return []byte(types.MonthNames[mon-1]), false, nil
}

// Hour implements the HOUR(time) scalar function.
// The argument is an elapsed time, so the result may exceed 23.
func Hour(d *types.Duration) (int64, bool, error) {
	if d == nil {
		return 0, true, nil
	}
	return int64(d.Hour()), false, nil
}

// Minute implements the MINUTE(time) scalar function.
func Minute(d *types.Duration) (int64, bool, error) {
	if d == nil {
		return 0, true, nil
	}
	return int64(d.Minute()), false, nil
}

// Second implements the SECOND(time) scalar function.
func Second(d *types.Duration) (int64, bool, error) {
	if d == nil {
		return 0, true, nil
	}
	return int64(d.Second()), false, nil
}

// MicroSecond implements the MICROSECOND(time) scalar function.
func MicroSecond(d *types.Duration) (int64, bool, error) {
	if d == nil {
		return 0, true, nil
	}
	return int64(d.MicroSecond()), false, nil
}

// Year implements the YEAR(date) scalar function.
func Year(ctx *EvalContext, t *types.Time) (int64, bool, error) {
	if t == nil {
		return 0, true, nil
	}
	if t.IsZero() {
		if ctx.Cfg.SQLMode.HasNoZeroDateMode() {
			return 0, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
		}
		return 0, false, nil
	}
	return int64(t.Year()), false, nil
}

// DayOfMonth implements the DAYOFMONTH(date) scalar function.
func DayOfMonth(ctx *EvalContext, t *types.Time) (int64, bool, error) {
	if t == nil {
		return 0, true, nil
	}
	if t.IsZero() {
		if ctx.Cfg.SQLMode.HasNoZeroDateMode() {
			return 0, true, ctx.HandleInvalidTimeError(types.ErrWrongValue.GenWithStackByArgs(types.DateTimeStr, t.String()))
		}
		return 0, false, nil
	}
	return int64(t.Day()), false, nil
}

// Datum adapters registered in the builtins table.

func builtinDateFormat(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := DateFormat(ctx, &t, args[1].GetBytes())
	if isNull || err != nil {
		return d, err
	}
	d.SetBytes(res)
	return d, nil
}

func builtinWeekDay(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := WeekDay(ctx, &t)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinDayOfYear(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := DayOfYear(ctx, &t)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinFromDays(args []types.Datum) (d types.Datum, err error) {
	n := args[0].GetInt64()
	res, isNull, err := FromDays(&n)
	if isNull || err != nil {
		return d, err
	}
	d.SetMysqlTime(res)
	return d, nil
}

func builtinMonth(args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := Month(&t)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinMonthName(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := MonthName(ctx, &t)
	if isNull || err != nil {
		return d, err
	}
	d.SetBytes(res)
	return d, nil
}

func builtinHour(args []types.Datum) (d types.Datum, err error) {
	dur := args[0].GetMysqlDuration()
	res, isNull, err := Hour(&dur)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinMinute(args []types.Datum) (d types.Datum, err error) {
	dur := args[0].GetMysqlDuration()
	res, isNull, err := Minute(&dur)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinSecond(args []types.Datum) (d types.Datum, err error) {
	dur := args[0].GetMysqlDuration()
	res, isNull, err := Second(&dur)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinMicroSecond(args []types.Datum) (d types.Datum, err error) {
	dur := args[0].GetMysqlDuration()
	res, isNull, err := MicroSecond(&dur)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinYear(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := Year(ctx, &t)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}

func builtinDayOfMonth(ctx *EvalContext, args []types.Datum) (d types.Datum, err error) {
	t := args[0].GetMysqlTime()
	res, isNull, err := DayOfMonth(ctx, &t)
	if isNull || err != nil {
		return d, err
	}
	d.SetInt64(res)
	return d, nil
}
