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
	"github.com/pelicandb/pelican/pkg/parser/ast"
	"github.com/pelicandb/pelican/pkg/types"
)

// builtinFunc is the interface for evaluating a scalar function over datums.
type builtinFunc interface {
	eval(ctx *EvalContext, args []types.Datum) (types.Datum, error)
}

// pureFunc adapts a scalar function that never touches the EvalContext.
type pureFunc func(args []types.Datum) (types.Datum, error)

func (f pureFunc) eval(_ *EvalContext, args []types.Datum) (types.Datum, error) {
	return f(args)
}

// contextFunc adapts a scalar function that reads the SQL mode or records
// warnings through the EvalContext.
type contextFunc func(ctx *EvalContext, args []types.Datum) (types.Datum, error)

func (f contextFunc) eval(ctx *EvalContext, args []types.Datum) (types.Datum, error) {
	return f(ctx, args)
}

type builtinDef struct {
	fn   builtinFunc
	argc int
}

// builtins maps a function name to its implementation. Whether a function is
// pure or context-aware is fixed at registration, never decided at eval time.
var builtins = map[string]builtinDef{
	ast.DateFormat:  {contextFunc(builtinDateFormat), 2},
	ast.DayOfMonth:  {contextFunc(builtinDayOfMonth), 1},
	ast.DayOfYear:   {contextFunc(builtinDayOfYear), 1},
	ast.FromDays:    {pureFunc(builtinFromDays), 1},
	ast.Hour:        {pureFunc(builtinHour), 1},
	ast.MicroSecond: {pureFunc(builtinMicroSecond), 1},
	ast.Minute:      {pureFunc(builtinMinute), 1},
	ast.Month:       {pureFunc(builtinMonth), 1},
	ast.MonthName:   {contextFunc(builtinMonthName), 1},
	ast.Second:      {pureFunc(builtinSecond), 1},
	ast.WeekDay:     {contextFunc(builtinWeekDay), 1},
	ast.Year:        {contextFunc(builtinYear), 1},
}

// EvalBuiltin evaluates the scalar function registered under name.
// A NULL argument yields a NULL result before the function body runs, so
// no warning is recorded and the SQL mode is not consulted.
func EvalBuiltin(ctx *EvalContext, name string, args ...types.Datum) (types.Datum, error) {
	def, ok := builtins[name]
	if !ok {
		return types.Datum{}, ErrFunctionNotExists.GenWithStackByArgs("FUNCTION", name)
	}
	if len(args) != def.argc {
		return types.Datum{}, ErrIncorrectParameterCount.GenWithStackByArgs(name)
	}
	for i := range args {
		if args[i].IsNull() {
			return types.Datum{}, nil
		}
	}
	return def.fn.eval(ctx, args)
}
