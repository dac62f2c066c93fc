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
	"github.com/pingcap/errors"

	"github.com/pelicandb/pelican/pkg/parser/mysql"
)

// Flag carries execution properties of the statement being evaluated.
type Flag uint64

const (
	// FlagInInsertStmt indicates the statement being evaluated is an INSERT.
	FlagInInsertStmt Flag = 1 << iota
	// FlagInUpdateOrDeleteStmt indicates the statement being evaluated is an UPDATE or a DELETE.
	FlagInUpdateOrDeleteStmt
)

// EvalConfig is the per-statement configuration shared by all expression
// evaluations of the statement. It is read-only during evaluation.
type EvalConfig struct {
	SQLMode       mysql.SQLMode
	Flag          Flag
	MaxWarningCnt int
}

// NewEvalConfig creates an EvalConfig with the default settings.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{MaxWarningCnt: mysql.DefaultMaxWarningCnt}
}

// SetSQLMode sets the SQL mode and returns the config for chaining.
func (cfg *EvalConfig) SetSQLMode(mode mysql.SQLMode) *EvalConfig {
	cfg.SQLMode = mode
	return cfg
}

// SetFlag sets the statement flags and returns the config for chaining.
func (cfg *EvalConfig) SetFlag(f Flag) *EvalConfig {
	cfg.Flag = f
	return cfg
}

// Warning levels for SQLWarn, as reported by 'SHOW WARNINGS'.
const (
	// WarnLevelError represents level "Error".
	WarnLevelError = "Error"
	// WarnLevelWarning represents level "Warning".
	WarnLevelWarning = "Warning"
	// WarnLevelNote represents level "Note".
	WarnLevelNote = "Note"
)

// SQLWarn relates a sql warning and its level.
type SQLWarn struct {
	Level string
	Err   error
}

// EvalContext is the mutable state of one statement evaluation: the shared
// config plus the warnings accumulated so far. It is not safe for concurrent
// use; concurrent statements each get their own context.
type EvalContext struct {
	Cfg      *EvalConfig
	warnings []SQLWarn
}

// NewEvalContext creates an EvalContext with the given config.
// A nil config means the default config.
func NewEvalContext(cfg *EvalConfig) *EvalContext {
	if cfg == nil {
		cfg = NewEvalConfig()
	}
	return &EvalContext{Cfg: cfg}
}

// SQLMode returns the active SQL mode.
func (ctx *EvalContext) SQLMode() mysql.SQLMode {
	return ctx.Cfg.SQLMode
}

// AppendWarning appends a warning with level 'Warning'.
// Warnings past the configured cap are dropped.
func (ctx *EvalContext) AppendWarning(warn error) {
	if len(ctx.warnings) < ctx.Cfg.MaxWarningCnt {
		ctx.warnings = append(ctx.warnings, SQLWarn{WarnLevelWarning, warn})
	}
}

// WarningCount gets the number of accumulated warnings.
func (ctx *EvalContext) WarningCount() int {
	return len(ctx.warnings)
}

// GetWarnings returns a copy of the accumulated warnings.
func (ctx *EvalContext) GetWarnings() []SQLWarn {
	warns := make([]SQLWarn, len(ctx.warnings))
	copy(warns, ctx.warnings)
	return warns
}

// TruncateWarnings truncates warnings beginning from start and returns the truncated warnings.
func (ctx *EvalContext) TruncateWarnings(start int) []SQLWarn {
	sz := len(ctx.warnings) - start
	if sz <= 0 {
		return nil
	}
	ret := make([]SQLWarn, sz)
	copy(ret, ctx.warnings[start:])
	ctx.warnings = ctx.warnings[:start]
	return ret
}

// HandleInvalidTimeError reports err of an invalid temporal value according
// to the active SQL mode: in a strict mode inside an INSERT, UPDATE or
// DELETE statement the error is returned to the caller; otherwise it is
// downgraded to a warning and nil is returned, letting the caller fall back
// to NULL or its documented zero value.
func (ctx *EvalContext) HandleInvalidTimeError(err error) error {
	if err == nil {
		return nil
	}
	cfg := ctx.Cfg
	if cfg.SQLMode.HasStrictMode() &&
		cfg.Flag&(FlagInInsertStmt|FlagInUpdateOrDeleteStmt) != 0 {
		return errors.Trace(err)
	}
	ctx.AppendWarning(err)
	return nil
}
