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
	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/parser/terror"
	"github.com/pelicandb/pelican/pkg/util/dbterror"
)

// const strings for ErrWrongValue.
const (
	// DateTimeStr is the error class of datetime.
	DateTimeStr = "datetime"
	// DateStr is the error class of date.
	DateStr = "date"
	// TimeStr is the error class of time.
	TimeStr = "time"
	// TimestampStr is the error class of timestamp.
	TimestampStr = "timestamp"
)

var (
	// ErrWrongValue is returned when the input value is in wrong format or invalid.
	// It carries the code MySQL reports for invalid datetime values, so warnings
	// raised for zero or partially-zero dates are the ones clients expect.
	ErrWrongValue = dbterror.ClassTypes.NewStdErr(terror.ErrCode(mysql.ErrTruncatedWrongValue), mysql.Message("Incorrect %s value: '%s'", []int{1}))
	// ErrTooBigPrecision is returned when the fsp is larger than the largest supported precision.
	ErrTooBigPrecision = dbterror.ClassTypes.NewStd(terror.ErrCode(mysql.ErrTooBigPrecision))
)
