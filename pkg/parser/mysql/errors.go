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

package mysql

import "fmt"

// SQLError records an error information, from executing SQL.
type SQLError struct {
	Code    uint16
	Message string
	State   string
}

// Error prints errors, with a formatted string.
func (e *SQLError) Error() string {
	return fmt.Sprintf("ERROR %d (%s): %s", e.Code, e.State, e.Message)
}

// NewErr generates a SQL error, with an error code and default format specifier defined in MySQLErrName.
func NewErr(errCode uint16, args ...interface{}) *SQLError {
	e := &SQLError{Code: errCode}
	e.State = errState(errCode)
	if msg, ok := MySQLErrName[errCode]; ok {
		e.Message = fmt.Sprintf(msg.Raw, args...)
	} else {
		e.Message = fmt.Sprint(args...)
	}
	return e
}

// DefaultMySQLState is the default state of the mySQL.
const DefaultMySQLState = "HY000"

func errState(code uint16) string {
	if state, ok := mySQLState[code]; ok {
		return state
	}
	return DefaultMySQLState
}

// mySQLState maps error code to MySQL SQLSTATE value.
var mySQLState = map[uint16]string{
	ErrWrongValueForVar:       "42000",
	ErrTruncatedWrongValue:    "22007",
	ErrInvalidCharacterString: "22007",
	ErrSpDoesNotExist:         "42000",
	ErrTooBigPrecision:        "42000",
}
