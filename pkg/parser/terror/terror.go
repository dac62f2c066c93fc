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

package terror

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/util/logutil"
)

// ErrCode represents a specific error type in a error class.
// Same error code can be used in different error classes.
type ErrCode int

// ErrClass represents a class of errors.
type ErrClass int

// Error classes.
const (
	ClassConfig ErrClass = iota + 1
	ClassExpression
	ClassTypes
	// Add more as needed.
)

var errClass2Desc = map[ErrClass]string{
	ClassConfig:     "config",
	ClassExpression: "expression",
	ClassTypes:      "types",
}

// Error is the standardized error type. It carries an RFC-style code
// ("class:number") and the MySQL error number for client compatibility.
type Error = errors.Error

// String implements fmt.Stringer interface.
func (ec ErrClass) String() string {
	if s, exist := errClass2Desc[ec]; exist {
		return s
	}
	return fmt.Sprintf("unknown error class: %d", int(ec))
}

// EqualClass returns true if err is *Error with the same class.
func (ec ErrClass) EqualClass(err error) bool {
	e := errors.Cause(err)
	if e == nil {
		return false
	}
	if te, ok := e.(*Error); ok {
		return strings.HasPrefix(string(te.RFCCode()), ec.String()+":")
	}
	return false
}

// NotEqualClass returns true if err is not *Error with the same class.
func (ec ErrClass) NotEqualClass(err error) bool {
	return !ec.EqualClass(err)
}

// New defines an *Error with an error code and an error message.
// Usually used to create base *Error.
func (ec ErrClass) New(code ErrCode, message string) *Error {
	return ec.NewStdErr(code, &mysql.ErrMessage{Raw: message})
}

// NewStdErr defines an *Error with an error code and a standard error message.
func (ec ErrClass) NewStdErr(code ErrCode, message *mysql.ErrMessage) *Error {
	rfcCode := fmt.Sprintf("%s:%d", ec, code)
	return errors.Normalize(
		message.Raw, errors.RFCCodeText(rfcCode), errors.MySQLErrorCode(int(code)))
}

// NewStd creates an *Error using the standard message for the error code.
// Not goroutine-safe; meant for global variable initializers.
func (ec ErrClass) NewStd(code ErrCode) *Error {
	return ec.NewStdErr(code, mysql.MySQLErrName[uint16(code)])
}

// ErrorEqual returns a boolean indicating whether err1 is equal to err2.
func ErrorEqual(err1, err2 error) bool {
	e1 := errors.Cause(err1)
	e2 := errors.Cause(err2)

	if e1 == e2 {
		return true
	}

	if e1 == nil || e2 == nil {
		return e1 == e2
	}

	te1, ok1 := e1.(*Error)
	te2, ok2 := e2.(*Error)
	if ok1 && ok2 {
		return te1.RFCCode() == te2.RFCCode()
	}

	return e1.Error() == e2.Error()
}

// ErrorNotEqual returns a boolean indicating whether err1 isn't equal to err2.
func ErrorNotEqual(err1, err2 error) bool {
	return !ErrorEqual(err1, err2)
}

// Log logs the error if it is not nil.
func Log(err error) {
	if err != nil {
		logutil.BgLogger().Error("encountered error", zap.Error(errors.WithStack(err)))
	}
}
