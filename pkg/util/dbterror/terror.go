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

package dbterror

import (
	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/parser/terror"
)

// ErrClass represents a class of errors.
type ErrClass struct{ terror.ErrClass }

// Error classes.
var (
	ClassConfig     = ErrClass{terror.ClassConfig}
	ClassExpression = ErrClass{terror.ClassExpression}
	ClassTypes      = ErrClass{terror.ClassTypes}
)

// NewStd calls New using the standard message for the error code.
func (ec ErrClass) NewStd(code terror.ErrCode) *terror.Error {
	return ec.NewStdErr(code, mysql.MySQLErrName[uint16(code)])
}

// NewStdErr defines an *Error with an error code and a standard error message.
func (ec ErrClass) NewStdErr(code terror.ErrCode, message *mysql.ErrMessage) *terror.Error {
	return ec.ErrClass.NewStdErr(code, message)
}
