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
	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/parser/terror"
	"github.com/pelicandb/pelican/pkg/util/dbterror"
)

// Error instances.
var (
	// ErrFunctionNotExists is returned when a function name has no registered implementation.
	ErrFunctionNotExists = dbterror.ClassExpression.NewStd(terror.ErrCode(mysql.ErrSpDoesNotExist))
	// ErrIncorrectParameterCount is returned when a function is called with the wrong number of arguments.
	ErrIncorrectParameterCount = dbterror.ClassExpression.NewStd(terror.ErrCode(mysql.ErrWrongParamcountToNativeFct))
	// errInvalidCharacterString is returned when a format argument is not valid UTF-8.
	// This is a malformed input, never downgraded to a warning.
	errInvalidCharacterString = dbterror.ClassExpression.NewStd(terror.ErrCode(mysql.ErrInvalidCharacterString))
)
