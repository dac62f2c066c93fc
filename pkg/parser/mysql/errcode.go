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

// MySQL error code.
// The error codes this evaluator can surface, numbered as the MySQL server
// numbers them so clients see familiar codes in errors and warnings.
const (
	ErrWrongValueForVar           uint16 = 1231
	ErrTruncatedWrongValue        uint16 = 1292
	ErrInvalidCharacterString     uint16 = 1300
	ErrSpDoesNotExist             uint16 = 1305
	ErrTooBigPrecision            uint16 = 1426
	ErrWrongParamcountToNativeFct uint16 = 1582
)
