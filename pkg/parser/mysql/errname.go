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

// ErrMessage is a error message with the error code.
type ErrMessage struct {
	Raw          string
	RedactArgPos []int
}

// Message creates a error message with the args position which should be redacted.
func Message(message string, redactArgs []int) *ErrMessage {
	return &ErrMessage{Raw: message, RedactArgPos: redactArgs}
}

// MySQLErrName maps error code to MySQL error messages.
var MySQLErrName = map[uint16]*ErrMessage{
	ErrWrongValueForVar:           Message("Variable '%-.64s' can't be set to the value of '%-.200s'", []int{1}),
	ErrTruncatedWrongValue:        Message("Truncated incorrect %-.64s value: '%-.128s'", []int{1}),
	ErrInvalidCharacterString:     Message("Invalid %s character string: '%.64s'", []int{1}),
	ErrSpDoesNotExist:             Message("%s %s does not exist", nil),
	ErrTooBigPrecision:            Message("Too big precision %d specified for column '%-.192s'. Maximum is %d", nil),
	ErrWrongParamcountToNativeFct: Message("Incorrect parameter count in the call to native function '%-.192s'", nil),
}
