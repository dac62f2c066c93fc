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
	gotime "time"
)

// Kind constants.
const (
	KindNull          byte = 0
	KindInt64         byte = 1
	KindUint64        byte = 2
	KindString        byte = 5
	KindBytes         byte = 6
	KindMysqlDuration byte = 9
	KindMysqlTime     byte = 13
)

// Datum is a data box holds different kind of values.
type Datum struct {
	k       byte        // datum kind
	decimal uint16      // decimal can hold uint16 values of fsp
	i       int64       // i can hold int64 uint64 values
	b       []byte      // b can hold string or []byte values
	x       interface{} // x hold all other types
}

// Kind gets the kind of the datum.
func (d *Datum) Kind() byte {
	return d.k
}

// IsNull checks if datum is null.
func (d *Datum) IsNull() bool {
	return d.k == KindNull
}

// SetNull sets datum to nil.
func (d *Datum) SetNull() {
	d.k = KindNull
	d.x = nil
}

// GetInt64 gets int64 value.
func (d *Datum) GetInt64() int64 {
	return d.i
}

// SetInt64 sets int64 value.
func (d *Datum) SetInt64(i int64) {
	d.k = KindInt64
	d.i = i
}

// GetString gets string value.
func (d *Datum) GetString() string {
	return string(d.b)
}

// SetString sets string value.
func (d *Datum) SetString(s string) {
	d.k = KindString
	d.b = []byte(s)
}

// GetBytes gets bytes value.
func (d *Datum) GetBytes() []byte {
	return d.b
}

// SetBytes sets bytes value to datum.
func (d *Datum) SetBytes(b []byte) {
	d.k = KindBytes
	d.b = b
}

// GetMysqlDuration gets Duration value.
func (d *Datum) GetMysqlDuration() Duration {
	return Duration{Duration: gotime.Duration(d.i), Fsp: int(d.decimal)}
}

// SetMysqlDuration sets Duration value.
func (d *Datum) SetMysqlDuration(dur Duration) {
	d.k = KindMysqlDuration
	d.i = int64(dur.Duration)
	d.decimal = uint16(dur.Fsp)
}

// GetMysqlTime gets types.Time value.
func (d *Datum) GetMysqlTime() Time {
	return d.x.(Time)
}

// SetMysqlTime sets types.Time value.
func (d *Datum) SetMysqlTime(tim Time) {
	d.k = KindMysqlTime
	d.x = tim
}

// NewIntDatum creates a new Datum from an int64 value.
func NewIntDatum(i int64) (d Datum) {
	d.SetInt64(i)
	return d
}

// NewStringDatum creates a new Datum from a string.
func NewStringDatum(s string) (d Datum) {
	d.SetString(s)
	return d
}

// NewBytesDatum creates a new Datum from a byte slice.
func NewBytesDatum(b []byte) (d Datum) {
	d.SetBytes(b)
	return d
}

// NewTimeDatum creates a new Time from a Time value.
func NewTimeDatum(t Time) (d Datum) {
	d.SetMysqlTime(t)
	return d
}

// NewDurationDatum creates a new Datum from a Duration value.
func NewDurationDatum(dur Duration) (d Datum) {
	d.SetMysqlDuration(dur)
	return d
}
