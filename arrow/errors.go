// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// ErrorKind classifies the failures reported by this package and by the
// readers, writers and kernels built on top of it.
type ErrorKind int8

const (
	KindNotYetImplemented ErrorKind = iota
	KindCast
	KindMemory
	KindParse
	KindSchema
	KindCompute
	KindDivideByZero
	KindCSV
	KindJSON
	KindInvalidArgument
	KindFileFormat
	KindCDataInterface
	KindDictionaryKeyOverflow
	KindRunEndIndexOverflow
)

var kindText = [...]string{
	KindNotYetImplemented:     "not yet implemented",
	KindCast:                  "cast error",
	KindMemory:                "memory error",
	KindParse:                 "parser error",
	KindSchema:                "schema error",
	KindCompute:               "compute error",
	KindDivideByZero:          "divide by zero error",
	KindCSV:                   "csv error",
	KindJSON:                  "json error",
	KindInvalidArgument:       "invalid argument error",
	KindFileFormat:            "parquet argument error",
	KindCDataInterface:        "C data interface error",
	KindDictionaryKeyOverflow: "dictionary key bigger than the key type",
	KindRunEndIndexOverflow:   "run end encoded array index overflow error",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("ErrorKind(%d)", int8(k))
	}
	return kindText[k]
}

// carriesMessage reports whether errors of this kind are expected to hold a
// description. The overflow and divide by zero kinds are fully described by
// their kind.
func (k ErrorKind) carriesMessage() bool {
	switch k {
	case KindDivideByZero, KindDictionaryKeyOverflow, KindRunEndIndexOverflow:
		return false
	}
	return true
}

// Error is the error type returned by the fallible operations in this
// package. Two errors match under errors.Is when they have the same Kind and
// the target carries no message, which is how the Err* sentinels work.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" || !e.Kind.carriesMessage() {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Format implements fmt.Formatter; %+v adds the numeric kind as a detail line.
func (e *Error) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		p.Printf("kind=%d", int8(e.Kind))
	}
	return nil
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

var (
	ErrNotImplemented        = &Error{Kind: KindNotYetImplemented}
	ErrCast                  = &Error{Kind: KindCast}
	ErrMemory                = &Error{Kind: KindMemory}
	ErrParse                 = &Error{Kind: KindParse}
	ErrSchema                = &Error{Kind: KindSchema}
	ErrCompute               = &Error{Kind: KindCompute}
	ErrDivideByZero          = &Error{Kind: KindDivideByZero}
	ErrCSV                   = &Error{Kind: KindCSV}
	ErrJSON                  = &Error{Kind: KindJSON}
	ErrInvalid               = &Error{Kind: KindInvalidArgument}
	ErrFileFormat            = &Error{Kind: KindFileFormat}
	ErrCDataInterface        = &Error{Kind: KindCDataInterface}
	ErrDictionaryKeyOverflow = &Error{Kind: KindDictionaryKeyOverflow}
	ErrRunEndIndexOverflow   = &Error{Kind: KindRunEndIndexOverflow}
)

// StringFromUTF8 converts b to a string, reporting invalid UTF-8 as a parse
// error.
func StringFromUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	i := 0
	for i < len(b) {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			break
		}
		i += n
	}
	return "", Errorf(KindParse, "invalid utf-8 sequence of 1 bytes from index %d", i)
}
