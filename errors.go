// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"errors"
	"strconv"
)

// ErrInvalidOperand is the error wrapped by every *OperandError. Use
// errors.Is(err, ErrInvalidOperand) to test for malformed operands.
var ErrInvalidOperand = errors.New("lattice: invalid operand")

// An OperandError reports an operand that cannot be converted to a decimal
// digit sequence. It is returned before any grid is built.
type OperandError struct {
	Input  string // the operand, as text
	Reason string // what is wrong with it
}

func (e *OperandError) Error() string {
	return "lattice: invalid operand " + strconv.Quote(e.Input) + ": " + e.Reason
}

// Unwrap returns ErrInvalidOperand.
func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}

func invalid(input, reason string) error {
	return &OperandError{Input: input, Reason: reason}
}
