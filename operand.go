// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements operands and their conversion to normalized decimal
// digit sequences.

package lattice

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the representation an Operand was built from.
type Kind uint8

// Operand kinds. The zero Operand has kind KindInvalid.
const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBigInt
	KindText
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat:   "float",
	KindBigInt:  "big.Int",
	KindText:    "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// An Operand is one side of a multiplication: a signed integer, a
// floating-point number or a numeric string. Operands are immutable values.
//
// The zero value is not a valid operand; Mul reports it as an
// *OperandError.
type Operand struct {
	kind Kind
	s    string  // KindInt, KindUint, KindBigInt, KindText
	f    float64 // KindFloat
	bits int     // KindFloat: 32 or 64
}

// Int returns an Operand for x.
func Int(x int64) Operand {
	return Operand{kind: KindInt, s: strconv.FormatInt(x, 10)}
}

// Uint returns an Operand for x.
func Uint(x uint64) Operand {
	return Operand{kind: KindUint, s: strconv.FormatUint(x, 10)}
}

// Float returns an Operand for x. The value used is the shortest decimal
// number that converts back to x. NaN and ±Inf are invalid operands.
func Float(x float64) Operand {
	return Operand{kind: KindFloat, f: x, bits: 64}
}

// Float32 is like Float, but uses the shortest decimal number that converts
// back to the float32 x. Float32(0.1) is 0.1 while Float(float64(float32(0.1)))
// is 0.10000000149011612.
func Float32(x float32) Operand {
	return Operand{kind: KindFloat, f: float64(x), bits: 32}
}

// BigInt returns an Operand for x. x is converted immediately; later changes
// to x do not affect the operand. A nil x yields an invalid operand.
func BigInt(x *big.Int) Operand {
	if x == nil {
		return Operand{kind: KindBigInt, s: "<nil>"}
	}
	return Operand{kind: KindBigInt, s: x.Text(10)}
}

// Text returns an Operand for the decimal number s. s must be of the form
//
//	number   = [ sign ] ( digits [ "." [ digits ] ] | "." digits ) .
//	sign     = "+" | "-" .
//	digits   = digit { digit } .
//	digit    = "0" ... "9" .
//
// Exponents, underscores, base prefixes and surrounding white space are not
// accepted. s is validated by Mul, not by Text.
func Text(s string) Operand {
	return Operand{kind: KindText, s: s}
}

// Kind returns the representation o was built from.
func (o Operand) Kind() Kind {
	return o.kind
}

// String returns o as decimal text. For floats, this is the text the
// multiplication operates on.
func (o Operand) String() string {
	if o.kind == KindFloat {
		return strconv.FormatFloat(o.f, 'f', -1, o.bits)
	}
	return o.s
}

// number is a normalized operand: the unsigned value digits × 10**-scale with
// digits most-significant first. Leading zeros are stripped down to a single
// digit and fractional trailing zeros are stripped, so a zero is always {0}
// with scale 0.
type number struct {
	digits []byte // digit values 0-9, not characters
	scale  int
	neg    bool
}

func (x *number) isZero() bool {
	for _, d := range x.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// normalize converts o to a number.
func (o Operand) normalize() (number, error) {
	switch o.kind {
	case KindInt, KindUint, KindText:
		return parse(o.s)
	case KindBigInt:
		if o.s == "<nil>" {
			return number{}, invalid(o.s, "nil *big.Int")
		}
		return parse(o.s)
	case KindFloat:
		if math.IsNaN(o.f) || math.IsInf(o.f, 0) {
			return number{}, invalid(o.String(), "not a finite number")
		}
		return parse(o.String())
	}
	return number{}, invalid("", "zero Operand")
}

// parse converts the decimal text s into a number. s is not modified; the
// digits are collected in a fresh buffer.
func parse(s string) (number, error) {
	var z number
	i := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		z.neg = s[0] == '-'
		i++
	}
	if i == len(s) {
		return number{}, invalid(s, "no digits")
	}

	z.digits = make([]byte, 0, len(s)-i)
	dp := -1 // position of the decimal point in z.digits
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9':
			z.digits = append(z.digits, ch-'0')
		case ch == '.':
			if dp >= 0 {
				return number{}, invalid(s, "more than one decimal point")
			}
			dp = len(z.digits)
		default:
			return number{}, invalid(s, fmt.Sprintf("unexpected character %q at offset %d", ch, i))
		}
	}
	if len(z.digits) == 0 {
		return number{}, invalid(s, "no digits")
	}
	if dp >= 0 {
		z.scale = len(z.digits) - dp
	}
	z.trim()
	return z, nil
}

// trim removes zeros that do not contribute to the magnitude of z.
func (z *number) trim() {
	if z.isZero() {
		z.digits = z.digits[:1]
		z.scale = 0
		return
	}
	d := z.digits
	// fractional trailing zeros
	for z.scale > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
		z.scale--
	}
	// leading zeros; the scale still counts from the right end
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	z.digits = d[i:]
}
