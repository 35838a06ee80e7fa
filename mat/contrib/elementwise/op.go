// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package elementwise

import (
	"fmt"
	"strings"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// Op names one pure element-wise operation so callers such as benchmarks can
// select it at runtime.
type Op int

const (
	OpScale     Op = iota // c = s * a
	OpNegate              // c = -a
	OpAddScalar           // c = a + s
	OpSubScalar           // c = a - s
	OpScalarSub           // c = s - a
	OpAdd                 // c = a + b
	OpSub                 // c = a - b
	OpMul                 // c = a * b
	OpDiv                 // c = a / b
	OpDivScalar           // c = a / s
	OpScalarDiv           // c = s / a
	OpPow                 // c = a ^ s
	OpPowElem             // c = a ^ b
	OpScalarPow           // c = s ^ a
	OpExp                 // c = exp(a)
	OpLog                 // c = log(a)
)

var opNames = [...]string{
	OpScale:     "scale",
	OpNegate:    "negate",
	OpAddScalar: "add-scalar",
	OpSubScalar: "sub-scalar",
	OpScalarSub: "scalar-sub",
	OpAdd:       "add",
	OpSub:       "sub",
	OpMul:       "mul",
	OpDiv:       "div",
	OpDivScalar: "div-scalar",
	OpScalarDiv: "scalar-div",
	OpPow:       "pow",
	OpPowElem:   "pow-elem",
	OpScalarPow: "scalar-pow",
	OpExp:       "exp",
	OpLog:       "log",
}

// String returns the kebab-case name used on the command line.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Ops lists every operation in declaration order.
func Ops() []Op {
	out := make([]Op, len(opNames))
	for i := range out {
		out[i] = Op(i)
	}
	return out
}

// ParseOp is the inverse of Op.String. Matching is case-insensitive.
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("elementwise: unknown op %q", name)
}

// Binary reports whether op reads a second matrix operand.
func (op Op) Binary() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPowElem:
		return true
	}
	return false
}

// Apply runs op with scalar s. b is ignored unless op.Binary().
func Apply(exec workerpool.Executor, op Op, s float64, a, b, c *mat.Dense) error {
	switch op {
	case OpScale:
		return Scale(exec, s, a, c)
	case OpNegate:
		return Negate(exec, a, c)
	case OpAddScalar:
		return AddScalar(exec, a, s, c)
	case OpSubScalar:
		return SubScalar(exec, a, s, c)
	case OpScalarSub:
		return ScalarSub(exec, s, a, c)
	case OpAdd:
		return Add(exec, a, b, c)
	case OpSub:
		return Sub(exec, a, b, c)
	case OpMul:
		return Mul(exec, a, b, c)
	case OpDiv:
		return Div(exec, a, b, c)
	case OpDivScalar:
		return DivScalar(exec, a, s, c)
	case OpScalarDiv:
		return ScalarDiv(exec, s, a, c)
	case OpPow:
		return Pow(exec, a, s, c)
	case OpPowElem:
		return PowElem(exec, a, b, c)
	case OpScalarPow:
		return ScalarPow(exec, s, a, c)
	case OpExp:
		return Exp(exec, a, c)
	case OpLog:
		return Log(exec, a, c)
	}
	return mat.InvalidArgumentf("elementwise.Apply", "unknown op %d", int(op))
}
