package lattice_test

import (
	"errors"
	"fmt"

	"github.com/db47h/lattice"
)

func ExampleMultiply() {
	s, err := lattice.Multiply(lattice.Text("1234567890123"), lattice.Float(13.23))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	fmt.Println(lattice.MustMultiply(lattice.Text("0.3"), lattice.Text("0.4")))
	fmt.Println(lattice.MustMultiply(lattice.Int(-7), lattice.Int(-8)))
	fmt.Println(lattice.MustMultiply(lattice.Text("-2.5"), lattice.Int(0)))
	// Output:
	// 16333333186327.29
	// 0.12
	// 56
	// 0
}

func ExampleMul() {
	p, err := lattice.Mul(lattice.Int(17), lattice.Int(28))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", p)
	// Output:
	// (0/2)	(1/4)
	// (0/8)	(5/6)
	// = 476
}

func ExampleOperandError() {
	_, err := lattice.Multiply(lattice.Text("1.2.3"), lattice.Int(2))
	var oe *lattice.OperandError
	if errors.As(err, &oe) {
		fmt.Printf("input %q: %s\n", oe.Input, oe.Reason)
	}
	fmt.Println(errors.Is(err, lattice.ErrInvalidOperand))
	// Output:
	// input "1.2.3": more than one decimal point
	// true
}
