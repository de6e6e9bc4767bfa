package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/lattice"
	"github.com/db47h/lattice/context"
)

// total computes price × quantity × (1 + rate), with rate given as text. It
// only checks errors once, at the end.
func total(ctx *context.Context, price string, qty int64, rate string) (string, error) {
	sub := ctx.Mul(lattice.Text(price), lattice.Int(qty))
	tax := ctx.Mul(lattice.Text(sub), lattice.Text(rate))
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("error computing total: %w", err)
	}
	return sub + " + " + tax, nil
}

// Example demonstrates error handling with a Context.
func Example() {
	ctx := context.New()
	s, err := total(ctx, "19.99", 3, "0.2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)

	// the second step is a no-op: the context already holds an error
	_, err = total(ctx, "19.9.9", 3, "0.2")
	fmt.Println(errors.Is(err, lattice.ErrInvalidOperand))
	fmt.Println(err)

	// Output:
	// 59.97 + 11.994
	// true
	// error computing total: lattice: invalid operand "19.9.9": more than one decimal point
}
