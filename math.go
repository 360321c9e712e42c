package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
