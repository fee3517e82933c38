package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidSteps возвращается для некорректного количества шагов
var ErrInvalidSteps = errors.New("invalid number of steps")

// parseSteps разбирает количество шагов. Допускается запись с плавающей
// точкой ("1e6", "100.0"); дробная часть отбрасывается.
func parseSteps(arg string) (uint64, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.ParseUint(arg, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.WithHint(
			errors.Wrapf(ErrInvalidSteps, "not a number: %q", arg),
			"pass a non-negative step count, e.g. antgrid 1000000",
		)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxUint64 {
		return 0, errors.Wrapf(ErrInvalidSteps, "out of range: %q", arg)
	}
	return uint64(f), nil
}
