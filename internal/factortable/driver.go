package factortable

import (
	"context"
	"fmt"

	"bignum/internal/logger"
)

// RunDriver runs steps iterations of the original source's main loop: take
// the table's greatest recorded number, increment it, factorize it, record
// the result, and append it to the table file. It requires table to
// already be seeded with at least one entry (so Max is defined) and, for
// any number it successfully factors, with every smaller prime it needs.
//
// No single step is interruptible mid-flight; ctx is only checked between
// steps, so a large factorization always runs to completion once started.
func RunDriver(ctx context.Context, table *Table, path string, steps int, lgr logger.Logger) error {
	for step := 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		greatest, ok := table.Max()
		if !ok {
			return fmt.Errorf("factortable: driver requires a seeded table with at least one entry")
		}

		number := greatest.Inc()
		factors, err := Factorize(number, table)
		if err != nil {
			return fmt.Errorf("factortable: step %d: %w", step+1, err)
		}

		table.Put(number, factors)
		if err := AppendEntry(path, number, factors); err != nil {
			return fmt.Errorf("factortable: step %d: %w", step+1, err)
		}

		if len(factors) == 0 {
			lgr.Info("number is prime", logger.FNumber("number", number))
			continue
		}

		factorStrings := make([]string, len(factors))
		for i, f := range factors {
			factorStrings[i] = f.ToBase10String()
		}
		lgr.Info("factored number",
			logger.FNumber("number", number),
			logger.F("factors", factorStrings),
		)
	}
	return nil
}
