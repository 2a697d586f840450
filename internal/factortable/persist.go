package factortable

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bignum/internal/bignum"
)

// LoadTable reads a Table from a file of the form produced by AppendEntry:
// one entry per line, each line "<number> <factor> <factor> ...", with an
// empty factor list meaning the number is prime.
//
// LoadTable is best-effort: a malformed non-empty line is recorded as a
// wrapped ErrParseError and the line is skipped rather than aborting the
// whole load (a deliberate relaxation of the original source, which threw
// on the first bad line). A failure to open or read the file at all is
// fatal and returned as a wrapped ErrIoError.
func LoadTable(path string) (*Table, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIoError, err)
	}
	defer f.Close()

	table := New()
	var parseErrors []error

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		number, err := bignum.FromBase10String(fields[0])
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err))
			continue
		}

		factors := make([]bignum.BigUint, 0, len(fields)-1)
		malformed := false
		for _, tok := range fields[1:] {
			factor, err := bignum.FromBase10String(tok)
			if err != nil {
				parseErrors = append(parseErrors, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err))
				malformed = true
				break
			}
			factors = append(factors, factor)
		}
		if malformed {
			continue
		}

		table.Put(number, factors)
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrors, fmt.Errorf("%w: %v", ErrIoError, err)
	}

	return table, parseErrors, nil
}

// AppendEntry appends a single (number, factors) entry to path, opening it
// in append mode and writing a leading newline before the entry — matching
// the original source's write_number_and_factors_at_the_end_of_file, which
// keeps the append crash-consistent: a process that dies mid-write leaves
// at most one corrupt trailing line, never a corrupted earlier one.
func AppendEntry(path string, number bignum.BigUint, factors []bignum.BigUint) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(number.ToBase10String())
	for _, factor := range factors {
		b.WriteByte(' ')
		b.WriteString(factor.ToBase10String())
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}
	return nil
}
