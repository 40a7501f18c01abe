// Package sat: DIMACS CNF serialization for Formula — a file is the
// universal interface to solvers this package does not wrap.
package sat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadDIMACS indicates the input does not conform to DIMACS CNF syntax.
var ErrBadDIMACS = errors.New("sat: malformed DIMACS input")

// dimacsBufSize sizes the scanner buffer; clauses in generated encodings
// are short but benchmark files can carry very long comment lines.
const dimacsBufSize = 1024 * 1024

// WriteDIMACS serializes f in DIMACS CNF form:
//
//	p cnf <maxVar> <clauses>
//	<lit> <lit> ... 0
//
// The declared variable count is f.MaxVar(), which may exceed the largest
// id that literally appears when auxiliary ids were reserved but unused.
// Complexity: O(total literals).
func WriteDIMACS(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.MaxVar(), f.Len()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range f.Clauses() {
		for _, l := range c {
			if _, err := fmt.Fprintf(bw, "%d ", l); err != nil {
				return fmt.Errorf("write clause: %w", err)
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return fmt.Errorf("write clause: %w", err)
		}
	}

	return bw.Flush()
}

// ReadDIMACS parses a DIMACS CNF document into a Formula.
//
// Tolerated per common practice: blank lines, 'c' comment lines, '%'
// trailer lines, and clauses spanning multiple lines. The header's
// variable count raises the formula's counter even when some declared
// variables never appear in a clause.
//
// Errors: ErrBadDIMACS (wrapped with line context) on syntax violations.
// Complexity: O(input size).
func ReadDIMACS(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), dimacsBufSize)

	f := NewFormula()
	var (
		seenHeader bool
		declVars   int
		current    []int // literals of the clause being accumulated
		lineNo     int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		// Empty lines, 'c' comments, and '%' EOF/comment lines.
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}

		if !seenHeader {
			// Expect a header line: p cnf <vars> <clauses>
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("line %d: expected 'p cnf <vars> <clauses>', got %q: %w", lineNo, line, ErrBadDIMACS)
			}
			var err error
			declVars, err = strconv.Atoi(fields[2])
			if err != nil || declVars < 0 {
				return nil, fmt.Errorf("line %d: invalid variable count %q: %w", lineNo, fields[2], ErrBadDIMACS)
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("line %d: invalid clause count %q: %w", lineNo, fields[3], ErrBadDIMACS)
			}
			seenHeader = true

			continue
		}

		// Clause body: whitespace-separated literals, 0 terminates a clause.
		for _, tok := range strings.Fields(line) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid literal %q: %w", lineNo, tok, ErrBadDIMACS)
			}
			if lit == 0 {
				if len(current) == 0 {
					return nil, fmt.Errorf("line %d: empty clause: %w", lineNo, ErrBadDIMACS)
				}
				if err = f.AddClause(current...); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				current = current[:0]

				continue
			}
			current = append(current, lit)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("missing 'p cnf' header: %w", ErrBadDIMACS)
	}
	if len(current) != 0 {
		return nil, fmt.Errorf("unterminated clause at end of input: %w", ErrBadDIMACS)
	}

	// Honor the declared range even for variables no clause mentions.
	f.SetMaxVar(declVars)

	return f, nil
}
