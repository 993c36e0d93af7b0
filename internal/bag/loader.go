// Package bag loads the query sample the knowledge base is matched against.
package bag

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// FromArgs parses literal numeric arguments into a bag. Any non-numeric token
// fails the whole load.
func FromArgs(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(v) {
			// NaN is rejected too: it cannot be ordered, so it has no place
			// in a distribution sample.
			return nil, fmt.Errorf("not a usable number: %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// FromCSV reads one column of a delimited file into a bag. Blank lines and
// `#` comments are skipped. A leading header row is detected by its cell not
// parsing as a number and is skipped with a warning, as are unparsable cells
// in later rows. The load fails only if no row has the requested column.
func FromCSV(path, separator string, column int) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("column index must be >= 0, got %d", column)
	}
	if separator == "" {
		separator = "\t"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		values  []float64
		inRange int // rows where the column existed
		lineNo  int
		first   = true // next in-range row is the first; a bad cell there is a header
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cells := strings.Split(line, separator)
		if column >= len(cells) {
			continue
		}
		inRange++

		cell := strings.TrimSpace(cells[column])
		v, err := strconv.ParseFloat(cell, 64)
		if err == nil && math.IsNaN(v) {
			err = fmt.Errorf("NaN is not a usable value")
		}
		if err != nil {
			if first {
				fmt.Fprintf(os.Stderr, "  [warn] line %d: skipping header row (%q)\n", lineNo, cell)
			} else {
				fmt.Fprintf(os.Stderr, "  [warn] line %d: skipping non-numeric cell %q\n", lineNo, cell)
			}
			first = false
			continue
		}
		first = false
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}

	if inRange == 0 {
		return nil, fmt.Errorf("column %d is out of range for every row of %s", column, path)
	}
	return values, nil
}
