package readdat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Data is the content of a sample file: the drawn samples in order and the
// expected value from the trailer line.
type Data struct {
	Samples  []float64
	Expected float64
}

// ReadDat reads a file written by presenter.SaveSamples. The last numeric
// line is taken as the expected value.
func ReadDat(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// blank lines and comments
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}

		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse float at line %d: %w", line, err)
		}
		values = append(values, val)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no values in %s", filename)
	}

	return &Data{
		Samples:  values[:len(values)-1],
		Expected: values[len(values)-1],
	}, nil
}
