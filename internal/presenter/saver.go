package presenter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"lln-go/pkg/distribution"
)

// FileName derives the output file name from the kind and parameters of s.
func FileName(s distribution.Spec) string {
	switch s.Kind {
	case distribution.Poisson:
		return fmt.Sprintf("poisson_lambda_%.2f.dat", s.Lambda)
	case distribution.Normal:
		return fmt.Sprintf("normal_mean_%.2f_sigma_%.2f.dat", s.Mean, s.Sigma)
	default:
		return fmt.Sprintf("uniform_min_%.2f_max_%.2f.dat", float64(s.Low), float64(s.High))
	}
}

// SaveSamples writes one sample per line followed by the expected value,
// truncating any existing file at filename.
func SaveSamples(filename string, samples []int64, expected float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "presenter: failed to create %s", filename)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	buf := make([]byte, 0, 32)
	for _, v := range samples {
		buf = strconv.AppendInt(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return errors.Wrapf(err, "presenter: failed to write %s", filename)
		}
	}
	if _, err := fmt.Fprintf(w, "%.2f\n", expected); err != nil {
		return errors.Wrapf(err, "presenter: failed to write %s", filename)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "presenter: failed to write %s", filename)
	}

	return errors.Wrapf(file.Close(), "presenter: failed to close %s", filename)
}

// Write saves samples drawn from s into dir under FileName(s) and returns the path.
func Write(dir string, s distribution.Spec, samples []int64) (string, error) {
	path := filepath.Join(dir, FileName(s))
	if err := SaveSamples(path, samples, s.ExpectedValue()); err != nil {
		return "", err
	}
	return path, nil
}
