// Package protocol holds the text formats shared by the checksum binary and
// the test harness: the result lines the binary prints and the
// "name:hexvalue" expected-output file.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
)

// hexPattern finds the checksum in the binary's output. The value must be
// upper-case hex followed by whitespace.
var hexPattern = regexp.MustCompile(`Hex:\s+([A-F0-9]+)\s`)

var (
	ErrNoHex      = errors.New(`no "Hex:" value in output`)
	ErrMissingSep = errors.New(`expected "name:hexvalue"`)
	ErrEmptyName  = errors.New("empty file name")
)

// WriteResult prints a checksum result. The first line is "Hex: %X",
// optionally preceded by label.
func WriteResult(w io.Writer, label string, result domain.ChecksumResult) error {
	prefix := ""
	if label != "" {
		prefix = label + " "
	}

	_, err := fmt.Fprintf(
		w,
		"%sHex: %X\nDec: %d\nStrategy: %s\nSize: %d\nElapsed: %s\n",
		prefix, result.Sum, result.Sum, result.Strategy, result.Size, result.Elapsed,
	)
	return err
}

// ExtractHex returns the first "Hex:" value found in output. A missing or
// out-of-range value is a lookup error.
func ExtractHex(output string) (uint16, error) {
	m := hexPattern.FindStringSubmatch(output)
	if m == nil {
		return 0, cerrors.NewLookupError("extract hex", "", ErrNoHex)
	}

	v, err := strconv.ParseUint(m[1], 16, 16)
	if err != nil {
		return 0, cerrors.NewLookupError("extract hex", "", fmt.Errorf("value %q: %w", m[1], err))
	}
	return uint16(v), nil
}

// ParseExpected reads "name:hexvalue" lines. Blank lines and lines starting
// with '#' are skipped. Any other line that does not match is a parse error
// naming source and the 1-based line number.
func ParseExpected(r io.Reader, source string) ([]domain.Expectation, error) {
	var out []domain.Expectation

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, value, ok := strings.Cut(text, ":")
		if !ok {
			return nil, cerrors.NewParseError(source, line, ErrMissingSep)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, cerrors.NewParseError(source, line, ErrEmptyName)
		}

		value = strings.TrimSpace(value)
		sum, err := strconv.ParseUint(value, 16, 16)
		if err != nil {
			return nil, cerrors.NewParseError(source, line, fmt.Errorf("checksum %q: %w", value, err))
		}

		out = append(out, domain.Expectation{File: name, Sum: uint16(sum), Line: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, cerrors.NewFileAccessError("read", source, err)
	}

	return out, nil
}

// WriteExpected writes expectations in the format ParseExpected reads.
func WriteExpected(w io.Writer, expectations []domain.Expectation) error {
	bw := bufio.NewWriter(w)
	for _, e := range expectations {
		if _, err := fmt.Fprintf(bw, "%s:%X\n", e.File, e.Sum); err != nil {
			return err
		}
	}
	return bw.Flush()
}
