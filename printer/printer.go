// Package printer writes sequences, matrices and tables to a line-oriented sink.
package printer

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/amp-labs/lvt/tuple"
)

// Sink receives complete lines without their trailing newline.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink is a Sink over an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink that writes each line followed by '\n'.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")

	return err
}

// Lines collects lines in memory.
type Lines []string

func (l *Lines) WriteLine(line string) error {
	*l = append(*l, line)

	return nil
}

// Join formats every element with %v and joins them with sep.
func Join[T any](s []T, sep string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, sep)
}

// Slice writes s on one line, elements separated by single spaces.
func Slice[T any](sink Sink, s []T) error {
	return sink.WriteLine(Join(s, " "))
}

// Matrix writes one line per row.
func Matrix[T any](sink Sink, m [][]T) error {
	for _, row := range m {
		if err := Slice(sink, row); err != nil {
			return err
		}
	}

	return nil
}

// Pairs writes one "first: second" line per pair.
func Pairs[A, B any](sink Sink, pairs []tuple.Tuple2[A, B]) error {
	for _, p := range pairs {
		if err := sink.WriteLine(fmt.Sprintf("%v: %v", p.First(), p.Second())); err != nil {
			return err
		}
	}

	return nil
}

// Map writes one "key: value" line per entry, keys in ascending order.
func Map[K cmp.Ordered, V any](sink Sink, m map[K]V) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := sink.WriteLine(fmt.Sprintf("%v: %v", k, m[k])); err != nil {
			return err
		}
	}

	return nil
}

// Table writes header and rows as left-aligned columns separated by two spaces.
// A nil header writes only the rows.
func Table(sink Sink, header []string, rows [][]string) error {
	var buf strings.Builder

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0) //nolint:mnd

	if header != nil {
		if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	for scanner.Scan() {
		if err := sink.WriteLine(strings.TrimRight(scanner.Text(), " ")); err != nil {
			return err
		}
	}

	return scanner.Err()
}
