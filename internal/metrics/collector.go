// Package metrics tallies the outcome of an import run.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"

	"apiaccess/internal/link"
	"apiaccess/internal/model"
)

type Collector struct {
	mu sync.Mutex

	importedByKind map[model.Kind]int
	totalImported  int
	duplicates     int

	errorCounts map[string]int
	totalErrors int
}

func New() *Collector {
	return &Collector{
		importedByKind: make(map[model.Kind]int),
		errorCounts:    make(map[string]int),
	}
}

func (c *Collector) RecordImported(kind model.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.importedByKind[kind]++
	c.totalImported++
}

func (c *Collector) RecordDuplicate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.duplicates++
}

func (c *Collector) RecordFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalErrors++
	c.errorCounts[classify(err)]++
}

func classify(err error) string {
	switch {
	case errors.Is(err, link.ErrUnsupportedScheme):
		return "Unsupported scheme"
	case errors.Is(err, model.ErrInvalidAddress):
		return "Invalid address"
	case errors.Is(err, model.ErrInvalidPort):
		return "Invalid port"
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Invalid credentials"
	default:
		return "Malformed link"
	}
}

// Imported returns the number of methods recorded as imported.
func (c *Collector) Imported() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalImported
}

func (c *Collector) PrintReport(out io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "[ IMPORTED ]\t")
	kinds := make([]model.Kind, 0, len(c.importedByKind))
	for k := range c.importedByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s:\t%d\n", k, c.importedByKind[k])
	}
	fmt.Fprintf(w, "  Total:\t%d\n", c.totalImported)
	fmt.Fprintf(w, "  Duplicates skipped:\t%d\n", c.duplicates)
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "[ DROPPED ]\t")
	fmt.Fprintf(w, "  Total:\t%d\n", c.totalErrors)
	reasons := make([]string, 0, len(c.errorCounts))
	for r := range c.errorCounts {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "  %s:\t%d\n", r, c.errorCounts[r])
	}

	return w.Flush()
}
