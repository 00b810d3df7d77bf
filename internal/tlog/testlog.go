package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/invariant"
)

const (
	bold = "\033[1m"
	red  = "\033[1;31m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(renderString(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(renderString(err, red))
}

// Violation checks f panics with an invariant violation of the given kind.
// The caught violation is logged, a violation of another kind is reported as an error.
// Returns true if the expected violation happened. Panics that are not
// invariant violations are not caught: invariant.Catch re-panics them.
func Violation(t TestingPrinter, kind error, f func()) bool {
	t.Helper()

	err := invariant.Catch(f)
	switch {
	case err == nil:
		t.Errorf("%sinvariant violation '%v' expected, got nothing\033[0m", red, kind)
		return false
	case !errors.Is(err, kind):
		t.Errorf("%sinvariant violation '%v' expected, got another one\033[0m", red, kind)
		t.Error(renderString(err, red))
		return false
	}

	t.Log(renderString(err, bold))
	return true
}

func renderString(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString("\033[0m\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var maxname int
	for _, v := range c.vars {
		if len(v.name) > maxname {
			maxname = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    \033[1m")
		b.WriteString(v.name)
		b.WriteString("\033[0m: ")
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}
	return b.String()
}
