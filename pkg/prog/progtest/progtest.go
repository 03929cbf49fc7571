// Package progtest contains utilities for testing [prog.Program] instances
// with fluent test cases, like:
//
//	Test(t, program,
//		ThatAmath("-c", "x^2").WritesStdoutContaining("<msup>"),
//		ThatAmath("--bad").ExitsWith(2).WritesStderrContaining("unknown flag"),
//	)
package progtest

import (
	"os"
	"strings"
	"testing"

	"amath.elv.sh/pkg/prog"
	"amath.elv.sh/pkg/testutil"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	stdout     output
	stderr     output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func (o output) matches(s string) bool {
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// ThatAmath returns a new Case with the specified CLI arguments. The program
// name is prepended.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "amath --bad" exits with 2 reads like:
//
//	ThatAmath("--bad").ExitsWith(2)
func ThatAmath(args ...string) Case {
	return Case{args: append([]string{"amath"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatAmath("--log", "/dev/null").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !c.want.stdout.matches(r.stdout) {
				t.Errorf("got stdout %v, want %v", quote(r.stdout), c.want.stdout)
			}
			if !c.want.stderr.matches(r.stderr) {
				t.Errorf("got stderr %v, want %v", quote(r.stderr), c.want.stderr)
			}
		})
	}
}

type runResult struct {
	exitStatus     int
	stdout, stderr string
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// status and the content of stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r := run(p, append([]string{"amath"}, args...), stdin)
	return r.exitStatus, r.stdout, r.stderr
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := testutil.MustPipe()
	r1, w1 := testutil.MustPipe()
	r2, w2 := testutil.MustPipe()

	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	// Read stdout and stderr concurrently, so that a program writing more than
	// a pipe can buffer does not block.
	stdoutCh := make(chan string, 1)
	stderrCh := make(chan string, 1)
	go func() { stdoutCh <- testutil.MustReadAllAndClose(r1) }()
	go func() { stderrCh <- testutil.MustReadAllAndClose(r2) }()

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return runResult{exit, <-stdoutCh, <-stderrCh}
}

func quote(s string) string {
	if s == "" {
		return "empty"
	}
	return "\"" + s + "\""
}
