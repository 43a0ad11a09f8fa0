//
// Helper functions for unit testing
//

package articlefmt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func runFormatBlock(input string, extensions Extensions) string {
	return string(Format([]byte(input), HTMLRenderer(UseXHTML), extensions))
}

func runFormatInline(input string, extensions Extensions) string {
	return InlineFmt(input)
}

// diff returns a unified diff of expected and actual, for multi-line
// output that is hard to compare by eye.
func diff(expected, actual string) string {
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return err.Error()
	}
	return d
}

func doTestsBlock(t *testing.T, tests []string, extensions Extensions) {
	t.Helper()
	doTestsWithRunner(t, tests, extensions, runFormatBlock)
}

func doTestsInline(t *testing.T, tests []string) {
	t.Helper()
	doTestsWithRunner(t, tests, NoExtensions, runFormatInline)
}

func doTestsWithRunner(t *testing.T, tests []string, extensions Extensions, runner func(string, Extensions) string) {
	t.Helper()

	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual := runner(candidate, extensions)
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, diff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					_ = runner(candidate, extensions)
				}
			}
		}
	}
}
