package main

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxi-lang/cxxi/eval"
	"github.com/cxxi-lang/cxxi/parser"
)

func TestBuildProgramSource_SkipsHeaderLinesAndAppendsMainCall(t *testing.T) {
	raw := "#include <iostream>\nusing namespace std;\n\nint main() {\n  return 0;\n}"
	got := buildProgramSource(raw, 3)
	assert.Equal(t, "int main() {\n  return 0;\n}\nmain();", got)
}

func TestBuildProgramSource_ClampsSkipToLineCount(t *testing.T) {
	got := buildProgramSource("one\ntwo", 10)
	assert.Equal(t, "\nmain();", got)
}

// runScenario builds a program with buildProgramSource, skipping no header
// lines but appending the implicit main() call, and returns its stdout.
func runScenario(t *testing.T, body string) string {
	t.Helper()
	source := buildProgramSource(body, 0)
	program, err := parser.Parse(source)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := eval.New(&out, bytes.NewReader(nil))
	require.NoError(t, ev.Run(program))
	return out.String()
}

func TestScenario_ArithmeticPrecedence(t *testing.T) {
	out := runScenario(t, `
int main() {
	int result = 1 + 2 * 3;
	cout << result;
}`)
	snaps.MatchSnapshot(t, "arithmetic_precedence", out)
}

func TestScenario_BranchingComparison(t *testing.T) {
	out := runScenario(t, `
int classify(int x) {
	if (x > 0) {
		return 1;
	}
	return 0;
}
int main() {
	cout << classify(5);
}`)
	snaps.MatchSnapshot(t, "branching_comparison", out)
}

func TestScenario_LoopAccumulator(t *testing.T) {
	out := runScenario(t, `
int main() {
	int sum = 0;
	int i;
	for (i = 1; i <= 4; i = i + 1) {
		sum = sum + i;
	}
	cout << sum;
}`)
	snaps.MatchSnapshot(t, "loop_accumulator", out)
}

func TestScenario_FunctionEarlyReturn(t *testing.T) {
	out := runScenario(t, `
int max(int a, int b) {
	if (a > b) {
		return a;
	}
	return b;
}
int main() {
	cout << max(3, 7);
}`)
	snaps.MatchSnapshot(t, "function_early_return", out)
}

func TestScenario_TwoDimensionalArray(t *testing.T) {
	out := runScenario(t, `
int main() {
	int grid[3][3];
	grid[1][2] = 90;
	cout << grid[1][2];
}`)
	snaps.MatchSnapshot(t, "two_dimensional_array", out)
}

func TestScenario_PutcharSum(t *testing.T) {
	out := runScenario(t, `
int main() {
	putchar(65);
	putchar(67);
}`)
	snaps.MatchSnapshot(t, "putchar_sum", out)
}
