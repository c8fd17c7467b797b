package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxi-lang/cxxi/interperr"
	"github.com/cxxi-lang/cxxi/parser"
)

// runProgram parses src (with a trailing `main();` call appended, as the
// driver does) and evaluates it, returning the written output and the
// evaluation error.
func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src + "\nmain();")
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	err = ev.Run(prog)
	return out.String(), err
}

func TestRun_ArithmeticPrecedence(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	int x = 1 + 2 * 3;
	putchar(x + 48);
}`)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestRun_AssignmentNestedInsideArithmeticExpression(t *testing.T) {
	// 1 + x = 5 must parse as 1 + (x = 5), not (1 + x) = 5, so x ends up
	// assigned 5 and the whole expression evaluates to 6.
	out, err := runProgram(t, `
int main() {
	int x;
	int r = 1 + x = 5;
	cout << r;
	cout << x;
}`)
	require.NoError(t, err)
	assert.Equal(t, "65", out)
}

func TestRun_Branching(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	int x = 5;
	if (x > 3) {
		putchar(49);
	} else {
		putchar(48);
	}
}`)
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestRun_LoopAccumulator(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	int sum = 0;
	int i;
	for (i = 1; i <= 4; i = i + 1) {
		sum = sum + i;
	}
	cout << sum;
}`)
	require.NoError(t, err)
	assert.Equal(t, "10", out)
}

func TestRun_WhileLoop(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	int n = 3;
	int total = 0;
	while (n > 0) {
		total = total + n;
		n = n - 1;
	}
	cout << total;
}`)
	require.NoError(t, err)
	assert.Equal(t, "6", out)
}

func TestRun_FunctionEarlyReturn(t *testing.T) {
	out, err := runProgram(t, `
int pick(int a, int b) {
	if (a > b) {
		return a;
	}
	return b;
}
int main() {
	cout << pick(3, 7);
}`)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestRun_FunctionCallArityShortfallLeavesParamUnregistered(t *testing.T) {
	// Only as many formals as supplied arguments are registered; the callee's
	// fresh frame has no binding for 'b', and no enclosing frame binds 'b'
	// either, so its first use fails.
	_, err := runProgram(t, `
int f(int a, int b) {
	return a + b;
}
int main() {
	cout << f(1);
}`)
	require.Error(t, err)
	kind, ok := interperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, interperr.UndefinedVariable, kind)
}

func TestRun_TwoDimensionalArray(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	int a[3][3];
	a[1][2] = 90;
	cout << a[1][2];
}`)
	require.NoError(t, err)
	assert.Equal(t, "90", out)
}

func TestRun_ArrayOverShallowAccessErrors(t *testing.T) {
	_, err := runProgram(t, `
int main() {
	int a[2][2];
	cout << a[0];
}`)
	require.Error(t, err)
	kind, ok := interperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, interperr.TypeMismatch, kind)
}

func TestRun_ArrayIndexOutOfRangeErrors(t *testing.T) {
	_, err := runProgram(t, `
int main() {
	int a[2];
	cout << a[5];
}`)
	require.Error(t, err)
}

func TestRun_DivisionByZeroErrors(t *testing.T) {
	_, err := runProgram(t, `
int main() {
	int x = 1 / 0;
}`)
	require.Error(t, err)
	kind, ok := interperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, interperr.InvalidDataType, kind)
}

func TestRun_ModuloByZeroErrors(t *testing.T) {
	_, err := runProgram(t, `
int main() {
	int x = 1 % 0;
}`)
	require.Error(t, err)
}

func TestRun_NonShortCircuitLogicalAnd(t *testing.T) {
	// Both operands are always evaluated; a side-effecting call on the right
	// must run even when the left side is already false.
	out, err := runProgram(t, `
int bump(int a) {
	putchar(88);
	return a;
}
int main() {
	int r = 0 && bump(1);
	cout << r;
}`)
	require.NoError(t, err)
	assert.Equal(t, "X0", out)
}

func TestRun_ForScopeIsReleasedOnEarlyReturn(t *testing.T) {
	out, err := runProgram(t, `
int find(int limit) {
	int i;
	for (i = 0; i < limit; i = i + 1) {
		if (i == 2) {
			return i;
		}
	}
	return -1;
}
int main() {
	cout << find(10);
}`)
	require.NoError(t, err)
	assert.Equal(t, "2", out)
}

func TestRun_PutcharSumSemantics(t *testing.T) {
	out, err := runProgram(t, `
int main() {
	putchar(65);
	putchar(67);
}`)
	require.NoError(t, err)
	assert.Equal(t, "AC", out)
}

func TestRun_UndefinedVariableErrors(t *testing.T) {
	_, err := runProgram(t, `
int main() {
	cout << missing;
}`)
	require.Error(t, err)
	kind, ok := interperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, interperr.UndefinedVariable, kind)
}

func TestEvalTopLevel_PersistsDeclarationsAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))

	stmts, err := parser.ParseLine("int x = 5;")
	require.NoError(t, err)
	_, err = ev.EvalTopLevel(stmts)
	require.NoError(t, err)

	stmts, err = parser.ParseLine("x = x + 1;")
	require.NoError(t, err)
	_, err = ev.EvalTopLevel(stmts)
	require.NoError(t, err)

	stmts, err = parser.ParseLine("cout << x;")
	require.NoError(t, err)
	_, err = ev.EvalTopLevel(stmts)
	require.NoError(t, err)

	assert.Equal(t, "6", out.String())
}

func TestEvalTopLevel_ResetClearsState(t *testing.T) {
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))

	stmts, err := parser.ParseLine("int x = 5;")
	require.NoError(t, err)
	_, err = ev.EvalTopLevel(stmts)
	require.NoError(t, err)

	ev.Reset()

	stmts, err = parser.ParseLine("cout << x;")
	require.NoError(t, err)
	_, err = ev.EvalTopLevel(stmts)
	require.Error(t, err)
}
