package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxi-lang/cxxi/parser"
)

func runWithInput(t *testing.T, src, input string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src + "\nmain();")
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(input))
	err = ev.Run(prog)
	return out.String(), err
}

func TestCin_ReadsWhitespaceDelimitedIntegers(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	int a;
	int b;
	cin >> a >> b;
	cout << a + b;
}`, "3 4")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestCin_FailedReadLeavesTargetUnchanged(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	int a = 9;
	cin >> a;
	cout << a;
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "9", out)
}

func TestCin_NonNumericTokenLeavesTargetUnchanged(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	int a = 9;
	cin >> a;
	cout << a;
}`, "notanumber")
	require.NoError(t, err)
	assert.Equal(t, "9", out)
}

func TestCin_TargetIsAssignExpression(t *testing.T) {
	// cin >> a = 5 assigns 5 first, then cin overwrites the same place with
	// the scanned value.
	out, err := runWithInput(t, `
int main() {
	int a;
	cin >> a = 5;
	cout << a;
}`, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestCout_WritesEndlAsNewline(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	cout << 1 << endl << 2;
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "1\n2", out)
}

func TestCout_WritesCharLiteralRaw(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	cout << 'A';
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "A", out)
}

func TestPutchar_WritesLowByteOfValue(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	putchar(321);
}`, "")
	require.NoError(t, err)
	// 321 mod 256 == 65 == 'A'
	assert.Equal(t, "A", out)
}

func TestPutchar_UsableAsAssignmentRHS(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	int x = putchar(65);
	cout << x;
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "A65", out)
}

func TestPutchar_UsableInsideCoutChain(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	cout << putchar(65);
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "A65", out)
}

func TestPutchar_UsableInsideArithmeticExpression(t *testing.T) {
	out, err := runWithInput(t, `
int main() {
	cout << 1 + putchar(65);
}`, "")
	require.NoError(t, err)
	assert.Equal(t, "A66", out)
}
