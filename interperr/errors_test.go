package interperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_EmptyFormatUsesDefaultMessage(t *testing.T) {
	err := New(UndefinedVariable, "")
	assert.Equal(t, "Type error: Variable is not defined", err.Error())
}

func TestNew_FormatOverridesDefaultMessageButKeepsKind(t *testing.T) {
	err := New(TypeMismatch, "'%s' is not an array", "a")
	assert.Equal(t, "'a' is not an array", err.Error())
	assert.Equal(t, TypeMismatch, err.Kind)
}

func TestKindOf_RecognizesInterpError(t *testing.T) {
	err := New(InvalidToken, "")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, InvalidToken, kind)
}

func TestKindOf_RejectsForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain error"))
	assert.False(t, ok)
}

func TestKind_String_UnknownKindHasFallbackMessage(t *testing.T) {
	assert.Equal(t, "Unknown runtime error", Kind(999).String())
}

func TestKind_String_CoversEveryDocumentedCategory(t *testing.T) {
	for _, k := range []Kind{
		InvalidToken, UndefinedVariable, VariableAlreadyDeclared,
		TypeMismatch, UnsupportedSyntax, InvalidDataType, InvalidArguments,
	} {
		assert.NotEqual(t, "Unknown runtime error", k.String())
	}
}
