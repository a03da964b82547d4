package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := InputError("claims file not found", stderrors.New("stat claims.csv: no such file"))
	wrapped := Wrap(base, "load claims")

	assert.Equal(t, CodeInputError, GetCode(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "load claims")
	assert.Contains(t, wrapped.Error(), "no such file")
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), "step %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 3: boom", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, Wrapf(nil, "nothing %s", "here"))
	assert.NoError(t, WithCode(CodeOutputError, nil))
}

func TestGetCode_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", RenderError("hist_revenue.png", stderrors.New("nan value")))
	assert.Equal(t, CodeRenderError, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestWithCode(t *testing.T) {
	cause := stderrors.New("read-only file system")
	err := WithCode(CodeOutputError, cause)
	assert.Equal(t, CodeOutputError, GetCode(err))
	assert.ErrorIs(t, err, cause)
}
