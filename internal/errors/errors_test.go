package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := SourceError("numbers.txt", fs.ErrNotExist)
	err := Wrap(inner, "analysis run failed")

	assert.Equal(t, CodeSourceError, GetCode(err))
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "analysis run failed: read numbers.txt: file does not exist", err.Error())
}

func TestWrapPlainError(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), "chunk %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "chunk 3: boom", err.Error())

	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, WithCode(CodeSinkError, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("bad menh"))
	assert.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, GetCode(err))

	recoded := WithCode(CodeConfigInvalid, ConfigInvalid("PORT is required"))
	assert.Equal(t, CodeConfigInvalid, GetCode(recoded))
	assert.Equal(t, "PORT is required", recoded.Error())
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))
}
