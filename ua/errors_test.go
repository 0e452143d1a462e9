package ua

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeIsGood(t *testing.T) {
	assert.True(t, StatusOK.IsGood())
	assert.False(t, StatusBadDecodingError.IsGood())
}

func TestStatusCodeCodeAndFlags(t *testing.T) {
	sc := StatusCode(0x80070003)
	assert.Equal(t, uint16(0x8007), sc.Code())
	assert.Equal(t, uint16(0x0003), sc.Flags())
}

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, "Good", StatusOK.String())
	assert.Equal(t, "BadDecodingError", StatusBadDecodingError.String())
	assert.Contains(t, StatusCode(0x12345678).String(), "0x12345678")
}

func TestEncodingErrorUnwrap(t *testing.T) {
	inner := io.ErrUnexpectedEOF
	err := &EncodingError{Status: StatusBadEncodingError, Msg: "boom", Err: inner}
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var target *EncodingError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, StatusBadEncodingError, target.Status)
}

func TestDecodingErrorUnwrap(t *testing.T) {
	inner := io.ErrUnexpectedEOF
	err := &DecodingError{Status: StatusBadDecodingError, Msg: "boom", Err: inner}
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodingErrorMessageWithoutInner(t *testing.T) {
	err := &DecodingError{Status: StatusBadDecodingError, Msg: "truncated stream"}
	assert.Nil(t, err.Unwrap())
	assert.Contains(t, err.Error(), "truncated stream")
	assert.Contains(t, err.Error(), "BadDecodingError")
}
