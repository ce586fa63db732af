package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchTheirSentinels(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{Validation("missing field %s", "Class"), ErrValidation},
		{NotFound("no row with key %q", "S0001"), ErrNotFound},
		{Remote("read Class1", errors.New("quota exceeded")), ErrRemote},
		{&PartialFailure{Op: "upload", Err: errors.New("timeout")}, ErrPartialFailure},
	}
	for _, tc := range cases {
		assert.True(t, errors.Is(tc.err, tc.kind), "expected %v to match %v", tc.err, tc.kind)
	}
}

func TestKindsAreDistinct(t *testing.T) {
	err := Remote("delete", errors.New("boom"))
	assert.False(t, errors.Is(err, ErrPartialFailure))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestRemoteErrorPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Remote("append to Class1", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "append to Class1")
}

func TestPartialFailureIsNotPlainRemote(t *testing.T) {
	err := fmt.Errorf("handler: %w", &PartialFailure{Op: "upload", Err: errors.New("x")})
	assert.True(t, errors.Is(err, ErrPartialFailure))
	assert.False(t, errors.Is(err, ErrRemote))
}
