package querymode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mr-devs/querymode"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", querymode.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := querymode.Errorf(querymode.ENOTFOUND, "conversation not found")
		assert.Equal(t, querymode.ENOTFOUND, querymode.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("loading history: %w", querymode.Errorf(querymode.EINVALID, "bad id"))
		assert.Equal(t, querymode.EINVALID, querymode.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, querymode.EINTERNAL, querymode.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := querymode.Errorf(querymode.EINVALID, "question required")
		assert.Equal(t, "question required", querymode.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", querymode.ErrorMessage(errors.New("boom")))
	})
}
