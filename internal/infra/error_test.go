//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
	}{
		{name: "defaults to db failure", err: cause, wantKind: KindDBFailure},
		{name: "explicit not found", err: cause, kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
		{name: "duplicate key", err: cause, kind: []RepositoryErrorKind{KindDuplicateKey}, wantKind: KindDuplicateKey},
		{name: "nil cause", err: nil, kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("loading room", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.wantKind))
			assert.Contains(t, err.Error(), "loading room")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
	assert.False(t, IsKind(nil, KindNotFound))
}
