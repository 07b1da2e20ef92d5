//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"seat-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, wantKind: infra.KindLockNotAvailable},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, wantKind: infra.KindDBFailure},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), wantKind: infra.KindDuplicateKey},
		{name: "plain error", err: errors.New("conn reset"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to do thing", tc.err, tc.kind...)

			var repoErr infra.RepositoryError
			assert.True(t, errors.As(err, &repoErr))
			assert.Equal(t, tc.wantKind, repoErr.Kind)
			assert.True(t, infra.IsKind(err, tc.wantKind))
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "failed to do thing")
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("boom"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
