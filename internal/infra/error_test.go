//go:build unit

package infra_test

import (
	"testing"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to find product", assert.AnError)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to find product")
	})

	t.Run("keeps the explicit kind and the cause", func(t *testing.T) {
		err := infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, pgx.ErrNoRows))
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
	})
}
