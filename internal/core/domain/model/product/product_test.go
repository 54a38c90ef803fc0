package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/pkg/errs"
)

func TestKindFromString(t *testing.T) {
	t.Run("parses catalog kinds", func(t *testing.T) {
		for _, s := range []string{"6kg", "12kg", "25kg"} {
			kind, err := product.KindFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, kind.String())
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		for _, s := range []string{"", "50kg", "12KG", "12 kg"} {
			_, err := product.KindFromString(s)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDefaultCatalogPrices(t *testing.T) {
	catalog := product.DefaultCatalog()

	cases := []struct {
		kind  product.Kind
		price int64
	}{
		{product.Kind6KG, 2500},
		{product.Kind12KG, 4500},
		{product.Kind25KG, 8500},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			price, err := catalog.UnitPriceMinor(tc.kind)

			require.NoError(t, err)
			assert.Equal(t, tc.price, price)
		})
	}
}

func TestCatalogTotalPriceMinor(t *testing.T) {
	catalog := product.DefaultCatalog()

	t.Run("multiplies unit price by quantity", func(t *testing.T) {
		total, err := catalog.TotalPriceMinor(product.Kind12KG, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(9000), total)
	})

	t.Run("unknown kind is not found", func(t *testing.T) {
		_, err := catalog.TotalPriceMinor(product.Kind("bottled"), 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
