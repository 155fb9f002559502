//go:build unit

package supplier_test

import (
	"testing"

	"carestay/internal/domain/supplier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	owner := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		taxID := "NL123456789B01"
		s, err := supplier.NewSupplier(owner, " Acme Care BV ", &taxID, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, owner, s.OwnerUserID())
		assert.Equal(t, "Acme Care BV", s.LegalName())
		assert.Equal(t, supplier.QCPending, s.QCStatus())
		assert.False(t, s.IsApproved())
	})

	t.Run("blank legal name rejected", func(t *testing.T) {
		_, err := supplier.NewSupplier(owner, "   ", nil, nil)
		require.ErrorIs(t, err, supplier.ErrInvalidLegalName)
	})
}

func TestNewQCStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		status, err := supplier.NewQCStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, status.String())
	}

	_, err := supplier.NewQCStatus("flagged")
	require.ErrorIs(t, err, supplier.ErrInvalidQCStatus)
}

func TestIsApproved(t *testing.T) {
	owner := uuid.New()
	s, err := supplier.NewSupplier(owner, "Acme Care BV", nil, nil)
	require.NoError(t, err)
	require.False(t, s.IsApproved())

	approved := supplier.ReconstructSupplier(
		s.ID(), owner, s.LegalName(), nil, nil,
		supplier.QCApproved, s.CreatedAt(), s.UpdatedAt(),
	)
	assert.True(t, approved.IsApproved())
}
