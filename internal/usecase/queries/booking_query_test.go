//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"carestay/internal/domain/user"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/usecase/queries"
	"carestay/internal/usecase/shared"
	"carestay/tests/common/builder"
	queriesmock "carestay/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUoW runs every closure directly against a nil DBTX; read stores are
// mocked so no connection is ever touched.
type fakeUoW struct {
	reads shared.CommandReads
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	panic("write transactions are not available in query tests")
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.reads
}

type stubCommandReads struct {
	shared.CommandReads
	supplier    *shared.SupplierSnapshot
	supplierErr error
}

func (s *stubCommandReads) SupplierByOwner(ctx context.Context, ownerUserID uuid.UUID) (*shared.SupplierSnapshot, error) {
	return s.supplier, s.supplierErr
}

func TestGetBookingByID(t *testing.T) {
	bk := builder.NewBookingBuilder()
	view := bk.BuildView()
	admin := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name      string
		actorID   uuid.UUID
		actorRole user.Role
		supplier  *shared.SupplierSnapshot
		wantErr   error
	}{
		{name: "the booking owner can read it", actorID: bk.UserID, actorRole: user.RoleCustomer},
		{name: "an admin can read any booking", actorID: admin, actorRole: user.RoleAdmin},
		{name: "the home supplier can read it", actorID: bk.SupplierID, actorRole: user.RoleSupplier,
			supplier: &shared.SupplierSnapshot{ID: bk.SupplierID, OwnerUserID: bk.SupplierID}},
		{name: "another supplier is denied", actorID: stranger, actorRole: user.RoleSupplier,
			supplier: &shared.SupplierSnapshot{ID: uuid.New(), OwnerUserID: stranger},
			wantErr:  queries.ErrBookingAccessDenied},
		{name: "another customer is denied", actorID: stranger, actorRole: user.RoleCustomer,
			wantErr: queries.ErrBookingAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)

			uow := &fakeUoW{reads: &stubCommandReads{supplier: tt.supplier}}
			q := queries.NewBookingQueries(uow, store)

			got, err := q.GetByID(context.Background(), tt.actorID, tt.actorRole, view.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		})
	}

	t.Run("a missing booking maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		q := queries.NewBookingQueries(&fakeUoW{}, store)

		_, err := q.GetByID(context.Background(), bk.UserID, user.RoleCustomer, view.ID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestListMine(t *testing.T) {
	bk := builder.NewBookingBuilder()
	userID := bk.UserID

	makeViews := func(n int) []queries.BookingView {
		views := make([]queries.BookingView, n)
		base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		for i := range views {
			v := bk.BuildView()
			v.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
			views[i] = *v
		}
		return views
	}

	t.Run("a full page carries a cursor to the next one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		views := makeViews(2)
		store.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), 2).
			Return(views, nil)

		q := queries.NewBookingQueries(&fakeUoW{}, store)

		list, err := q.ListMine(context.Background(), userID, "", 2)
		require.NoError(t, err)
		require.Len(t, list.Bookings, 2)
		require.NotNil(t, list.NextCursor)

		after, afterID, err := queries.DecodeAfterCursor(*list.NextCursor)
		require.NoError(t, err)
		last := views[len(views)-1]
		assert.True(t, last.CreatedAt.Equal(after))
		assert.Equal(t, last.ID, afterID)
	})

	t.Run("a short page ends the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), 20).
			Return(makeViews(1), nil)

		q := queries.NewBookingQueries(&fakeUoW{}, store)

		list, err := q.ListMine(context.Background(), userID, "", 0)
		require.NoError(t, err)
		assert.Len(t, list.Bookings, 1)
		assert.Nil(t, list.NextCursor)
	})

	t.Run("the decoded cursor is forwarded to the read store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		after := time.Date(2026, 9, 30, 8, 0, 0, 0, time.UTC)
		afterID := uuid.New()
		cursor := queries.EncodeAfterCursor(after, afterID)

		store.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID, gomock.Any(), afterID, 20).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, gotAfter time.Time, _ uuid.UUID, _ int) ([]queries.BookingView, error) {
				assert.True(t, after.Equal(gotAfter))
				return nil, nil
			})

		q := queries.NewBookingQueries(&fakeUoW{}, store)

		_, err := q.ListMine(context.Background(), userID, cursor, 0)
		require.NoError(t, err)
	})

	t.Run("a garbled cursor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		q := queries.NewBookingQueries(&fakeUoW{}, store)

		_, err := q.ListMine(context.Background(), userID, "not-a-cursor", 0)
		assert.Error(t, err)
	})
}

func TestListForSupplier(t *testing.T) {
	bk := builder.NewBookingBuilder()
	ownerID := uuid.New()
	supplierID := bk.SupplierID

	t.Run("resolves the supplier before listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListBySupplier(gomock.Any(), gomock.Any(), supplierID, gomock.Any(), gomock.Any(), 20).
			Return([]queries.BookingView{*bk.BuildView()}, nil)

		uow := &fakeUoW{reads: &stubCommandReads{
			supplier: &shared.SupplierSnapshot{ID: supplierID, OwnerUserID: ownerID},
		}}
		q := queries.NewBookingQueries(uow, store)

		list, err := q.ListForSupplier(context.Background(), ownerID, "", 0)
		require.NoError(t, err)
		assert.Len(t, list.Bookings, 1)
	})

	t.Run("a caller without a supplier record is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		uow := &fakeUoW{reads: &stubCommandReads{
			supplierErr: infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound),
		}}
		q := queries.NewBookingQueries(uow, store)

		_, err := q.ListForSupplier(context.Background(), ownerID, "", 0)
		assert.ErrorIs(t, err, queries.ErrSupplierNotFound)
	})
}
