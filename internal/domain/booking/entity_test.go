//go:build unit

package booking_test

import (
	"testing"
	"time"

	"carestay/internal/domain/booking"
	"carestay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusDraft, actual.Status())
		assert.Equal(t, int32(1), actual.Guests())
		assert.Equal(t, int64(0), actual.TotalCents())
		assert.Empty(t, actual.Items())
		assert.Equal(t, int32(3), actual.Stay().Nights())
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single guest",
				mutate: func(b *builder.BookingBuilder) { b.Guests = 1 },
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.BookingBuilder) { b.Guests = 0 },
				errIs:  booking.ErrInvalidGuests,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.BookingBuilder) { b.Guests = -1 },
				errIs:  booking.ErrInvalidGuests,
			},
		})
	})

	t.Run("stay period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one night stay",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = b.CheckIn.AddDate(0, 0, 1) },
			},
			{
				name:   "check-out equals check-in",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = b.CheckIn },
				errIs:  booking.ErrInvalidStayPeriod,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = b.CheckIn.AddDate(0, 0, -1) },
				errIs:  booking.ErrInvalidStayPeriod,
			},
			{
				name: "same day different clock times",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
					b.CheckOut = time.Date(2026, 10, 1, 23, 0, 0, 0, time.UTC)
				},
				errIs: booking.ErrInvalidStayPeriod,
			},
		})
	})

	t.Run("currency validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "three letter code",
				mutate: func(b *builder.BookingBuilder) { b.Currency = "USD" },
			},
			{
				name:   "too short",
				mutate: func(b *builder.BookingBuilder) { b.Currency = "EU" },
				errIs:  booking.ErrInvalidCurrency,
			},
			{
				name:   "too long",
				mutate: func(b *builder.BookingBuilder) { b.Currency = "EURO" },
				errIs:  booking.ErrInvalidCurrency,
			},
			{
				name:   "empty",
				mutate: func(b *builder.BookingBuilder) { b.Currency = "" },
				errIs:  booking.ErrInvalidCurrency,
			},
		})
	})
}

func TestStayPeriod(t *testing.T) {
	t.Run("truncates clock time to day", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(
			time.Date(2026, 10, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 10, 4, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), stay.CheckIn())
		assert.Equal(t, time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC), stay.CheckOut())
		assert.Equal(t, int32(3), stay.Nights())
	})

	t.Run("days excludes check-out day", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		days := stay.Days()
		require.Len(t, days, 2)
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), days[0])
		assert.Equal(t, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), days[1])
	})
}

func TestItem(t *testing.T) {
	bookingID := uuid.New()
	roomTypeID := uuid.New()
	ratePlanID := uuid.New()

	t.Run("subtotal derived from unit price and nights", func(t *testing.T) {
		item, err := booking.NewItem(bookingID, roomTypeID, ratePlanID, 3, 12000)
		require.NoError(t, err)

		assert.Equal(t, int64(36000), item.SubtotalCents())
		assert.Equal(t, int32(3), item.Nights())
		assert.Equal(t, int64(12000), item.UnitPriceCents())
		assert.NotEqual(t, uuid.Nil, item.ID())
	})

	t.Run("free nights are allowed", func(t *testing.T) {
		item, err := booking.NewItem(bookingID, roomTypeID, ratePlanID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), item.SubtotalCents())
	})

	t.Run("zero nights rejected", func(t *testing.T) {
		item, err := booking.NewItem(bookingID, roomTypeID, ratePlanID, 0, 12000)
		require.Nil(t, item)
		require.ErrorIs(t, err, booking.ErrInvalidNights)
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		item, err := booking.NewItem(bookingID, roomTypeID, ratePlanID, 3, -1)
		require.Nil(t, item)
		require.ErrorIs(t, err, booking.ErrNegativeUnitCost)
	})
}

func TestBookingAddItem(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	first, err := booking.NewItem(b.ID(), uuid.New(), uuid.New(), 3, 12000)
	require.NoError(t, err)
	second, err := booking.NewItem(b.ID(), uuid.New(), uuid.New(), 3, 8000)
	require.NoError(t, err)

	b.AddItem(first)
	assert.Equal(t, int64(36000), b.TotalCents())

	b.AddItem(second)
	assert.Equal(t, int64(60000), b.TotalCents())
	assert.Len(t, b.Items(), 2)
}

func TestBookingTransitions(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("draft can be approved", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("approved can be paid", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		require.NoError(t, b.MarkPaid())
		assert.Equal(t, booking.StatusPaid, b.Status())
	})

	t.Run("draft cannot be paid directly", func(t *testing.T) {
		b := newBooking(t)
		require.ErrorIs(t, b.MarkPaid(), booking.ErrInvalidTransition)
	})

	t.Run("approved cannot be approved again", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		require.ErrorIs(t, b.Approve(), booking.ErrInvalidTransition)
	})

	t.Run("draft can fail", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.MarkFailed())
		assert.Equal(t, booking.StatusFailed, b.Status())
	})

	t.Run("approved can fail", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		require.NoError(t, b.MarkFailed())
		assert.Equal(t, booking.StatusFailed, b.Status())
	})

	t.Run("paid cannot fail", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		require.NoError(t, b.MarkPaid())
		require.ErrorIs(t, b.MarkFailed(), booking.ErrInvalidTransition)
	})
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{booking.StatusDraft, booking.StatusApproved, booking.StatusPaid, booking.StatusFailed} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, booking.Status("cancelled").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
