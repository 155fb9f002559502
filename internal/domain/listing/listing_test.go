//go:build unit

package listing_test

import (
	"testing"
	"time"

	"carestay/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNursingHome(t *testing.T) {
	supplierID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		gps := "52.37,4.89"
		home, err := listing.NewNursingHome(supplierID, "Sunrise Care", "Main St 1", "Amsterdam", "NH", &gps)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, home.ID())
		assert.Equal(t, listing.HomeDraft, home.Status())
		assert.False(t, home.IsLive())
		assert.Equal(t, "Sunrise Care", home.Name())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := listing.NewNursingHome(supplierID, "  ", "Main St 1", "Amsterdam", "NH", nil)
		require.ErrorIs(t, err, listing.ErrInvalidHomeName)
	})

	t.Run("blank address rejected", func(t *testing.T) {
		_, err := listing.NewNursingHome(supplierID, "Sunrise Care", "", "Amsterdam", "NH", nil)
		require.ErrorIs(t, err, listing.ErrInvalidAddress)
	})
}

func TestNewHomeStatus(t *testing.T) {
	for _, s := range []string{"draft", "live", "paused"} {
		status, err := listing.NewHomeStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, status.String())
	}

	_, err := listing.NewHomeStatus("archived")
	require.ErrorIs(t, err, listing.ErrInvalidHomeStatus)

	_, err = listing.NewHomeStatus("")
	require.ErrorIs(t, err, listing.ErrInvalidHomeStatus)
}

func TestNewRoomType(t *testing.T) {
	homeID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		rt, err := listing.NewRoomType(homeID, " Single Room ", 1, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Single Room", rt.Name())
		assert.Equal(t, int32(1), rt.Capacity())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := listing.NewRoomType(homeID, "", 2, nil, nil)
		require.ErrorIs(t, err, listing.ErrInvalidRoomName)
	})

	t.Run("non-positive capacity rejected", func(t *testing.T) {
		_, err := listing.NewRoomType(homeID, "Single Room", 0, nil, nil)
		require.ErrorIs(t, err, listing.ErrInvalidCapacity)
	})
}

func TestNewRatePlan(t *testing.T) {
	roomTypeID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		plan, err := listing.NewRatePlan(roomTypeID, "Flexible", listing.PricePerNight, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, listing.PricePerNight, plan.PricingModel())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := listing.NewRatePlan(roomTypeID, " ", listing.PricePerNight, nil, nil)
		require.ErrorIs(t, err, listing.ErrInvalidPlanName)
	})

	t.Run("invalid pricing model rejected", func(t *testing.T) {
		_, err := listing.NewRatePlan(roomTypeID, "Flexible", listing.PricingModel("hourly"), nil, nil)
		require.ErrorIs(t, err, listing.ErrInvalidPricingModel)
	})
}

func TestNewPricingModel(t *testing.T) {
	for _, s := range []string{"per_night", "package"} {
		model, err := listing.NewPricingModel(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, model.String())
	}

	_, err := listing.NewPricingModel("hourly")
	require.ErrorIs(t, err, listing.ErrInvalidPricingModel)
}

func TestNewDayPrice(t *testing.T) {
	t.Run("truncates clock time to day", func(t *testing.T) {
		dp, err := listing.NewDayPrice(time.Date(2026, 10, 1, 14, 30, 0, 0, time.UTC), 12000, 4)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), dp.Day)
	})

	t.Run("zero price and zero availability allowed", func(t *testing.T) {
		_, err := listing.NewDayPrice(time.Now(), 0, 0)
		require.NoError(t, err)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := listing.NewDayPrice(time.Now(), -1, 4)
		require.ErrorIs(t, err, listing.ErrNegativePrice)
	})

	t.Run("negative availability rejected", func(t *testing.T) {
		_, err := listing.NewDayPrice(time.Now(), 12000, -1)
		require.ErrorIs(t, err, listing.ErrNegativeAvailability)
	})
}

func TestValidateCalendarDays(t *testing.T) {
	day := func(d int) listing.DayPrice {
		dp, err := listing.NewDayPrice(time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC), 12000, 4)
		require.NoError(t, err)
		return dp
	}

	t.Run("distinct days pass", func(t *testing.T) {
		require.NoError(t, listing.ValidateCalendarDays([]listing.DayPrice{day(1), day(2), day(3)}))
	})

	t.Run("empty batch passes", func(t *testing.T) {
		require.NoError(t, listing.ValidateCalendarDays(nil))
	})

	t.Run("duplicate day rejected", func(t *testing.T) {
		err := listing.ValidateCalendarDays([]listing.DayPrice{day(1), day(2), day(1)})
		require.ErrorIs(t, err, listing.ErrDuplicateDay)
	})
}
