package repository

import (
	"context"
	"time"

	"carestay/internal/domain/listing"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarRepository struct{}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{}
}

const upsertCalendarDaySQL = `
INSERT INTO price_calendar (id, rate_plan_id, day, price_cents, available)
VALUES (gen_random_uuid(), $1, $2, $3, $4)
ON CONFLICT (rate_plan_id, day)
DO UPDATE SET price_cents = EXCLUDED.price_cents,
              available   = EXCLUDED.available,
              updated_at  = now()`

func (r *CalendarRepository) UpsertDays(ctx context.Context, dbtx db.DBTX, ratePlanID uuid.UUID, days []listing.DayPrice) error {
	for _, d := range days {
		_, err := dbtx.Exec(ctx, upsertCalendarDaySQL, ratePlanID, pgconv.DateFromTime(d.Day), d.PriceCents, d.Available)
		if err != nil {
			return infra.WrapRepoErr("failed to upsert calendar day", err)
		}
	}
	return nil
}

// Conditional decrement: guards against double-booking the last unit of a
// day without an explicit row lock.
const decrementAvailabilitySQL = `
UPDATE price_calendar
SET available = available - 1, updated_at = now()
WHERE rate_plan_id = $1 AND day = $2 AND available > 0`

func (r *CalendarRepository) DecrementAvailability(ctx context.Context, dbtx db.DBTX, ratePlanID uuid.UUID, day time.Time) error {
	tag, err := dbtx.Exec(ctx, decrementAvailabilitySQL, ratePlanID, pgconv.DateFromTime(day))
	if err != nil {
		return infra.WrapRepoErr("failed to decrement availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no availability for day", nil, infra.KindConditionFailed)
	}
	return nil
}
