package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace-backend/internal/models"
)

func TestCreateCouponNormalizesCode(t *testing.T) {
	s, _, clock := newTestStore(t)

	coupon, ok, err := s.CreateCoupon(CreateCouponInput{
		Code:          " summer25 ",
		DiscountType:  models.DiscountPercent,
		DiscountValue: 25,
		MaxUsage:      50,
		ExpiresAt:     clock.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "SUMMER25", coupon.Code)
	assert.Zero(t, coupon.UsedCount)

	// Same code in a different case: no-op.
	_, ok, err = s.CreateCoupon(CreateCouponInput{
		Code:      "Summer25",
		ExpiresAt: clock.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEffectiveCouponStatusPrecedence(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Depleted wins over a still-valid expiry date.
	depleted := models.Coupon{MaxUsage: 5, UsedCount: 5, ExpiresAt: now.AddDate(0, 1, 0)}
	assert.Equal(t, models.CouponStatusDepleted, EffectiveCouponStatus(depleted, now))

	// Depleted also wins when the coupon is expired too.
	both := models.Coupon{MaxUsage: 5, UsedCount: 7, ExpiresAt: now.AddDate(0, -1, 0)}
	assert.Equal(t, models.CouponStatusDepleted, EffectiveCouponStatus(both, now))

	// Not depleted but past expiry: expired.
	expired := models.Coupon{MaxUsage: 5, UsedCount: 2, ExpiresAt: now.AddDate(0, -1, 0)}
	assert.Equal(t, models.CouponStatusExpired, EffectiveCouponStatus(expired, now))

	// Otherwise active.
	active := models.Coupon{MaxUsage: 5, UsedCount: 2, ExpiresAt: now.AddDate(0, 1, 0)}
	assert.Equal(t, models.CouponStatusActive, EffectiveCouponStatus(active, now))
}

func TestCouponDepletionDerivedWithoutStatusMutation(t *testing.T) {
	s, _, clock := newTestStore(t)

	coupon, ok, err := s.CreateCoupon(CreateCouponInput{
		Code:          "ONEUSE",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 100,
		MaxUsage:      1,
		ExpiresAt:     clock.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.CouponStatusActive, EffectiveCouponStatus(coupon, clock.Now()))

	// The redemption flow only bumps the counter.
	applied, err := s.IncrementCouponUsage(coupon.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	var got models.Coupon
	for _, c := range s.Coupons() {
		if c.ID == coupon.ID {
			got = c
		}
	}
	assert.Equal(t, 1, got.UsedCount)
	assert.Equal(t, models.CouponStatusDepleted, EffectiveCouponStatus(got, clock.Now()))
}

func TestDeleteCoupon(t *testing.T) {
	s, _, clock := newTestStore(t)

	coupon, ok, err := s.CreateCoupon(CreateCouponInput{
		Code:      "GONE",
		ExpiresAt: clock.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.True(t, ok)

	applied, err := s.DeleteCoupon(coupon.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = s.DeleteCoupon(coupon.ID)
	require.NoError(t, err)
	assert.False(t, applied)
}
