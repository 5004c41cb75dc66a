package store

import (
	"strings"
	"time"

	"ticket-marketplace-backend/internal/models"
)

// CreateCouponInput carries a new coupon definition. The code is normalized
// to uppercase; an empty EventID means the coupon applies to every event.
type CreateCouponInput struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	EventID       string
	MaxUsage      int
	ExpiresAt     time.Time
}

func (s *Store) Coupons() []models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

// CreateCoupon adds a coupon with usage starting at zero. A code that is
// already taken (case-insensitively) is a no-op.
func (s *Store) CreateCoupon(in CreateCouponInput) (models.Coupon, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(strings.TrimSpace(in.Code))
	for i := range s.coupons {
		if s.coupons[i].Code == code {
			return models.Coupon{}, false, nil
		}
	}

	coupon := models.Coupon{
		ID:            newID(),
		Code:          code,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		EventID:       in.EventID,
		MaxUsage:      in.MaxUsage,
		UsedCount:     0,
		ExpiresAt:     in.ExpiresAt,
		CreatedAt:     s.now(),
	}

	s.coupons = append(s.coupons, coupon)
	if err := persistCollection(s, keyCoupons, s.coupons); err != nil {
		return models.Coupon{}, false, err
	}
	return coupon, true, nil
}

func (s *Store) DeleteCoupon(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID == id {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			if err := persistCollection(s, keyCoupons, s.coupons); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// IncrementCouponUsage is the redemption seam: it bumps the usage counter
// and nothing else. Depletion is derived on read, never written back.
func (s *Store) IncrementCouponUsage(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID == id {
			s.coupons[i].UsedCount++
			if err := persistCollection(s, keyCoupons, s.coupons); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// EffectiveCouponStatus computes the coupon's status at a point in time.
// Depletion is checked before expiry: a used-up coupon reports depleted even
// when its expiry date is still ahead.
func EffectiveCouponStatus(c models.Coupon, now time.Time) string {
	if c.UsedCount >= c.MaxUsage {
		return models.CouponStatusDepleted
	}
	if now.After(c.ExpiresAt) {
		return models.CouponStatusExpired
	}
	return models.CouponStatusActive
}
