package handlers

import (
	"time"

	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateCouponRequest struct {
	Code          string  `json:"code" validate:"required,min=3"`
	DiscountType  string  `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue float64 `json:"discount_value" validate:"required,gt=0"`
	EventID       string  `json:"event_id"`
	MaxUsage      int     `json:"max_usage" validate:"required,gt=0"`
	ExpiresAt     string  `json:"expires_at" validate:"required"`
}

// couponView decorates the stored coupon with its effective status, computed
// at response time.
type couponView struct {
	models.Coupon
	Status string `json:"status"`
}

func (h *Handler) ListCoupons(c *fiber.Ctx) error {
	now := time.Now()
	coupons := h.store.Coupons()

	views := make([]couponView, len(coupons))
	for i, coupon := range coupons {
		views[i] = couponView{
			Coupon: coupon,
			Status: store.EffectiveCouponStatus(coupon, now),
		}
	}
	return utils.Success(c, views, "Coupons retrieved")
}

func (h *Handler) CreateCoupon(c *fiber.Ctx) error {
	var req CreateCouponRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return utils.Error(c, "Invalid expires_at format", fiber.StatusBadRequest)
	}

	coupon, ok, storeErr := h.store.CreateCoupon(store.CreateCouponInput{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		EventID:       req.EventID,
		MaxUsage:      req.MaxUsage,
		ExpiresAt:     expiresAt,
	})
	if storeErr != nil {
		return utils.Error(c, "Failed to save coupon", fiber.StatusInternalServerError)
	}
	if !ok {
		return utils.Error(c, "Coupon code already exists", fiber.StatusConflict)
	}
	return utils.Success(c, coupon, "Coupon created", fiber.StatusCreated)
}

func (h *Handler) DeleteCoupon(c *fiber.Ctx) error {
	applied, err := h.store.DeleteCoupon(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to delete coupon", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Coupon not found", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Coupon deleted")
}

// RedeemCoupon bumps the usage counter. Depletion is never written to the
// coupon; readers derive it.
func (h *Handler) RedeemCoupon(c *fiber.Ctx) error {
	applied, err := h.store.IncrementCouponUsage(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save coupon", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Coupon not found", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Coupon redeemed")
}
