package domain

import "time"

// Billing period constants.
const (
	BillingPeriodMonthly = "monthly"
	BillingPeriodYearly  = "yearly"
)

// Plan is a subscription plan offered by the tracking application.
// Static reference data seeded alongside pricing but unrelated to it.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	BillingPeriod string   `json:"billing_period"`
	Features      []string `json:"features"`
}

// PromoCode is a subscription discount code tied to an optional plan.
type PromoCode struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	ValidUntil      time.Time `json:"valid_until"`
	PlanID          string    `json:"plan_id,omitempty"`
}
