package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

// PlanRepository implements repository.PlanRepository using PostgreSQL.
type PlanRepository struct {
	db database.DBTX
}

// NewPlanRepository creates a new PostgreSQL-backed plan repository.
func NewPlanRepository(db database.DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// CreatePlan inserts a new subscription plan into the database.
func (r *PlanRepository) CreatePlan(ctx context.Context, p *domain.Plan) error {
	featuresJSON, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	query := `
		INSERT INTO plans (id, name, price, billing_period, features)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.Exec(ctx, query, p.ID, p.Name, p.Price, p.BillingPeriod, featuresJSON)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	return nil
}

// CreatePromoCode inserts a new promo code into the database.
func (r *PlanRepository) CreatePromoCode(ctx context.Context, pc *domain.PromoCode) error {
	query := `
		INSERT INTO promo_codes (id, code, discount_percent, valid_until, plan_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, pc.ID, pc.Code, pc.DiscountPercent, pc.ValidUntil, pc.PlanID)
	if err != nil {
		return fmt.Errorf("insert promo code: %w", err)
	}

	return nil
}

// ClearPlans deletes all plans and returns the number of rows removed.
func (r *PlanRepository) ClearPlans(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM plans`)
	if err != nil {
		return 0, fmt.Errorf("clear plans: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ClearPromoCodes deletes all promo codes and returns the number of rows
// removed.
func (r *PlanRepository) ClearPromoCodes(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM promo_codes`)
	if err != nil {
		return 0, fmt.Errorf("clear promo codes: %w", err)
	}

	return tag.RowsAffected(), nil
}
