package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/slatehealth/health-plan-backend/internal/model"
)

// PlanRepo provides access to the health_plans table.
type PlanRepo struct{ DB *sql.DB }

func NewPlanRepo(db *sql.DB) *PlanRepo { return &PlanRepo{DB: db} }

const planColumns = "id, plan_id, plan_data, metadata, is_active, created_at, updated_at"

// Create inserts a plan record and returns its generated row ID.  The
// metadata document may be nil, in which case an empty object is stored so
// jsonb queries never have to deal with NULL.
func (r *PlanRepo) Create(ctx context.Context, planID string, planData, metadata json.RawMessage) (model.PlanRecord, error) {
	if metadata == nil {
		metadata = json.RawMessage(`{}`)
	}
	rec := model.PlanRecord{
		ID:       uuid.NewString(),
		PlanID:   strings.TrimSpace(planID),
		PlanData: planData,
		Metadata: metadata,
		IsActive: true,
	}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO health_plans (id, plan_id, plan_data, metadata, is_active)
		 VALUES ($1,$2,$3,$4,TRUE)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.PlanID, []byte(rec.PlanData), []byte(rec.Metadata)).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.PlanRecord{}, ErrPlanExists
		}
		return model.PlanRecord{}, err
	}
	return rec, nil
}

// GetByPlanID fetches a single active plan by its slug.
func (r *PlanRepo) GetByPlanID(ctx context.Context, planID string) (model.PlanRecord, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+planColumns+" FROM health_plans WHERE plan_id=$1 AND is_active LIMIT 1",
		planID)
	return scanPlan(row)
}

// ListActive returns all active plans, newest first.
func (r *PlanRepo) ListActive(ctx context.Context) ([]model.PlanRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+planColumns+" FROM health_plans WHERE is_active ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

// ListByCategory returns active plans whose metadata carries the given
// category annotation.
func (r *PlanRepo) ListByCategory(ctx context.Context, category string) ([]model.PlanRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+planColumns+" FROM health_plans WHERE is_active AND metadata->>'category'=$1 ORDER BY created_at DESC",
		category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

// Update replaces the plan document and, when non-nil, the metadata of an
// existing plan.  Inactive plans cannot be updated.
func (r *PlanRepo) Update(ctx context.Context, planID string, planData, metadata json.RawMessage) error {
	var (
		res sql.Result
		err error
	)
	if metadata != nil {
		res, err = r.DB.ExecContext(ctx,
			"UPDATE health_plans SET plan_data=$1, metadata=$2, updated_at=NOW() WHERE plan_id=$3 AND is_active",
			[]byte(planData), []byte(metadata), planID)
	} else {
		res, err = r.DB.ExecContext(ctx,
			"UPDATE health_plans SET plan_data=$1, updated_at=NOW() WHERE plan_id=$2 AND is_active",
			[]byte(planData), planID)
	}
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Deactivate soft-deletes a plan so it no longer appears in discovery.
func (r *PlanRepo) Deactivate(ctx context.Context, planID string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE health_plans SET is_active=FALSE, updated_at=NOW() WHERE plan_id=$1 AND is_active",
		planID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete permanently removes a plan record.
func (r *PlanRepo) Delete(ctx context.Context, planID string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM health_plans WHERE plan_id=$1", planID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Exists reports whether an active plan with the given slug exists.
func (r *PlanRepo) Exists(ctx context.Context, planID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM health_plans WHERE plan_id=$1 AND is_active LIMIT 1", planID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetMetadata returns only the metadata document and timestamps of a plan.
func (r *PlanRepo) GetMetadata(ctx context.Context, planID string) (json.RawMessage, time.Time, time.Time, error) {
	var (
		meta                 []byte
		createdAt, updatedAt time.Time
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT metadata, created_at, updated_at FROM health_plans WHERE plan_id=$1 AND is_active LIMIT 1",
		planID).Scan(&meta, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, time.Time{}, ErrPlanNotFound
	}
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	return json.RawMessage(meta), createdAt, updatedAt, nil
}

func scanPlan(row *sql.Row) (model.PlanRecord, error) {
	var (
		rec            model.PlanRecord
		data, metadata []byte
	)
	err := row.Scan(&rec.ID, &rec.PlanID, &data, &metadata, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PlanRecord{}, ErrPlanNotFound
	}
	if err != nil {
		return model.PlanRecord{}, err
	}
	rec.PlanData = json.RawMessage(data)
	rec.Metadata = json.RawMessage(metadata)
	return rec, nil
}

func collectPlans(rows *sql.Rows) ([]model.PlanRecord, error) {
	var out []model.PlanRecord
	for rows.Next() {
		var (
			rec            model.PlanRecord
			data, metadata []byte
		)
		if err := rows.Scan(&rec.ID, &rec.PlanID, &data, &metadata, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		rec.PlanData = json.RawMessage(data)
		rec.Metadata = json.RawMessage(metadata)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}
