package postgresql

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/salary"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) salary.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Append implements salary.AdjustmentRepository.
func (r *adjustmentRepository) Append(ctx context.Context, adjustment salary.Adjustment) (salary.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_adjustments (
			id, employee_id, position_id, change_type, amount,
			effective_date, reason, created_by_user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		adjustment.ID,
		adjustment.EmployeeID,
		adjustment.PositionID,
		adjustment.ChangeType,
		adjustment.Amount,
		adjustment.EffectiveDate,
		adjustment.Reason,
		adjustment.CreatedByUserID,
	).Scan(&adjustment.CreatedAt)
	if err != nil {
		return salary.Adjustment{}, fmt.Errorf("failed to append salary adjustment: %w", err)
	}

	return adjustment, nil
}

// History implements salary.AdjustmentRepository.
func (r *adjustmentRepository) History(ctx context.Context, employeeID string) ([]salary.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.position_id, sa.change_type, sa.amount,
		       sa.effective_date, sa.reason, sa.created_by_user_id, sa.created_at,
		       p.title AS position_title
		FROM salary_adjustments sa
		LEFT JOIN positions p ON p.id = sa.position_id
		WHERE sa.employee_id = $1
		ORDER BY sa.effective_date DESC, sa.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary history: %w", err)
	}
	defer rows.Close()

	var adjustments []salary.Adjustment
	for rows.Next() {
		var a salary.Adjustment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.PositionID, &a.ChangeType, &a.Amount,
			&a.EffectiveDate, &a.Reason, &a.CreatedByUserID, &a.CreatedAt,
			&a.PositionTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary adjustments: %w", err)
	}

	return adjustments, nil
}

// SumAllowances implements salary.AdjustmentRepository.
func (r *adjustmentRepository) SumAllowances(ctx context.Context, employeeID string, positionID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_adjustments
		WHERE employee_id = $1
		  AND position_id = $2
		  AND change_type = $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, positionID, salary.ChangeTypeAllowance).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allowances: %w", err)
	}

	return total, nil
}
