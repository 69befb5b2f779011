// Package caregiver implements read access to caregiver relationships.
package caregiver

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
)

const table = "caregiver_relationships"

// Repo provides caregiver relationship lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new caregiver relationship repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CountActiveForPatient returns how many caregivers actively follow the patient.
func (r *Repo) CountActiveForPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"patient_id": patientID, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count caregivers: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "caregiver_relationship", patientID)
	}
	return n, nil
}

// IsActiveCaregiver reports whether caregiverID actively looks after patientID.
func (r *Repo) IsActiveCaregiver(ctx context.Context, caregiverID, patientID uuid.UUID) (bool, error) {
	sub, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"caregiver_id": caregiverID, "patient_id": patientID, "is_active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build caregiver check: %w", err)
	}

	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, "SELECT EXISTS("+sub+")", args...).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "caregiver_relationship", patientID)
	}
	return ok, nil
}
