package repository

import (
	"database/sql"

	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
)

type ValuationRepository struct {
	db *sql.DB
}

func NewValuationRepository(db *sql.DB) *ValuationRepository {
	return &ValuationRepository{db: db}
}

func (r *ValuationRepository) SaveValuation(v *model.Valuation) error {
	return r.db.QueryRow(`
		INSERT INTO valuation(brand, model, insights, margin_percentage, margin_description, assessment, recommendation, confidence, model_used)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, v.Brand, v.Model, v.Insights, v.MarginPercentage, v.MarginDescription, v.Assessment, v.Recommendation, v.Confidence, v.ModelUsed).Scan(&v.ID)
}

func (r *ValuationRepository) GetValuations(limit, offset int) ([]model.Valuation, error) {
	rows, err := r.db.Query(`
		SELECT id, brand, model, insights, margin_percentage, margin_description, assessment, recommendation, confidence, model_used, created_at
		FROM valuation
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var valuations []model.Valuation
	for rows.Next() {
		v, err := scanValuation(rows.Scan)
		if err != nil {
			return nil, err
		}
		valuations = append(valuations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return valuations, nil
}

func (r *ValuationRepository) GetValuationTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM valuation`).Scan(&total)
	return total, err
}

func (r *ValuationRepository) GetValuationByID(id int64) (*model.Valuation, error) {
	row := r.db.QueryRow(`
		SELECT id, brand, model, insights, margin_percentage, margin_description, assessment, recommendation, confidence, model_used, created_at
		FROM valuation
		WHERE id = $1
	`, id)

	v, err := scanValuation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanValuation(scan func(...any) error) (model.Valuation, error) {
	var v model.Valuation
	var margin sql.NullFloat64
	err := scan(&v.ID, &v.Brand, &v.Model, &v.Insights, &margin, &v.MarginDescription, &v.Assessment, &v.Recommendation, &v.Confidence, &v.ModelUsed, &v.CreatedAt)
	if err != nil {
		return v, err
	}
	if margin.Valid {
		v.MarginPercentage = &margin.Float64
	}
	return v, nil
}
