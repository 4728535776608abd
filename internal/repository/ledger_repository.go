package repository

import (
	"database/sql"

	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) SaveRecord(rec *model.LedgerRecord) error {
	return r.db.QueryRow(`
		INSERT INTO ledger_record(brand, model, variant, year, date, bought_price, sold_price, source)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, rec.Brand, rec.Model, rec.Variant, rec.Year, rec.Date, rec.BoughtPrice, rec.SoldPrice, rec.Source).Scan(&rec.ID)
}

func (r *LedgerRepository) GetAllRecords() ([]model.LedgerRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, brand, model, variant, year, date, bought_price, sold_price, source, imported_at
		FROM ledger_record
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *LedgerRepository) GetRecords(limit, offset int) ([]model.LedgerRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, brand, model, variant, year, date, bought_price, sold_price, source, imported_at
		FROM ledger_record
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *LedgerRepository) GetRecordTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM ledger_record`).Scan(&total)
	return total, err
}

func scanRecords(rows *sql.Rows) ([]model.LedgerRecord, error) {
	var records []model.LedgerRecord
	for rows.Next() {
		var rec model.LedgerRecord
		var bought, sold sql.NullFloat64
		err := rows.Scan(&rec.ID, &rec.Brand, &rec.Model, &rec.Variant, &rec.Year, &rec.Date, &bought, &sold, &rec.Source, &rec.ImportedAt)
		if err != nil {
			return nil, err
		}
		if bought.Valid {
			rec.BoughtPrice = &bought.Float64
		}
		if sold.Valid {
			rec.SoldPrice = &sold.Float64
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
