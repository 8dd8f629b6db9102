package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domsale "example.com/flowpos/internal/domain/sale"
)

type SaleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, s *domsale.Sale) (_ *domsale.Sale, retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO sales (id, register_id, customer_id, cashier_id, subtotal, tax, total, tax_rate, payment_method, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, s.ID, s.RegisterID, nullString(s.CustomerID), s.CashierID, s.Subtotal, s.Tax, s.Total, s.TaxRate, s.Payment, s.CreatedAt)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	for _, l := range s.Lines {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO sale_lines (sale_id, product_id, product_name, unit_price, quantity)
            VALUES (?, ?, ?, ?, ?)
        `, s.ID, l.ProductID, l.Name, l.UnitPrice, l.Quantity)
		if err != nil {
			retErr = err
			return nil, retErr
		}
	}

	if err = tx.Commit(); err != nil {
		retErr = err
		return nil, retErr
	}
	return s, nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domsale.Sale, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, register_id, customer_id, cashier_id, subtotal, tax, total, tax_rate, payment_method, created_at
        FROM sales WHERE id = ?
    `, id)

	s, err := scanSale(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SaleRepository) List(ctx context.Context, filter domsale.ListFilter) ([]*domsale.Sale, error) {
	query := `
        SELECT id, register_id, customer_id, cashier_id, subtotal, tax, total, tax_rate, payment_method, created_at
        FROM sales
    `
	var clauses []string
	var args []any

	if filter.RegisterID != "" {
		clauses = append(clauses, "register_id = ?")
		args = append(args, filter.RegisterID)
	}
	if !filter.From.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.From)
	}
	if !filter.To.IsZero() {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, filter.To)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domsale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range sales {
		if err := r.loadLines(ctx, s); err != nil {
			return nil, err
		}
	}
	return sales, nil
}

func (r *SaleRepository) loadLines(ctx context.Context, s *domsale.Sale) error {
	rows, err := r.db.QueryContext(ctx, `
        SELECT product_id, product_name, unit_price, quantity
        FROM sale_lines WHERE sale_id = ?
        ORDER BY id
    `, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l domsale.Line
		if err := rows.Scan(&l.ProductID, &l.Name, &l.UnitPrice, &l.Quantity); err != nil {
			return err
		}
		s.Lines = append(s.Lines, l)
	}
	return rows.Err()
}

func scanSale(row rowScanner) (*domsale.Sale, error) {
	var s domsale.Sale
	var customerID sql.NullString
	err := row.Scan(&s.ID, &s.RegisterID, &customerID, &s.CashierID, &s.Subtotal, &s.Tax, &s.Total, &s.TaxRate, &s.Payment, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domsale.ErrSaleNotFound
		}
		return nil, err
	}
	s.CustomerID = customerID.String
	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
