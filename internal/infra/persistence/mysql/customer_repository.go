package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	domcustomer "example.com/flowpos/internal/domain/customer"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO customers (id, name, email, phone, address, type, total_spent, last_purchase)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, c.ID, c.Name, c.Email, c.Phone, c.Address, c.Type, c.TotalSpent, c.LastPurchase)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, domcustomer.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE customers SET name = ?, email = ?, phone = ?, address = ?, type = ?
        WHERE id = ?
    `, c.Name, c.Email, c.Phone, c.Address, c.Type, c.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcustomer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, phone, address, type, total_spent, last_purchase
        FROM customers WHERE id = ?
    `, id)

	var c domcustomer.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Type, &c.TotalSpent, &c.LastPurchase)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcustomer.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter domcustomer.ListFilter) ([]*domcustomer.Customer, error) {
	query := `
        SELECT id, name, email, phone, address, type, total_spent, last_purchase
        FROM customers
    `
	var clauses []string
	var args []any

	if filter.Type != nil {
		clauses = append(clauses, "type = ?")
		args = append(args, *filter.Type)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR email LIKE ? OR phone LIKE ?)")
		like := fmt.Sprintf("%%%s%%", filter.Search)
		args = append(args, like, like, like)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domcustomer.Customer
	for rows.Next() {
		var c domcustomer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Type, &c.TotalSpent, &c.LastPurchase); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) RecordPurchase(ctx context.Context, id string, amount decimal.Decimal, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE customers
        SET total_spent = total_spent + ?, last_purchase = GREATEST(last_purchase, ?)
        WHERE id = ?
    `, amount, at, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcustomer.ErrCustomerNotFound
	}
	return nil
}
