package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domcatalog "example.com/flowpos/internal/domain/catalog"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, p *domcatalog.Product) (*domcatalog.Product, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO products (id, name, sku, price, cost, category, stock, is_active)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, p.ID, p.Name, p.SKU, p.Price, p.Cost, p.Category, p.Stock, p.IsActive)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *CatalogRepository) Update(ctx context.Context, p *domcatalog.Product) (*domcatalog.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET name = ?, sku = ?, price = ?, cost = ?, category = ?, stock = ?, is_active = ?
        WHERE id = ?
    `, p.Name, p.SKU, p.Price, p.Cost, p.Category, p.Stock, p.IsActive, p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domcatalog.ErrProductNotFound
	}
	return p, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcatalog.ErrProductNotFound
	}
	return nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domcatalog.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, sku, price, cost, category, stock, is_active
        FROM products WHERE id = ?
    `, id)
	return scanProduct(row)
}

func (r *CatalogRepository) GetByIDs(ctx context.Context, ids []string) ([]*domcatalog.Product, error) {
	if len(ids) == 0 {
		return []*domcatalog.Product{}, nil
	}

	query := `
        SELECT id, name, sku, price, cost, category, stock, is_active
        FROM products
        WHERE id IN (?` + strings.Repeat(",?", len(ids)-1) + `)
    `
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *CatalogRepository) List(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.Product, error) {
	query := `
        SELECT id, name, sku, price, cost, category, stock, is_active
        FROM products
    `
	var clauses []string
	var args []any

	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR sku LIKE ?)")
		like := fmt.Sprintf("%%%s%%", filter.Search)
		args = append(args, like, like)
	}
	if filter.OnlyActive {
		clauses = append(clauses, "is_active = 1")
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
	return scanProducts(rows)
}

func (r *CatalogRepository) AdjustStock(ctx context.Context, id string, delta int64) (*domcatalog.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET stock = stock + ?
        WHERE id = ? AND stock + ? >= 0
    `, delta, id, delta)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domcatalog.ErrOutOfStock
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domcatalog.Product, error) {
	var p domcatalog.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Cost, &p.Category, &p.Stock, &p.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcatalog.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]*domcatalog.Product, error) {
	var products []*domcatalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
