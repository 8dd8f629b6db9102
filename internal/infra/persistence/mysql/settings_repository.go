package mysql

import (
	"context"
	"database/sql"
	"errors"

	domsettings "example.com/flowpos/internal/domain/settings"
)

// SettingsRepository stores tax rules as rows and the store profile and
// receipt config as single-row tables keyed by id 1.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) ListTaxRules(ctx context.Context) ([]*domsettings.TaxRule, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, rate, applies_to, included_in_prices, enabled
        FROM tax_rules ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domsettings.TaxRule
	for rows.Next() {
		var t domsettings.TaxRule
		if err := rows.Scan(&t.ID, &t.Name, &t.Rate, &t.AppliesTo, &t.IncludedInPrices, &t.Enabled); err != nil {
			return nil, err
		}
		rules = append(rules, &t)
	}
	return rules, rows.Err()
}

func (r *SettingsRepository) GetTaxRule(ctx context.Context, id string) (*domsettings.TaxRule, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, rate, applies_to, included_in_prices, enabled
        FROM tax_rules WHERE id = ?
    `, id)

	var t domsettings.TaxRule
	err := row.Scan(&t.ID, &t.Name, &t.Rate, &t.AppliesTo, &t.IncludedInPrices, &t.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domsettings.ErrTaxRuleNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *SettingsRepository) CreateTaxRule(ctx context.Context, t *domsettings.TaxRule) (*domsettings.TaxRule, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO tax_rules (id, name, rate, applies_to, included_in_prices, enabled)
        VALUES (?, ?, ?, ?, ?, ?)
    `, t.ID, t.Name, t.Rate, t.AppliesTo, t.IncludedInPrices, t.Enabled)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SettingsRepository) UpdateTaxRule(ctx context.Context, t *domsettings.TaxRule) (*domsettings.TaxRule, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE tax_rules SET name = ?, rate = ?, applies_to = ?, included_in_prices = ?, enabled = ?
        WHERE id = ?
    `, t.Name, t.Rate, t.AppliesTo, t.IncludedInPrices, t.Enabled, t.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domsettings.ErrTaxRuleNotFound
	}
	return t, nil
}

func (r *SettingsRepository) DeleteTaxRule(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tax_rules WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domsettings.ErrTaxRuleNotFound
	}
	return nil
}

func (r *SettingsRepository) GetProfile(ctx context.Context) (*domsettings.StoreProfile, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT name, address, phone, currency FROM store_profile WHERE id = 1
    `)

	var p domsettings.StoreProfile
	err := row.Scan(&p.Name, &p.Address, &p.Phone, &p.Currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domsettings.StoreProfile{}, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SettingsRepository) UpdateProfile(ctx context.Context, p *domsettings.StoreProfile) (*domsettings.StoreProfile, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO store_profile (id, name, address, phone, currency)
        VALUES (1, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE name = VALUES(name), address = VALUES(address),
            phone = VALUES(phone), currency = VALUES(currency)
    `, p.Name, p.Address, p.Phone, p.Currency)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SettingsRepository) GetReceiptConfig(ctx context.Context) (*domsettings.ReceiptConfig, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT header_text, footer_text, print_receipt, email_receipt FROM receipt_config WHERE id = 1
    `)

	var c domsettings.ReceiptConfig
	err := row.Scan(&c.HeaderText, &c.FooterText, &c.PrintReceipt, &c.EmailReceipt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domsettings.ReceiptConfig{}, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SettingsRepository) UpdateReceiptConfig(ctx context.Context, c *domsettings.ReceiptConfig) (*domsettings.ReceiptConfig, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO receipt_config (id, header_text, footer_text, print_receipt, email_receipt)
        VALUES (1, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE header_text = VALUES(header_text), footer_text = VALUES(footer_text),
            print_receipt = VALUES(print_receipt), email_receipt = VALUES(email_receipt)
    `, c.HeaderText, c.FooterText, c.PrintReceipt, c.EmailReceipt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
