package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	domuser "example.com/flowpos/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO users (name, username, email, password_hash, role_code)
        VALUES (?, ?, ?, ?, ?)
    `, u.Name, u.Username, u.Email, u.PasswordHash, u.RoleCode)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, domuser.ErrUsernameAlreadyUsed
		}
		return nil, err
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, username, email, password_hash, role_code
        FROM users WHERE id = ?
    `, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, username, email, password_hash, role_code
        FROM users WHERE username = ?
    `, username)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context, filter domuser.ListFilter) ([]*domuser.User, error) {
	query := `
        SELECT id, name, username, email, password_hash, role_code
        FROM users
    `
	var args []any
	if filter.RoleCode != nil {
		query += " WHERE role_code = ?"
		args = append(args, *filter.RoleCode)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domuser.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE users SET name = ?, email = ?, password_hash = ?, role_code = ?
        WHERE id = ?
    `, u.Name, u.Email, u.PasswordHash, u.RoleCode, u.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}

func scanUser(row rowScanner) (*domuser.User, error) {
	var u domuser.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	u.RoleCode = domuser.RoleCode(role)
	return &u, nil
}
