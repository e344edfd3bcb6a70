package storage

import (
	"database/sql"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = "id, username, password, is_first_login, role"

func (r *UserRepository) List() ([]domain.User, error) {
	rows, err := r.DB.Query("SELECT " + userColumns + " FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.IsFirstLogin, &u.Role); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(id int) (domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Username, &u.Password, &u.IsFirstLogin, &u.Role)
	return u, err
}

func (r *UserRepository) GetByUsername(username string) (domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE username = $1", username).
		Scan(&u.ID, &u.Username, &u.Password, &u.IsFirstLogin, &u.Role)
	return u, err
}

func (r *UserRepository) Insert(u *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (username, password, is_first_login, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Username, u.Password, u.IsFirstLogin, u.Role).Scan(&u.ID)
}

func (r *UserRepository) UpdatePassword(id int, hashed string, isFirstLogin bool) error {
	_, err := r.DB.Exec(
		"UPDATE users SET password = $1, is_first_login = $2 WHERE id = $3",
		hashed, isFirstLogin, id)
	return err
}

func (r *UserRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
