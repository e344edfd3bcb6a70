package storage

import (
	"database/sql"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type StaffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) List() ([]domain.Staff, error) {
	rows, err := r.DB.Query("SELECT id, name, position, bio, image FROM staff ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Staff{}
	for rows.Next() {
		var m domain.Staff
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image); err != nil {
			continue
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *StaffRepository) GetByID(id int) (domain.Staff, error) {
	var m domain.Staff
	err := r.DB.QueryRow("SELECT id, name, position, bio, image FROM staff WHERE id = $1", id).
		Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image)
	return m, err
}

func (r *StaffRepository) Insert(m *domain.Staff) error {
	return r.DB.QueryRow(`
		INSERT INTO staff (name, position, bio, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		m.Name, m.Position, m.Bio, m.Image).Scan(&m.ID)
}

func (r *StaffRepository) Update(m *domain.Staff) error {
	_, err := r.DB.Exec(
		"UPDATE staff SET name = $1, position = $2, bio = $3, image = $4 WHERE id = $5",
		m.Name, m.Position, m.Bio, m.Image, m.ID)
	return err
}

func (r *StaffRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM staff WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type SocialMediaRepository struct {
	DB *sql.DB
}

func NewSocialMediaRepository(db *sql.DB) *SocialMediaRepository {
	return &SocialMediaRepository{DB: db}
}

func (r *SocialMediaRepository) List() ([]domain.SocialMedia, error) {
	rows, err := r.DB.Query("SELECT id, name, url, icon, is_active FROM social_media ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.SocialMedia{}
	for rows.Next() {
		var s domain.SocialMedia
		if err := rows.Scan(&s.ID, &s.Name, &s.URL, &s.Icon, &s.IsActive); err != nil {
			continue
		}
		links = append(links, s)
	}
	return links, rows.Err()
}

func (r *SocialMediaRepository) GetByID(id int) (domain.SocialMedia, error) {
	var s domain.SocialMedia
	err := r.DB.QueryRow("SELECT id, name, url, icon, is_active FROM social_media WHERE id = $1", id).
		Scan(&s.ID, &s.Name, &s.URL, &s.Icon, &s.IsActive)
	return s, err
}

func (r *SocialMediaRepository) Insert(s *domain.SocialMedia) error {
	return r.DB.QueryRow(`
		INSERT INTO social_media (name, url, icon, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.Name, s.URL, s.Icon, s.IsActive).Scan(&s.ID)
}

func (r *SocialMediaRepository) Update(s *domain.SocialMedia) error {
	_, err := r.DB.Exec(
		"UPDATE social_media SET name = $1, url = $2, icon = $3, is_active = $4 WHERE id = $5",
		s.Name, s.URL, s.Icon, s.IsActive, s.ID)
	return err
}

func (r *SocialMediaRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM social_media WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
