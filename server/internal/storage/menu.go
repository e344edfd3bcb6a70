package storage

import (
	"database/sql"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type MenuRepository struct {
	DB *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Every read LEFT JOINs categories so a menu item whose category was deleted
// comes back with a null categoryId instead of a dangling id.
const menuItemColumns = `
	mi.id, mi.name, mi.description, mi.price, mi.image, mi.ingredients,
	c.id, mi.is_available, mi.is_featured, mi.created_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (domain.MenuItem, error) {
	var item domain.MenuItem
	var categoryID sql.NullInt64
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Image, &item.Ingredients, &categoryID,
		&item.IsAvailable, &item.IsFeatured, &item.CreatedAt)
	if err != nil {
		return item, err
	}
	if categoryID.Valid {
		id := int(categoryID.Int64)
		item.CategoryID = &id
	}
	return item, nil
}

func (r *MenuRepository) listQuery(where string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		LEFT JOIN categories c ON mi.category_id = c.id
		`+where+`
		ORDER BY mi.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListAvailable returns the public menu.
func (r *MenuRepository) ListAvailable() ([]domain.MenuItem, error) {
	return r.listQuery("WHERE mi.is_available = TRUE")
}

// ListAll includes unavailable items, for the admin panel.
func (r *MenuRepository) ListAll() ([]domain.MenuItem, error) {
	return r.listQuery("")
}

func (r *MenuRepository) ListFeatured() ([]domain.MenuItem, error) {
	return r.listQuery("WHERE mi.is_featured = TRUE AND mi.is_available = TRUE")
}

func (r *MenuRepository) ListByCategory(categoryID int) ([]domain.MenuItem, error) {
	return r.listQuery("WHERE mi.category_id = $1", categoryID)
}

func (r *MenuRepository) GetByID(id int) (domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		LEFT JOIN categories c ON mi.category_id = c.id
		WHERE mi.id = $1`, id)
	return scanMenuItem(row)
}

func (r *MenuRepository) Insert(item *domain.MenuItem) error {
	var categoryID interface{}
	if item.CategoryID != nil {
		categoryID = *item.CategoryID
	}
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, image, ingredients, category_id, is_available, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.Image, item.Ingredients,
		categoryID, item.IsAvailable, item.IsFeatured).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *MenuRepository) Update(item *domain.MenuItem) error {
	var categoryID interface{}
	if item.CategoryID != nil {
		categoryID = *item.CategoryID
	}
	_, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, image = $4, ingredients = $5,
			category_id = $6, is_available = $7, is_featured = $8
		WHERE id = $9`,
		item.Name, item.Description, item.Price, item.Image, item.Ingredients,
		categoryID, item.IsAvailable, item.IsFeatured, item.ID)
	return err
}

func (r *MenuRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type CategoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]domain.Category, error) {
	rows, err := r.DB.Query("SELECT id, name, slug FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(id int) (domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow("SELECT id, name, slug FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Slug)
	return c, err
}

func (r *CategoryRepository) GetBySlug(slug string) (domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow("SELECT id, name, slug FROM categories WHERE slug = $1", slug).
		Scan(&c.ID, &c.Name, &c.Slug)
	return c, err
}

func (r *CategoryRepository) Insert(c *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id",
		c.Name, c.Slug).Scan(&c.ID)
}

func (r *CategoryRepository) Update(c *domain.Category) error {
	_, err := r.DB.Exec("UPDATE categories SET name = $1, slug = $2 WHERE id = $3",
		c.Name, c.Slug, c.ID)
	return err
}

// Delete removes the category only. Menu items referencing it keep their
// category_id; reads resolve it to null.
func (r *CategoryRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
