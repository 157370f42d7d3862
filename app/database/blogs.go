package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateBlog(db *sql.DB, b *models.Blog) error {
	query := `INSERT INTO blogs (title, content, author_id, author_name, author_role, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return db.QueryRow(query,
		b.Title, b.Content, b.AuthorID, b.AuthorName, b.AuthorRole, b.ImageURL,
	).Scan(&b.ID, &b.CreatedAt)
}

func GetBlogs(db *sql.DB) ([]*models.Blog, error) {
	rows, err := db.Query(`SELECT id, title, content, author_id, author_name, author_role, image_url, created_at
						   FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		b := &models.Blog{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID,
			&b.AuthorName, &b.AuthorRole, &b.ImageURL, &b.CreatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func GetBlog(db *sql.DB, id string) (*models.Blog, error) {
	b := &models.Blog{}
	query := `SELECT id, title, content, author_id, author_name, author_role, image_url, created_at
			  FROM blogs WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID,
		&b.AuthorName, &b.AuthorRole, &b.ImageURL, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func UpdateBlog(db *sql.DB, b *models.Blog) error {
	query := `UPDATE blogs SET title = $1, content = $2, image_url = $3 WHERE id = $4`
	_, err := db.Exec(query, b.Title, b.Content, b.ImageURL, b.ID)
	return err
}

func DeleteBlog(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	return err
}
