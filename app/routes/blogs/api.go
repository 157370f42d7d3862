package blogs

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

func uploadBlogImage(c *fiber.Ctx, blobs storage.BlobService) (string, error) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	key := fmt.Sprintf("blog_images/%s%s", uuid.NewString(), ext)
	return blobs.Upload(c.Context(), key, src, contentType)
}

// CreateBlogAPI stores a new post. The image part is optional; when
// present it must be png, jpeg or webp.
func CreateBlogAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	if title == "" || content == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and content are required"})
	}

	imageURL, err := uploadBlogImage(c, blobs)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	blog := &models.Blog{
		Title:      title,
		Content:    content,
		AuthorID:   c.FormValue("author_id"),
		AuthorName: c.FormValue("author_name"),
		AuthorRole: c.FormValue("author_role"),
		ImageURL:   imageURL,
	}
	if err := database.CreateBlog(db, blog); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "blog": blog})
}

// ListBlogsAPI lists every post, newest first.
func ListBlogsAPI(c *fiber.Ctx, db *sql.DB) error {
	blogs, err := database.GetBlogs(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return c.JSON(blogs)
}

// GetBlogAPI returns one post by id.
func GetBlogAPI(c *fiber.Ctx, db *sql.DB) error {
	blog, err := database.GetBlog(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Blog not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(blog)
}

// UpdateBlogAPI edits a post's title and content. A new image part
// replaces the stored one, and the old object is removed afterwards.
func UpdateBlogAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	blog, err := database.GetBlog(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Blog not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		blog.Title = title
	}
	if content := strings.TrimSpace(c.FormValue("content")); content != "" {
		blog.Content = content
	}

	oldImage := ""
	newImage, err := uploadBlogImage(c, blobs)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if newImage != "" {
		oldImage = blog.ImageURL
		blog.ImageURL = newImage
	}

	if err := database.UpdateBlog(db, blog); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if oldImage != "" {
		if err := blobs.Delete(c.Context(), oldImage); err != nil {
			log.Printf("blogs: failed to delete replaced image %s: %v", oldImage, err)
		}
	}
	return c.JSON(fiber.Map{"success": true, "blog": blog})
}

type deleteBlogRequest struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// DeleteBlogAPI removes a post. The stored image object is deleted
// first; only then is the database record removed.
func DeleteBlogAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	var req deleteBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing blog id"})
	}

	if req.ImageURL != "" {
		if err := blobs.Delete(c.Context(), req.ImageURL); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if err := database.DeleteBlog(db, req.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
