package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chinedum/bookverse/data"
	"github.com/lib/pq"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	GetAllBooksForUser(userID int64, filters data.Filters) ([]*data.Book, data.Metadata, error)
	UpdateBook(book *data.Book) error
	DeleteBook(bookID int64) error
}

// CreateBook creates a new book record. The aggregate columns start at their
// zero defaults.
func (r *repository) CreateBook(book *data.Book) error {
	query := `
		INSERT INTO books (user_id, title, s3_file_key, fname, extension, size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, no_of_comments, no_of_ratings, average_rating, version`
	args := []interface{}{book.UserID, book.Title, book.S3FileKey, book.Filename, book.Extension, book.Size}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.NoOfComments,
		&book.NoOfRatings,
		&book.AverageRating,
		&book.Version,
	)
}

// GetBook retrieves a book record by its ID.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, user_id, created_at, title, description, author, category, language, year, cover_path, s3_file_key, fname, extension, size, no_of_comments, no_of_ratings, average_rating, version
		FROM books
		WHERE id = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.UserID,
		&book.CreatedAt,
		&book.Title,
		&book.Description,
		pq.Array(&book.Author),
		&book.Category,
		&book.Language,
		&book.Year,
		&book.CoverPath,
		&book.S3FileKey,
		&book.Filename,
		&book.Extension,
		&book.Size,
		&book.NoOfComments,
		&book.NoOfRatings,
		&book.AverageRating,
		&book.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves a paginated list of all book records. Records can be
// searched by title and author, and sorted.
func (r *repository) GetAllBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, user_id, created_at, title, description, author, category, language, year, cover_path, s3_file_key, fname, extension, size, no_of_comments, no_of_ratings, average_rating, version
		FROM books
		WHERE (
			to_tsvector('simple', title) ||
			to_tsvector('simple', array_to_string(author, ' '::text))
			@@ plainto_tsquery('simple', $1) OR $1 = ''
		)
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	return r.queryBooks(query, args, filters)
}

// GetAllBooksForUser retrieves a paginated list of the book records uploaded
// by a user.
func (r *repository) GetAllBooksForUser(userID int64, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, user_id, created_at, title, description, author, category, language, year, cover_path, s3_file_key, fname, extension, size, no_of_comments, no_of_ratings, average_rating, version
		FROM books
		WHERE user_id = $1
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{userID, filters.Limit(), filters.Offset()}
	return r.queryBooks(query, args, filters)
}

func (r *repository) queryBooks(query string, args []interface{}, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&totalRecords,
			&book.ID,
			&book.UserID,
			&book.CreatedAt,
			&book.Title,
			&book.Description,
			pq.Array(&book.Author),
			&book.Category,
			&book.Language,
			&book.Year,
			&book.CoverPath,
			&book.S3FileKey,
			&book.Filename,
			&book.Extension,
			&book.Size,
			&book.NoOfComments,
			&book.NoOfRatings,
			&book.AverageRating,
			&book.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return books, metadata, nil
}

// UpdateBook updates a book record's metadata columns. The aggregate columns
// are deliberately absent from the column list; they are written only by
// UpdateBookAggregate inside a comment transaction.
func (r *repository) UpdateBook(book *data.Book) error {
	query := `
		UPDATE books
		SET title = $1, description = $2, author = $3, category = $4, language = $5, year = $6, cover_path = $7, version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING version`
	args := []interface{}{
		book.Title,
		book.Description,
		pq.Array(book.Author),
		book.Category,
		book.Language,
		book.Year,
		book.CoverPath,
		book.ID,
		book.Version,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&book.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteBook deletes a book record. Its comments go with it via ON DELETE
// CASCADE.
func (r *repository) DeleteBook(bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM books
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, bookID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
