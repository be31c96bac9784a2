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

type comments interface {
	CommentTx(fn func(txn CommentTxn) error) error
	GetComment(commentID int64) (*data.Comment, error)
	GetAllCommentsForBook(bookID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
	GetCommentRatingBreakdown(bookID int64) (data.RatingBreakdown, error)
	GetAllCommentsForUser(userID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
}

// CommentTxn is the unit of work available inside a comment transaction. The
// book row lock taken by BookForUpdate serializes all comment mutations for
// that book, so the aggregate read-modify-write between BookForUpdate and
// UpdateBookAggregate cannot interleave with a concurrent mutation.
type CommentTxn interface {
	BookForUpdate(bookID int64) (*data.Book, error)
	CommentExists(bookID, userID int64) (bool, error)
	InsertComment(comment *data.Comment) error
	CommentForUpdate(commentID int64) (*data.Comment, error)
	UpdateComment(comment *data.Comment) error
	DeleteComment(commentID int64) error
	UpdateBookAggregate(book *data.Book) error
}

// CommentTx runs fn inside a single database transaction. The comment write
// and the book aggregate write commit as one atomic unit; any error rolls
// back both. Lock waits are bounded so a contended book surfaces as a
// retryable ErrLockConflict rather than a stuck request.
func (r *repository) CommentTx(fn func(txn CommentTxn) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, "SET LOCAL lock_timeout = '3s'")
	if err != nil {
		return err
	}
	err = fn(&commentTxn{ctx: ctx, tx: tx})
	if err != nil {
		return mapCommentTxError(err)
	}
	err = tx.Commit()
	if err != nil {
		return mapCommentTxError(err)
	}
	return nil
}

// mapCommentTxError translates database-level failures into the repository
// error taxonomy: bounded lock waits and contention aborts are retryable,
// and a violation of the one-comment-per-user constraint is a duplicate.
func mapCommentTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "55P03" || pqErr.Code == "40001" || pqErr.Code == "40P01":
			return ErrLockConflict
		case pqErr.Code == "23505" && pqErr.Constraint == "comments_book_id_user_id_key":
			return ErrDuplicateRecord
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLockConflict
	}
	return err
}

// commentTxn implements CommentTxn on an open *sql.Tx.
type commentTxn struct {
	ctx context.Context
	tx  *sql.Tx
}

// BookForUpdate retrieves a book record and takes a row-level lock on it.
// The lock is held until the surrounding transaction commits.
func (t *commentTxn) BookForUpdate(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, user_id, created_at, title, description, author, category, language, year, cover_path, s3_file_key, fname, extension, size, no_of_comments, no_of_ratings, average_rating, version
		FROM books
		WHERE id = $1
		FOR UPDATE`
	var book data.Book
	err := t.tx.QueryRowContext(t.ctx, query, bookID).Scan(
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

// CommentExists checks whether a live comment already exists for (book, user).
func (t *commentTxn) CommentExists(bookID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM comments
			WHERE book_id = $1 AND user_id = $2
		)`
	var exists bool
	err := t.tx.QueryRowContext(t.ctx, query, bookID, userID).Scan(&exists)
	return exists, err
}

// InsertComment creates a comment record.
func (t *commentTxn) InsertComment(comment *data.Comment) error {
	query := `
		INSERT INTO comments (book_id, user_id, rating, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	args := []interface{}{comment.BookID, comment.UserID, comment.Rating, comment.Content}
	return t.tx.QueryRowContext(t.ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.Version)
}

// CommentForUpdate retrieves a comment record and takes a row-level lock on it.
// Callers lock the owning book first, so the lock order is always book then
// comment.
func (t *commentTxn) CommentForUpdate(commentID int64) (*data.Comment, error) {
	if commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, book_id, user_id, created_at, rating, content, version
		FROM comments
		WHERE id = $1
		FOR UPDATE`
	var comment data.Comment
	err := t.tx.QueryRowContext(t.ctx, query, commentID).Scan(
		&comment.ID,
		&comment.BookID,
		&comment.UserID,
		&comment.CreatedAt,
		&comment.Rating,
		&comment.Content,
		&comment.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &comment, nil
}

// UpdateComment updates a comment record's mutable fields.
func (t *commentTxn) UpdateComment(comment *data.Comment) error {
	query := `
		UPDATE comments
		SET rating = $1, content = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version`
	args := []interface{}{comment.Rating, comment.Content, comment.ID, comment.Version}
	err := t.tx.QueryRowContext(t.ctx, query, args...).Scan(&comment.Version)
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

// DeleteComment deletes a comment record.
func (t *commentTxn) DeleteComment(commentID int64) error {
	if commentID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM comments
		WHERE id = $1`
	result, err := t.tx.ExecContext(t.ctx, query, commentID)
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

// UpdateBookAggregate writes a book's aggregate columns. This is the only
// statement in the repository that touches them, and it only ever runs on a
// book row locked by BookForUpdate in the same transaction.
func (t *commentTxn) UpdateBookAggregate(book *data.Book) error {
	query := `
		UPDATE books
		SET no_of_comments = $1, no_of_ratings = $2, average_rating = $3, version = version + 1
		WHERE id = $4
		RETURNING version`
	args := []interface{}{book.NoOfComments, book.NoOfRatings, book.AverageRating, book.ID}
	return t.tx.QueryRowContext(t.ctx, query, args...).Scan(&book.Version)
}

// GetComment retrieves a comment record along with its author's name.
func (r *repository) GetComment(commentID int64) (*data.Comment, error) {
	if commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT comments.id, comments.book_id, comments.user_id, users.name, comments.created_at, comments.rating, comments.content, comments.version
		FROM comments
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.id = $1`
	var comment data.Comment
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, commentID).Scan(
		&comment.ID,
		&comment.BookID,
		&comment.UserID,
		&comment.UserName,
		&comment.CreatedAt,
		&comment.Rating,
		&comment.Content,
		&comment.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &comment, nil
}

// GetAllCommentsForBook retrieves a paginated list of a book's comment
// records. Records can be sorted.
func (r *repository) GetAllCommentsForBook(bookID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), comments.id, comments.book_id, comments.user_id, users.name, comments.created_at, comments.rating, comments.content, comments.version
		FROM comments
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.book_id = $1
		ORDER BY comments.%s %s, comments.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{bookID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	comments := []*data.Comment{}
	for rows.Next() {
		var comment data.Comment
		err := rows.Scan(
			&totalRecords,
			&comment.ID,
			&comment.BookID,
			&comment.UserID,
			&comment.UserName,
			&comment.CreatedAt,
			&comment.Rating,
			&comment.Content,
			&comment.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return comments, metadata, nil
}

// GetCommentRatingBreakdown retrieves the per-star comment counts for a book.
// Average and Total are filled in by the caller from the book's stored
// aggregate.
func (r *repository) GetCommentRatingBreakdown(bookID int64) (data.RatingBreakdown, error) {
	query := `
		SELECT rating, count(*)
		FROM comments
		WHERE book_id = $1
		GROUP BY rating`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return data.RatingBreakdown{}, err
	}
	defer rows.Close()
	breakdown := data.RatingBreakdown{}
	for rows.Next() {
		var rating int8
		var count int64
		err := rows.Scan(&rating, &count)
		if err != nil {
			return data.RatingBreakdown{}, err
		}
		switch rating {
		case 5:
			breakdown.FiveStars = count
		case 4:
			breakdown.FourStars = count
		case 3:
			breakdown.ThreeStars = count
		case 2:
			breakdown.TwoStars = count
		case 1:
			breakdown.OneStar = count
		}
	}
	if err = rows.Err(); err != nil {
		return data.RatingBreakdown{}, err
	}
	return breakdown, nil
}

// GetAllCommentsForUser retrieves a paginated list of all comment records
// left by a user.
func (r *repository) GetAllCommentsForUser(userID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), comments.id, comments.book_id, comments.user_id, users.name, comments.created_at, comments.rating, comments.content, comments.version
		FROM comments
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.user_id = $1
		ORDER BY comments.%s %s, comments.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{userID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	comments := []*data.Comment{}
	for rows.Next() {
		var comment data.Comment
		err := rows.Scan(
			&totalRecords,
			&comment.ID,
			&comment.BookID,
			&comment.UserID,
			&comment.UserName,
			&comment.CreatedAt,
			&comment.Rating,
			&comment.Content,
			&comment.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return comments, metadata, nil
}
