package service

import (
	"errors"

	"github.com/chinedum/bookverse/data"
	"github.com/chinedum/bookverse/internal/validator"
	"github.com/chinedum/bookverse/repository"
)

type comments interface {
	CreateComment(userID int64, bookID int64, username string, rating int8, content string) (*data.Comment, error)
	GetComment(commentID int64) (*data.Comment, error)
	UpdateComment(commentID int64, rating *int8, content *string) (*data.Comment, error)
	DeleteComment(commentID int64) error
	ListComments(bookID int64, filters data.Filters) (data.RatingBreakdown, []*data.Comment, data.Metadata, error)
}

// CreateComment service creates a book comment with its rating and folds the
// rating into the book's aggregate columns. The comment insert and the
// aggregate update happen in a single transaction which holds the book's row
// lock, so either both are applied or neither is.
func (s *service) CreateComment(userID int64, bookID int64, username string, rating int8, content string) (*data.Comment, error) {
	comment := &data.Comment{
		BookID:   bookID,
		UserID:   userID,
		UserName: username,
		Rating:   rating,
		Content:  content,
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CommentTx(func(txn repository.CommentTxn) error {
		book, err := txn.BookForUpdate(bookID)
		if err != nil {
			return err
		}
		exists, err := txn.CommentExists(bookID, userID)
		if err != nil {
			return err
		}
		if exists {
			return repository.ErrDuplicateRecord
		}
		err = txn.InsertComment(comment)
		if err != nil {
			return err
		}
		book.AddRating(comment.Rating)
		return txn.UpdateBookAggregate(book)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("comment", "a comment for this book already exists")
			return nil, s.duplicateRecord(v.Errors)
		case errors.Is(err, repository.ErrLockConflict):
			return nil, ErrLockConflict
		default:
			return nil, err
		}
	}
	return comment, nil
}

// GetComment service retrieves the details of a comment.
func (s *service) GetComment(commentID int64) (*data.Comment, error) {
	comment, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

// UpdateComment service updates a comment. When the rating changes, the old
// rating is swapped for the new one in the book's aggregate columns inside
// the same transaction as the comment update.
func (s *service) UpdateComment(commentID int64, rating *int8, content *string) (*data.Comment, error) {
	existing, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if rating != nil {
		existing.Rating = *rating
	}
	if content != nil {
		existing.Content = *content
	}
	v := validator.New()
	if data.ValidateComment(v, existing); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	var updated *data.Comment
	err = s.repo.CommentTx(func(txn repository.CommentTxn) error {
		book, err := txn.BookForUpdate(existing.BookID)
		if err != nil {
			return err
		}
		// Re-read the comment under the book lock. The pre-transaction read
		// is only used for validation and may be stale.
		comment, err := txn.CommentForUpdate(commentID)
		if err != nil {
			return err
		}
		oldRating := comment.Rating
		if rating != nil {
			comment.Rating = *rating
		}
		if content != nil {
			comment.Content = *content
		}
		err = txn.UpdateComment(comment)
		if err != nil {
			return err
		}
		if comment.Rating != oldRating {
			book.SwapRating(oldRating, comment.Rating)
			err = txn.UpdateBookAggregate(book)
			if err != nil {
				return err
			}
		}
		updated = comment
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		case errors.Is(err, repository.ErrLockConflict):
			return nil, ErrLockConflict
		default:
			return nil, err
		}
	}
	return updated, nil
}

// DeleteComment service deletes a comment and removes its rating from the
// book's aggregate columns in the same transaction.
func (s *service) DeleteComment(commentID int64) error {
	existing, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.CommentTx(func(txn repository.CommentTxn) error {
		book, err := txn.BookForUpdate(existing.BookID)
		if err != nil {
			return err
		}
		comment, err := txn.CommentForUpdate(commentID)
		if err != nil {
			return err
		}
		err = txn.DeleteComment(commentID)
		if err != nil {
			return err
		}
		book.RemoveRating(comment.Rating)
		return txn.UpdateBookAggregate(book)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrLockConflict):
			return ErrLockConflict
		default:
			return err
		}
	}
	return nil
}

// ListComments service retrieves a paginated list of all comments for a book,
// alongside the book's rating breakdown.
func (s *service) ListComments(bookID int64, filters data.Filters) (data.RatingBreakdown, []*data.Comment, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return data.RatingBreakdown{}, nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return data.RatingBreakdown{}, nil, data.Metadata{}, ErrRecordNotFound
		default:
			return data.RatingBreakdown{}, nil, data.Metadata{}, err
		}
	}
	breakdown, err := s.repo.GetCommentRatingBreakdown(bookID)
	if err != nil {
		return data.RatingBreakdown{}, nil, data.Metadata{}, err
	}
	// Average and Total come from the book's stored aggregate, not from a scan
	// over the comments.
	breakdown.Average = book.AverageRating
	breakdown.Total = book.NoOfRatings
	comments, metadata, err := s.repo.GetAllCommentsForBook(bookID, filters)
	if err != nil {
		return data.RatingBreakdown{}, nil, data.Metadata{}, err
	}
	return breakdown, comments, metadata, nil
}
