package service

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chinedum/bookverse/clients"
	"github.com/chinedum/bookverse/data"
	"github.com/chinedum/bookverse/data/dto"
	"github.com/chinedum/bookverse/internal/validator"
	"github.com/chinedum/bookverse/repository"
)

type books interface {
	CreateBook(userID int64, r *http.Request) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	ListBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error)
	UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error)
	DeleteBook(bookID int64) error
}

// CreateBook service creates a new book.
func (s *service) CreateBook(userID int64, r *http.Request) (*data.Book, error) {
	// Parse form data
	err := r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("book")
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	// Detect file Mime type
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	// Check whether Mime type is supported
	supportedMediaType := []string{
		"application/pdf",
		"application/epub+zip",
		"application/x-ms-reader",
		"application/x-mobipocket-ebook",
		"application/vnd.oasis.opendocument.text",
		"text/rtf",
		"image/vnd.djvu",
	}
	if validMime := validator.Mime(mtype, supportedMediaType...); !validMime {
		return nil, ErrUnsupportedMediaType
	}
	// Upload file to s3 object storage
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	s3FileKey, err := s.uploadFileToS3(s3Client, buffer, mtype, fileHeader, data.ScopeBook)
	if err != nil {
		return nil, err
	}
	book := &data.Book{
		UserID:    userID,
		Title:     strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename)),
		S3FileKey: s3FileKey,
		Filename:  fileHeader.Filename,
		Extension: strings.ToUpper(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")),
		Size:      fileHeader.Size,
	}
	// Create record
	err = s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks service retrieves a list of paginated books. The list can be searched and sorted.
func (s *service) ListBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	books, metadata, err := s.repo.GetAllBooks(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// UpdateBook service updates the details of a specific book.
func (s *service) UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error) {
	// Retrieve the book by its ID
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	// Update only fields with new data
	if requestBody.Title != nil {
		book.Title = *requestBody.Title
	}
	if requestBody.Description != nil {
		book.Description = *requestBody.Description
	}
	if requestBody.Author != nil {
		book.Author = requestBody.Author
	}
	if requestBody.Category != nil {
		book.Category = *requestBody.Category
	}
	if requestBody.Language != nil {
		book.Language = *requestBody.Language
	}
	if requestBody.Year != nil {
		book.Year = *requestBody.Year
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return book, nil
}

// UpdateBookCover service uploads a cover image for a book.
func (s *service) UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("cover")
	if err != nil {
		return nil, ErrBadRequest
	}
	// Detect image Mime type
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	// Check whether Mime type is supported
	supportedMediaType := []string{
		"image/jpeg",
		"image/png",
	}
	if v := validator.Mime(mtype, supportedMediaType...); !v {
		return nil, ErrUnsupportedMediaType
	}
	// Upload image to S3 object storage
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	s3CoverPath, err := s.uploadFileToS3(s3Client, buffer, mtype, fileHeader, data.ScopeCover)
	if err != nil {
		return nil, err
	}
	book.CoverPath = s3CoverPath
	// Update book record
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return book, nil
}

// DeleteBook service deletes a book. Comments on the book go with it.
func (s *service) DeleteBook(bookID int64) error {
	err := s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
