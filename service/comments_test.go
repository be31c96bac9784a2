package service

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/chinedum/bookverse/config"
	"github.com/chinedum/bookverse/data"
	"github.com/chinedum/bookverse/internal/jsonlog"
	"github.com/chinedum/bookverse/repository"
)

// fakeRepo is an in-memory repository for a single book and its comments. Its
// CommentTx serializes transactions with a mutex and rolls the book and
// comment state back when the transaction function returns an error.
type fakeRepo struct {
	repository.Repository
	mu       sync.Mutex
	book     *data.Book
	comments map[int64]*data.Comment
	nextID   int64
	txErr    error
}

func newFakeRepo(book *data.Book) *fakeRepo {
	return &fakeRepo{
		book:     book,
		comments: map[int64]*data.Comment{},
		nextID:   1,
	}
}

func (f *fakeRepo) CommentTx(fn func(txn repository.CommentTxn) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.txErr != nil {
		return f.txErr
	}
	bookSnapshot := *f.book
	commentsSnapshot := make(map[int64]*data.Comment, len(f.comments))
	for id, comment := range f.comments {
		c := *comment
		commentsSnapshot[id] = &c
	}
	nextIDSnapshot := f.nextID
	err := fn(&fakeCommentTxn{repo: f})
	if err != nil {
		*f.book = bookSnapshot
		f.comments = commentsSnapshot
		f.nextID = nextIDSnapshot
		return err
	}
	return nil
}

func (f *fakeRepo) GetBook(bookID int64) (*data.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.book == nil || f.book.ID != bookID {
		return nil, repository.ErrRecordNotFound
	}
	book := *f.book
	return &book, nil
}

func (f *fakeRepo) GetComment(commentID int64) (*data.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	c := *comment
	return &c, nil
}

type fakeCommentTxn struct {
	repo *fakeRepo
}

func (t *fakeCommentTxn) BookForUpdate(bookID int64) (*data.Book, error) {
	if t.repo.book == nil || t.repo.book.ID != bookID {
		return nil, repository.ErrRecordNotFound
	}
	return t.repo.book, nil
}

func (t *fakeCommentTxn) CommentExists(bookID, userID int64) (bool, error) {
	for _, comment := range t.repo.comments {
		if comment.BookID == bookID && comment.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeCommentTxn) InsertComment(comment *data.Comment) error {
	comment.ID = t.repo.nextID
	comment.Version = 1
	t.repo.nextID++
	c := *comment
	t.repo.comments[comment.ID] = &c
	return nil
}

func (t *fakeCommentTxn) CommentForUpdate(commentID int64) (*data.Comment, error) {
	comment, ok := t.repo.comments[commentID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	c := *comment
	return &c, nil
}

func (t *fakeCommentTxn) UpdateComment(comment *data.Comment) error {
	stored, ok := t.repo.comments[comment.ID]
	if !ok || stored.Version != comment.Version {
		return repository.ErrEditConflict
	}
	comment.Version++
	c := *comment
	t.repo.comments[comment.ID] = &c
	return nil
}

func (t *fakeCommentTxn) DeleteComment(commentID int64) error {
	if _, ok := t.repo.comments[commentID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(t.repo.comments, commentID)
	return nil
}

func (t *fakeCommentTxn) UpdateBookAggregate(book *data.Book) error {
	t.repo.book.Aggregate = book.Aggregate
	return nil
}

func newTestService(repo repository.Repository) *service {
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return New(config.Config{}, &wg, logger, repo)
}

func seedBook(id int64) *data.Book {
	return &data.Book{ID: id, Title: "Things Fall Apart"}
}

func TestCreateComment(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 4, "a classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID == 0 {
		t.Error("expected comment ID to be set")
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 1 || book.NoOfRatings != 1 {
		t.Errorf("expected counters (1, 1), got (%d, %d)", book.NoOfComments, book.NoOfRatings)
	}
	if book.AverageRating != 4.00 {
		t.Errorf("expected average rating 4.00, got %.2f", book.AverageRating)
	}
}

func TestCreateCommentDuplicate(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	_, err := svc.CreateComment(7, 1, "amara", 4, "a classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.CreateComment(7, 1, "amara", 5, "changed my mind")
	if !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 1 || book.NoOfRatings != 1 || book.AverageRating != 4.00 {
		t.Errorf("aggregate changed after rejected duplicate: (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestCreateCommentBookNotFound(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	_, err := svc.CreateComment(7, 99, "amara", 4, "a classic")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestCreateCommentInvalidRating(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	for _, rating := range []int8{0, 6, -1} {
		_, err := svc.CreateComment(7, 1, "amara", rating, "a classic")
		if err == nil {
			t.Errorf("rating %d: expected a validation error", rating)
		}
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 0 || book.NoOfRatings != 0 || book.AverageRating != 0 {
		t.Errorf("aggregate changed after rejected comments: (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestCreateCommentConcurrent(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	ratings := []int8{2, 4}
	var wg sync.WaitGroup
	for i, rating := range ratings {
		wg.Add(1)
		go func(userID int64, rating int8) {
			defer wg.Done()
			_, err := svc.CreateComment(userID, 1, "user", rating, "fine read")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(int64(i+1), rating)
	}
	wg.Wait()
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 2 || book.NoOfRatings != 2 {
		t.Errorf("expected counters (2, 2), got (%d, %d)", book.NoOfComments, book.NoOfRatings)
	}
	if book.AverageRating != 3.00 {
		t.Errorf("expected average rating 3.00, got %.2f", book.AverageRating)
	}
}

func TestCreateCommentConcurrentDuplicate(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateComment(7, 1, "amara", 5, "a classic")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	var succeeded, rejected int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			rejected++
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d rejections", succeeded, rejected)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 1 || book.NoOfRatings != 1 || book.AverageRating != 5.00 {
		t.Errorf("expected aggregate (1, 1, 5.00), got (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestCreateCommentValidationErrorSentinel(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	_, err := svc.CreateComment(7, 1, "amara", 0, "a classic")
	if !errors.Is(err, ErrFailedValidation) {
		t.Fatalf("expected ErrFailedValidation, got %v", err)
	}
	// The returned error wraps the sentinel; the package-level variable itself
	// must stay untouched so concurrent comparisons remain reliable.
	if ErrFailedValidation.Error() != "failed validation" {
		t.Errorf("package sentinel was modified: %q", ErrFailedValidation.Error())
	}
}

func TestCreateCommentDuplicateErrorSentinel(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	if _, err := svc.CreateComment(7, 1, "amara", 4, "a classic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.CreateComment(7, 1, "amara", 5, "changed my mind")
	if !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
	if errors.Is(err, ErrFailedValidation) {
		t.Error("duplicate error must not match the validation sentinel")
	}
	if ErrDuplicateRecord.Error() != "duplicate record" {
		t.Errorf("package sentinel was modified: %q", ErrDuplicateRecord.Error())
	}
}

func TestCommentLockConflict(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 4, "a classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.txErr = repository.ErrLockConflict
	if _, err := svc.CreateComment(8, 1, "bola", 5, "brilliant"); !errors.Is(err, ErrLockConflict) {
		t.Errorf("create: expected ErrLockConflict, got %v", err)
	}
	newRating := int8(5)
	if _, err := svc.UpdateComment(comment.ID, &newRating, nil); !errors.Is(err, ErrLockConflict) {
		t.Errorf("update: expected ErrLockConflict, got %v", err)
	}
	if err := svc.DeleteComment(comment.ID); !errors.Is(err, ErrLockConflict) {
		t.Errorf("delete: expected ErrLockConflict, got %v", err)
	}
}

func TestUpdateCommentRating(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 3, "decent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.CreateComment(8, 1, "bola", 5, "brilliant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newRating := int8(5)
	updated, err := svc.UpdateComment(comment.ID, &newRating, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Rating != 5 {
		t.Errorf("expected rating 5, got %d", updated.Rating)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 2 || book.NoOfRatings != 2 {
		t.Errorf("counters changed on update: (%d, %d)", book.NoOfComments, book.NoOfRatings)
	}
	if book.AverageRating != 5.00 {
		t.Errorf("expected average rating 5.00, got %.2f", book.AverageRating)
	}
}

func TestUpdateCommentContentOnly(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 3, "decent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := "decent, on a second read"
	updated, err := svc.UpdateComment(comment.ID, nil, &content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != content {
		t.Errorf("expected content %q, got %q", content, updated.Content)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 1 || book.NoOfRatings != 1 || book.AverageRating != 3.00 {
		t.Errorf("aggregate changed on content-only update: (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestUpdateCommentNotFound(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	newRating := int8(5)
	_, err := svc.UpdateComment(99, &newRating, nil)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 4, "a classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.CreateComment(8, 1, "bola", 5, "brilliant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = svc.DeleteComment(comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 1 || book.NoOfRatings != 1 || book.AverageRating != 5.00 {
		t.Errorf("expected aggregate (1, 1, 5.00), got (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestDeleteLastComment(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	comment, err := svc.CreateComment(7, 1, "amara", 4, "a classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = svc.DeleteComment(comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	book, _ := repo.GetBook(1)
	if book.NoOfComments != 0 || book.NoOfRatings != 0 || book.AverageRating != 0 {
		t.Errorf("expected zero aggregate, got (%d, %d, %.2f)",
			book.NoOfComments, book.NoOfRatings, book.AverageRating)
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	repo := newFakeRepo(seedBook(1))
	svc := newTestService(repo)
	err := svc.DeleteComment(99)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
