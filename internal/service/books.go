package service

import (
	"errors"

	"github.com/mader-project/mader/internal/apperr"
	"github.com/mader-project/mader/internal/export"
	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/utils"
)

// BookUpdate carries the optional fields of a partial book update.
type BookUpdate struct {
	IDNovelist *int64  `json:"id_novelist"`
	Title      *string `json:"title"`
	Year       *int    `json:"year"`
}

// CreateBook stores a book under the normalized title. A nonexistent novelist
// id is not pre-checked; the foreign-key violation surfaces as a server error.
func (s *Service) CreateBook(idNovelist int64, title string, year int) (*models.Book, error) {
	normalized := utils.NormalizeText(title)
	if err := s.checkBookTitle(normalized); err != nil {
		return nil, err
	}

	book := &models.Book{IDNovelist: idNovelist, Title: normalized, Year: year}
	if err := s.store.CreateBook(book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Book already exists!")
		}
		return nil, err
	}

	s.log.Infof("Book created: %s", book.Title)
	return book, nil
}

// ListBooks returns all books.
func (s *Service) ListBooks() ([]models.Book, error) {
	return s.store.ListBooks()
}

// SearchBooks returns books matching the year whose title contains the fragment.
func (s *Service) SearchBooks(title string, year int) ([]models.Book, error) {
	return s.store.SearchBooks(title, year)
}

// GetBook returns a book by id.
func (s *Service) GetBook(id int64) (*models.Book, error) {
	book, err := s.store.FindBookByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Book not found!")
		}
		return nil, err
	}
	return book, nil
}

// UpdateBook applies a partial update. A new title is re-normalized.
func (s *Service) UpdateBook(id int64, update BookUpdate) (*models.Book, error) {
	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		normalized := utils.NormalizeText(*update.Title)
		if normalized != book.Title {
			if err := s.checkBookTitle(normalized); err != nil {
				return nil, err
			}
		}
		book.Title = normalized
	}
	if update.Year != nil {
		book.Year = *update.Year
	}
	if update.IDNovelist != nil {
		book.IDNovelist = *update.IDNovelist
	}

	if err := s.store.UpdateBook(book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Book already exists!")
		}
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book and, by cascade, its read associations.
func (s *Service) DeleteBook(id int64) error {
	book, err := s.GetBook(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBook(book.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Book not found!")
		}
		return err
	}

	s.log.Infof("Book deleted: %d", book.ID)
	return nil
}

// ExportCatalog renders the full catalog of novelists and their books as XML.
func (s *Service) ExportCatalog() ([]byte, error) {
	novelists, err := s.store.ListNovelists()
	if err != nil {
		return nil, err
	}
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, err
	}
	return export.Catalog(novelists, books)
}

// checkBookTitle runs the pre-create duplicate check on the normalized title.
func (s *Service) checkBookTitle(title string) error {
	_, err := s.store.FindBookByTitle(title)
	if err == nil {
		return apperr.Conflict("Book already exists!")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
