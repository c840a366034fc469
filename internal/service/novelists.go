package service

import (
	"errors"

	"github.com/mader-project/mader/internal/apperr"
	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/utils"
)

// CreateNovelist stores a novelist under the normalized name.
func (s *Service) CreateNovelist(name string) (*models.Novelist, error) {
	normalized := utils.NormalizeText(name)
	if err := s.checkNovelistName(normalized); err != nil {
		return nil, err
	}

	novelist := &models.Novelist{Name: normalized}
	if err := s.store.CreateNovelist(novelist); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Novelist already exists!")
		}
		return nil, err
	}

	s.log.Infof("Novelist created: %s", novelist.Name)
	return novelist, nil
}

// ListNovelists returns all novelists.
func (s *Service) ListNovelists() ([]models.Novelist, error) {
	return s.store.ListNovelists()
}

// SearchNovelists returns novelists whose name contains the fragment.
func (s *Service) SearchNovelists(name string) ([]models.Novelist, error) {
	return s.store.SearchNovelistsByName(name)
}

// GetNovelist returns a novelist by id.
func (s *Service) GetNovelist(id int64) (*models.Novelist, error) {
	novelist, err := s.store.FindNovelistByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Novelist not found!")
		}
		return nil, err
	}
	return novelist, nil
}

// EditNovelist renames a novelist. Existence is checked before the name
// conflict so a missing target answers 404.
func (s *Service) EditNovelist(id int64, name string) (*models.Novelist, error) {
	novelist, err := s.GetNovelist(id)
	if err != nil {
		return nil, err
	}

	normalized := utils.NormalizeText(name)
	if normalized != novelist.Name {
		if err := s.checkNovelistName(normalized); err != nil {
			return nil, err
		}
	}

	novelist.Name = normalized
	if err := s.store.UpdateNovelist(novelist); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Novelist already exists!")
		}
		return nil, err
	}
	return novelist, nil
}

// DeleteNovelist removes a novelist and, by cascade, their books.
func (s *Service) DeleteNovelist(id int64) error {
	novelist, err := s.GetNovelist(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteNovelist(novelist.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Novelist not found!")
		}
		return err
	}

	s.log.Infof("Novelist deleted: %d", novelist.ID)
	return nil
}

// checkNovelistName runs the pre-create duplicate check on the normalized name.
func (s *Service) checkNovelistName(name string) error {
	_, err := s.store.FindNovelistByName(name)
	if err == nil {
		return apperr.Conflict("Novelist already exists!")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
