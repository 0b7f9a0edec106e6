package service

import (
	"os"

	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/model"
	"EmoticonBackend/internal/repository/fsstore"
)

type CategoryService interface {
	List() ([]model.Category, error)
	Delete(name, password string) error
}

type categoryServiceImpl struct {
	repo *fsstore.CategoryRepository
	auth AuthService
}

func NewCategoryService(repo *fsstore.CategoryRepository, auth AuthService) CategoryService {
	return &categoryServiceImpl{repo: repo, auth: auth}
}

func (s *categoryServiceImpl) List() ([]model.Category, error) {
	categories, err := s.repo.List()
	if err != nil {
		logger.Get().Error().Err(err).Msg("listing categories failed")
		return nil, err
	}
	return categories, nil
}

// Delete removes a whole category and every image in it. The gate runs
// before the existence check so a wrong password never learns whether
// the category exists.
func (s *categoryServiceImpl) Delete(name, password string) error {
	if !s.auth.Verify(password) {
		return ErrUnauthorized
	}

	err := s.repo.Delete(name)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrCategoryNotFound
		}
		logger.Get().Error().Err(err).Str("category", name).Msg("deleting category failed")
		return err
	}
	return nil
}
