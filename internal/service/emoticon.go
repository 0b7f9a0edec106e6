package service

import (
	"net/url"
	"os"

	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/model"
	"EmoticonBackend/internal/repository/fsstore"
)

type EmoticonService interface {
	List(category string) ([]model.Emoticon, error)
	Delete(category, filename, password string) error
}

type emoticonServiceImpl struct {
	repo *fsstore.EmoticonRepository
	auth AuthService
}

func NewEmoticonService(repo *fsstore.EmoticonRepository, auth AuthService) EmoticonService {
	return &emoticonServiceImpl{repo: repo, auth: auth}
}

// emoticonURL builds the public path of a stored image. Category and
// filename are literal path segments, so both get percent-encoded.
func emoticonURL(category, filename string) string {
	return "/emoticons/" + url.PathEscape(category) + "/" + url.PathEscape(filename)
}

func (s *emoticonServiceImpl) List(category string) ([]model.Emoticon, error) {
	names, err := s.repo.List(category)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCategoryNotFound
		}
		logger.Get().Error().Err(err).Str("category", category).Msg("listing emoticons failed")
		return nil, err
	}

	emoticons := make([]model.Emoticon, 0, len(names))
	for _, name := range names {
		emoticons = append(emoticons, model.Emoticon{
			Filename: name,
			URL:      emoticonURL(category, name),
		})
	}
	return emoticons, nil
}

// Delete removes one image; when it was the category's last image the
// repository cascades and removes the directory too.
func (s *emoticonServiceImpl) Delete(category, filename, password string) error {
	if !s.auth.Verify(password) {
		return ErrUnauthorized
	}

	err := s.repo.Delete(category, filename)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		logger.Get().Error().Err(err).
			Str("category", category).Str("filename", filename).
			Msg("deleting emoticon failed")
		return err
	}
	return nil
}
