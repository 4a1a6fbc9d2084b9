package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (s *Service) ListAuthors(ctx context.Context, filter model.AuthorFilter, page model.PageRequest) (model.ListAuthors, error) {
	return s.repo.ListAuthors(ctx, filter, page)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthor) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, model.Author{
		Name:        req.Name,
		Nationality: req.Nationality,
	})
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthor) (model.Author, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.Author{}, err
	}
	req.Apply(&author)
	if err := s.repo.UpdateAuthor(ctx, author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

// DeleteAuthor fails with errs.ErrInUse while books still reference the author.
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}
