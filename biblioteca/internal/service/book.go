package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/pkg/errors"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter, page)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.BookDetail, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBook) (model.BookDetail, error) {
	author, err := s.repo.GetAuthor(ctx, req.AuthorID)
	if err != nil {
		return model.BookDetail{}, errors.Wrap(err, "author")
	}
	book, err := s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		State:           model.BookAvailable,
		AuthorID:        author.ID,
	})
	if err != nil {
		return model.BookDetail{}, err
	}
	return model.BookDetail{Book: book, AuthorName: author.Name}, nil
}

// UpdateBook never touches the state; only loans move a book between states.
func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBook) (model.BookDetail, error) {
	var detail model.BookDetail
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		book, err := repo.GetBookForUpdate(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(&book)
		author, err := repo.GetAuthor(ctx, book.AuthorID)
		if err != nil {
			return errors.Wrap(err, "author")
		}
		if err := repo.UpdateBook(ctx, book); err != nil {
			return err
		}
		detail = model.BookDetail{Book: book, AuthorName: author.Name}
		return nil
	})
	if err != nil {
		return model.BookDetail{}, err
	}
	return detail, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
