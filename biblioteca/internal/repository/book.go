package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var bookDetailColumns = []string{
	"b.id", "b.title", "b.genre", "b.publication_year", "b.state", "b.author_id", "a.name as author_name",
}

func bookFilter(b sq.SelectBuilder, filter model.BookFilter) sq.SelectBuilder {
	if filter.Title != "" {
		b = b.Where(sq.ILike{"b.title": contains(filter.Title)})
	}
	if filter.Genre != "" {
		b = b.Where(sq.Expr("lower(b.genre) = lower(?)", filter.Genre))
	}
	return b
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error) {
	total, err := r.count(ctx, bookFilter(qb.Select("count(*)").From(booksTableName+" b"), filter))
	if err != nil {
		return model.ListBooks{}, err
	}

	q := bookFilter(qb.Select(bookDetailColumns...).
		From(booksTableName+" b").
		Join(authorsTableName+" a on a.id = b.author_id"), filter).
		OrderBy("b.id").
		Limit(page.Limit()).
		Offset(page.Offset())
	books := make([]model.BookDetail, 0)
	if err := r.list(ctx, &books, q); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: page.Paging(total),
		Items:  books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.BookDetail, error) {
	q := qb.Select(bookDetailColumns...).
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"b.id": id}).
		Limit(1)
	var book model.BookDetail
	if err := r.get(ctx, &book, q); err != nil {
		return model.BookDetail{}, err
	}
	return book, nil
}

// GetBookForUpdate locks the book row until the surrounding transaction ends.
func (r *repository) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	q := qb.Select("id", "title", "genre", "publication_year", "state", "author_id").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")
	var book model.Book
	if err := r.get(ctx, &book, q); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := qb.Insert(booksTableName).
		Columns("title", "genre", "publication_year", "state", "author_id").
		Values(book.Title, book.Genre, book.PublicationYear, book.State, book.AuthorID).
		Suffix("RETURNING id")
	if err := r.get(ctx, &book.ID, q); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	return r.exec(ctx, qb.Update(booksTableName).
		Set("title", book.Title).
		Set("genre", book.Genre).
		Set("publication_year", book.PublicationYear).
		Set("author_id", book.AuthorID).
		Where(sq.Eq{"id": book.ID}))
}

func (r *repository) SetBookState(ctx context.Context, id int64, state model.BookState) error {
	return r.exec(ctx, qb.Update(booksTableName).
		Set("state", state).
		Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
}
