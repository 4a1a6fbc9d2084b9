package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func authorFilter(b sq.SelectBuilder, filter model.AuthorFilter) sq.SelectBuilder {
	if filter.Name != "" {
		b = b.Where(sq.ILike{"name": contains(filter.Name)})
	}
	return b
}

func (r *repository) ListAuthors(ctx context.Context, filter model.AuthorFilter, page model.PageRequest) (model.ListAuthors, error) {
	total, err := r.count(ctx, authorFilter(qb.Select("count(*)").From(authorsTableName), filter))
	if err != nil {
		return model.ListAuthors{}, err
	}

	q := authorFilter(qb.Select("id", "name", "nationality").From(authorsTableName), filter).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset())
	authors := make([]model.Author, 0)
	if err := r.list(ctx, &authors, q); err != nil {
		return model.ListAuthors{}, err
	}

	if filter.WithBooks && len(authors) > 0 {
		if err := r.attachBookTitles(ctx, authors); err != nil {
			return model.ListAuthors{}, err
		}
	}

	return model.ListAuthors{
		Paging: page.Paging(total),
		Items:  authors,
	}, nil
}

func (r *repository) attachBookTitles(ctx context.Context, authors []model.Author) error {
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	var rows []struct {
		AuthorID int64  `db:"author_id"`
		Title    string `db:"title"`
	}
	q := qb.Select("author_id", "title").
		From(booksTableName).
		Where(sq.Eq{"author_id": ids}).
		OrderBy("author_id", "id")
	if err := r.list(ctx, &rows, q); err != nil {
		return err
	}

	titles := make(map[int64][]string, len(authors))
	for _, row := range rows {
		titles[row.AuthorID] = append(titles[row.AuthorID], row.Title)
	}
	for i := range authors {
		authors[i].Books = titles[authors[i].ID]
		if authors[i].Books == nil {
			authors[i].Books = []string{}
		}
	}
	return nil
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	q := qb.Select("id", "name", "nationality").
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
	var author model.Author
	if err := r.get(ctx, &author, q); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	q := qb.Insert(authorsTableName).
		Columns("name", "nationality").
		Values(author.Name, author.Nationality).
		Suffix("RETURNING id")
	if err := r.get(ctx, &author.ID, q); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author model.Author) error {
	return r.exec(ctx, qb.Update(authorsTableName).
		Set("name", author.Name).
		Set("nationality", author.Nationality).
		Where(sq.Eq{"id": author.ID}))
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(authorsTableName).Where(sq.Eq{"id": id}))
}
