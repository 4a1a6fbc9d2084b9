package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "name", "email", "password", "role", "avatar"}

func userFilter(b sq.SelectBuilder, filter model.UserFilter) sq.SelectBuilder {
	if filter.Name != "" {
		b = b.Where(sq.ILike{"name": contains(filter.Name)})
	}
	return b
}

func (r *repository) ListUsers(ctx context.Context, filter model.UserFilter, page model.PageRequest) (model.ListUsers, error) {
	total, err := r.count(ctx, userFilter(qb.Select("count(*)").From(usersTableName), filter))
	if err != nil {
		return model.ListUsers{}, err
	}

	q := userFilter(qb.Select(userColumns...).From(usersTableName), filter).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset())
	users := make([]model.User, 0)
	if err := r.list(ctx, &users, q); err != nil {
		return model.ListUsers{}, err
	}

	return model.ListUsers{
		Paging: page.Paging(total),
		Items:  users,
	}, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1)
	var user model.User
	if err := r.get(ctx, &user, q); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q := qb.Insert(usersTableName).
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING id")
	if err := r.get(ctx, &user.ID, q); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUser(ctx context.Context, user model.User) error {
	return r.exec(ctx, qb.Update(usersTableName).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.PasswordHash).
		Set("role", user.Role).
		Where(sq.Eq{"id": user.ID}))
}

func (r *repository) SetUserRole(ctx context.Context, id int64, role model.Role) error {
	return r.exec(ctx, qb.Update(usersTableName).
		Set("role", role).
		Where(sq.Eq{"id": id}))
}

func (r *repository) SetUserAvatar(ctx context.Context, id int64, path string) error {
	return r.exec(ctx, qb.Update(usersTableName).
		Set("avatar", path).
		Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(usersTableName).Where(sq.Eq{"id": id}))
}
