package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (r *repository) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	q := qb.Insert(revokedTokensTableName).
		Columns("jti", "expires_at").
		Values(jti, expiresAt).
		Suffix("ON CONFLICT (jti) DO NOTHING")
	_, err := r.execCount(ctx, q, false)
	return err
}

func (r *repository) GetRevokedToken(ctx context.Context, jti string) (model.RevokedToken, error) {
	q := qb.Select("id", "jti", "expires_at", "revoked_at").
		From(revokedTokensTableName).
		Where(sq.Eq{"jti": jti}).
		Limit(1)
	var token model.RevokedToken
	if err := r.get(ctx, &token, q); err != nil {
		return model.RevokedToken{}, err
	}
	return token, nil
}

func (r *repository) PurgeRevokedTokens(ctx context.Context, before time.Time) (int64, error) {
	return r.execCount(ctx, qb.Delete(revokedTokensTableName).Where(sq.Lt{"expires_at": before}), false)
}
