package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/funnel-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

const credentialsTable = "platform_credentials"

type CredentialRepository interface {
	// GetCredential retorna nil, nil quando o usuário nunca conectou a plataforma
	GetCredential(ctx context.Context, userID int64, platform domain.Platform) (*domain.Credential, error)
	SaveCredential(ctx context.Context, credential *domain.Credential) error
}

type credentialRepository struct {
	conn     postgres.Queryer
	upserter *Upserter
}

func NewCredentialRepository(conn postgres.Queryer, upserter *Upserter) CredentialRepository {
	return &credentialRepository{
		conn:     conn,
		upserter: upserter,
	}
}

func (r *credentialRepository) GetCredential(ctx context.Context, userID int64, platform domain.Platform) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("user_id", "platform", "access_token", "refresh_token", "expires_at", "created_at", "updated_at").
		From(credentialsTable).
		Where(squirrel.Eq{"user_id": userID, "platform": string(platform)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, newPersistenceError("select", credentialsTable, err)
	}

	var (
		credential   domain.Credential
		platformName string
		refreshToken sql.NullString
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&credential.UserID,
		&platformName,
		&credential.AccessToken,
		&refreshToken,
		&credential.ExpiresAt,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, newPersistenceError("select", credentialsTable, err)
	}

	credential.Platform = domain.Platform(platformName)
	credential.RefreshToken = refreshToken.String

	return &credential, nil
}

// SaveCredential faz upsert por (user_id, platform), uma linha por par
func (r *credentialRepository) SaveCredential(ctx context.Context, credential *domain.Credential) error {
	_, err := r.upserter.Upsert(ctx, UpsertStatement{
		Table:      credentialsTable,
		NaturalKey: []string{"user_id", "platform"},
		Values: map[string]any{
			"user_id":       credential.UserID,
			"platform":      string(credential.Platform),
			"access_token":  credential.AccessToken,
			"refresh_token": nullString(credential.RefreshToken),
			"expires_at":    credential.ExpiresAt.UTC().Truncate(time.Second),
		},
		TouchColumn: "updated_at",
	})

	return err
}
