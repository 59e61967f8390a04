package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgresStore implements Store over a GORM connection.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Users() UserRepository                 { return &postgresUserRepository{db: s.db} }
func (s *PostgresStore) Categories() CategoryRepository        { return &postgresCategoryRepository{db: s.db} }
func (s *PostgresStore) Stories() StoryRepository              { return &postgresStoryRepository{db: s.db} }
func (s *PostgresStore) Comments() CommentRepository           { return &postgresCommentRepository{db: s.db} }
func (s *PostgresStore) Likes() LikeRepository                 { return &postgresLikeRepository{db: s.db} }
func (s *PostgresStore) CommentLikes() CommentLikeRepository   { return &postgresCommentLikeRepository{db: s.db} }
func (s *PostgresStore) Follows() FollowRepository             { return &postgresFollowRepository{db: s.db} }
func (s *PostgresStore) SavedStories() SavedStoryRepository    { return &postgresSavedStoryRepository{db: s.db} }
func (s *PostgresStore) Notifications() NotificationRepository { return &postgresNotificationRepository{db: s.db} }

// Atomically runs fn inside a database transaction. The Store handed to fn
// is bound to that transaction.
func (s *PostgresStore) Atomically(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresStore{db: tx})
	})
}

// translateError maps GORM/driver errors onto the storage sentinels so
// callers never have to know which backend they run on.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
