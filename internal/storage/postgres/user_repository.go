package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{db: store.DB()}
}

func (r *userRepository) Get(ctx context.Context, id int64) (domain.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user domain.User
	var fathersName sql.NullString
	err := r.db.QueryRowContext(opCtx, `
		SELECT id, name, surname, fathers_name, email
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Surname, &fathersName, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	user.FathersName = fathersName.String

	return user, nil
}

var _ domain.UserRepository = (*userRepository)(nil)
