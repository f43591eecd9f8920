// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"crypto_backend/internal/feature/auth/domain"
	"crypto_backend/internal/feature/auth/domain/entity"
	"crypto_backend/internal/feature/auth/usecase"

	"gorm.io/gorm"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたDB接続でuserGormリポジトリの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create は新しいユーザーを永続化します。
// 同じメールアドレスのユーザーが既に存在する場合は domain.ErrUserAlreadyExists を返します。
func (r *userGorm) Create(ctx context.Context, user *entity.User) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrUserAlreadyExists
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
// 存在しない場合は domain.ErrUserNotFound を返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
