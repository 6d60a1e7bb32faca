// File: internal/service/user.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"project-manager/internal/cache"
	"project-manager/internal/database"
	"project-manager/internal/message"
	"project-manager/internal/model"
	"project-manager/internal/store"
	"project-manager/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const (
	usersCacheKey = "users:safe"
	usersCacheTTL = 5 * time.Minute
	taskTimeout   = 5 * time.Second
)

// 使用者清單的來源，供 debug-store 顯示
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Expertise string
	Role      model.Role
	PhotoURL  *string
}

// UpdateUserInput 中 nil 欄位不更新
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Expertise *string
	Role      *model.Role
	PhotoURL  *string

	ClearPhotoURL bool
}

type UserService struct {
	db    database.DB
	cache cache.Cache
	tasks worker.Pool
	msgs  *message.Catalog
}

func NewUserService(db database.DB, c cache.Cache, tasks worker.Pool, msgs *message.Catalog) *UserService {
	return &UserService{db: db, cache: c, tasks: tasks, msgs: msgs}
}

// CreateUser 檢查 email 唯一性、以 bcrypt 儲存密碼，並非同步寄送歡迎通知
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, newError(ErrBadRequest, message.EmailRequired)
	}

	if _, err := store.GetUserByEmail(ctx, s.db, email); err == nil {
		return nil, newError(ErrConflict, message.EmailTaken)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	created, err := store.CreateUser(ctx, s.db, &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		Expertise:    in.Expertise,
		Role:         role,
		PhotoURL:     in.PhotoURL,
	})
	if err != nil {
		return nil, translate(err, message.UserNotFound, message.EmailTaken)
	}

	s.invalidateUsers(ctx)
	s.sendWelcome(created.ID)
	return created, nil
}

// GetUsers 回傳所有使用者 (不含密碼)；優先讀取快取
func (s *UserService) GetUsers(ctx context.Context) ([]model.User, error) {
	users, _, err := s.listUsers(ctx)
	return users, err
}

// DebugSnapshot 同 GetUsers，但一併回報資料來源
func (s *UserService) DebugSnapshot(ctx context.Context) ([]model.User, string, error) {
	return s.listUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	u, err := store.GetUserByID(ctx, s.db, id)
	if err != nil {
		return nil, translate(err, message.UserNotFound, message.EmailTaken)
	}
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, in UpdateUserInput) (*model.User, error) {
	patch := model.UserPatch{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Expertise:     in.Expertise,
		Role:          in.Role,
		PhotoURL:      in.PhotoURL,
		ClearPhotoURL: in.ClearPhotoURL,
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, newError(ErrBadRequest, message.EmailRequired)
		}
		patch.Email = &email
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	u, err := store.UpdateUser(ctx, s.db, id, patch)
	if err != nil {
		return nil, translate(err, message.UserNotFound, message.EmailTaken)
	}
	s.invalidateUsers(ctx)
	return u, nil
}

// DeleteUser 不存在時同樣視為成功
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if _, err := store.DeleteUser(ctx, s.db, id); err != nil {
		return err
	}
	s.invalidateUsers(ctx)
	return nil
}

// VerifyUserExists 供註冊前檢查 email 是否已被使用
func (s *UserService) VerifyUserExists(ctx context.Context, email string) (bool, *model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil, newError(ErrBadRequest, message.EmailRequired)
	}
	u, err := store.GetUserByEmail(ctx, s.db, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return true, u, nil
}

// Authenticate 以 email 與明文密碼驗證使用者
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := store.GetUserByEmail(ctx, s.db, normalizeEmail(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, newError(ErrUnauthorized, message.InvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, newError(ErrUnauthorized, message.InvalidCredentials)
	}
	return u, nil
}

func (s *UserService) listUsers(ctx context.Context) ([]model.User, string, error) {
	raw, err := s.cache.Get(ctx, usersCacheKey).Bytes()
	switch {
	case err == nil:
		var users []model.User
		uerr := json.Unmarshal(raw, &users)
		if uerr == nil {
			return users, SourceCache, nil
		}
		log.Printf("使用者快取格式錯誤: %v", uerr)
	case !errors.Is(err, redis.Nil):
		log.Printf("讀取使用者快取失敗: %v", err)
	}

	users, err := store.ListUsers(ctx, s.db)
	if err != nil {
		return nil, "", err
	}
	// 密碼欄位標記為 json:"-"，快取內容不含雜湊
	if payload, err := json.Marshal(users); err == nil {
		if err := s.cache.Set(ctx, usersCacheKey, payload, usersCacheTTL).Err(); err != nil {
			log.Printf("寫入使用者快取失敗: %v", err)
		}
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, SourceDatabase, nil
}

func (s *UserService) invalidateUsers(ctx context.Context) {
	if err := s.cache.Del(ctx, usersCacheKey).Err(); err != nil {
		log.Printf("清除使用者快取失敗: %v", err)
	}
}

func (s *UserService) sendWelcome(userID int) {
	title, body := s.msgs.Get(message.WelcomeTitle), s.msgs.Get(message.WelcomeBody)
	s.tasks.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		if _, err := store.CreateNotification(ctx, s.db, &model.Notification{
			UserID:  userID,
			Title:   title,
			Message: body,
		}); err != nil {
			log.Printf("建立歡迎通知失敗 (user %d): %v", userID, err)
		}
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
