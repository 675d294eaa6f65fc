// internal/repository/session_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_hijaiyyah_quiz/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
// テストごとに独立したインメモリDBを用意する (名前付きDSNで共有を避ける)
func setupRepoTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.HijaiyyahLetter{},
		&model.GameLevel{},
		&model.GameSession{},
		&model.Question{},
		&model.GameAnswer{},
	))
	return db
}

func newTestSession(playerName string) *model.GameSession {
	return &model.GameSession{
		SessionID:      uuid.New(),
		PlayerName:     playerName,
		CurrentLevel:   1,
		CurrentScore:   0,
		LivesRemaining: 3,
		SessionStart:   time.Now(),
		IsActive:       true,
	}
}

func TestGormSessionRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t, "session_repo_create")
	repo := NewGormSessionRepository()

	session := newTestSession("Aisyah")
	require.NoError(t, repo.Create(ctx, db, session))

	t.Run("正常系: IDで取得できる", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, session.SessionID, found.SessionID)
		assert.Equal(t, "Aisyah", found.PlayerName)
		assert.True(t, found.IsActive)
		assert.Nil(t, found.SessionEnd)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, found)
	})
}

func TestGormSessionRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t, "session_repo_update")
	repo := NewGormSessionRepository()

	session := newTestSession("Aisyah")
	require.NoError(t, repo.Create(ctx, db, session))

	t.Run("正常系: 指定フィールドのみ更新される", func(t *testing.T) {
		now := time.Now()
		err := repo.Update(ctx, db, session.SessionID, map[string]interface{}{
			"is_active":   false,
			"session_end": &now,
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, db, session.SessionID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
		require.NotNil(t, found.SessionEnd)
		// 他のフィールドは維持される
		assert.Equal(t, "Aisyah", found.PlayerName)
		assert.Equal(t, 3, found.LivesRemaining)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"current_level": 2})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormSessionRepository_AddScore(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t, "session_repo_addscore")
	repo := NewGormSessionRepository()

	session := newTestSession("Aisyah")
	require.NoError(t, repo.Create(ctx, db, session))

	t.Run("正常系: 加算が累積する", func(t *testing.T) {
		require.NoError(t, repo.AddScore(ctx, db, session.SessionID, 15))
		require.NoError(t, repo.AddScore(ctx, db, session.SessionID, 10))
		require.NoError(t, repo.AddScore(ctx, db, session.SessionID, -2))

		found, err := repo.FindByID(ctx, db, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 23, found.CurrentScore)
	})

	t.Run("正常系: スコアは負になり得る", func(t *testing.T) {
		require.NoError(t, repo.AddScore(ctx, db, session.SessionID, -100))

		found, err := repo.FindByID(ctx, db, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, -77, found.CurrentScore)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.AddScore(ctx, db, uuid.New(), 10)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
