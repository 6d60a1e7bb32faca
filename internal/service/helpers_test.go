package service

import (
	"context"
	"sync"
	"time"

	"project-manager/internal/cache"
	"project-manager/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

// fastHash 讓測試不必付出 cost 12 的成本
func fastHash() {
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
}

// inlinePool 同步執行任務
type inlinePool struct{ submitted int }

func (p *inlinePool) Submit(t worker.Task) { p.submitted++; t() }
func (p *inlinePool) Stop()                {}

// memCache 是以 map 實作的 FakeCache
func memCache() (*cache.FakeCache, map[string][]byte) {
	var mu sync.Mutex
	data := map[string][]byte{}
	return &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(string(v), nil)
		},
		SetFn: func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			data[key] = val.([]byte)
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			for _, k := range keys {
				delete(data, k)
			}
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}, data
}
