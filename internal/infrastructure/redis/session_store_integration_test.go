//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/redis"
)

type SessionStoreSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	store     *redis.SessionStore
}

func TestSessionStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("teste de integração ignorado em modo -short")
	}
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	s.client, err = redis.New(ctx, url)
	s.Require().NoError(err)
	s.store = redis.NewSessionStore(s.client.Client)
}

func (s *SessionStoreSuite) TearDownSuite() {
	ctx := context.Background()
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(ctx)
	}
}

func (s *SessionStoreSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *SessionStoreSuite) TestCreateGetDelete() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	sess := &entity.Session{
		ID: "s-1", Username: "rh", Authenticated: true,
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}
	s.Require().NoError(s.store.Create(ctx, sess))

	got, err := s.store.Get(ctx, "s-1")
	s.Require().NoError(err)
	s.Equal("rh", got.Username)
	s.True(got.Authenticated)
	s.True(got.ExpiresAt.Equal(sess.ExpiresAt))

	ttl, err := s.client.TTL(ctx, "cadastro:session:s-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)

	s.Require().NoError(s.store.Delete(ctx, "s-1"))
	_, err = s.store.Get(ctx, "s-1")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SessionStoreSuite) TestSessaoJaExpiradaNaoEGravada() {
	ctx := context.Background()
	sess := &entity.Session{ID: "s-2", Authenticated: true, ExpiresAt: time.Now().Add(-time.Minute)}
	s.Require().NoError(s.store.Create(ctx, sess))

	_, err := s.store.Get(ctx, "s-2")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SessionStoreSuite) TestGetInexistente() {
	_, err := s.store.Get(context.Background(), "nao-existe")
	s.ErrorIs(err, domain.ErrNotFound)
	s.NotErrorIs(err, goredis.Nil)
}
