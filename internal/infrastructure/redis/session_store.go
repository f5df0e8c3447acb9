package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

const sessionKeyPrefix = "cadastro:session:"

// SessionStore grava cada sessão como JSON com TTL igual ao tempo restante até ExpiresAt.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore constrói o adaptador sobre um cliente já conectado.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

type sessionRecord struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s *SessionStore) Create(ctx context.Context, sess *entity.Session) error {
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}
	data, err := json.Marshal(sessionRecord(*sess))
	if err != nil {
		return fmt.Errorf("redis: serializar sessão: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis: gravar sessão: %w", err)
	}
	return nil
}

// Get devolve domain.ErrNotFound quando a chave não existe (inclusive por TTL vencido).
func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: ler sessão: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("redis: decodificar sessão: %w", err)
	}
	sess := entity.Session(rec)
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis: remover sessão: %w", err)
	}
	return nil
}
