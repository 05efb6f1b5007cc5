package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymplan/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymplan:session:"
	tokensSetKey     = "gymplan:sessions"
)

var ErrNoSession = errors.New("no valid session")

type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// Service issues and resolves session tokens. A token maps to one user in
// redis as "<user uuid>|<created at unix>".
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	now            func() time.Time
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		now:            time.Now,
	}
}

func (s *Service) Open(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error) {
	token, err := s.RandStringFunc(35)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	value := fmt.Sprintf("%s|%d", userID, createdAt.Unix())
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("track session: %w", err)
	}

	return token, nil
}

func (s *Service) Close(ctx context.Context, token string) (bool, error) {
	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// UserID resolves a token to the user it was issued for. Unknown, malformed
// and expired tokens all yield ErrNoSession.
func (s *Service) UserID(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if s.now().Sub(session.CreatedAt) > s.ttl {
		return uuid.Nil, ErrNoSession
	}
	return session.UserID, nil
}

func (s *Service) session(ctx context.Context, token string) (*Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	userPart, createdPart, ok := strings.Cut(val, "|")
	if !ok {
		return nil, ErrNoSession
	}
	userID, err := uuid.Parse(userPart)
	if err != nil {
		return nil, ErrNoSession
	}
	createdAtUnix, err := strconv.ParseInt(createdPart, 10, 64)
	if err != nil {
		return nil, ErrNoSession
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := s.session(ctx, token)
		if errors.Is(err, ErrNoSession) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean token: %s", err)
			continue
		}
		if s.now().Sub(session.CreatedAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if _, err := s.Close(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token: %s", err)
		}
	}
}
