package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/cryptox"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/config"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

var sessionKeySalt = []byte("chapterhub/session/v1")

var errRefreshExpired = errors.New("refresh window closed")

// Session is the payload sealed into the opaque session string handed to
// clients.
type Session struct {
	AccessToken      string                 `json:"accessToken"`
	RefreshToken     string                 `json:"refreshToken"`
	RefreshExpiresAt time.Time              `json:"refreshExpiresAt"`
	User             models.ProviderProfile `json:"user"`
}

// AuthCheckResult is the response of a session check. When Authenticated is
// false every other field is nil.
type AuthCheckResult struct {
	Authenticated bool                    `json:"authenticated"`
	User          *models.ProviderProfile `json:"user"`
	AccessToken   *string                 `json:"accessToken"`
	SealedSession *string                 `json:"sealedSession"`
}

func unauthenticated() *AuthCheckResult {
	return &AuthCheckResult{}
}

// SessionService validates and refreshes sealed sessions.
type SessionService struct {
	users      *UserService
	key        []byte
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	logger     logging.Logger
}

func NewSessionService(users *UserService, cfg *config.Config, l logging.Logger) *SessionService {
	return &SessionService{
		users:      users,
		key:        cryptox.DeriveKey([]byte(cfg.SessionPassword), sessionKeySalt),
		secret:     []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTokenValidityDuration,
		refreshTTL: cfg.RefreshTokenValidityDuration,
		now:        time.Now,
		logger:     l.With("module", "sessions"),
	}
}

// Check authenticates a sealed session. With forceRefresh the tokens are
// rotated first. Otherwise a valid access token is accepted as is and an
// invalid one is refreshed while the refresh window is open. Failures of
// any kind yield an unauthenticated result and are only logged.
func (s *SessionService) Check(ctx context.Context, sealed string, forceRefresh bool) *AuthCheckResult {
	res, err := s.check(ctx, sealed, forceRefresh)
	if err != nil {
		s.logger.Warn(ctx, "session check failed", "error", err)
		return unauthenticated()
	}
	return res
}

func (s *SessionService) check(ctx context.Context, sealed string, forceRefresh bool) (*AuthCheckResult, error) {
	var sess Session
	if err := cryptox.Open(sealed, s.key, &sess); err != nil {
		return nil, err
	}

	if forceRefresh {
		res, err := s.refresh(&sess)
		if err == nil {
			return res, nil
		}
		s.logger.Debug(ctx, "forced refresh failed", "error", err)
	}

	if _, err := auth.ParseToken(sess.AccessToken, s.secret); err == nil {
		return s.result(&sess, sealed), nil
	}

	return s.refresh(&sess)
}

// Issue upserts the user behind profile and opens a new session for it.
func (s *SessionService) Issue(ctx context.Context, profile models.ProviderProfile) (*AuthCheckResult, error) {
	if _, err := s.users.UpsertUser(ctx, profile); err != nil {
		return nil, err
	}

	sess := &Session{User: profile}
	res, err := s.rotate(sess)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "session issued", "subject", profile.ID)
	return res, nil
}

func (s *SessionService) refresh(sess *Session) (*AuthCheckResult, error) {
	if sess.RefreshToken == "" || !s.now().Before(sess.RefreshExpiresAt) {
		return nil, errRefreshExpired
	}
	return s.rotate(sess)
}

// rotate mints fresh tokens for sess and reseals it.
func (s *SessionService) rotate(sess *Session) (*AuthCheckResult, error) {
	access, err := auth.GenerateToken(identityOf(sess.User), s.secret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}

	sess.AccessToken = access
	sess.RefreshToken = refresh
	sess.RefreshExpiresAt = s.now().Add(s.refreshTTL)

	sealed, err := cryptox.Seal(sess, s.key)
	if err != nil {
		return nil, err
	}
	return s.result(sess, sealed), nil
}

func (s *SessionService) result(sess *Session, sealed string) *AuthCheckResult {
	user := sess.User
	access := sess.AccessToken
	return &AuthCheckResult{
		Authenticated: true,
		User:          &user,
		AccessToken:   &access,
		SealedSession: &sealed,
	}
}

func identityOf(p models.ProviderProfile) auth.Identity {
	return auth.Identity{
		Subject: p.ID,
		Email:   p.Email,
		Name:    strings.TrimSpace(p.FirstName + " " + p.LastName),
	}
}
