package credentialing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/cache"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/internal/metrics"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
	"github.com/vfg2006/funnel-sync-api/pkg/log"
	"github.com/vfg2006/funnel-sync-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const DefaultTTLCap = time.Hour

// OAuthClient é a parte do integrador de cada plataforma usada para emitir tokens
type OAuthClient interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (domain.TokenSet, error)
	RefreshToken(ctx context.Context, refreshToken string) (domain.TokenSet, error)
}

// AuthURLProvider é implementado pelas plataformas que montam a URL de consentimento
type AuthURLProvider interface {
	AuthURL(state string) string
}

type CredentialService interface {
	GetAccessToken(ctx context.Context, userID int64, platform domain.Platform) (string, error)
	StoreNewCredential(ctx context.Context, userID int64, platform domain.Platform, tokenSet domain.TokenSet) error
	Connect(ctx context.Context, userID int64, platform domain.Platform, code, redirectURI string) (*domain.CredentialStatus, error)
	Status(ctx context.Context, userID int64, platform domain.Platform) (*domain.CredentialStatus, error)
	AuthURL(platform domain.Platform) (authURL string, state string, err error)
}

type Options struct {
	// TTLCap limita quanto tempo um token fica no cache, mesmo com validade maior
	TTLCap time.Duration
	// SingleFlight agrupa refreshes simultâneos da mesma credencial neste processo
	SingleFlight bool
	Now          func() time.Time
}

type Service struct {
	cache      cache.Store
	repository repository.CredentialRepository
	clients    map[domain.Platform]OAuthClient
	recorder   metrics.Recorder
	ttlCap     time.Duration
	now        func() time.Time

	singleFlight bool
	group        singleflight.Group
}

func NewService(
	store cache.Store,
	credentialRepository repository.CredentialRepository,
	clients map[domain.Platform]OAuthClient,
	recorder metrics.Recorder,
	opts Options,
) *Service {
	if opts.TTLCap <= 0 {
		opts.TTLCap = DefaultTTLCap
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Service{
		cache:        store,
		repository:   credentialRepository,
		clients:      clients,
		recorder:     recorder,
		ttlCap:       opts.TTLCap,
		now:          opts.Now,
		singleFlight: opts.SingleFlight,
	}
}

// CacheKey é a chave do token no cache: cred:{platform}:{userId}
func CacheKey(platform domain.Platform, userID int64) string {
	return fmt.Sprintf("cred:%s:%d", platform, userID)
}

// GetAccessToken devolve um token válido, renovando a credencial quando expirada
func (s *Service) GetAccessToken(ctx context.Context, userID int64, platform domain.Platform) (string, error) {
	key := CacheKey(platform, userID)

	token, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && token != "":
		return token, nil
	case err != nil && !errors.Is(err, cache.ErrCacheMiss):
		log.ForContext(ctx).WithFields(logrus.Fields{
			"user_id":  userID,
			"platform": platform,
		}).WithError(err).Warn("credentialing: cache read failed, falling back to store")
	}

	credential, err := s.repository.GetCredential(ctx, userID, platform)
	if err != nil {
		return "", NewCredentialError(err, apiErrors.ErrDatabaseOperation, userID, platform, "")
	}

	if credential == nil {
		return "", NewCredentialError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, userID, platform, "")
	}

	if credential.IsExpired(s.now()) {
		if !credential.HasRefreshToken() {
			return "", NewCredentialError(ErrTokenExpiredNoRefresh, apiErrors.ErrTokenExpiredNoRefresh, userID, platform, "")
		}

		credential, err = s.refresh(ctx, userID, platform, credential)
		if err != nil {
			return "", err
		}
	}

	s.cacheToken(ctx, key, credential.AccessToken, credential.SecondsToExpiry(s.now()))

	return credential.AccessToken, nil
}

// refresh usa a identidade da chamada, não a da linha lida, para escolher o
// cliente e a chave do upsert
func (s *Service) refresh(ctx context.Context, userID int64, platform domain.Platform, credential *domain.Credential) (*domain.Credential, error) {
	if !s.singleFlight {
		return s.doRefresh(ctx, userID, platform, credential)
	}

	// o líder não pode cancelar a renovação dos demais leitores da mesma chave
	flightCtx := context.WithoutCancel(ctx)

	key := strconv.FormatInt(userID, 10) + ":" + string(platform)
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.doRefresh(flightCtx, userID, platform, credential)
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Credential), nil
}

func (s *Service) doRefresh(ctx context.Context, userID int64, platform domain.Platform, credential *domain.Credential) (*domain.Credential, error) {
	logger := log.ForContext(ctx).WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": platform,
	})

	client, err := s.client(platform)
	if err != nil {
		return nil, NewCredentialError(err, apiErrors.ErrInvalidRequest, userID, platform, "")
	}

	tokenSet, err := client.RefreshToken(ctx, credential.RefreshToken)
	if err != nil {
		s.recorder.CredentialRefresh(string(platform), metrics.RefreshFailed)
		logger.WithError(err).Error("credentialing: token refresh failed")
		return nil, NewCredentialError(ErrRefreshFailed, apiErrors.ErrRefreshFailed, userID, platform, err.Error())
	}
	s.recorder.CredentialRefresh(string(platform), metrics.RefreshSucceeded)

	refreshed := *credential
	refreshed.UserID = userID
	refreshed.Platform = platform
	refreshed.AccessToken = tokenSet.AccessToken
	refreshed.ExpiresAt = s.now().Add(time.Duration(tokenSet.ExpiresIn) * time.Second)
	// O Google costuma omitir o refresh_token na renovação; mantém o anterior
	if tokenSet.RefreshToken != "" {
		refreshed.RefreshToken = tokenSet.RefreshToken
	}

	if err := s.repository.SaveCredential(ctx, &refreshed); err != nil {
		s.recorder.CredentialPersistFailure(string(platform))
		logger.WithError(err).Warn("credentialing: refreshed credential not persisted, serving it anyway")
	} else {
		logger.WithField("expires_at", refreshed.ExpiresAt).Info("credentialing: credential refreshed")
	}

	return &refreshed, nil
}

// StoreNewCredential grava a credencial recém emitida e já deixa o token no cache
func (s *Service) StoreNewCredential(ctx context.Context, userID int64, platform domain.Platform, tokenSet domain.TokenSet) error {
	_, err := s.store(ctx, userID, platform, tokenSet)
	return err
}

func (s *Service) store(ctx context.Context, userID int64, platform domain.Platform, tokenSet domain.TokenSet) (*domain.Credential, error) {
	credential := &domain.Credential{
		UserID:       userID,
		Platform:     platform,
		AccessToken:  tokenSet.AccessToken,
		RefreshToken: tokenSet.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(tokenSet.ExpiresIn) * time.Second),
	}

	if err := s.repository.SaveCredential(ctx, credential); err != nil {
		return nil, NewCredentialError(err, apiErrors.ErrDatabaseOperation, userID, platform, "")
	}

	s.cacheToken(ctx, CacheKey(platform, userID), credential.AccessToken, tokenSet.ExpiresIn)

	return credential, nil
}

// Connect troca o código de autorização e grava a credencial resultante
func (s *Service) Connect(ctx context.Context, userID int64, platform domain.Platform, code, redirectURI string) (*domain.CredentialStatus, error) {
	if code == "" {
		return nil, NewCredentialError(ErrAuthorizationCodeRequired, apiErrors.ErrMissingRequiredData, userID, platform, "")
	}

	client, err := s.client(platform)
	if err != nil {
		return nil, NewCredentialError(err, apiErrors.ErrInvalidRequest, userID, platform, "")
	}

	tokenSet, err := client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		log.ForContext(ctx).WithFields(logrus.Fields{
			"user_id":  userID,
			"platform": platform,
		}).WithError(err).Error("credentialing: code exchange failed")
		return nil, NewCredentialError(ErrCodeExchangeFailed, apiErrors.ErrCodeExchangeFailed, userID, platform, err.Error())
	}

	credential, err := s.store(ctx, userID, platform, tokenSet)
	if err != nil {
		return nil, err
	}

	return statusOf(platform, credential, s.now()), nil
}

// Status consulta apenas o banco; nunca chama a plataforma
func (s *Service) Status(ctx context.Context, userID int64, platform domain.Platform) (*domain.CredentialStatus, error) {
	credential, err := s.repository.GetCredential(ctx, userID, platform)
	if err != nil {
		return nil, NewCredentialError(err, apiErrors.ErrDatabaseOperation, userID, platform, "")
	}

	return statusOf(platform, credential, s.now()), nil
}

func (s *Service) AuthURL(platform domain.Platform) (string, string, error) {
	client, err := s.client(platform)
	if err != nil {
		return "", "", err
	}

	provider, ok := client.(AuthURLProvider)
	if !ok {
		return "", "", ErrAuthURLNotSupported
	}

	state, err := utils.GenerateState()
	if err != nil {
		return "", "", err
	}

	return provider.AuthURL(state), state, nil
}

func (s *Service) client(platform domain.Platform) (OAuthClient, error) {
	client, ok := s.clients[platform]
	if !ok {
		return nil, domain.ErrUnknownPlatform
	}

	return client, nil
}

// cacheToken usa TTL = min(segundos restantes, teto); TTL <= 0 não é gravado
func (s *Service) cacheToken(ctx context.Context, key, token string, secondsToExpiry int64) {
	ttl := time.Duration(secondsToExpiry) * time.Second
	if ttl > s.ttlCap {
		ttl = s.ttlCap
	}
	if ttl <= 0 {
		return
	}

	if err := s.cache.Set(ctx, key, token, ttl); err != nil {
		log.ForContext(ctx).WithField("key", key).WithError(err).Warn("credentialing: cache write failed")
	}
}

func statusOf(platform domain.Platform, credential *domain.Credential, now time.Time) *domain.CredentialStatus {
	status := &domain.CredentialStatus{
		Platform: platform,
		State:    credential.State(now),
	}

	if credential != nil {
		expiresAt := credential.ExpiresAt
		status.ExpiresAt = &expiresAt
	}

	return status
}
