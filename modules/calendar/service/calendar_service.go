package service

import (
	"context"
	"encoding/json"
	"time"

	"smarthire-api/core/config"
	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/modules/calendar/dto"
	"smarthire-api/modules/calendar/entity"
	"smarthire-api/modules/calendar/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/userinfo.email",
}

type CalendarServiceInterface interface {
	GetConnectURL(ctx context.Context, userID uuid.UUID) (*dto.ConnectURLResponse, *errors.AppError)
	HandleCallback(ctx context.Context, userID uuid.UUID, code string) (*dto.CalendarConnectionResponse, *errors.AppError)
	ListConnections(ctx context.Context, userID uuid.UUID) (*dto.CalendarConnectionListResponse, *errors.AppError)
	Disconnect(ctx context.Context, userID uuid.UUID, provider string) *errors.AppError
}

type CalendarService struct {
	repo     repository.CalendarRepositoryInterface
	oauthCfg *oauth2.Config
}

func NewCalendarService(repo repository.CalendarRepositoryInterface) CalendarServiceInterface {
	cfg := config.Get()
	return &CalendarService{
		repo: repo,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleAPI.ClientID,
			ClientSecret: cfg.GoogleAPI.ClientSecret,
			RedirectURL:  cfg.GoogleAPI.RedirectURL,
			Scopes:       googleOAuthScopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *CalendarService) GetConnectURL(ctx context.Context, userID uuid.UUID) (*dto.ConnectURLResponse, *errors.AppError) {
	url := s.oauthCfg.AuthCodeURL(userID.String(),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return &dto.ConnectURLResponse{AuthURL: url}, nil
}

func (s *CalendarService) HandleCallback(ctx context.Context, userID uuid.UUID, code string) (*dto.CalendarConnectionResponse, *errors.AppError) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Error("CalendarService:HandleCallback:ExchangeError", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrProviderUnavailable, "failed to exchange authorization code", err)
	}

	email, err := s.fetchCalendarEmail(ctx, token)
	if err != nil {
		logger.Error("CalendarService:HandleCallback:EmailError", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrProviderUnavailable, "failed to resolve calendar email", err)
	}

	existing, err := s.repo.GetConnectionByUserAndProvider(ctx, userID, dto.ProviderGoogle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up calendar connection", err)
	}

	conn := existing
	if conn == nil {
		conn = &entity.CalendarConnection{
			UserID:   userID,
			Provider: dto.ProviderGoogle,
		}
	}
	conn.CalendarEmail = email
	conn.AccessToken = token.AccessToken
	conn.TokenExpiresAt = token.Expiry
	conn.IsActive = true
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}

	if existing == nil {
		if _, err := s.repo.CreateConnection(ctx, conn); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store calendar connection", err)
		}
	} else {
		if err := s.repo.UpdateConnection(ctx, conn); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update calendar connection", err)
		}
	}

	logger.Info("CalendarService:Connected", "user_id", userID, "email", email)
	return toConnectionResponse(conn), nil
}

func (s *CalendarService) ListConnections(ctx context.Context, userID uuid.UUID) (*dto.CalendarConnectionListResponse, *errors.AppError) {
	conns, err := s.repo.GetConnectionsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list calendar connections", err)
	}

	resp := &dto.CalendarConnectionListResponse{
		Connections: make([]dto.CalendarConnectionResponse, 0, len(conns)),
	}
	for i := range conns {
		resp.Connections = append(resp.Connections, *toConnectionResponse(&conns[i]))
	}
	return resp, nil
}

func (s *CalendarService) Disconnect(ctx context.Context, userID uuid.UUID, provider string) *errors.AppError {
	conn, err := s.repo.GetConnectionByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up calendar connection", err)
	}
	if conn == nil {
		return errors.NewAppError(errors.ErrNotFound, "calendar connection not found", nil)
	}
	if err := s.repo.DeleteConnection(ctx, userID, provider); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete calendar connection", err)
	}
	return nil
}

// fetchCalendarEmail asks the userinfo endpoint which account the token belongs to.
func (s *CalendarService) fetchCalendarEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := s.oauthCfg.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Email, nil
}

func toConnectionResponse(conn *entity.CalendarConnection) *dto.CalendarConnectionResponse {
	return &dto.CalendarConnectionResponse{
		ID:            conn.ID.String(),
		Provider:      conn.Provider,
		CalendarEmail: conn.CalendarEmail,
		IsActive:      conn.IsActive,
		ConnectedAt:   conn.CreatedAt.Format(time.RFC3339),
	}
}
