package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blvgames/config"
	apimiddleware "blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/router"
	"blvgames/internal/delivery/api/router/handler"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/service"
	"blvgames/internal/infra/i18n"
	mockSvc "blvgames/internal/mocks/service"
	mockUC "blvgames/internal/mocks/usecase"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	creatorToken = "creator-token"
	adminToken   = "admin-token"
)

var (
	creatorID = uuid.MustParse("7f0c2a4e-1111-4c1e-9a55-3d2b1f0e6a01")
	adminID   = uuid.MustParse("7f0c2a4e-2222-4c1e-9a55-3d2b1f0e6a02")
)

type testServer struct {
	echo        *echo.Echo
	tokenSvc    *mockSvc.MockTokenService
	userUC      *mockUC.MockUserUsecase
	profileUC   *mockUC.MockProfileUsecase
	gameUC      *mockUC.MockGameUsecase
	analyticsUC *mockUC.MockAnalyticsUsecase
	moderation  *mockUC.MockModerationUsecase
	uploadUC    *mockUC.MockUploadUsecase
	deviceUC    *mockUC.MockDeviceUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Games = &config.GamesConfig{PlaceholderImage: "/placeholder.svg"}
	cfg.Storage = &config.StorageConfig{MaxUploadSize: "1MB"}

	translator, err := i18n.NewTranslator(&config.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		tokenSvc:    mockSvc.NewMockTokenService(t),
		userUC:      mockUC.NewMockUserUsecase(t),
		profileUC:   mockUC.NewMockProfileUsecase(t),
		gameUC:      mockUC.NewMockGameUsecase(t),
		analyticsUC: mockUC.NewMockAnalyticsUsecase(t),
		moderation:  mockUC.NewMockModerationUsecase(t),
		uploadUC:    mockUC.NewMockUploadUsecase(t),
		deviceUC:    mockUC.NewMockDeviceUsecase(t),
	}

	e := NewEcho(cfg, logger, translator)
	router.NewRouter(router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: ts.userUC, ProfileUC: ts.profileUC, Logger: logger}),
		UserHandler:      handler.NewUserHandler(ts.profileUC),
		GameHandler:      handler.NewGameHandler(handler.GameHandlerParams{GameUC: ts.gameUC, Config: cfg}),
		AnalyticsHandler: handler.NewAnalyticsHandler(ts.analyticsUC),
		AdminHandler:     handler.NewAdminHandler(handler.AdminHandlerParams{ModerationUC: ts.moderation, Config: cfg}),
		UploadHandler:    handler.NewUploadHandler(ts.uploadUC),
		DeviceHandler:    handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: ts.deviceUC, Logger: logger}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(ts.tokenSvc),
		Config:           cfg,
	}).RegisterRoutes(e)
	ts.echo = e

	return ts
}

func (ts *testServer) asCreator() {
	ts.tokenSvc.EXPECT().ValidateToken(creatorToken).Return(&service.Claims{
		UserID: creatorID,
		Roles:  []string{"creator"},
		Type:   service.TokenTypeAccess,
	}, nil)
}

func (ts *testServer) asAdmin() {
	ts.tokenSvc.EXPECT().ValidateToken(adminToken).Return(&service.Claims{
		UserID: adminID,
		Roles:  []string{"admin"},
		Type:   service.TokenTypeAccess,
	}, nil)
}

func (ts *testServer) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestServer_HealthAndTransportRules(t *testing.T) {
	ts := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decode(t, rec)["status"])
	})

	t.Run("preflight is a bare 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
		req.Header.Set(echo.HeaderOrigin, "https://blvgames.bo")
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "Authorization")
	})

	t.Run("unsupported method returns only error", func(t *testing.T) {
		rec := ts.do(http.MethodPatch, "/api/games", "", nil)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, map[string]any{"error": "Método no permitido"}, body)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/nothing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])
	})

	t.Run("body too large", func(t *testing.T) {
		large := `{"email":"` + strings.Repeat("a", 200*1024) + `"}`
		rec := ts.do(http.MethodPost, "/api/auth/login", "", large)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", decode(t, rec)["code"])
	})
}

func TestServer_RequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)
	ts.userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "rt"}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", strings.NewReader(`{"refresh_token":"rt"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-Id", "req-abc")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-abc", rec.Header().Get("X-Request-Id"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "req-abc", body["meta"].(map[string]any)["request_id"])
}

func TestServer_Auth(t *testing.T) {
	t.Run("login through action query", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "estudio@andes.bo", Password: "secreto"}).
			Return(&usecase.LoginOutput{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &entity.User{ID: creatorID, Email: "estudio@andes.bo", Role: entity.RoleCreator},
			}, nil)

		rec := ts.do(http.MethodPost, "/api/auth?action=login", "", map[string]string{
			"email":    "estudio@andes.bo",
			"password": "secreto",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "access", body["access_token"])
		assert.Equal(t, "refresh", body["refresh_token"])
		assert.Equal(t, "creator", body["user"].(map[string]any)["role"])
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("register creates a studio", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name:         "Ana",
			Email:        "ana@andes.bo",
			Password:     "secreto",
			BusinessName: "Andes Interactive",
		}).Return(&usecase.RegisterOutput{User: &entity.User{
			ID:           creatorID,
			Email:        "ana@andes.bo",
			Role:         entity.RoleCreator,
			BusinessName: "Andes Interactive",
		}}, nil)

		rec := ts.do(http.MethodPost, "/api/auth/register", "", map[string]string{
			"name":         "Ana",
			"email":        "ana@andes.bo",
			"password":     "secreto",
			"businessName": "Andes Interactive",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Andes Interactive", decode(t, rec)["user"].(map[string]any)["business_name"])
	})

	t.Run("duplicate email is localized", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "register"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth?action=register",
			strings.NewReader(`{"name":"Ana","email":"ana@andes.bo","password":"x","businessName":"Andes"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "EMAIL_ALREADY_REGISTERED", body["code"])
		assert.Equal(t, "Email is already registered", body["error"])
	})

	t.Run("malformed email never reaches the usecase", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "nope"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Equal(t, "email", body["details"])
	})

	t.Run("unknown action", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth?action=reset", "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Datos de entrada inválidos: action", body["error"])
		assert.Equal(t, "action", body["details"])
	})

	t.Run("me uses the token roles", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.profileUC.EXPECT().GetProfile(mock.Anything, creatorID).
			Return(&entity.User{ID: creatorID, Role: entity.RoleCreator}, nil)

		rec := ts.do(http.MethodGet, "/api/auth/me", creatorToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{"creator"}, decode(t, rec)["roles"])
	})
}

func TestServer_Authentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/games", "", map[string]any{"name": "Retro Racer"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "UNAUTHORIZED", body["code"])
		assert.NotContains(t, body, "details")
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenSvc.EXPECT().ValidateToken("refresh").Return(&service.Claims{
			UserID: creatorID,
			Roles:  []string{"creator"},
			Type:   service.TokenTypeRefresh,
		}, nil)

		rec := ts.do(http.MethodGet, "/api/devices", "refresh", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token on an optional route", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is malformed"))

		rec := ts.do(http.MethodGet, "/api/games", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creator on admin routes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()

		rec := ts.do(http.MethodGet, "/api/admin/games/pending", creatorToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec)["code"])
	})
}

func TestServer_Games(t *testing.T) {
	gameID := uuid.MustParse("0b6f3c39-aaaa-4a8e-8f7e-5d1c2b3a4f01")

	t.Run("public list", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gameUC.EXPECT().ListGames(mock.Anything, (*entity.Viewer)(nil), &usecase.ListGamesInput{Category: "Acción"}).
			Return([]*entity.Game{{ID: gameID, Name: "Retro Racer", Price: 15, Category: "Acción", Status: entity.GameStatusApproved}}, nil)

		rec := ts.do(http.MethodGet, "/api/games?"+url.Values{"category": {"Acción"}}.Encode(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		games := decode(t, rec)["games"].([]any)
		require.Len(t, games, 1)
		game := games[0].(map[string]any)
		assert.Equal(t, "Retro Racer", game["name"])
		assert.Equal(t, "/placeholder.svg", game["image"])
		assert.Equal(t, "approved", game["status"])
	})

	t.Run("owner list passes filters", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		featured := true
		ts.gameUC.EXPECT().ListGames(mock.Anything, mock.Anything, &usecase.ListGamesInput{UserID: &creatorID, Featured: &featured}).
			Return([]*entity.Game{}, nil)

		rec := ts.do(http.MethodGet, "/api/games?user_id="+creatorID.String()+"&featured=true", creatorToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{}, decode(t, rec)["games"])
	})

	t.Run("get by id with images", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gameUC.EXPECT().GetGame(mock.Anything, (*entity.Viewer)(nil), gameID).Return(&entity.Game{
			ID:     gameID,
			Name:   "Retro Racer",
			Status: entity.GameStatusApproved,
			Images: []entity.GameImage{
				{ImageURL: "https://cdn/b.png", DisplayOrder: 1},
				{ImageURL: "https://cdn/a.png", DisplayOrder: 0},
			},
			Owner: &entity.OwnerSummary{BusinessName: "Andes Interactive"},
		}, nil)

		rec := ts.do(http.MethodGet, "/api/games?id="+gameID.String(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		game := decode(t, rec)["game"].(map[string]any)
		assert.Equal(t, "https://cdn/a.png", game["image"])
		images := game["images"].([]any)
		assert.Equal(t, false, images[0].(map[string]any)["is_primary"])
		assert.Equal(t, true, images[1].(map[string]any)["is_primary"])
		assert.Equal(t, "Andes Interactive", game["owner"].(map[string]any)["business_name"])
	})

	t.Run("invalid id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/games?id=42", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec)["code"])
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gameUC.EXPECT().GetGame(mock.Anything, mock.Anything, gameID).
			Return(nil, errors.Wrap(domainerrors.ErrGameNotFound, "game lookup"))

		rec := ts.do(http.MethodGet, "/api/games?id="+gameID.String(), "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "GAME_NOT_FOUND", body["code"])
		assert.Equal(t, "Juego no encontrado", body["error"])
	})

	t.Run("create ignores client status and defaults the owner", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.gameUC.EXPECT().CreateGame(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.CreateGameInput) bool {
			return in.UserID == creatorID && in.Name == "Retro Racer" && *in.Price == 15 &&
				in.Category == "Acción" && len(in.Images) == 1
		})).Return(&entity.Game{ID: gameID, UserID: creatorID, Name: "Retro Racer", Status: entity.GameStatusPending}, nil)

		rec := ts.do(http.MethodPost, "/api/games", creatorToken, map[string]any{
			"name":        "Retro Racer",
			"description": "Carreras en el altiplano",
			"price":       15,
			"category":    "Acción",
			"status":      "approved",
			"images":      []string{"https://cdn/a.png"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, gameID.String(), body["game_id"])
		assert.Equal(t, "pending", body["game"].(map[string]any)["status"])
	})

	t.Run("missing field message names the field", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.gameUC.EXPECT().CreateGame(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewMissingFieldError("name"))

		rec := ts.do(http.MethodPost, "/api/games", creatorToken, map[string]any{"price": 1})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "MISSING_FIELD", body["code"])
		assert.Equal(t, "El campo 'name' es requerido", body["error"])
		assert.Equal(t, "name", body["details"])
	})

	t.Run("category longer than its column is rejected before the usecase", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()

		rec := ts.do(http.MethodPost, "/api/games", creatorToken, map[string]any{
			"name":        "Retro Racer",
			"description": "Carreras en el altiplano",
			"price":       15,
			"category":    strings.Repeat("á", 51),
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Equal(t, "category", body["details"])

		rec = ts.do(http.MethodPut, "/api/games?id="+gameID.String(), creatorToken, map[string]any{
			"category": strings.Repeat("x", 51),
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "category", decode(t, rec)["details"])
	})

	t.Run("category at the column limit is accepted", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.gameUC.EXPECT().UpdateGame(mock.Anything, mock.Anything, gameID, mock.MatchedBy(func(p entity.GamePatch) bool {
			return p.Category != nil && len([]rune(*p.Category)) == 50
		})).Return(nil)

		rec := ts.do(http.MethodPut, "/api/games?id="+gameID.String(), creatorToken, map[string]any{
			"category": strings.Repeat("ñ", 50),
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty update", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.gameUC.EXPECT().UpdateGame(mock.Anything, mock.Anything, gameID, entity.GamePatch{}).
			Return(domainerrors.ErrNoFieldsToUpdate)

		rec := ts.do(http.MethodPut, "/api/games?id="+gameID.String(), creatorToken, map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No hay campos para actualizar", decode(t, rec)["error"])
	})

	t.Run("update replaces images", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.gameUC.EXPECT().UpdateGame(mock.Anything, mock.Anything, gameID, mock.MatchedBy(func(p entity.GamePatch) bool {
			return p.Images != nil && len(*p.Images) == 2 && p.Name == nil && *p.Price == 20
		})).Return(nil)

		rec := ts.do(http.MethodPut, "/api/games?id="+gameID.String(), creatorToken, map[string]any{
			"price":  20,
			"images": []string{"https://cdn/a.png", "https://cdn/b.png"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["success"])
	})

	t.Run("delete", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.gameUC.EXPECT().DeleteGame(mock.Anything, mock.MatchedBy(func(v *entity.Viewer) bool {
			return v.IsAdmin() && v.UserID == adminID
		}), gameID).Return(nil)

		rec := ts.do(http.MethodDelete, "/api/games?id="+gameID.String(), adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gameUC.EXPECT().ListGames(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: password authentication failed for user blv"))

		rec := ts.do(http.MethodGet, "/api/games", "", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", body["code"])
		assert.NotContains(t, rec.Body.String(), "pq:")
	})

	t.Run("database errors keep their code", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gameUC.EXPECT().ListGames(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("relation games does not exist"), "list games"))

		rec := ts.do(http.MethodGet, "/api/games", "", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", body["code"])
		assert.NotContains(t, body, "details")
		assert.NotContains(t, rec.Body.String(), "relation")
	})
}

func TestServer_Moderation(t *testing.T) {
	gameID := uuid.MustParse("0b6f3c39-bbbb-4a8e-8f7e-5d1c2b3a4f02")

	t.Run("approve", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.moderation.EXPECT().Approve(mock.Anything, mock.Anything, gameID, "Listo").
			Return(&entity.Game{ID: gameID, Name: "Retro Racer", Status: entity.GameStatusApproved}, nil)

		rec := ts.do(http.MethodPost, "/api/admin/games/"+gameID.String()+"/approve", adminToken, map[string]string{"reason": "Listo"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "approved", decode(t, rec)["game"].(map[string]any)["status"])
	})

	t.Run("rejected transition is a conflict", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.moderation.EXPECT().Reject(mock.Anything, mock.Anything, gameID, "").
			Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails("reject from approved"), "transition rejected"))

		rec := ts.do(http.MethodPost, "/api/admin/games/"+gameID.String()+"/reject", adminToken, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "INVALID_TRANSITION", body["code"])
		assert.Equal(t, "reject from approved", body["details"])
	})

	t.Run("history", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.moderation.EXPECT().History(mock.Anything, gameID).Return([]*entity.ModerationEvent{{
			GameID:     gameID,
			ActorID:    adminID,
			Action:     entity.ModerationApprove,
			FromStatus: entity.GameStatusPending,
			ToStatus:   entity.GameStatusApproved,
		}}, nil)

		rec := ts.do(http.MethodGet, "/api/admin/games/"+gameID.String()+"/history", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		events := decode(t, rec)["events"].([]any)
		require.Len(t, events, 1)
		assert.Equal(t, "approved", events[0].(map[string]any)["to_status"])
	})

	t.Run("feature", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.moderation.EXPECT().SetFeatured(mock.Anything, mock.Anything, gameID, true).
			Return(&entity.Game{ID: gameID, Featured: true, Status: entity.GameStatusApproved}, nil)

		rec := ts.do(http.MethodPost, "/api/admin/games/"+gameID.String()+"/feature", adminToken, map[string]bool{"featured": true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["game"].(map[string]any)["featured"])
	})

	t.Run("bad path id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()

		rec := ts.do(http.MethodPost, "/api/admin/games/abc/approve", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UsersAndAnalytics(t *testing.T) {
	t.Run("list defaults to creators in the usecase", func(t *testing.T) {
		ts := newTestServer(t)
		ts.profileUC.EXPECT().ListProfiles(mock.Anything, entity.UserFilter{Query: "andes"}).
			Return([]*entity.User{{ID: creatorID, BusinessName: "Andes Interactive", Role: entity.RoleCreator}}, nil)

		rec := ts.do(http.MethodGet, "/api/users?q=andes", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["users"], 1)
	})

	t.Run("update ignores role", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.profileUC.EXPECT().UpdateProfile(mock.Anything, mock.Anything, creatorID, mock.MatchedBy(func(p entity.ProfilePatch) bool {
			cols := p.Columns()
			return len(cols) == 1 && cols["phone"] == "+59170000000"
		})).Return(nil)

		rec := ts.do(http.MethodPut, "/api/users?id="+creatorID.String(), creatorToken, map[string]string{
			"phone": "+59170000000",
			"role":  "admin",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("whatsapp qr", func(t *testing.T) {
		ts := newTestServer(t)
		ts.profileUC.EXPECT().WhatsAppQR(mock.Anything, creatorID).Return([]byte("\x89PNG"), nil)

		rec := ts.do(http.MethodGet, "/api/users/whatsapp-qr?id="+creatorID.String(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("track click", func(t *testing.T) {
		ts := newTestServer(t)
		ts.analyticsUC.EXPECT().TrackClick(mock.Anything, &usecase.TrackClickInput{UserID: creatorID}).Return(nil)

		rec := ts.do(http.MethodPost, "/api/analytics", "", map[string]string{"user_id": creatorID.String()})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, decode(t, rec)["success"])
	})

	t.Run("stats need a token", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/analytics?user_id="+creatorID.String(), "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user stats", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.analyticsUC.EXPECT().UserStats(mock.Anything, mock.Anything, creatorID).Return([]entity.DailyClickStat{
			{Date: "2026-10-02", TotalClicks: 1, GamesClicked: 1},
			{Date: "2026-10-01", TotalClicks: 3, GamesClicked: 2},
		}, nil)

		rec := ts.do(http.MethodGet, "/api/analytics?user_id="+creatorID.String(), creatorToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		stats := decode(t, rec)["stats"].([]any)
		require.Len(t, stats, 2)
		assert.Equal(t, "2026-10-02", stats[0].(map[string]any)["date"])
	})

	t.Run("global stats", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asAdmin()
		ts.analyticsUC.EXPECT().GlobalStats(mock.Anything, mock.Anything).
			Return([]entity.DailyGlobalStat{{Date: "2026-10-02", TotalClicks: 4, TotalUsers: 2}}, nil)

		rec := ts.do(http.MethodGet, "/api/analytics", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["stats"], 1)
	})
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func TestServer_Uploads(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	t.Run("upload", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.uploadUC.EXPECT().UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			return in.OwnerID == creatorID && in.Filename == "cover.png" && in.Size == int64(len(png))
		})).Return(&service.StoredObject{Key: "games/x/cover.png", URL: "/uploads/games/x/cover.png", ContentType: "image/png", Size: int64(len(png))}, nil)

		body, contentType := multipartBody(t, "file", "cover.png", png)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/images", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+creatorToken)
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "/uploads/games/x/cover.png", decode(t, rec)["url"])
	})

	t.Run("missing file part", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()

		body, contentType := multipartBody(t, "image", "cover.png", png)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/images", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+creatorToken)
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		respBody := decode(t, rec)
		assert.Equal(t, "MISSING_FIELD", respBody["code"])
		assert.Equal(t, "file", respBody["details"])
	})

	t.Run("larger than the general body limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		big := append(append([]byte{}, png...), make([]byte, 300*1024)...)
		ts.uploadUC.EXPECT().UploadImage(mock.Anything, mock.Anything).
			Return(&service.StoredObject{URL: "/uploads/games/x/big.png"}, nil)

		body, contentType := multipartBody(t, "file", "big.png", big)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/images", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+creatorToken)
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("serve", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadUC.EXPECT().OpenImage(mock.Anything, "games/x/cover.png").
			Return(io.NopCloser(bytes.NewReader(png)), &service.StoredObject{Key: "games/x/cover.png", ContentType: "image/png", Size: int64(len(png))}, nil)

		rec := ts.do(http.MethodGet, "/uploads/games/x/cover.png", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})
}

func TestServer_Devices(t *testing.T) {
	deviceID := uuid.MustParse("5c3e1f2a-cccc-4b7d-9e8f-1a2b3c4d5e01")

	t.Run("register requires fcm token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()

		rec := ts.do(http.MethodPost, "/api/devices", creatorToken, map[string]string{"device_id": "pixel", "platform": "android"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "MISSING_FIELD", body["code"])
		assert.Equal(t, "fcm_token", body["details"])
	})

	t.Run("register", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.deviceUC.EXPECT().RegisterDevice(mock.Anything, creatorID, &usecase.DeviceRegistration{FCMToken: "fcm", DeviceID: "pixel", Platform: "android"}).
			Return(&entity.UserDevice{ID: deviceID, UserID: creatorID, Platform: entity.PlatformAndroid, IsActive: true}, nil)

		rec := ts.do(http.MethodPost, "/api/devices", creatorToken, map[string]string{"fcm_token": "fcm", "device_id": "pixel", "platform": "android"})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, deviceID.String(), decode(t, rec)["device"].(map[string]any)["id"])
	})

	t.Run("deactivate by query id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.deviceUC.EXPECT().UnregisterDevice(mock.Anything, creatorID, deviceID).Return(nil)

		rec := ts.do(http.MethodDelete, "/api/devices?id="+deviceID.String(), creatorToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("deactivate by path id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.asCreator()
		ts.deviceUC.EXPECT().UnregisterDevice(mock.Anything, creatorID, deviceID).
			Return(errors.Wrap(domainerrors.ErrDeviceNotFound, "device lookup"))

		rec := ts.do(http.MethodDelete, "/api/devices/"+deviceID.String(), creatorToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
