package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/config"
	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/pkg/jwt"
)

func setupTestAuthService() (AuthService, *testRepos) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "segredo-de-teste-com-32-caracteres"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour

	repos := newTestRepos()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repos.toRepository(), jwtMgr, nil, zap.NewNop())
	return svc, repos
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "João Pereira",
		Username: "joao",
		Email:    "joao@exemplo.edu.br",
		Password: "senha-segura-123",
		Role:     model.RoleAluno,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repos := setupTestAuthService()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("Register deveria ter sucesso: %v", err)
	}
	if resp.Username != "joao" || resp.Role != model.RoleAluno {
		t.Errorf("resposta incorreta: %+v", resp)
	}

	stored, err := repos.user.GetByUsername(context.Background(), "joao")
	if err != nil {
		t.Fatalf("usuário deveria estar persistido: %v", err)
	}
	if stored.PasswordHash == "senha-segura-123" || stored.PasswordHash == "" {
		t.Error("senha deveria ser armazenada como hash")
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, _ := setupTestAuthService()

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("primeiro cadastro deveria ter sucesso: %v", err)
	}

	req := validRegisterRequest()
	req.Email = "outro@exemplo.edu.br"
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("esperado ErrUsernameTaken, obtido: %v", err)
	}
}

func TestAuthService_Register_UsernameTakenOnInsert(t *testing.T) {
	svc, repos := setupTestAuthService()
	// Índice único dispara no insert quando outra requisição grava o mesmo
	// username entre a verificação e a escrita
	repos.user.createErr = gorm.ErrDuplicatedKey

	_, err := svc.Register(context.Background(), validRegisterRequest())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("esperado ErrUsernameTaken, obtido: %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := setupTestAuthService()

	req := validRegisterRequest()
	req.Role = "coordenador"
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("esperado ErrInvalidRole, obtido: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("cadastro deveria ter sucesso: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "joao",
		Password: "senha-segura-123",
	})
	if err != nil {
		t.Fatalf("Login deveria ter sucesso: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("par de tokens não deveria estar vazio")
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("esperado expires_in=900, obtido=%d", resp.ExpiresIn)
	}
	if resp.User.Username != "joao" {
		t.Errorf("usuário embutido incorreto: %+v", resp.User)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()
	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("cadastro deveria ter sucesso: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "joao",
		Password: "senha-errada",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("esperado ErrInvalidCredentials, obtido: %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "fantasma",
		Password: "qualquer-coisa",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("esperado ErrInvalidCredentials, obtido: %v", err)
	}
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("cadastro deveria ter sucesso: %v", err)
	}
	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "joao", Password: "senha-segura-123"})
	if err != nil {
		t.Fatalf("Login deveria ter sucesso: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken deveria ter sucesso: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("novo access token não deveria estar vazio")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := setupTestAuthService()
	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("cadastro deveria ter sucesso: %v", err)
	}
	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "joao", Password: "senha-segura-123"})
	if err != nil {
		t.Fatalf("Login deveria ter sucesso: %v", err)
	}

	// Access token no lugar do refresh não vale
	_, err = svc.RefreshToken(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("esperado ErrInvalidCredentials, obtido: %v", err)
	}
}

func TestAuthService_Logout_WithoutRedis(t *testing.T) {
	svc, _ := setupTestAuthService()

	// Sem Redis o logout é apenas do lado do cliente
	if err := svc.Logout(context.Background(), "jti-qualquer", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout sem Redis não deveria falhar: %v", err)
	}
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "inexistente")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperado ErrUserNotFound, obtido: %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	svc, repos := setupTestAuthService()
	created, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("cadastro deveria ter sucesso: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteAccount deveria ter sucesso: %v", err)
	}
	if _, ok := repos.user.users[created.ID]; ok {
		t.Error("usuário deveria ter sido removido")
	}
}
