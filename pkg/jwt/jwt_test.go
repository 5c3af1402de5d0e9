package jwt

import (
	"testing"
	"time"

	"github.com/CauehCraft/AgendaAberta/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "chave-secreta-para-testes-unitarios",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "professor")
	if err != nil {
		t.Fatalf("GenerateAccessToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("esperado UserID=user-1, obtido=%s", claims.UserID)
	}
	if claims.Role != "professor" {
		t.Errorf("esperado Role=professor, obtido=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperado TokenType=access, obtido=%s", claims.TokenType)
	}
	if claims.Issuer != "agenda-aberta" {
		t.Errorf("esperado Issuer=agenda-aberta, obtido=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI não deveria ser vazio")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "aluno")
	if err != nil {
		t.Fatalf("GenerateRefreshToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("esperado TokenType=refresh, obtido=%s", claims.TokenType)
	}

	// TTL aproximado de 7 dias
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("TTL esperado de aproximadamente 7 dias, obtido=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("token.invalido.aqui")
	if err == nil {
		t.Error("esperado erro ao interpretar token inválido")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "outra-chave-secreta-diferente",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("user-1", "monitor")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("token assinado com outra chave não deveria validar")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// Manager com TTL mínimo para provocar expiração
	m := NewManager(&config.AuthConfig{
		JWTSecret:       "chave-secreta-para-testes-unitarios",
		AccessTokenTTL:  1 * time.Millisecond,
		RefreshTokenTTL: 1 * time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("user-1", "aluno")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("token expirado não deveria validar")
	}
	if err != ErrTokenExpired {
		t.Errorf("esperado ErrTokenExpired, obtido: %v", err)
	}
}
