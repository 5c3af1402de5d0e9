package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// MustGetUserID extrai o user_id do contexto do Gin.
// Se o middleware JWT não injetou o valor, responde 401 e devolve ok=false.
// O chamador deve retornar imediatamente quando ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// MustGetRole extrai o papel do usuário do contexto do Gin
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// tokenInfo extrai o jti e a expiração do access token corrente.
// Ausentes (middleware não executado), devolve zeros.
func tokenInfo(c *gin.Context) (string, time.Time) {
	jti := c.GetString("token_jti")
	expiresAt, _ := c.Get("token_expires_at")
	t, _ := expiresAt.(time.Time)
	return jti, t
}
