package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trasua/internal/auth"
	"trasua/internal/domain"
)

const claimsKey = "authClaims"

// requireAuth validates the Bearer access token and stashes its claims on
// the gin context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "missing bearer token"})
			return
		}
		claims, err := s.auth.Tokens().ValidateAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	auth.TokenPair
	User *domain.User `json:"user"`
}

// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	pair, user, err := s.auth.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, loginResp{TokenPair: pair, User: user})
}

type refreshReq struct {
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
}

// @Summary Rotate token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param input body refreshReq true "Refresh token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /token [post]
func (s *Server) refreshToken(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	pair, err := s.auth.Refresh(c, req.Email, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, pair)
}

// @Summary Current operator
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /me [get]
func (s *Server) me(c *gin.Context) {
	user, err := s.auth.Me(c, claimsFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

type cookieReq struct {
	Expires int64  `json:"expires"` // unix ms
	SG      string `json:"sg"`      // base64("email,refreshToken")
}

// @Summary Set session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param input body cookieReq true "Session payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/cookie [put]
func (s *Server) putCookie(c *gin.Context) {
	var req cookieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	if _, _, err := auth.DecodeSession(req.SG); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	maxAge := int(time.Until(time.UnixMilli(req.Expires)).Seconds())
	if maxAge <= 0 {
		respondBadRequest(c, "expires is in the past")
		return
	}
	c.SetCookie("_sg", req.SG, maxAge, "/", "", false, true)
	respondData(c, http.StatusOK, gin.H{"set": true})
}

// @Summary Clear session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/cookie [delete]
func (s *Server) deleteCookie(c *gin.Context) {
	c.SetCookie("_sg", "", -1, "/", "", false, true)
	respondData(c, http.StatusOK, gin.H{"cleared": true})
}
