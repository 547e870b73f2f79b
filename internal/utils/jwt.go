package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// ErrInvalidToken возвращается для поддельного, просроченного или неполного токена
var ErrInvalidToken = errors.New("недействительный токен")

// TokenTTL – время жизни токена сессии
const TokenTTL = 24 * time.Hour

// JWTService отвечает за создание и валидацию JWT токенов
type JWTService struct {
	secretKey string
	now       func() time.Time
}

// NewJWTService создаёт новый экземпляр JWTService
func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: secretKey, now: time.Now}
}

// GenerateToken создаёт JWT токен с данными пользователя Telegram
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":       user.ID,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"username":      user.Username,
		"language_code": user.LanguageCode,
		"iat":           now.Unix(),
		"exp":           now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken проверяет JWT токен
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
}

// ParseUser проверяет токен и восстанавливает из него пользователя
func (s *JWTService) ParseUser(tokenString string) (*models.User, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// числа в MapClaims приходят как float64
	id, ok := claims["user_id"].(float64)
	if !ok || id == 0 {
		return nil, ErrInvalidToken
	}

	user := &models.User{ID: int64(id)}
	user.FirstName, _ = claims["first_name"].(string)
	user.LastName, _ = claims["last_name"].(string)
	user.Username, _ = claims["username"].(string)
	user.LanguageCode, _ = claims["language_code"].(string)
	return user, nil
}
