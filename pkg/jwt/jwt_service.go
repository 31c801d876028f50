package jwt

import (
	"errors"
	"fmt"
	"time"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

const TokenExpiry = 24 * time.Hour

type (
	JWTService interface {
		GenerateToken(claims map[string]any) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetClaims(token string) (jwt.MapClaims, error)
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	return utils.GetConfig("SECRET_ACCESS_TOKEN")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "FOODBUZZ",
	}
}

// GenerateToken signs the caller-supplied claims with a fixed one-day expiry.
func (j *jwtService) GenerateToken(data map[string]any) (string, error) {
	claims := jwt.MapClaims{}

	for key, value := range data {
		claims[key] = value
	}

	claims["exp"] = time.Now().Add(TokenExpiry).Unix()
	claims["iat"] = time.Now().Unix()
	claims["iss"] = j.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.Parse(token, j.parseToken)
}

func (j *jwtService) GetClaims(token string) (jwt.MapClaims, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
