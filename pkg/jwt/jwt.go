package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)

type JWT struct {
	appName     string
	secretKey   string
	tokenExpiry time.Duration
}

func Initialize(appName string, secretKey string, expiry time.Duration) {
	once.Do(func() {
		instance = &JWT{
			appName:     appName,
			secretKey:   secretKey,
			tokenExpiry: expiry,
		}
	})
}

func GetInstance() *JWT {
	return instance
}

// GenerateToken issues the bearer credential handed to clients on login.
func GenerateToken(userID, email, name, level string) (string, error) {
	j := GetInstance()
	if j == nil {
		return "", ErrJWTNotInitialized
	}

	return j.generateToken(userID, email, name, level)
}

func ValidateToken(tokenString string) (*Claims, error) {
	j := GetInstance()
	if j == nil {
		return nil, ErrJWTNotInitialized
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(j.appName))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (j *JWT) generateToken(userID, email, name, level string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    userID,
		Email: email,
		Name:  name,
		Level: level,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.appName,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
