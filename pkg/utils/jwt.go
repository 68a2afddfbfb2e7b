package utils

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/postplanner/internal/transfer"
)

const tokenIssuer = "postplanner"

// ErrInvalidUser means the token does not name a planner user.
var ErrInvalidUser = errors.New("token does not carry a valid user id")

func GenerateToken(secretKey, userID string, tokenDuration time.Duration) (string, error) {
	if !validUserID(userID) {
		return "", ErrInvalidUser
	}

	claims := transfer.CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))

	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return signedToken, nil
}

// ValidateToken accepts only HS256 tokens issued by the planner that carry an
// expiry and a positive numeric user id.
func ValidateToken(secretKey, tokenString string) (*transfer.CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	claims, ok := token.Claims.(*transfer.CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !validUserID(claims.UserID) {
		return nil, ErrInvalidUser
	}

	return claims, nil
}

func validUserID(userID string) bool {
	id, err := strconv.ParseInt(userID, 10, 64)
	return err == nil && id > 0
}
