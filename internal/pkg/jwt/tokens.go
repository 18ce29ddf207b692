package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenIssuer interface {
	IssueToken(userID uuid.UUID, role string, sessionID string) (string, error)
}

type TokenParser interface {
	ParseToken(tokenString string) (*Claims, error)
}

// Claims ties a token to the server-side session it was issued for.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Role      string    `json:"role"`
	SessionID string    `json:"sid"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
	secret    []byte
	timeLimit time.Duration
}

// NewJWTTokenIssuer creates an HS256 issuer. A zero timeLimit issues tokens
// without an expiry; their validity then ends only with the session.
func NewJWTTokenIssuer(secret []byte, timeLimit time.Duration) *JWTTokenIssuer {
	return &JWTTokenIssuer{
		secret:    secret,
		timeLimit: timeLimit,
	}
}

func (ti *JWTTokenIssuer) IssueToken(userID uuid.UUID, role string, sessionID string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ti.timeLimit > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ti.timeLimit))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

type JWTTokenParser struct {
	secret []byte
}

func NewJWTTokenParser(secret []byte) *JWTTokenParser {
	return &JWTTokenParser{
		secret: secret,
	}
}

func (tp *JWTTokenParser) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return tp.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.UserID == uuid.Nil || claims.Role == "" || claims.SessionID == "" {
		return nil, jwt.ErrTokenRequiredClaimMissing
	}

	return claims, nil
}
