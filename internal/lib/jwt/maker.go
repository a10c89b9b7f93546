package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethod закреплён: алгоритм из заголовка токена не используется для выбора проверки.
var signingMethod = jwt.SigningMethodHS256

// GenerateToken создаёт токен с subject = userID и exp = now + tokenTTL.
func (j *MakerImpl) GenerateToken(userID string) (string, error) {
	const op = "jwt.GenerateToken"
	if userID == "" {
		return "", fmt.Errorf("%s: empty user id", op)
	}

	now := j.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken проверяет подпись, алгоритм и срок действия токена.
//
// Возвращаемая ошибка оборачивает ErrTokenExpired или ErrTokenMalformed.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(_ *jwt.Token) (any, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		// Подпись проверяется раньше claims, поэтому истёкший токен
		// с чужой подписью сюда не попадает.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, ErrTokenMalformed, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w: missing subject", op, ErrTokenMalformed)
	}
	return claims, nil
}
