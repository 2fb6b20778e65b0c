package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// QRTokenManager issues and validates the short-lived signed tokens shown
// as QR codes on kiosk displays. An employee's phone scans the code and
// posts the token back to prove physical presence at the device.
type QRTokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewQRTokenManager builds a new manager.
func NewQRTokenManager(secret string, ttlSeconds int) *QRTokenManager {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &QRTokenManager{secret: []byte(secret), ttl: time.Duration(ttlSeconds) * time.Second}
}

// QRClaims describes the QR token payload.
type QRClaims struct {
	CompanyID   string `json:"company_id"`
	DeviceLabel string `json:"device_label"`
	jwt.RegisteredClaims
}

// MintKioskToken signs a token for the kiosk's current QR code.
func (m *QRTokenManager) MintKioskToken(companyID, deviceLabel string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := &QRClaims{
		CompanyID:   companyID,
		DeviceLabel: deviceLabel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   companyID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseKioskToken validates a scanned token and returns its claims.
func (m *QRTokenManager) ParseKioskToken(tokenStr string) (*QRClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &QRClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*QRClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
