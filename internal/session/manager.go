package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const (
	FieldUserID  = "user_id"
	FieldSubject = "sub"
	FieldAdmin   = "admin"

	tokenTTL = 24 * time.Hour
)

// JWTVerifier проверяет HS256 токены, подписанные общим секретом.
// Используется, когда бэкенд не firebase.
type JWTVerifier struct {
	Logger      *zap.SugaredLogger
	tokenSecret string
}

func NewJWTVerifier(l *zap.SugaredLogger, secret string) *JWTVerifier {
	return &JWTVerifier{
		Logger:      l,
		tokenSecret: secret,
	}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			v.Logger.Errorf("%v", ErrUnexpectedMethod)
			return nil, ErrUnexpectedMethod
		}
		return []byte(v.tokenSecret), nil
	})
	if err != nil || !token.Valid {
		v.Logger.Errorf("%v. More details: %v", ErrNoAuth, err)
		return nil, ErrNoAuth
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		v.Logger.Errorf("%v. More details: unexpected claims type", ErrNoAuth)
		return nil, ErrNoAuth
	}

	// user_id как в токенах firebase, sub как в обычных jwt
	userID, _ := claims[FieldUserID].(string)
	if userID == "" {
		userID, _ = claims[FieldSubject].(string)
	}
	if userID == "" {
		v.Logger.Errorf("%v. More details: token without user id", ErrNoAuth)
		return nil, ErrNoAuth
	}

	return &Caller{
		UserID: userID,
		Admin:  isAdminClaim(claims[FieldAdmin]),
	}, nil
}

// GenerateJWT подписывает токен вызывающего. Нужен для выпуска служебных
// токенов админам при бэкенде postgres и для тестов.
func (v *JWTVerifier) GenerateJWT(c Caller) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		FieldSubject: c.UserID,
		FieldAdmin:   c.Admin,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL).Unix(),
	})

	return t.SignedString([]byte(v.tokenSecret))
}

// FirebaseVerifier проверяет ID токены firebase auth.
type FirebaseVerifier struct {
	Auth   IDTokenVerifier
	Logger *zap.SugaredLogger
}

func NewFirebaseVerifier(a IDTokenVerifier, l *zap.SugaredLogger) *FirebaseVerifier {
	return &FirebaseVerifier{
		Auth:   a,
		Logger: l,
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Caller, error) {
	token, err := v.Auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.Logger.Errorf("%v. More details: %v", ErrNoAuth, err)
		return nil, ErrNoAuth
	}

	return &Caller{
		UserID: token.UID,
		Admin:  isAdminClaim(token.Claims[FieldAdmin]),
	}, nil
}
