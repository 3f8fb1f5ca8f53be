package session

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestJWTVerifier() *JWTVerifier {
	return NewJWTVerifier(zap.NewNop().Sugar(), testSecret)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name           string
		token          func(t *testing.T) string
		expectedCaller *Caller
		expectedError  error
	}{
		{
			name: "AdminBySubject",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
					jwt.MapClaims{"sub": "user1", "admin": true, "exp": exp})
			},
			expectedCaller: &Caller{UserID: "user1", Admin: true},
		},
		{
			name: "RegularByUserID",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
					jwt.MapClaims{"user_id": "user2", "exp": exp})
			},
			expectedCaller: &Caller{UserID: "user2", Admin: false},
		},
		{
			name: "AdminClaimAsString",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
					jwt.MapClaims{"sub": "user3", "admin": "true", "exp": exp})
			},
			expectedCaller: &Caller{UserID: "user3", Admin: false},
		},
		{
			name: "WrongSecret",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("other"),
					jwt.MapClaims{"sub": "user1", "admin": true, "exp": exp})
			},
			expectedError: ErrNoAuth,
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
					jwt.MapClaims{"sub": "user1", "admin": true, "exp": time.Now().Add(-time.Hour).Unix()})
			},
			expectedError: ErrNoAuth,
		},
		{
			name: "NoneAlgorithm",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType,
					jwt.MapClaims{"sub": "user1", "admin": true, "exp": exp})
			},
			expectedError: ErrNoAuth,
		},
		{
			name: "NoUserID",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
					jwt.MapClaims{"admin": true, "exp": exp})
			},
			expectedError: ErrNoAuth,
		},
		{
			name:          "Garbage",
			token:         func(t *testing.T) string { return "invalid.token" },
			expectedError: ErrNoAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestJWTVerifier()

			caller, err := v.Verify(context.Background(), tt.token(t))

			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expectedCaller, caller)
		})
	}
}

func TestJWTVerifier_GenerateJWT(t *testing.T) {
	v := newTestJWTVerifier()

	token, err := v.GenerateJWT(Caller{UserID: "user1", Admin: true})
	require.NoError(t, err)

	caller, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &Caller{UserID: "user1", Admin: true}, caller)
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	tests := map[string]func(t *testing.T){
		"admin claim": func(t *testing.T) {
			ctrl := gomock.NewController(t)
			idTokens := NewMockIDTokenVerifier(ctrl)
			v := NewFirebaseVerifier(idTokens, zap.NewNop().Sugar())

			idTokens.EXPECT().VerifyIDToken(gomock.Any(), "id-token").
				Return(&auth.Token{UID: "uid1", Claims: map[string]interface{}{"admin": true}}, nil).Times(1)

			caller, err := v.Verify(context.Background(), "id-token")
			require.NoError(t, err)
			assert.Equal(t, &Caller{UserID: "uid1", Admin: true}, caller)
		},

		"no admin claim": func(t *testing.T) {
			ctrl := gomock.NewController(t)
			idTokens := NewMockIDTokenVerifier(ctrl)
			v := NewFirebaseVerifier(idTokens, zap.NewNop().Sugar())

			idTokens.EXPECT().VerifyIDToken(gomock.Any(), "id-token").
				Return(&auth.Token{UID: "uid2", Claims: map[string]interface{}{}}, nil).Times(1)

			caller, err := v.Verify(context.Background(), "id-token")
			require.NoError(t, err)
			assert.False(t, caller.Admin)
		},

		"invalid token": func(t *testing.T) {
			ctrl := gomock.NewController(t)
			idTokens := NewMockIDTokenVerifier(ctrl)
			v := NewFirebaseVerifier(idTokens, zap.NewNop().Sugar())

			idTokens.EXPECT().VerifyIDToken(gomock.Any(), "bad").
				Return(nil, errors.New("ID token has expired")).Times(1)

			caller, err := v.Verify(context.Background(), "bad")
			assert.Nil(t, caller)
			assert.Equal(t, ErrNoAuth, err)
		},
	}

	for name, test := range tests {
		t.Run(name, test)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedError error
	}{
		{name: "Valid", header: "Bearer abc.def", expectedToken: "abc.def"},
		{name: "Missing", header: "", expectedError: ErrNoAuth},
		{name: "WrongScheme", header: "Basic abc", expectedError: ErrNoAuth},
		{name: "EmptyToken", header: "Bearer   ", expectedError: ErrNoAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/grant-admin", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := BearerToken(r)
			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestCallerContext(t *testing.T) {
	_, ok := CallerFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithCaller(context.Background(), &Caller{UserID: "user1"})
	c, ok := CallerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user1", c.UserID)
}
