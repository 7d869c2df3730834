package jwt

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskboard/pkg/auth"
)

const testSecret = "test-secret"

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	gen := NewGenerator(testSecret, "taskboard", time.Hour)
	user := testUser()

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	subject, err := gen.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	gen := NewGenerator(testSecret, "taskboard", -time.Minute)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	gen := NewGenerator(testSecret, "taskboard", time.Hour)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = gen.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issue := NewGenerator(testSecret, "taskboard", time.Hour)
	verify := NewGenerator("rotated-secret", "taskboard", time.Hour)

	token, err := issue.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verify.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongIssuer(t *testing.T) {
	issue := NewGenerator(testSecret, "someone-else", time.Hour)
	verify := NewGenerator(testSecret, "taskboard", time.Hour)

	token, err := issue.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verify.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	gen := NewGenerator(testSecret, "taskboard", time.Hour)

	claims := jwtlib.RegisteredClaims{
		Issuer:    "taskboard",
		Subject:   uuid.NewString(),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = gen.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	gen := NewGenerator(testSecret, "taskboard", time.Hour)

	for _, token := range []string{"", "not.a.jwt", "aaaa"} {
		_, err := gen.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
