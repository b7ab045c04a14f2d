package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecode(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 30)
	tok, exp, err := tm.GenerateToken("hr@acme.io")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, ok := tm.Decode(tok)
	require.True(t, ok)
	assert.Equal(t, "hr@acme.io", claims.Email())
	assert.NotEmpty(t, claims.ID)
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 1)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := tm.GenerateToken("hr@acme.io")
	require.NoError(t, err)

	tm.now = time.Now
	claims, ok := tm.Decode(tok)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret", 60).GenerateToken("hr@acme.io")
	require.NoError(t, err)

	_, ok := NewTokenManager("wrong-secret", 60).Decode(tok)
	assert.False(t, ok)
}

func TestDecode_Tampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 60)
	tok, _, err := tm.GenerateToken("hr@acme.io")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, ok := tm.Decode(tampered)
	assert.False(t, ok)
}

func TestDecode_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Subject:   "hr@acme.io",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, ok := NewTokenManager("secret", 60).Decode(tok)
	assert.False(t, ok)
}

func TestDecode_RequiresExpiry(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "hr@acme.io"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, ok := NewTokenManager("secret", 60).Decode(tok)
	assert.False(t, ok)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 60)
	for _, in := range []string{"", "not-a-jwt", "a.b.c"} {
		_, ok := tm.Decode(in)
		assert.False(t, ok, in)
	}
}
