package providers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecard/internal/structures"
)

type authTestClock struct {
	current time.Time
}

func (c *authTestClock) Now() time.Time                        { return c.current }
func (c *authTestClock) Location() *time.Location              { return time.UTC }
func (c *authTestClock) ParseCivil(string) (time.Time, error)  { return time.Time{}, nil }

func authConfig() *structures.Config {
	return &structures.Config{
		Admin: structures.AdminConfig{
			Password:  "correct-horse",
			JWTSecret: "0123456789abcdef0123456789abcdef",
			TokenTTL:  time.Hour,
		},
	}
}

func TestAuthProvider_LoginWrongPassword(t *testing.T) {
	auth := NewAuthProvider(authConfig(), &authTestClock{current: time.Now()})
	_, err := auth.Login("wrongpassword")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthProvider_LoginAndVerify(t *testing.T) {
	auth := NewAuthProvider(authConfig(), &authTestClock{current: time.Now()})

	token, err := auth.Login("correct-horse")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	assert.NoError(t, auth.Verify(token))
}

func TestAuthProvider_VerifyGarbage(t *testing.T) {
	auth := NewAuthProvider(authConfig(), &authTestClock{current: time.Now()})
	assert.ErrorIs(t, auth.Verify("not.a.token"), ErrUnauthorized)
	assert.ErrorIs(t, auth.Verify(""), ErrUnauthorized)
}

func TestAuthProvider_VerifyWrongSecret(t *testing.T) {
	clock := &authTestClock{current: time.Now()}
	auth := NewAuthProvider(authConfig(), clock)

	otherConf := authConfig()
	otherConf.Admin.JWTSecret = "ffffffffffffffffffffffffffffffff"
	other := NewAuthProvider(otherConf, clock)

	token, err := auth.Login("correct-horse")
	require.NoError(t, err)
	assert.ErrorIs(t, other.Verify(token), ErrUnauthorized)
}

func TestAuthProvider_VerifyExpiredToken(t *testing.T) {
	clock := &authTestClock{current: time.Now()}
	auth := NewAuthProvider(authConfig(), clock)

	token, err := auth.Login("correct-horse")
	require.NoError(t, err)

	clock.current = clock.current.Add(2 * time.Hour)
	assert.ErrorIs(t, auth.Verify(token), ErrUnauthorized)
}
