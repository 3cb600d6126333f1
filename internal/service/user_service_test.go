package service

import (
	"context"
	"testing"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@x.com", "pw123", "A")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", u.Email)
	require.Equal(t, dom.ProviderLocal, u.Provider)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")))

	got, err := svc.ValidateCredentials(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestRegister_EmailCaseInsensitive(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "  A@X.Com ", "pw", "A")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", u.Email)

	_, err = svc.ValidateCredentials(ctx, "a@x.COM", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "other", "B")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "a@x.com", "", "A")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "", "pw", "A")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentials_Generic(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123", "A")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.ValidateCredentials(ctx, "nobody@x.com", "pw123")
	_, errWrongPw := svc.ValidateCredentials(ctx, "a@x.com", "nope")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}
