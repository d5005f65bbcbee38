package store

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

const userJSON = `{"data":{"_id":"u1","name":"Ahmed","email":"ahmed@example.com",` +
	`"addresses":[{"_id":"a1","name":"Home","details":"12 Tahrir St, apt 4","city":"Cairo","phone":"01012345678"}]}}`

func TestSession_LoginLogout(t *testing.T) {
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, http.NotFoundHandler())
	session := NewSession(client, keyring, nil)

	assert.False(t, session.Authenticated())
	session.Login()
	assert.True(t, session.Authenticated())

	require.NoError(t, session.Logout())
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User())
	assert.False(t, keyring.Has())

	// logout with no token persisted is still fine
	require.NoError(t, session.Logout())
}

func TestSession_LoadProfile(t *testing.T) {
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/"+testUserID, r.URL.Path)
		fmt.Fprint(w, userJSON)
	}))
	session := NewSession(client, keyring, nil)

	user, err := session.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", user.Name)
	assert.Len(t, user.Addresses, 1)
	assert.True(t, session.Authenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, "u1", session.User().ID)
}

func TestSession_LoadProfile_NoToken(t *testing.T) {
	keyring := emptyKeyring(t)
	handler := &countingHandler{}
	client := testClient(t, keyring, handler)
	session := NewSession(client, keyring, nil)

	_, err := session.LoadProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, handler.hits)
}

func TestSession_LoadProfile_InvalidTokenForcesLogout(t *testing.T) {
	keyring := emptyKeyring(t)
	require.NoError(t, keyring.Save("not-a-jwt"))

	handler := &countingHandler{}
	client := testClient(t, keyring, handler)
	session := NewSession(client, keyring, nil)
	session.Login()

	_, err := session.LoadProfile(context.Background())
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	assert.False(t, session.Authenticated())
	assert.False(t, keyring.Has(), "an undecodable token must be cleared")
	assert.Zero(t, handler.hits)
}

func TestSession_LoadProfile_ExpiredTokenForcesLogout(t *testing.T) {
	keyring := emptyKeyring(t)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, keyring.Save(raw))

	handler := &countingHandler{}
	client := testClient(t, keyring, handler)
	session := NewSession(client, keyring, nil)

	_, err = session.LoadProfile(context.Background())
	assert.ErrorIs(t, err, token.ErrExpired)
	assert.False(t, keyring.Has())
	assert.Zero(t, handler.hits)
}

func TestSession_LoadProfile_APIErrorKeepsCachedProfile(t *testing.T) {
	fail := false
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"statusMsg":"error","message":"server error"}`)
			return
		}
		fmt.Fprint(w, userJSON)
	}))
	session := NewSession(client, keyring, nil)

	_, err := session.LoadProfile(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = session.LoadProfile(context.Background())
	require.Error(t, err)

	// the failed refresh must not wipe what was already loaded
	require.NotNil(t, session.User())
	assert.Equal(t, "Ahmed", session.User().Name)
	assert.True(t, session.Authenticated())
}

func TestSession_ChangePassword_MismatchBeforeNetwork(t *testing.T) {
	keyring := loggedInKeyring(t)
	handler := &countingHandler{}
	client := testClient(t, keyring, handler)
	session := NewSession(client, keyring, nil)

	err := session.ChangePassword(context.Background(), "old", "newpass", "different")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, handler.hits)
}

func TestSession_ChangePassword(t *testing.T) {
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/changeMyPassword", r.URL.Path)
		fmt.Fprint(w, `{"message":"success","user":{"_id":"u1"},"token":"rotated"}`)
	}))
	session := NewSession(client, keyring, nil)

	err := session.ChangePassword(context.Background(), "old", "newpass", "newpass")
	require.NoError(t, err)
}

func TestSession_Claims(t *testing.T) {
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, http.NotFoundHandler())
	session := NewSession(client, keyring, nil)

	claims, err := session.Claims()
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)

	require.NoError(t, keyring.Clear())
	_, err = session.Claims()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
