package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/potholeauth/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs feeds answers to the text prompts in order.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	signupName, signupEmail, signupPass string
	signupErr                           error

	loginEmail, loginPass string
	loginErr              error

	token, userID string
	logoutErr     error
	loggedOut     bool
}

func (f *fakeAuth) Signup(_ context.Context, name, email, password string) (*client.AuthResponse, error) {
	f.signupName, f.signupEmail, f.signupPass = name, email, password
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &client.AuthResponse{User: client.User{ID: "u1", Name: name, Email: email}, Token: "t"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*client.AuthResponse, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.token, f.userID = "t", "u1"
	return &client.AuthResponse{User: client.User{ID: "u1", Name: "Alice", Email: email}, Token: "t"}, nil
}

func (f *fakeAuth) GetToken(context.Context) (string, error)  { return f.token, nil }
func (f *fakeAuth) GetUserID(context.Context) (string, error) { return f.userID, nil }
func (f *fakeAuth) ClearToken(context.Context) error          { f.token = ""; return nil }
func (f *fakeAuth) ClearUserID(context.Context) error         { f.userID = ""; return nil }
func (f *fakeAuth) Logout(context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedOut = true
	f.token, f.userID = "", ""
	return nil
}
func (f *fakeAuth) IsLoggedIn(context.Context) (bool, error) {
	return f.token != "" && f.userID != "", nil
}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: f, out: &out, reader: bufio.NewReader(bytes.NewReader(nil))}, &out
}

func TestSignup_Success(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)
	stubInputs(t, []string{"Alice", "alice@x.com"}, []byte("secret123"))

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, "Alice", f.signupName)
	assert.Equal(t, "alice@x.com", f.signupEmail)
	assert.Equal(t, "secret123", f.signupPass)
	assert.Contains(t, out.String(), "Account created for alice@x.com")
}

func TestSignup_ErrorReturned(t *testing.T) {
	f := &fakeAuth{signupErr: &client.APIError{Status: 400, Message: "User already registered"}}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"Alice", "alice@x.com"}, []byte("secret123"))

	err := a.Signup(context.Background())
	require.Error(t, err)
	assert.Equal(t, "User already registered", err.Error())
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice@x.com"}, []byte("secret123"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice@x.com", f.loginEmail)
	assert.Equal(t, "secret123", f.loginPass)
	assert.Contains(t, out.String(), "Logged in as Alice")
	assert.True(t, a.isLoggedIn(context.Background()))
}

func TestLogin_Failure(t *testing.T) {
	f := &fakeAuth{loginErr: client.ErrUnavailable}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"alice@x.com"}, []byte("secret123"))

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.False(t, a.isLoggedIn(context.Background()))
}

func TestLogin_PromptError(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f)
	stubInputs(t, nil, nil)

	assert.ErrorIs(t, a.Login(context.Background()), io.EOF)
	assert.Empty(t, f.loginEmail)
}

func TestLogoutAndWhoAmI(t *testing.T) {
	f := &fakeAuth{token: "t", userID: "u1"}
	a, out := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "u1")

	require.NoError(t, a.Logout(ctx))
	assert.True(t, f.loggedOut)

	out.Reset()
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Not logged in")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a, _ := newTestApp(f)
	assert.Error(t, a.Logout(context.Background()))
}

func TestRoot_RestoredSessionSkipsLogin(t *testing.T) {
	captureOutput(t)
	f := &fakeAuth{token: "t", userID: "u1"}
	a, out := newTestApp(f)
	a.reader = bufio.NewReader(bytes.NewBufferString("exit\n"))

	a.Root(context.Background())

	assert.Contains(t, out.String(), "Session restored for user u1")
	assert.Empty(t, f.loginEmail)
}

func TestRoot_NoSessionPromptsLogin(t *testing.T) {
	captureOutput(t)
	f := &fakeAuth{}
	a, out := newTestApp(f)
	a.reader = bufio.NewReader(bytes.NewBufferString("exit\n"))
	stubInputs(t, []string{"alice@x.com"}, []byte("secret123"))

	a.Root(context.Background())

	assert.Contains(t, out.String(), "No active session")
	assert.Equal(t, "alice@x.com", f.loginEmail)
}
