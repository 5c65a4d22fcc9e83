package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/dmitrijs2005/potholeauth/internal/logging"
	"github.com/dmitrijs2005/potholeauth/internal/server/auth"
	"github.com/dmitrijs2005/potholeauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.BcryptCost = 4
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.NotNil(t, app.userService)
}

func TestNewApp_GeneratesSecretWhenEmpty(t *testing.T) {
	c := testConfig()
	c.SecretKey = ""
	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)
	require.Len(t, c.SecretKey, 64)

	ctx := context.Background()

	forged, err := auth.GenerateToken("any-user", []byte("secretKey"), time.Hour)
	require.NoError(t, err)
	_, err = app.userService.VerifyToken(ctx, forged)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	genuine, err := auth.GenerateToken("u-1", []byte(c.SecretKey), time.Hour)
	require.NoError(t, err)
	uid, err := app.userService.VerifyToken(ctx, genuine)
	require.NoError(t, err)
	assert.Equal(t, "u-1", uid)
}

func TestNewApp_DefaultsUseGeneratedSecret(t *testing.T) {
	var c config.Config
	c.LoadDefaults()
	c.BcryptCost = 4

	_, err := NewApp(context.Background(), &c, logging.Nop{})
	require.NoError(t, err)
	assert.Len(t, c.SecretKey, 64)
}

func TestNewApp_UnknownHasher(t *testing.T) {
	c := testConfig()
	c.PasswordHasher = "md5"
	_, err := NewApp(context.Background(), c, logging.Nop{})
	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}

func TestRun_StopsWhenListenFails(t *testing.T) {
	c := testConfig()
	c.EndpointAddrHTTP = "127.0.0.1:99999"
	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after listen failure")
	}
}
