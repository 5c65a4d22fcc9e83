package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/potholeauth/internal/client/client"
	"github.com/dmitrijs2005/potholeauth/internal/client/config"
	"github.com/dmitrijs2005/potholeauth/internal/client/repositories/securestore"
	"github.com/dmitrijs2005/potholeauth/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	closer      io.Closer
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	store, err := securestore.Open(ctx, c.LocalDBPath, c.KeyFilePath)
	if err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	as := services.NewAuthService(apiClient, store, c.RequestTimeout)

	return &App{
		config:      c,
		authService: as,
		closer:      store,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer a.closer.Close()
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.authService.IsLoggedIn(ctx)
	return err == nil && ok
}
