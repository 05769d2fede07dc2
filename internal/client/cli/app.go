package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/wetrippo/wishlist/internal/client/api"
	"github.com/wetrippo/wishlist/internal/client/config"
	"github.com/wetrippo/wishlist/internal/client/host"
	"github.com/wetrippo/wishlist/internal/client/localdb"
	"github.com/wetrippo/wishlist/internal/client/repositories/items"
	"github.com/wetrippo/wishlist/internal/client/repositories/metadata"
	"github.com/wetrippo/wishlist/internal/client/services"
	"github.com/wetrippo/wishlist/internal/client/session"
	"github.com/wetrippo/wishlist/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive wishlist client.
type App struct {
	config      *config.Config
	client      api.Client
	authService services.AuthService
	wishlist    *services.WishlistService
	hostRT      *host.Runtime
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing local database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	sess := session.NewMetadataStore(metadata.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(c.APIBaseURL, sess, logger)
	cache := items.NewSQLiteRepository(db)

	as := services.NewAuthService(apiClient, sess, logger)
	ws := services.NewWishlistService(apiClient, as, cache, logger)

	return &App{
		config:      c,
		client:      apiClient,
		authService: as,
		wishlist:    ws,
		hostRT:      host.Detect(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run performs the mount sequence and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.wishlist.Init(ctx, a.hostRT)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isAuthenticated() bool {
	return a.authService.IsAuthenticated(context.Background())
}

func (a *App) inHostRuntime() bool {
	return a.hostRT != nil
}

func (a *App) getStatus() string {
	if ownerID := a.authService.OwnerID(context.Background()); ownerID != "" {
		return "(owner " + ownerID + ")"
	}
	return ""
}
