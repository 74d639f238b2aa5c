package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/app"
	"github.com/metinatakli/cinex-admin/internal/repository"
	appvalidator "github.com/metinatakli/cinex-admin/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	doc, err := api.LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application, err := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		doc,
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresTheatreRepository(db),
		repository.NewPostgresShowRepository(db),
		repository.NewPostgresBookingRepository(db),
	)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
	}, nil
}

// authenticatedUserCookies commits a session for TestUserId to the session
// store and returns the cookie that carries it.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	t.Helper()

	sm := a.App.SessionManager()

	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)

	sm.Put(ctx, app.SessionKeyUserId.String(), TestUserId)

	token, expiry, err := sm.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{
		{
			Name:    sm.Cookie.Name,
			Value:   token,
			Path:    "/",
			Expires: expiry,
		},
	}
}
