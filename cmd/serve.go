package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/configs"
	"luppolo.dev/Luppolo/pkg/auth"
	"luppolo.dev/Luppolo/pkg/repository"
	"luppolo.dev/Luppolo/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".Luppolo.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, repo, logger)

	router := server.NewRouter(server.Servers{
		Offerings: server.NewOfferingServer(repo, logger),
		Pubs:      server.NewPubServer(repo, conf, logger),
		Beers:     server.NewBeerServer(repo, logger, conf),
		Profile:   server.NewProfileServer(repo, logger),
		Admin:     server.NewAdminServer(repo, logger),
		Uploads:   server.NewUploadServer(conf, logger),
	}, authManager)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           configureCORS(router),
	}

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
