package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	adapthttp "blogapi/internal/adapter/http"
	"blogapi/internal/adapter/postgres"
	"blogapi/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttl := 15 * time.Minute
	if v := os.Getenv("TOKEN_TTL_MIN"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			log.Fatalf("TOKEN_TTL_MIN must be a positive integer, got %q", v)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	userRepo := postgres.NewUserRepo(db)
	postRepo := postgres.NewPostRepo(db)
	commentRepo := postgres.NewCommentRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	postCategoryRepo := postgres.NewPostCategoryRepo(db)
	tokenRepo := postgres.NewTokenRepo(db)

	authSvc := app.NewAuthService(userRepo, tokenRepo, []byte(secret), ttl)
	userSvc := app.NewUserService(userRepo, tokenRepo)
	postSvc := app.NewPostService(postRepo, userRepo, commentRepo, categoryRepo, postCategoryRepo)
	categorySvc := app.NewCategoryService(postRepo, categoryRepo, postCategoryRepo)
	commentSvc := app.NewCommentService(postRepo, commentRepo)

	var oidcCfg *adapthttp.OIDCConfig
	if issuer := os.Getenv("OIDC_ISSUER"); issuer != "" {
		oidcCfg, err = adapthttp.NewOIDCConfig(
			context.Background(),
			issuer,
			os.Getenv("OIDC_CLIENT_ID"),
			os.Getenv("OIDC_CLIENT_SECRET"),
			os.Getenv("OIDC_REDIRECT_URL"),
		)
		if err != nil {
			log.Fatalf("oidc setup: %v", err)
		}
	}

	var corsOrigins []string
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	h := adapthttp.New(userSvc, postSvc, categorySvc, commentSvc, authSvc, oidcCfg, corsOrigins).Handler()

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
