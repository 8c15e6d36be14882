package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/config"
	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/httpserver"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/page"
	"storefront-extensions/internal/router"
	accountsvc "storefront-extensions/internal/service/account"
	cartsvc "storefront-extensions/internal/service/cart"
	productsvc "storefront-extensions/internal/service/product"
	wishlistsvc "storefront-extensions/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client := backend.NewClient(ctx, backend.Config{
		APIURL:       cfg.APIURL,
		AuthURL:      cfg.AuthURL,
		ProjectKey:   cfg.ProjectKey,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.Scopes,
	}, logger)

	localeResolver := locale.Resolver{
		DefaultLocale:   cfg.DefaultLocale,
		DefaultCurrency: cfg.DefaultCurrency,
	}

	productService := productsvc.New(client, logger)
	cartService := cartsvc.New(client, logger)
	wishlistService := wishlistsvc.New(client, locale.Parse(cfg.DefaultLocale).Language, logger)
	accountService := accountsvc.New(client, logger)

	registry := extension.NewRegistry(extension.Deps{
		Carts:     cartService,
		Products:  productService,
		Wishlists: wishlistService,
		Accounts:  accountService,
		Locale:    localeResolver,
		Logger:    logger,
	})

	resolver := page.NewResolver(logger,
		router.NewProductRouter(productService, localeResolver),
		router.NewSearchRouter(productService, localeResolver),
		router.NewCartRouter(registry),
		router.NewCategoryRouter(productService, localeResolver),
	)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Registry: registry,
		Resolver: resolver,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
