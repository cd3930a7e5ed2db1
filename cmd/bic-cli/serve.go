package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-formgen-bic/components/bic"
	"github.com/goliatone/go-formgen-bic/pkg/render"
)

const shutdownTimeout = 5 * time.Second

// serveCmd creates the serve command.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the validation endpoint and a preview page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Value: ":8080", Usage: "Listen address"},
			&cli.StringFlag{Name: "base", Aliases: []string{"b"}, Usage: "Base path for all routes"},
			&cli.BoolFlag{Name: "debug", Usage: "Log at debug level"},
		},
		Action: func(c *cli.Context) error {
			component, err := newComponent(c)
			if err != nil {
				return outputError(err)
			}

			level := slog.LevelInfo
			if c.Bool("debug") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

			router, pattern, err := newRouter(component, c.String("base"), logger)
			if err != nil {
				return outputError(err)
			}

			srv := &http.Server{
				Addr:              c.String("addr"),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("shutdown failed", "error", err)
				}
			}()

			logger.Info("serving", "addr", srv.Addr, "validate", pattern)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return outputError(err)
			}
			logger.Info("stopped")
			return nil
		},
	}
}

// newRouter mounts the validation endpoint, a preview page at <base>/preview
// and /healthz.
func newRouter(component *bic.Component, basePath string, logger *slog.Logger) (chi.Router, string, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := component.Options()
	renderer, err := bic.NewRenderer(opts.Translator)
	if err != nil {
		return nil, "", err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.Warn("write failed", "error", err)
		}
	})

	pattern, err := component.RegisterRoutes(r, basePath)
	if err != nil {
		return nil, "", err
	}

	preview := bic.MountPath(basePath, bic.WithRoutePath("/preview"))
	r.Get(preview, func(w http.ResponseWriter, req *http.Request) {
		field := component.NewField()
		query := req.URL.Query()
		if values, ok := query[opts.ValueParam]; ok {
			if len(values) == 1 {
				field.Normalize(values[0])
			} else {
				field.Normalize(values)
			}
			field.Validate()
		}

		locale := query.Get(opts.LocaleParam)
		if locale == "" {
			locale = opts.Locale
		}
		markup, err := field.Render(renderer, render.RenderOptions{Locale: locale})
		if err != nil {
			logger.Error("render failed", "error", err, "request_id", middleware.GetReqID(req.Context()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, markup)
	})

	return r, pattern, nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
