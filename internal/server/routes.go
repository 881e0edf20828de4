package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"shootinggallery/internal/assets"
	"shootinggallery/internal/config"
	"shootinggallery/internal/metrics"
	"shootinggallery/internal/wshub"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/assets", s.handleAssets)
	mux.HandleFunc("/ws", s.handlePlay)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.Metrics.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.Cfg.StaticDir))))
	return mux
}

// Run serves until ctx is done, then says goodbye to every session and shuts
// down within shutdownTimeout.
func Run(ctx context.Context) error {
	appCfg := config.Load()

	catalog := assets.Load(appCfg.AssetsDir)
	log.Printf("[Assets] %d target images under %s\n", catalog.Count(), filepath.Clean(appCfg.AssetsDir))

	srv := New(appCfg, catalog, metrics.New())

	sessions, endSessions := context.WithCancel(context.Background())
	defer endSessions()

	httpSrv := &http.Server{
		Addr:              "0.0.0.0:" + appCfg.Port,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return sessions },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("[Server] Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.Hub.Shutdown(wshub.ServerMessage{Type: wshub.MsgBye})
		err := httpSrv.Shutdown(shutdownCtx)
		if werr := srv.wait(shutdownCtx); werr != nil {
			log.Printf("[Server] %d sessions still open: %v\n", srv.Hub.Count(), werr)
		}
		endSessions()
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
