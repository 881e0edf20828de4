package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"shootinggallery/internal/assets"
	"shootinggallery/internal/config"
	"shootinggallery/internal/metrics"
	"shootinggallery/internal/wshub"
	"sync"
)

type Server struct {
	Cfg     config.Config
	Hub     *wshub.Hub
	Assets  *assets.Catalog
	Metrics *metrics.Collector

	sessions sync.WaitGroup
}

func New(cfg config.Config, catalog *assets.Catalog, m *metrics.Collector) *Server {
	return &Server{
		Cfg:     cfg,
		Hub:     wshub.NewHub(),
		Assets:  catalog,
		Metrics: m,
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.Cfg.StaticDir, "index.html"))
}

// handleAssets lists the target images per tier. The browser client loads
// them from /static/ before enabling the start button.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Assets] Request Received")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Assets.Manifest()); err != nil {
		log.Println(err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.Hub.Count())
}

// wait blocks until every play session has returned or ctx is done.
func (s *Server) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
