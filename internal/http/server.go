// Package http is the JSON API surface of the dashboard backend.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"revboard/internal/cache"
	"revboard/internal/core"
	applog "revboard/internal/log"
	"revboard/internal/middleware/ratelimit"
	"revboard/internal/middleware/security"
	"revboard/internal/middleware/trace"
	"revboard/internal/store"
)

// Exporter pushes a transaction list to an external spreadsheet.
type Exporter interface {
	Export(ctx context.Context, txs []core.Transaction) (string, error)
}

// Config holds server tunables.
type Config struct {
	Addr      string
	CacheTTL  time.Duration
	CacheSize int
}

type Server struct {
	http.Server

	lister  store.TransactionLister
	wallets store.WalletReader
	users   store.UserReader

	// nil when no export target is configured.
	exporter Exporter

	listCache  *cache.LRUCache[[]core.Transaction]
	statsCache *cache.LRUCache[core.Stats]
	chartCache *cache.LRUCache[[]core.ChartPoint]
	cacheMgr   *cache.Manager

	limiter      *ratelimit.Limiter
	tracer       *trace.Middleware
	headers      *security.HeadersMiddleware
	logger       *applog.Logger
	shutdownOnce sync.Once
}

// NewServer wires routes, caches and middleware, returning a
// ready-to-run server.
func NewServer(cfg Config, lister store.TransactionLister, wallets store.WalletReader, users store.UserReader, exporter Exporter) *Server {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    cfg.Addr,
			Handler: mux,
		},
		lister:   lister,
		wallets:  wallets,
		users:    users,
		exporter: exporter,

		listCache:  cache.NewLRUCache[[]core.Transaction](cfg.CacheSize, cfg.CacheTTL),
		statsCache: cache.NewLRUCache[core.Stats](cfg.CacheSize, cfg.CacheTTL),
		chartCache: cache.NewLRUCache[[]core.ChartPoint](cfg.CacheSize, cfg.CacheTTL),
		cacheMgr:   cache.NewManager(),

		limiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		tracer:  trace.NewMiddleware(clientIP),
		headers: security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
		logger:  applog.New(applog.Config{Component: applog.ComponentHTTP}),
	}

	s.cacheMgr.Register(s.listCache)
	s.cacheMgr.Register(s.statsCache)
	s.cacheMgr.Register(s.chartCache)
	s.cacheMgr.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)

	mux.HandleFunc("/api/user", s.withMiddleware(s.handleUser))
	mux.HandleFunc("/api/wallet", s.withMiddleware(s.handleWallet))
	mux.HandleFunc("/api/transactions", s.withMiddleware(s.handleTransactions))
	mux.HandleFunc("/api/transactions/labels", s.withMiddleware(handleLabels))
	mux.HandleFunc("/api/transactions/stats", s.withMiddleware(s.handleStats))
	mux.HandleFunc("/api/transactions/export", s.withMiddleware(s.handleExport))
	mux.HandleFunc("/api/revenue/chart", s.withMiddleware(s.handleChart))
	mux.HandleFunc("/api/overview", s.withMiddleware(s.handleOverview))

	return s
}

// withMiddleware chains security headers, tracing, request scoped
// logging and rate limiting around an API handler.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	limited := s.limiter.Middleware(clientIP, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		respondError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", CodeRateLimited)
	})
	requestID := applog.RequestIDMiddleware(func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	})
	logged := applog.Middleware(s.logger)(requestID(limited(next)))
	h := s.headers.Middleware(s.tracer.Middleware(logged))
	return h.ServeHTTP
}

// InvalidateCaches drops every cached response. The ingest pipeline
// calls this after new transactions land.
func (s *Server) InvalidateCaches() {
	s.cacheMgr.PurgeAll()
}

// Shutdown stops the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheMgr.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// Ready once the backend answers a list call.
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := s.lister.ListTransactions(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m := s.tracer.GetMetrics()
	respondData(w, http.StatusOK, map[string]any{
		"total_requests":           m.TotalRequests,
		"average_response_time_us": m.AverageResponseTime,
		"cache_entries": map[string]int{
			"transactions": s.listCache.Size(),
			"stats":        s.statsCache.Size(),
			"chart":        s.chartCache.Size(),
		},
		"rate_limited_clients": s.limiter.ActiveClients(),
	})
}
