package http

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"revboard/internal/core"
	applog "revboard/internal/log"
)

const backendTimeout = 7 * time.Second

// overviewResponse bundles everything the dashboard needs in one
// round trip.
type overviewResponse struct {
	User         core.User          `json:"user"`
	Wallet       core.Wallet        `json:"wallet"`
	Transactions []core.Transaction `json:"transactions"`
	Stats        *core.Stats        `json:"stats"`
	Chart        []core.ChartPoint  `json:"chart"`
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	u, err := s.users.User(ctx)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "User read error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "User data is unavailable.", CodeDataUnavailable)
		return
	}
	respondData(w, http.StatusOK, u)
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	wallet, err := s.wallets.Wallet(ctx)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Wallet read error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Wallet data is unavailable.", CodeDataUnavailable)
		return
	}
	respondData(w, http.StatusOK, wallet)
}

// handleLabels lists the filter labels the transactions endpoints
// understand, in stable order. The frontend builds its checkbox list
// from this.
func handleLabels(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respondData(w, http.StatusOK, core.FilterLabels())
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeBadRequest)
		return
	}

	txs, err := s.loadFiltered(r.Context(), f)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction list error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Transaction data is unavailable.", CodeDataUnavailable)
		return
	}
	respondData(w, http.StatusOK, txs)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeBadRequest)
		return
	}

	key := filterKey(f)
	if stats, found := s.statsCache.Get(key); found {
		respondData(w, http.StatusOK, &stats)
		return
	}

	txs, err := s.loadFiltered(r.Context(), f)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Stats source error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Transaction data is unavailable.", CodeDataUnavailable)
		return
	}

	stats := core.ComputeStats(txs)
	s.statsCache.Set(key, *stats)
	respondData(w, http.StatusOK, stats)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeBadRequest)
		return
	}

	key := filterKey(f)
	if series, found := s.chartCache.Get(key); found {
		respondData(w, http.StatusOK, series)
		return
	}

	txs, err := s.loadFiltered(r.Context(), f)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Chart source error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Transaction data is unavailable.", CodeDataUnavailable)
		return
	}

	series := core.BuildDailySeries(txs)
	s.chartCache.Set(key, series)
	respondData(w, http.StatusOK, series)
}

// handleOverview fans out to every backend concurrently and assembles
// the full dashboard payload.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	var resp overviewResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.users.User(gctx)
		if err == nil {
			resp.User = u
		}
		return err
	})
	g.Go(func() error {
		wallet, err := s.wallets.Wallet(gctx)
		if err == nil {
			resp.Wallet = wallet
		}
		return err
	})
	g.Go(func() error {
		txs, err := s.loadFiltered(gctx, f)
		if err == nil {
			resp.Transactions = txs
		}
		return err
	})

	if err := g.Wait(); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Overview assembly error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Dashboard data is unavailable.", CodeDataUnavailable)
		return
	}

	resp.Stats = core.ComputeStats(resp.Transactions)
	resp.Chart = core.BuildDailySeries(resp.Transactions)
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondError(w, http.StatusMethodNotAllowed, "Use POST.", CodeBadRequest)
		return
	}
	if s.exporter == nil {
		respondError(w, http.StatusServiceUnavailable, "No export target is configured.", CodeExportFailed)
		return
	}

	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeBadRequest)
		return
	}

	txs, err := s.loadFiltered(r.Context(), f)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Export source error", applog.FieldError, err)
		respondError(w, http.StatusServiceUnavailable, "Transaction data is unavailable.", CodeDataUnavailable)
		return
	}

	ref, err := s.exporter.Export(r.Context(), txs)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Export error", applog.FieldError, err, applog.FieldRowCount, len(txs))
		respondError(w, http.StatusBadGateway, "Export failed.", CodeExportFailed)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "Transactions exported", applog.FieldRowCount, len(txs), applog.FieldExportRef, ref)
	respondData(w, http.StatusOK, map[string]any{
		"exported": len(txs),
		"ref":      ref,
	})
}

// loadFiltered fetches the transaction list and applies the filter,
// caching per filter key.
func (s *Server) loadFiltered(ctx context.Context, f core.FilterState) ([]core.Transaction, error) {
	key := filterKey(f)
	if txs, found := s.listCache.Get(key); found {
		out := make([]core.Transaction, len(txs))
		copy(out, txs)
		return out, nil
	}

	cctx, cancel := context.WithTimeout(ctx, backendTimeout)
	defer cancel()

	all, err := s.lister.ListTransactions(cctx)
	if err != nil {
		return nil, err
	}

	filtered := f.Apply(all)
	s.listCache.Set(key, filtered)
	return filtered, nil
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "Use GET.", CodeBadRequest)
		return false
	}
	return true
}
