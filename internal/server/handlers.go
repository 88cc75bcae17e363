package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/skinledger/skinledger/internal/buildinfo"
	"github.com/skinledger/skinledger/internal/config"
	"github.com/skinledger/skinledger/internal/dates"
	"github.com/skinledger/skinledger/internal/export"
	"github.com/skinledger/skinledger/internal/model"
	"github.com/skinledger/skinledger/internal/report"
	"github.com/skinledger/skinledger/internal/store"
)

// Store is the part of store.Store the handlers read from.
type Store interface {
	Load(ctx context.Context) error
	All() []model.Transaction
	Sold() []model.Transaction
	Len() int
	Loaded() (bool, time.Time)
}

// Handler serves report endpoints over a Store.
type Handler struct {
	store    Store
	defaults config.ReportConfig
	today    func() civil.Date
}

// NewHandler creates a Handler whose date ranges default per defaults.
func NewHandler(s Store, defaults config.ReportConfig) *Handler {
	return &Handler{store: s, defaults: defaults, today: dates.Today}
}

// GetStatus reports whether transactions are loaded.
func (h *Handler) GetStatus(c *gin.Context) {
	loaded, at := h.store.Loaded()
	body := gin.H{"loaded": loaded, "transactions": h.store.Len(), "version": buildinfo.String()}
	if loaded {
		body["loaded_at"] = at.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, body)
}

// PostLoad refetches the full history.
func (h *Handler) PostLoad(c *gin.Context) {
	if err := h.store.Load(c.Request.Context()); err != nil {
		var fe *store.FetchError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "page": fe.Page})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": h.store.Len()})
}

// GetDaily returns the rolling-averaged sold/purchased series.
func (h *Handler) GetDaily(c *gin.Context) {
	if !h.requireLoaded(c) {
		return
	}
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	excludeFees, ok := h.excludeFees(c)
	if !ok {
		return
	}
	window, err := report.ParseSmoothing(c.DefaultQuery("smoothing", h.defaults.Smoothing))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	daily := report.Daily(h.store.All(), start, end, excludeFees)
	series := report.Rolling(daily, window)
	c.JSON(http.StatusOK, gin.H{
		"from":   start.String(),
		"to":     end.String(),
		"window": window,
		"points": export.SeriesPoints(series),
	})
}

// GetCountries returns sold totals per buyer country, largest first.
func (h *Handler) GetCountries(c *gin.Context) {
	if !h.requireLoaded(c) {
		return
	}
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	excludeFees, ok := h.excludeFees(c)
	if !ok {
		return
	}

	rows := report.SortCountries(report.ByCountry(h.store.Sold(), start, end, excludeFees))
	out := make([]export.CountryRow, len(rows))
	for i, r := range rows {
		out[i] = export.CountryRow{Country: r.Country, Total: r.Total}
	}
	c.JSON(http.StatusOK, gin.H{"from": start.String(), "to": end.String(), "countries": out})
}

// GetSearch returns item matches for q, optionally filtered by type.
func (h *Handler) GetSearch(c *gin.Context) {
	if !h.requireLoaded(c) {
		return
	}
	filter, ok := report.ParseTypeFilter(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of all, purchase, sold, payouts"})
		return
	}

	matches := report.Search(h.store.All(), c.Query("q"), filter)
	out := make([]export.MatchRow, len(matches))
	for i, m := range matches {
		out[i] = export.NewMatchRow(m)
	}
	c.JSON(http.StatusOK, gin.H{"query": c.Query("q"), "matches": out})
}

func (h *Handler) requireLoaded(c *gin.Context) bool {
	if loaded, _ := h.store.Loaded(); !loaded {
		c.JSON(http.StatusConflict, gin.H{"error": store.ErrNotLoaded.Error()})
		return false
	}
	return true
}

func (h *Handler) window(c *gin.Context) (start, end civil.Date, ok bool) {
	last := 0
	if v := c.Query("last"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last must be a positive number of days"})
			return start, end, false
		}
		last = n
	}
	start, end, err := dates.Window(h.today(), c.Query("from"), c.Query("to"), last, h.defaults.RangeDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return start, end, false
	}
	return start, end, true
}

func (h *Handler) excludeFees(c *gin.Context) (bool, bool) {
	v, present := c.GetQuery("exclude_fees")
	if !present {
		return h.defaults.ExcludeFees, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exclude_fees must be a boolean"})
		return false, false
	}
	return b, true
}
