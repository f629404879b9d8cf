package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"dartview/internal/cache"
	"dartview/internal/config"
	"dartview/internal/directory"
	"dartview/internal/models"
	"dartview/internal/pkg/dart"
	"dartview/internal/pkg/table"
	"dartview/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// apiKeyHeader lets a caller supply a personal credential per request;
// the configured key is the fallback. There is no process-global
// mutable key.
const apiKeyHeader = "X-Dart-Api-Key"

type ReportController struct {
	DB        *gorm.DB
	Config    *config.Config
	Directory *directory.Service
	Cache     *cache.Store

	// NewClient is swapped in tests so the mock transport intercepts.
	NewClient func(apiKey string) *dart.DartClient
}

func NewReportController(db *gorm.DB, cfg *config.Config) *ReportController {
	rc := &ReportController{
		DB:     db,
		Config: cfg,
		Cache:  cache.New(cache.DefaultTTL),
	}
	rc.NewClient = dart.New
	rc.Directory = directory.NewService(func(apiKey string) directory.Loader {
		return rc.NewClient(apiKey)
	})
	return rc
}

func (rc *ReportController) apiKey(c *gin.Context) string {
	if key := c.GetHeader(apiKeyHeader); key != "" {
		return key
	}
	return rc.Config.DartAPIKey
}

// SearchCompanies resolves free text against the in-memory company
// directory: exact name matches first, then substring matches.
func (rc *ReportController) SearchCompanies(c *gin.Context) {
	query := c.Query("query")

	key := rc.apiKey(c)
	if key == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No DART API key configured"})
		return
	}

	dir, err := rc.Directory.Directory(key)
	if err != nil {
		// without the directory, company search is unusable
		log.Printf("failed to load company directory: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load company directory"})
		return
	}

	candidates := dir.Resolve(query)
	if candidates == nil {
		candidates = []directory.Company{}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// GetCompanies lists recent rows of the Postgres directory mirror kept
// fresh by the worker.
func (rc *ReportController) GetCompanies(c *gin.Context) {
	ctx := c.Request.Context()
	limit := getLimitWithDefault(c, 100)

	companies, err := gorm.G[models.Company](rc.DB).Order("updated_at DESC").Limit(limit).Find(ctx)
	if err != nil {
		log.Printf("failed to get companies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
	})
}

// RunReport executes one report kind for a resolved corp code and
// returns the normalized table, as JSON or CSV.
func (rc *ReportController) RunReport(c *gin.Context) {
	kind, ok := report.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown report kind %q", c.Param("kind"))})
		return
	}

	corpCode := c.Query("corp_code")
	if corpCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corp_code is required"})
		return
	}

	key := rc.apiKey(c)
	if key == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No DART API key configured"})
		return
	}

	yearTo := time.Now().Year()
	yearFrom := yearTo - 4
	if v, err := strconv.Atoi(c.Query("year_from")); err == nil {
		yearFrom = v
	}
	if v, err := strconv.Atoi(c.Query("year_to")); err == nil {
		yearTo = v
	}
	if yearFrom > yearTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year_from is after year_to"})
		return
	}

	q := report.Query{
		Kind:       kind,
		CorpCode:   corpCode,
		Credential: key,
		YearFrom:   yearFrom,
		YearTo:     yearTo,
		Descending: c.Query("order") == "desc",
		Pivot:      c.Query("pivot") == "true",
	}

	t, err := rc.Cache.Do(q, func() (*table.Table, error) {
		return report.Run(rc.NewClient(key), q)
	})
	if err != nil {
		var perr *dart.ProviderError
		if errors.As(err, &perr) {
			// provider rejection is "no data", not a hard failure
			log.Printf("report %s for %s rejected: %v", kind, corpCode, perr)
			t = table.New()
		} else if errors.Is(err, dart.ErrMissingAPIKey) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No DART API key configured"})
			return
		} else {
			log.Printf("report %s for %s failed: %v", kind, corpCode, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch report data"})
			return
		}
	}

	if c.Query("format") == "csv" {
		csvBytes, err := t.CSV()
		if err != nil {
			log.Printf("failed to encode csv: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		filename := fmt.Sprintf("%s_%s.csv", c.Param("kind"), corpCode)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":      c.Param("kind"),
		"corp_code": corpCode,
		"columns":   t.Columns,
		"rows":      t.Rows,
		"row_count": t.Len(),
	})
}

func getLimitWithDefault(c *gin.Context, defaultValue int) int {
	var err error
	limit := defaultValue
	if c.Query("limit") != "" {
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil {
			log.Printf("failed to parse limit: %v, using default value: %d", err, defaultValue)
			return defaultValue
		}
	}
	return limit
}
