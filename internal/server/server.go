// Package server exposes the invoice engine over HTTP for hosts that
// prefer an API to the CLI.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/entttom/quartabill/internal/fname"
	"github.com/entttom/quartabill/internal/generator"
	"github.com/entttom/quartabill/internal/tax"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	generator *generator.Generator
}

// NewServer creates a new API server
func NewServer(config *Config, gen *generator.Generator) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	if gen == nil {
		gen = generator.New()
	}

	s := &Server{
		config:    config,
		router:    router,
		generator: gen,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/render", s.handleRender)
		v1.POST("/invoices/breakdown", s.handleBreakdown)
		v1.POST("/invoices/filename", s.handleFileName)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleRender generates the full PDF for one invoice and returns it
// as a download.
func (s *Server) handleRender(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	customer, issuer, ic, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice context", Details: err.Error()})
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), customer, issuer, ic)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "generation failed", Details: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Header("X-Page-Count", strconv.Itoa(result.PageCount))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// handleBreakdown computes the monetary breakdown without rendering,
// for history-record consumers.
func (s *Server) handleBreakdown(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	customer, issuer, _, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice context", Details: err.Error()})
		return
	}

	b := tax.ComputeBreakdown(customer.LineItems, issuer.SmallBusiness)
	c.JSON(http.StatusOK, newBreakdownResponse(b))
}

// handleFileName previews the output name for one invoice.
func (s *Server) handleFileName(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	customer, _, ic, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice context", Details: err.Error()})
		return
	}

	name := fname.Build(customer.PDFFileNameFormat, ic.InvoiceNumber, customer.Name,
		ic.Quarter, ic.Year, ic.InvoiceDate)

	c.JSON(http.StatusOK, FileNameResponse{
		FileName: name,
		EMLName:  fname.EMLSibling(name),
	})
}
