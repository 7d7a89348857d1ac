package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"binforest/internal/models"
)

// Server answers prediction requests against a trained tree and forest.
// Both are read-only once the server is built.
type Server struct {
	Tree     *models.Node
	Forest   []*models.Node
	Features int
	Names    []string
	APIKey   string
	Logger   *zap.Logger
}

type predictReq struct {
	Features []int `json:"features" binding:"required"`
}

type predictResp struct {
	Label     int    `json:"label"`
	TreeLabel int    `json:"tree_label"`
	Votes     [2]int `json:"votes"`
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/")
	api.Use(s.apiKeyMiddleware)
	api.POST("/predict", s.handlePredict)
	api.POST("/batch", s.handleBatch)
	api.GET("/model", s.handleModel)
	api.GET("/model/tree/:index", s.handleTree)
	return r
}

func (s *Server) requestLogger(c *gin.Context) {
	c.Next()
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", c.Writer.Status()),
	)
}

func (s *Server) apiKeyMiddleware(c *gin.Context) {
	if s.APIKey == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-Key") != s.APIKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) predict(x []int) (predictResp, error) {
	var out predictResp
	if len(x) != s.Features {
		return out, fmt.Errorf("esperado %d features, recebido %d", s.Features, len(x))
	}
	for _, v := range x {
		if v != 0 && v != 1 {
			return out, errors.New("features devem ser 0 ou 1")
		}
	}
	tl, err := s.Tree.Predict(x)
	if err != nil {
		return out, err
	}
	votes, err := models.Votes(s.Forest, x)
	if err != nil {
		return out, err
	}
	return predictResp{Label: votes.Label(), TreeLabel: tl, Votes: votes}, nil
}

func (s *Server) handlePredict(c *gin.Context) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	resp, err := s.predict(req.Features)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "expected_features": s.Features})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleBatch(c *gin.Context) {
	var items []predictReq
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out := make([]predictResp, len(items))
	for i, it := range items {
		resp, err := s.predict(it.Features)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "index": i})
			return
		}
		out[i] = resp
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleModel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"features":    s.Features,
		"names":       s.Names,
		"trees":       len(s.Forest),
		"tree_depth":  s.Tree.Depth(),
		"tree_leaves": s.Tree.Leaves(),
		"preorder":    models.Preorder(s.Tree),
	})
}

// handleTree dumps forest member :index, or the standalone tree for "single".
func (s *Server) handleTree(c *gin.Context) {
	tree := s.Tree
	if idx := c.Param("index"); idx != "single" {
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(s.Forest) {
			c.JSON(http.StatusNotFound, gin.H{"error": "árvore não encontrada"})
			return
		}
		tree = s.Forest[i]
	}
	c.JSON(http.StatusOK, gin.H{
		"preorder": models.Preorder(tree),
		"depth":    tree.Depth(),
		"root":     tree,
	})
}
