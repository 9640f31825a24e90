// Package http 是薄 HTTP 层：CORS、请求校验、两个 POST 端点。
// 推荐与打分的全部语义都在 engine 包，这里只做出入参转换。
package http

import (
	"net/http"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/engine"
)

// Server 包装 gin 路由与推荐引擎。
type Server struct {
	engine       *engine.Engine
	defaultCount int
	logger       *zap.Logger
	router       *gin.Engine
}

// NewServer 构建 HTTP 服务。defaultCount 是请求未指定数量时的返回条数。
func NewServer(eng *engine.Engine, defaultCount int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultCount <= 0 {
		defaultCount = 20
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	router.Use(cors.New(corsConfig))

	s := &Server{
		engine:       eng,
		defaultCount: defaultCount,
		logger:       logger,
		router:       router,
	}

	router.POST("/get-recommendations", s.getRecommendations)
	router.POST("/record-interaction", s.recordInteraction)
	return s
}

// Run 启动服务并阻塞。
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 暴露底层路由，供测试挂载。
func (s *Server) Router() *gin.Engine {
	return s.router
}

type recommendationRequest struct {
	UserID             string   `json:"user_id" binding:"required"`
	Colors             []string `json:"colors"`
	Categories         []string `json:"categories"`
	NumRecommendations int      `json:"num_recommendations"`
	Filter             string   `json:"filter"`
}

type interactionRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Rating    any    `json:"rating" binding:"required"`
}

func (s *Server) getRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	count := req.NumRecommendations
	if count <= 0 {
		count = s.defaultCount
	}

	recs, err := s.engine.GetRecommendations(c.Request.Context(), engine.Request{
		UserID:     req.UserID,
		Count:      count,
		Colors:     req.Colors,
		Categories: req.Categories,
		Expr:       req.Filter,
	})
	if err != nil {
		if core.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		s.logger.Error("get recommendations failed",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if recs == nil {
		recs = []core.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *Server) recordInteraction(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rating := core.ParseRating(req.Rating)
	if err := s.engine.RecordInteraction(c.Request.Context(), req.UserID, req.ProductID, rating); err != nil {
		s.logger.Error("record interaction failed",
			zap.String("user_id", req.UserID),
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Interaction recorded successfully"})
}
