package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roa-expert-system/pkg/response"
)

// Session sentinel handling, kept from the original CLI behavior.
const sessionEndedText = "Session ended. Please restart for new queries."

func isQuitSentinel(query string) bool {
	q := strings.ToLower(query)
	return q == "quit" || q == "exit"
}

func timeTaken(start time.Time) string {
	return fmt.Sprintf("%.2f seconds", time.Since(start).Seconds())
}

// ask handles expert-system queries
// @Summary Ask the expert system
// @Description Classifies the query, screens it for prompt injection and routes it to the weather, news, joke or fallback handler
// @Tags Expert System
// @Accept json
// @Produce json
// @Param request body AskRequest true "User query"
// @Success 200 {object} AskResponse "Answer with timing and optional articles"
// @Failure 400 {object} ErrorResponse "Missing or empty query"
// @Failure 500 {object} ErrorResponse "Pipeline failure"
// @Router /ask [post]
func (srv *HTTPServer) ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No query provided"})
		return
	}

	if isQuitSentinel(req.Query) {
		c.JSON(http.StatusOK, AskResponse{Response: sessionEndedText})
		return
	}

	start := time.Now()
	out, err := srv.pipeline.Run(ctx, req.Query)
	if err != nil {
		srv.l.Errorf(ctx, "ask: pipeline failure: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Response:  out.Response,
		TimeTaken: timeTaken(start),
		Articles:  out.Headlines,
	})
}

// directWeather fetches weather for the default city
// @Summary Default city weather
// @Description Fetches current weather for the configured default city, bypassing classification
// @Tags Expert System
// @Produce json
// @Success 200 {object} AskResponse
// @Router /weather_bengaluru [get]
func (srv *HTTPServer) directWeather(c *gin.Context) {
	ctx := c.Request.Context()
	srv.l.Infof(ctx, "direct route: weather for %s", srv.defaultCity)

	start := time.Now()
	text := srv.weatherFetcher.Fetch(ctx, srv.defaultCity)

	c.JSON(http.StatusOK, AskResponse{
		Response:  text,
		TimeTaken: timeTaken(start),
	})
}

// directNews fetches top headlines
// @Summary Top headlines
// @Description Fetches top headlines for the configured topic, bypassing classification
// @Tags Expert System
// @Produce json
// @Success 200 {object} AskResponse
// @Router /news_headlines [get]
func (srv *HTTPServer) directNews(c *gin.Context) {
	ctx := c.Request.Context()
	srv.l.Infof(ctx, "direct route: headlines for %q", srv.newsTopic)

	start := time.Now()
	text, _ := srv.newsFetcher.Fetch(ctx, srv.newsTopic)

	c.JSON(http.StatusOK, AskResponse{
		Response:  text,
		TimeTaken: timeTaken(start),
	})
}

// recentQueries lists recent pipeline runs
// @Summary Recent pipeline runs
// @Description Returns the retained run records, newest first
// @Tags Operations
// @Produce json
// @Success 200 {object} response.Resp
// @Router /queries/recent [get]
func (srv *HTTPServer) recentQueries(c *gin.Context) {
	response.OK(c, srv.pipeline.Recent())
}
