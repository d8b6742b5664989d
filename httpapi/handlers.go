package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/rank"
)

type itineraryRequest struct {
	Origin      string         `json:"origin" binding:"required"`
	Destination string         `json:"destination" binding:"required"`
	Criterion   rank.Criterion `json:"criterion"`
}

type pathBody struct {
	Stops    []string `json:"stops"`
	Cost     float64  `json:"cost"`
	Duration int      `json:"duration"`
}

type itineraryResponse struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Criterion   rank.Criterion `json:"criterion"`
	Found       bool           `json:"found"`
	Paths       []pathBody     `json:"paths"`
	Message     string         `json:"message"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": s.net.Locations()})
}

func (s *Server) handleItinerary(c *gin.Context) {
	s.answer(c, s.planner.Plan)
}

func (s *Server) handleBest(c *gin.Context) {
	s.answer(c, s.planner.Best)
}

type planFunc func(context.Context, itinerary.Request) (itinerary.Result, error)

func (s *Server) answer(c *gin.Context, plan planFunc) {
	var body itineraryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.log.Warnf("bad itinerary request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := itinerary.Request{
		Origin:      body.Origin,
		Destination: body.Destination,
		Criterion:   body.Criterion,
	}
	res, err := plan(c.Request.Context(), req)
	if err != nil {
		s.log.WithFields(log.Fields{
			"origin":      req.Origin,
			"destination": req.Destination,
		}).Errorf("plan failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
}

func toResponse(res itinerary.Result) itineraryResponse {
	paths := make([]pathBody, 0, len(res.Paths))
	for _, p := range res.Paths {
		paths = append(paths, pathBody{Stops: p.Stops, Cost: p.Cost, Duration: p.Duration})
	}

	return itineraryResponse{
		Origin:      res.Request.Origin,
		Destination: res.Request.Destination,
		Criterion:   res.Request.Criterion,
		Found:       res.Found(),
		Paths:       paths,
		Message:     res.Message(),
	}
}
