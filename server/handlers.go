package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	contractx "github.com/promotor-ai/promotor/agent/contract"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(c echo.Context) error {
	var req contractx.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	resp, err := s.svc.HandleMessage(c.Request().Context(), req)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// handleChatStream serves the same pipeline as server-sent events: one
// event per division boundary, the response text, then a final complete
// event.
func (s *Server) handleChatStream(c echo.Context) error {
	var req contractx.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	emit := func(ev contractx.StreamEvent) {
		payload, err := json.Marshal(ev)
		if err != nil {
			s.log.Error().Err(err).Msg("marshal stream event")
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		w.Flush()
	}

	if _, err := s.svc.HandleStream(c.Request().Context(), req, emit); err != nil {
		// Headers are already on the wire; report the failure in-band.
		emit(contractx.StreamEvent{
			Kind:    contractx.StreamComplete,
			Content: "An error occurred while processing your request: " + err.Error(),
		})
	}
	return nil
}

func (s *Server) writeError(c echo.Context, err error) error {
	s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

	status := http.StatusInternalServerError
	if errors.Is(err, contractx.ErrValidation) {
		status = http.StatusBadRequest
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
