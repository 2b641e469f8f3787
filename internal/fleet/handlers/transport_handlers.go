package handlers

import (
	"net/http"

	"fleetops/internal/fleet/models"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) createTransport(c echo.Context) error {
	var req createTransportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	transport, err := req.toModel()
	if err != nil {
		return s.httpError(err)
	}

	created, err := s.service.CreateTransport(c.Request().Context(), transport)
	if err != nil {
		s.logger.Error("Create transport failed", zap.Error(err))
		return s.httpError(err)
	}
	return c.JSON(http.StatusCreated, toTransportResponse(created))
}

func (s *Server) getTransport(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	transport, err := s.service.GetTransport(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toTransportResponse(transport))
}

func (s *Server) listTransports(c echo.Context) error {
	sorted := c.QueryParam("sort") == "destination"
	transports, err := s.service.ListTransports(c.Request().Context(), sorted)
	if err != nil {
		return s.httpError(err)
	}
	response := make([]transportResponse, 0, len(transports))
	for i := range transports {
		response = append(response, toTransportResponse(&transports[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) setPaymentStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req setPaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.service.SetPaymentStatus(c.Request().Context(), id, models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toTransportResponse(updated))
}

func (s *Server) deleteTransport(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteTransport(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) exportTransports(c echo.Context) error {
	var req exportTransportsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	if err := s.exporter.ExportTransports(c.Request().Context(), req.Path); err != nil {
		s.logger.Error("Export failed", zap.Error(err))
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
