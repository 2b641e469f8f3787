package handlers

import (
	"net/http"
	"time"

	"fleetops/internal/fleet/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) reportSummary(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := s.service.TotalTransportsCount(ctx)
	if err != nil {
		return s.httpError(err)
	}
	revenue, err := s.service.TotalTransportsRevenue(ctx)
	if err != nil {
		return s.httpError(err)
	}
	value, err := s.service.TotalTransportsValue(ctx)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, summaryResponse{
		TotalTransports: count,
		TotalRevenue:    revenue,
		TotalValue:      value,
	})
}

func (s *Server) reportRevenueForPeriod(c echo.Context) error {
	from, err := time.Parse(dateLayout, c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be formatted as "+dateLayout)
	}
	to, err := time.Parse(dateLayout, c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must be formatted as "+dateLayout)
	}

	revenue, err := s.service.RevenueForPeriod(c.Request().Context(), from, to)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"from":    from.Format(dateLayout),
		"to":      to.Format(dateLayout),
		"revenue": revenue,
	})
}

// reportDriverTransportCounts supports ?paid=true to count PAID
// transports only.
func (s *Server) reportDriverTransportCounts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		rows []models.DriverTransportCount
		err  error
	)
	if c.QueryParam("paid") == "true" {
		rows, err = s.service.DriversWithPaidTransportsCount(ctx)
	} else {
		rows, err = s.service.DriversWithTransportsCount(ctx)
	}
	if err != nil {
		return s.httpError(err)
	}

	response := make([]driverCountResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, driverCountResponse{
			DriverID:       row.DriverID,
			Name:           row.FirstName + " " + row.LastName,
			TransportCount: row.TransportCount,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) reportDriverRevenue(c echo.Context) error {
	rows, err := s.service.RevenueByDriver(c.Request().Context())
	if err != nil {
		return s.httpError(err)
	}

	response := make([]driverRevenueResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, driverRevenueResponse{
			DriverID: row.DriverID,
			Name:     row.FirstName + " " + row.LastName,
			Revenue:  row.Revenue,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) reportCompanyRevenue(c echo.Context) error {
	rows, err := s.service.CompaniesSortedByRevenueDesc(c.Request().Context())
	if err != nil {
		return s.httpError(err)
	}

	response := make([]companyRevenueResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, companyRevenueResponse{
			CompanyID: row.CompanyID,
			Name:      row.Name,
			Revenue:   row.Revenue,
		})
	}
	return c.JSON(http.StatusOK, response)
}
