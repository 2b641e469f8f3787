package handlers

import (
	"net/http"

	"fleetops/internal/fleet/models"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) createCompany(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.service.CreateCompany(c.Request().Context(), &models.Company{Name: req.Name})
	if err != nil {
		s.logger.Error("Create company failed", zap.Error(err))
		return s.httpError(err)
	}
	return c.JSON(http.StatusCreated, toCompanyResponse(created))
}

func (s *Server) getCompany(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	company, err := s.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (s *Server) listCompanies(c echo.Context) error {
	sorted := c.QueryParam("sort") == "name"
	companies, err := s.service.ListCompanies(c.Request().Context(), sorted)
	if err != nil {
		return s.httpError(err)
	}
	response := make([]companyResponse, 0, len(companies))
	for i := range companies {
		response = append(response, toCompanyResponse(&companies[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) updateCompanyName(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updateCompanyNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.service.UpdateCompanyName(c.Request().Context(), id, req.Name)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toCompanyResponse(updated))
}

func (s *Server) deleteCompany(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteCompany(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.service.CreateClient(c.Request().Context(), &models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusCreated, toClientResponse(created))
}

func (s *Server) getClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	client, err := s.service.GetClient(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

func (s *Server) listClients(c echo.Context) error {
	clients, err := s.service.ListClients(c.Request().Context())
	if err != nil {
		return s.httpError(err)
	}
	response := make([]clientResponse, 0, len(clients))
	for i := range clients {
		response = append(response, toClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) deleteClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteClient(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createEmployee(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.service.CreateEmployee(c.Request().Context(), req.toModel())
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

func (s *Server) getEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := s.service.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (s *Server) listEmployees(c echo.Context) error {
	employees, err := s.service.ListEmployees(c.Request().Context())
	if err != nil {
		return s.httpError(err)
	}
	response := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		response = append(response, toEmployeeResponse(&employees[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) deleteEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteEmployee(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listDrivers supports ?sort=salary for the salary-ascending listing
// and ?qualification=... for the qualification filter.
func (s *Server) listDrivers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		drivers []models.Employee
		err     error
	)
	if q := c.QueryParam("qualification"); q != "" {
		drivers, err = s.service.ListDriversWithQualification(ctx, models.Qualification(q))
	} else {
		drivers, err = s.service.ListDrivers(ctx, c.QueryParam("sort") == "salary")
	}
	if err != nil {
		return s.httpError(err)
	}

	response := make([]employeeResponse, 0, len(drivers))
	for i := range drivers {
		response = append(response, toEmployeeResponse(&drivers[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) addQualification(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req addQualificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.service.AddQualification(c.Request().Context(), id, models.Qualification(req.Qualification)); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) removeQualification(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	q := models.Qualification(c.Param("qualification"))
	if err := s.service.RemoveQualification(c.Request().Context(), id, q); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.service.CreateVehicle(c.Request().Context(), req.toModel())
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusCreated, toVehicleResponse(created))
}

func (s *Server) getVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	vehicle, err := s.service.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}
	return c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

func (s *Server) listVehicles(c echo.Context) error {
	vehicles, err := s.service.ListVehicles(c.Request().Context())
	if err != nil {
		return s.httpError(err)
	}
	response := make([]vehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		response = append(response, toVehicleResponse(&vehicles[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) deleteVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteVehicle(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
