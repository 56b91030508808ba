package server

import (
	"fitlink/internal/health"
	"fitlink/internal/middleware"
	"fitlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CalculateMetrics handles POST /api/health/calculate-metrics
// @Summary Calculate and store health metrics
// @Description Compute BMI, ideal weight, BMR and TDEE from the submitted profile and persist them
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{height=number,weight=number,age=int,gender=string,activityLevel=string} true "Health profile"
// @Success 200 {object} service.MetricsResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/health/calculate-metrics [post]
func (s *Server) CalculateMetrics(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Height        float64              `json:"height"`
		Weight        float64              `json:"weight"`
		Age           int                  `json:"age"`
		Gender        models.Gender        `json:"gender"`
		ActivityLevel models.ActivityLevel `json:"activityLevel"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.healthService.CalculateAndStore(c.Context(), userID, health.Input{
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(result)
}

// GetHealthMetrics handles GET /api/health/metrics
// @Summary Get stored health metrics
// @Description Returns the caller's stored profile and computed metrics
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.StoredMetrics
// @Failure 404 {object} models.ErrorResponse
// @Router /api/health/metrics [get]
func (s *Server) GetHealthMetrics(c *fiber.Ctx) error {
	userID := currentUserID(c)

	metrics, err := s.healthService.GetMetrics(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(metrics)
}

// ExcelReport handles GET /api/health/excel-report
// @Summary Download the Excel health report
// @Description Streams an xlsx workbook with the caller's metrics, advice and calorie targets
// @Tags health
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /api/health/excel-report [get]
func (s *Server) ExcelReport(c *fiber.Ctx) error {
	userID := currentUserID(c)

	report, err := s.healthService.BuildReport(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.ReportGenerations.Inc()
	c.Set(fiber.HeaderContentType, health.ReportContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+health.ReportFilename+`"`)
	return c.Send(report)
}
