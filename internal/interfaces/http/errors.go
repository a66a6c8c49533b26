package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/metrics"
)

// respondError maps domain failures to HTTP: NotFound -> 404, any validation
// kind -> 400, everything else -> 500 with a generic envelope.
func respondError(c *fiber.Ctx, err error) error {
	if verr := domain.AsValidation(err); verr != nil {
		metrics.ValidationFailures.WithLabelValues(string(verr.Kind)).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    string(verr.Kind),
			Message: verr.Message,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "internal server error",
	})
}

// outcomeOf classifies a use case result for the operation counters.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case domain.AsValidation(err) != nil, errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
