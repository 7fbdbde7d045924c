package usecase

import (
	"errors"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// logRepositoryError пишет "не найдено" как предупреждение, остальное как ошибку
func logRepositoryError(logger port.LoggerPort, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warn("Requested entity not found", port.Fields{"reason": err.Error()})
		return
	}
	logger.Error("Repository returned an error", err, nil)
}
