package scan

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/internal/metrics"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	operationSaveScan    = "save_scan"
	operationListFarmers = "list_farmers"
)

type (
	ScanService interface {
		SaveScan(ctx context.Context, req domain.SaveScanRequest) (domain.SaveScanResponse, error)
		ListFarmers(ctx context.Context) ([]domain.Document, error)
	}

	scanService struct {
		scanRepository ScanRepository
		logger         *zap.Logger
		metrics        *metrics.Metrics
	}
)

func NewScanService(scanRepository ScanRepository, logger *zap.Logger, m *metrics.Metrics) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		logger:         logger,
		metrics:        m,
	}
}

func (s *scanService) SaveScan(ctx context.Context, req domain.SaveScanRequest) (domain.SaveScanResponse, error) {
	id, err := s.scanRepository.AppendToSubcollection(ctx, domain.CollectionFarmers, req.FarmerID, domain.SubcollectionScan, req.ScanData)
	if err != nil {
		s.observe(operationSaveScan, metrics.StatusError)
		s.logger.Error("failed to save scan", zap.String("farmer_id", req.FarmerID), zap.Error(err))
		return domain.SaveScanResponse{}, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	s.observe(operationSaveScan, metrics.StatusOK)
	return domain.SaveScanResponse{ID: id}, nil
}

func (s *scanService) ListFarmers(ctx context.Context) ([]domain.Document, error) {
	farms, err := s.scanRepository.ListTopLevel(ctx, domain.CollectionFarmers)
	if err != nil {
		s.observe(operationListFarmers, metrics.StatusError)
		s.logger.Error("failed to list farmers", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	s.observe(operationListFarmers, metrics.StatusOK)
	if farms == nil {
		farms = []domain.Document{}
	}
	return farms, nil
}

func (s *scanService) observe(operation, status string) {
	if s.metrics != nil {
		s.metrics.StoreOperations.WithLabelValues(operation, status).Inc()
	}
}
