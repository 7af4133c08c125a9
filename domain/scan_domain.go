package domain

var (
	MessageScanFieldsRequired = "farmerId and scanData are required"
	MessageFailedSaveScan     = "Failed to save scan report."
	MessageFailedGetFarms     = "Failed to fetch farm data."
)

type (
	SaveScanRequest struct {
		FarmerID string   `json:"farmerId" validate:"required"`
		ScanData Document `json:"scanData" validate:"required"`
	}

	SaveScanResponse struct {
		ID string `json:"id"`
	}
)
