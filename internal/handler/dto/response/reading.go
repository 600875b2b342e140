package response

import (
	"meter-reading-api/internal/usecase/commands"
)

type UploadReadingResponse struct {
	ImageURL     string  `json:"image_url"`
	MeasureValue float64 `json:"measure_value"`
	MeasureUUID  string  `json:"measure_uuid"`
}

func FromUploadReadingResult(r *commands.UploadReadingResult) *UploadReadingResponse {
	return &UploadReadingResponse{
		ImageURL:     r.ImageURL,
		MeasureValue: r.MeasureValue,
		MeasureUUID:  r.MeasureUUID.String(),
	}
}
