package request

import (
	"meter-reading-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Field order is the validation order: only the first violation is reported.
type UploadReadingRequest struct {
	Image           string `json:"image" binding:"required,base64"`
	CustomerCode    string `json:"costumer_code" binding:"required"`
	MeasureDateTime string `json:"measure_datetime" binding:"required,anydatetime"`
	MeasureType     string `json:"measure_type" binding:"required,oneof=WATER GAS"`
}

func (r *UploadReadingRequest) ToCommand() (commands.UploadReadingCommand, error) {
	var cmd commands.UploadReadingCommand
	if err := copier.Copy(&cmd, r); err != nil {
		return commands.UploadReadingCommand{}, err
	}
	return cmd, nil
}
