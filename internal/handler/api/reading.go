package api

import (
	"net/http"

	reqdto "meter-reading-api/internal/handler/dto/request"
	resdto "meter-reading-api/internal/handler/dto/response"
	"meter-reading-api/internal/handler/httperr"
	"meter-reading-api/internal/handler/middleware"
	"meter-reading-api/internal/handler/validation"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgProcessingFailed = "Failed to process the image"

type ReadingHandler struct {
	cmds commands.ReadingCommands
}

func NewReadingHandler(cmds commands.ReadingCommands) *ReadingHandler {
	return &ReadingHandler{cmds: cmds}
}

// @Summary Upload meter reading
// @Description Validate a meter image submission, read its value through the recognition service and return a reference to it
// @Tags readings
// @Accept json
// @Produce json
// @Param request body reqdto.UploadReadingRequest true "Upload reading request"
// @Success 200 {object} resdto.UploadReadingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /upload [post]
func (h *ReadingHandler) Upload(c *gin.Context) {
	var req reqdto.UploadReadingRequest
	if err := validation.BindJSON(c, &req); err != nil {
		httperr.AbortWithInvalidData(c, err, validation.Describe(err))
		return
	}
	middleware.SetCustomerCode(c, req.CustomerCode)

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgProcessingFailed)
		return
	}

	result, err := h.cmds.Upload(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidSubmission):
			httperr.AbortWithInvalidData(c, err, validation.Describe(err))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgProcessingFailed)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUploadReadingResult(result))
}
