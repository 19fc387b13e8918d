package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Send a one-time login code
// @Description Issues a code for the phone and tries to deliver it by SMS. A failed delivery is reported with delivered=false.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "Phone number"
// @Success 200 {object} SendOTPResponse
// @Failure 400 {object} ErrorResponse "Phone number is required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /otp/send [post]
func (h *Handler) sendOTP(c *gin.Context) {
	log := h.logger.WithField("method", "sendOTP")

	var input SendOTPRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	dispatch, err := h.otpService.SendOTP(c.Request.Context(), input.PhoneNumber, input.CountryCode)
	if err != nil {
		respondError(c, log, err)
		return
	}

	resp := SendOTPResponse{
		Success:    true,
		Message:    "OTP sent successfully",
		Delivered:  dispatch.Delivered,
		MessageSID: dispatch.MessageSID,
		DevOTP:     dispatch.DevCode,
	}
	if !dispatch.Delivered {
		resp.Message = "OTP issued but SMS delivery failed"
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Verify a one-time login code
// @Description Consumes the code and reports whether the phone already belongs to a registered member.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Phone number and code"
// @Success 200 {object} VerifyOTPResponse
// @Failure 400 {object} ErrorResponse "Code is invalid or expired"
// @Failure 404 {object} ErrorResponse "No code issued for this phone"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /otp/verify [post]
func (h *Handler) verifyOTP(c *gin.Context) {
	log := h.logger.WithField("method", "verifyOTP")

	var input VerifyOTPRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.otpService.VerifyOTP(c.Request.Context(), input.PhoneNumber, input.CountryCode, input.OTP)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, VerifyOTPResponse{
		Success:         true,
		Message:         "OTP verified successfully",
		User:            result.User,
		IsReturningUser: result.ReturningUser,
	})
}
