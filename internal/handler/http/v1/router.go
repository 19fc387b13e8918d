package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Вход по одноразовому коду
	otp := protected.Group("/otp")
	{
		otp.POST("/send", h.sendOTP)
		otp.POST("/verify", h.verifyOTP)
	}

	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/export", h.exportIncidents)
		incidents.PUT("/:id", h.updateIncident)
		incidents.POST("/:id/notes", h.addNote)
		incidents.POST("/:id/assignments", h.assignUser)
		incidents.PUT("/:id/assignments/:assignmentId", h.respondAssignment)
		incidents.POST("/:id/police-info", h.addPoliceInfo)
		incidents.POST("/:id/arrests", h.addArrest)
	}

	// Рация
	ptt := protected.Group("/ptt")
	{
		ptt.POST("/broadcast", h.broadcastPTT)
		ptt.GET("/messages", h.pollPTT)
		ptt.GET("/audio/:id", h.pttAudio)
	}

	users := protected.Group("/users")
	{
		users.POST("", h.saveUser)
		users.GET("/on-duty", h.listOnDuty)
		users.GET("/on-patrol", h.listOnPatrol)
		users.GET("/online", h.listOnline)
		users.GET("/by-role/:role", h.listByRole)
		users.GET("/:phone", h.getUser)
		users.PUT("/:phone/duty-status", h.setDutyStatus)
		users.PUT("/:phone/patrol-status", h.setPatrolStatus)
		users.GET("/:phone/notifications", h.listNotifications)
	}

	protected.PUT("/notifications/:id/read", h.markNotificationRead)

	contacts := protected.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.DELETE("/:id", h.deleteContact)
	}

	suspects := protected.Group("/suspects")
	{
		suspects.GET("", h.listSuspects)
		suspects.POST("", h.createSuspect)
		suspects.PUT("/:id", h.updateSuspect)
		suspects.DELETE("/:id", h.deleteSuspect)
	}

	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		vehicles.POST("", h.createVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
	}
}
