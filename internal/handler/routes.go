package handler

import "github.com/gin-gonic/gin"

// Routes wires the route table onto the engine. Registration and
// login stay outside the gate; everything else requires a bearer
// token. Tests reuse this table so route coverage matches production.
func (h *Handler) Routes(r *gin.Engine, gate gin.HandlerFunc) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	protected := r.Group("/", gate)

	protected.GET("/dashboard", h.Dashboard)

	protected.GET("/bus-tracking", h.ListBuses)
	protected.GET("/bus-tracking/schedule/:busId", h.BusSchedule)
	protected.POST("/bus-tracking/checkin", h.Checkin)

	protected.POST("/users/getUserIdByEmail", h.GetUserIDByEmail)
	protected.POST("/children", h.AddChild)

	protected.GET("/donations", h.ListDonations)
	protected.POST("/donations", h.CreateDonation)
	protected.GET("/donations/history/:userId", h.DonationHistory)

	protected.GET("/community/opportunities", h.ListOpportunities)
	protected.POST("/community/opportunity", h.CreateOpportunity)
	protected.POST("/community/sign-up-volunteer", h.SignUpVolunteer)
	protected.POST("/community/sendMessage", h.SendMessage)

	protected.GET("/resources/education", h.EducationResources)
	protected.GET("/resources/health", h.HealthResources)
	protected.POST("/resources/health-tracking", h.UpdateHealthTracking)
	protected.GET("/resources/health-tracking/:studentId", h.HealthTrackingByStudent)
}
