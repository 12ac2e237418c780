package controllers

import (
	"net/http"

	"cinevault/internal/models/request_models"
	"cinevault/internal/services"
	"cinevault/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	entitlementService services.EntitlementServiceInterface
	planService        services.PlanServiceInterface
}

func NewSubscriptionController(entitlementService services.EntitlementServiceInterface, planService services.PlanServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		entitlementService: entitlementService,
		planService:        planService,
	}
}

// CheckAccess godoc
// @Summary Check gated-content access
// @Description Returns the access decision used to block or allow playback
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/check [get]
func (s *SubscriptionController) CheckAccess(c *gin.Context) {
	result, err := s.entitlementService.CheckAccess(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Access checked")
}

// GetSubscription godoc
// @Summary Get the current subscription snapshot
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [get]
func (s *SubscriptionController) GetSubscription(c *gin.Context) {
	snapshot, err := s.entitlementService.GetSnapshot(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "Subscription fetched")
}

// ManageSubscription godoc
// @Summary Subscribe, renew or cancel
// @Description action=subscribe|renew requires plan=monthly|quarterly|yearly
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body request_models.SubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [post]
func (s *SubscriptionController) ManageSubscription(c *gin.Context) {
	var req request_models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	snapshot, err := s.entitlementService.ManageSubscription(c.Request.Context(), c.GetString("user_id"), req.Plan, req.Action)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Subscription updated"
	switch req.Action {
	case services.ActionSubscribe, services.ActionRenew:
		message = "Subscription activated successfully"
	case services.ActionCancel:
		message = "Subscription cancelled. You can still use premium features until the end date"
	}

	utils.RespondSuccess(c, snapshot, message)
}

// GetPlans godoc
// @Summary List available subscription plans
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /subscription/plans [get]
func (s *SubscriptionController) GetPlans(c *gin.Context) {
	plans, err := s.planService.GetPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
