package services

import (
	"context"

	"cinevault/internal/models/response_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlanByCode(ctx context.Context, code string) (response_models.SubscriptionPlan, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {
	plans, err := p.planRepo.GetActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, response_models.SubscriptionPlan{
			ID:              plan.ID.String(),
			Code:            plan.Code,
			Name:            plan.Name,
			Description:     plan.Description,
			BackgroundImage: plan.BackgroundImage,
			DurationMonths:  plan.DurationMonths,
			Price:           plan.PriceMinor,
			Currency:        plan.Currency,
			IsActive:        plan.IsActive,
		})
	}

	return result, nil
}

func (p *PlanService) GetPlanByCode(ctx context.Context, code string) (response_models.SubscriptionPlan, error) {
	plan, err := p.planRepo.FindByCode(ctx, code)
	if err != nil {
		return response_models.SubscriptionPlan{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.SubscriptionPlan{}, utils.ErrPlanNotFound
	}

	return response_models.SubscriptionPlan{
		ID:              plan.ID.String(),
		Code:            plan.Code,
		Name:            plan.Name,
		Description:     plan.Description,
		BackgroundImage: plan.BackgroundImage,
		DurationMonths:  plan.DurationMonths,
		Price:           plan.PriceMinor,
		Currency:        plan.Currency,
		IsActive:        plan.IsActive,
	}, nil
}
