package services

import (
	"context"
	"log"
	"time"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/response_models"
	"cinevault/internal/repositories"
	"cinevault/pkg/utils"
)

// Access reasons surfaced by the gate decision.
const (
	ReasonAdmin              = "admin"
	ReasonActiveSubscription = "active_subscription"
	ReasonExpired            = "subscription_expired"
	ReasonCancelled          = "subscription_cancelled"
	ReasonNoSubscription     = "no_subscription"
)

const (
	ActionSubscribe = "subscribe"
	ActionRenew     = "renew"
	ActionCancel    = "cancel"
)

// AccessDecision is the result of resolving an account's entitlement at a
// point in time.
type AccessDecision struct {
	HasAccess bool
	Reason    string
	ExpiresAt *time.Time
}

// ResolveAccess is the pure gate decision: admins always pass; otherwise the
// account needs the VIP flag, an "active" status, and an end date that is
// unset or in the future. It never mutates anything — expiry correction is a
// separate explicit step (AccountRepository.ExpireLapsed).
func ResolveAccess(account *db_models.Account, now time.Time) AccessDecision {
	if account.IsAdmin {
		return AccessDecision{HasAccess: true, Reason: ReasonAdmin}
	}

	var expiresAt *time.Time
	isExpired := false
	if account.SubscriptionEndDate != nil {
		end := utils.FromUnixSeconds(*account.SubscriptionEndDate)
		expiresAt = &end
		isExpired = end.Before(now)
	}

	if account.IsVip && account.SubscriptionStatus == db_models.SubStatusActive && !isExpired {
		return AccessDecision{HasAccess: true, Reason: ReasonActiveSubscription, ExpiresAt: expiresAt}
	}

	reason := ReasonNoSubscription
	if isExpired {
		reason = ReasonExpired
	} else if account.SubscriptionStatus == db_models.SubStatusCancelled {
		reason = ReasonCancelled
	}

	return AccessDecision{HasAccess: false, Reason: reason, ExpiresAt: expiresAt}
}

// PlanWindow computes the subscription window for a plan starting at now:
// one month, three months, or one year.
func PlanWindow(plan db_models.SubscriptionPlan, now time.Time) (start, end time.Time, err error) {
	switch plan {
	case db_models.PlanMonthly:
		return now, now.AddDate(0, 1, 0), nil
	case db_models.PlanQuarterly:
		return now, now.AddDate(0, 3, 0), nil
	case db_models.PlanYearly:
		return now, now.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, utils.ErrInvalidPlan
	}
}

type EntitlementServiceInterface interface {
	CheckAccess(ctx context.Context, accountID string) (response_models.AccessCheckResponse, error)
	GetSnapshot(ctx context.Context, accountID string) (response_models.SubscriptionSnapshot, error)
	ManageSubscription(ctx context.Context, accountID, plan, action string) (response_models.SubscriptionSnapshot, error)
}

type EntitlementService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
}

func NewEntitlementService(accountRepo repositories.AccountRepository, mailService IMailService) EntitlementServiceInterface {
	return &EntitlementService{
		accountRepo: accountRepo,
		mailService: mailService,
	}
}

// reconciledAccount loads the account and runs the idempotent expiry
// correction first, so the decision below always sees consistent state.
func (e *EntitlementService) reconciledAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	changed, err := e.accountRepo.ExpireLapsed(ctx, account.ID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if changed > 0 {
		account.SubscriptionStatus = db_models.SubStatusExpired
		account.IsVip = false
	}

	return account, nil
}

func (e *EntitlementService) CheckAccess(ctx context.Context, accountID string) (response_models.AccessCheckResponse, error) {
	account, err := e.reconciledAccount(ctx, accountID)
	if err != nil {
		return response_models.AccessCheckResponse{}, err
	}

	decision := ResolveAccess(account, time.Now())

	resp := response_models.AccessCheckResponse{
		HasAccess: decision.HasAccess,
		Reason:    decision.Reason,
	}
	if decision.ExpiresAt != nil {
		resp.ExpiresAt = utils.FormatRFC3339(*decision.ExpiresAt)
	}
	return resp, nil
}

func (e *EntitlementService) GetSnapshot(ctx context.Context, accountID string) (response_models.SubscriptionSnapshot, error) {
	account, err := e.reconciledAccount(ctx, accountID)
	if err != nil {
		return response_models.SubscriptionSnapshot{}, err
	}
	return snapshotOf(account), nil
}

func (e *EntitlementService) ManageSubscription(ctx context.Context, accountID, plan, action string) (response_models.SubscriptionSnapshot, error) {
	account, err := e.reconciledAccount(ctx, accountID)
	if err != nil {
		return response_models.SubscriptionSnapshot{}, err
	}

	switch action {
	case ActionSubscribe, ActionRenew:
		start, end, err := PlanWindow(db_models.SubscriptionPlan(plan), time.Now())
		if err != nil {
			return response_models.SubscriptionSnapshot{}, err
		}

		startUnix := start.Unix()
		endUnix := end.Unix()
		fields := map[string]interface{}{
			"is_vip":                  true,
			"subscription_plan":       db_models.SubscriptionPlan(plan),
			"subscription_status":     db_models.SubStatusActive,
			"subscription_start_date": startUnix,
			"subscription_end_date":   endUnix,
			"subscription_renewable":  true,
		}
		if err := e.accountRepo.UpdateFields(ctx, account.ID, fields); err != nil {
			return response_models.SubscriptionSnapshot{}, utils.ErrDatabaseError
		}

		account.IsVip = true
		account.SubscriptionPlan = db_models.SubscriptionPlan(plan)
		account.SubscriptionStatus = db_models.SubStatusActive
		account.SubscriptionStartDate = &startUnix
		account.SubscriptionEndDate = &endUnix
		account.SubscriptionRenewable = true

		e.notify(account.Email, "Your subscription is active",
			"Your "+plan+" plan is now active. Enjoy unlimited streaming until "+utils.FormatRFC3339(end)+".")

		return snapshotOf(account), nil

	case ActionCancel:
		// Cancellation keeps access until the stored end date: only the
		// status and the renewal flag change.
		fields := map[string]interface{}{
			"subscription_status":    db_models.SubStatusCancelled,
			"subscription_renewable": false,
		}
		if err := e.accountRepo.UpdateFields(ctx, account.ID, fields); err != nil {
			return response_models.SubscriptionSnapshot{}, utils.ErrDatabaseError
		}

		account.SubscriptionStatus = db_models.SubStatusCancelled
		account.SubscriptionRenewable = false

		e.notify(account.Email, "Your subscription was cancelled",
			"You can keep watching until the end of your current period.")

		return snapshotOf(account), nil

	default:
		return response_models.SubscriptionSnapshot{}, utils.ErrInvalidAction
	}
}

func (e *EntitlementService) notify(to, subject, body string) {
	if e.mailService == nil {
		return
	}
	if err := e.mailService.SendSubscriptionNotice(to, subject, body); err != nil {
		log.Printf("Failed to send subscription notice to %s: %v", to, err)
	}
}

func snapshotOf(account *db_models.Account) response_models.SubscriptionSnapshot {
	snap := response_models.SubscriptionSnapshot{
		IsVip:                 account.IsVip,
		SubscriptionPlan:      string(account.SubscriptionPlan),
		SubscriptionStatus:    string(account.SubscriptionStatus),
		SubscriptionRenewable: account.SubscriptionRenewable,
	}
	if account.SubscriptionStartDate != nil {
		snap.SubscriptionStartDate = utils.FormatRFC3339(utils.FromUnixSeconds(*account.SubscriptionStartDate))
	}
	if account.SubscriptionEndDate != nil {
		snap.SubscriptionEndDate = utils.FormatRFC3339(utils.FromUnixSeconds(*account.SubscriptionEndDate))
	}
	return snap
}
