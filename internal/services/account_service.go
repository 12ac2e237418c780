package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/request_models"
	"cinevault/internal/models/response_models"
	"cinevault/internal/repositories"
	mem "cinevault/pkg/memcache"
	"cinevault/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error

	CompleteSetup(ctx context.Context, accountID string, request request_models.SetupRequest) (response_models.ProfileResponse, error)
	CheckSetup(ctx context.Context, accountID string) (response_models.SetupStatusResponse, error)
	GetProfile(ctx context.Context, accountID string) (response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, mailService IMailService, resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:               request.DisplayName,
		Email:              request.Email,
		PasswordHash:       hashedPassword,
		Role:               "user",
		SubscriptionPlan:   db_models.PlanNone,
		SubscriptionStatus: db_models.SubStatusInactive,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.AccountLoginResponse{
		Token: token,
		IsVip: account.IsVip,
	}, nil
}

// ForgotPassword never reveals whether the email exists.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendPasswordReset(account.Email, token); err != nil {
		log.Printf("Failed to send reset mail to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdateFields(ctx, account.ID, map[string]interface{}{
		"password_hash": hashedPassword,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) CompleteSetup(ctx context.Context, accountID string, request request_models.SetupRequest) (response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrAccountNotFound
	}

	fields := map[string]interface{}{
		"name":              request.Username,
		"country":           request.Country,
		"is_setup_complete": true,
	}
	if request.Locale != "" {
		prefs, _ := json.Marshal(map[string]string{"locale": request.Locale})
		fields["preferences"] = prefs
	}

	if err := a.accountRepo.UpdateFields(ctx, account.ID, fields); err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}

	account.Name = request.Username
	account.Country = request.Country
	account.IsSetupComplete = true

	return profileOf(account), nil
}

func (a *AccountService) CheckSetup(ctx context.Context, accountID string) (response_models.SetupStatusResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.SetupStatusResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		// An unknown account simply has no completed setup.
		return response_models.SetupStatusResponse{IsSetupComplete: false}, nil
	}

	return response_models.SetupStatusResponse{IsSetupComplete: account.IsSetupComplete}, nil
}

// GetProfile serves the entitlement snapshot. Expiry correction runs first so
// an active-but-lapsed subscription is never reported as active.
func (a *AccountService) GetProfile(ctx context.Context, accountID string) (response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrAccountNotFound
	}

	changed, err := a.accountRepo.ExpireLapsed(ctx, account.ID, utils.NowUnixSeconds())
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if changed > 0 {
		account.SubscriptionStatus = db_models.SubStatusExpired
		account.IsVip = false
	}

	return profileOf(account), nil
}

func profileOf(account *db_models.Account) response_models.ProfileResponse {
	resp := response_models.ProfileResponse{
		ID:                    account.ID.String(),
		Name:                  account.Name,
		Email:                 account.Email,
		Country:               account.Country,
		IsSetupComplete:       account.IsSetupComplete,
		IsVip:                 account.IsVip,
		IsAdmin:               account.IsAdmin,
		SubscriptionPlan:      string(account.SubscriptionPlan),
		SubscriptionStatus:    string(account.SubscriptionStatus),
		SubscriptionRenewable: account.SubscriptionRenewable,
	}
	if account.SubscriptionStartDate != nil {
		resp.SubscriptionStartDate = utils.FormatRFC3339(utils.FromUnixSeconds(*account.SubscriptionStartDate))
	}
	if account.SubscriptionEndDate != nil {
		resp.SubscriptionEndDate = utils.FormatRFC3339(utils.FromUnixSeconds(*account.SubscriptionEndDate))
	}
	return resp
}
