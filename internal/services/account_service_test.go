package services

import (
	"context"
	"errors"
	"testing"

	"cinevault/internal/models/request_models"
	"cinevault/internal/repositories"
	mem "cinevault/pkg/memcache"
	"cinevault/pkg/utils"
)

func newAccountFixture(t *testing.T) (AccountServiceInterface, *fakeMailer, context.Context) {
	t.Helper()
	db := openTestDB(t)
	mailer := &fakeMailer{}
	svc := NewAccountService(repositories.NewAccountRepository(db), mailer, mem.NewResetTokens())
	return svc, mailer, context.Background()
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, _, ctx := newAccountFixture(t)

	req := request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "secret123",
	}
	if err := svc.CreateAccount(ctx, req); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if err := svc.CreateAccount(ctx, req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate signup: err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, ctx := newAccountFixture(t)

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "sam@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Error("login should return a token")
	}
	if resp.IsVip {
		t.Error("new accounts are not VIP")
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "sam@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "ghost@example.com", Password: "secret123"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mailer, ctx := newAccountFixture(t)

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Rory",
		Email:       "rory@example.com",
		Password:    "original1",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Unknown emails are silently accepted and send nothing.
	if err := svc.ForgotPassword(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("forgot for unknown email: %v", err)
	}
	if mailer.lastResetToken() != "" {
		t.Fatal("no mail should be sent for an unknown email")
	}

	if err := svc.ForgotPassword(ctx, "rory@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	token := mailer.lastResetToken()
	if token == "" {
		t.Fatal("reset mail was not sent")
	}

	reset := request_models.ForgotPasswordRequest{
		Email:       "rory@example.com",
		NewPassword: "changed22",
		Token:       token,
	}
	if err := svc.ResetPasswordWithToken(ctx, reset); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "rory@example.com", Password: "changed22"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "rory@example.com", Password: "original1"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("login with old password: err = %v, want ErrInvalidCredentials", err)
	}

	// Tokens are single-use.
	if err := svc.ResetPasswordWithToken(ctx, reset); !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Errorf("token reuse: err = %v, want ErrInvalidResetToken", err)
	}
}

func TestSetupFlow(t *testing.T) {
	svc, _, ctx := newAccountFixture(t)

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Drew",
		Email:       "drew@example.com",
		Password:    "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "drew@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	accountID := claims.UserID

	status, err := svc.CheckSetup(ctx, accountID)
	if err != nil {
		t.Fatalf("check setup: %v", err)
	}
	if status.IsSetupComplete {
		t.Error("fresh accounts start with incomplete setup")
	}

	profile, err := svc.CompleteSetup(ctx, accountID, request_models.SetupRequest{
		Username: "drew77",
		Country:  "Brazil",
		Locale:   "pt-BR",
	})
	if err != nil {
		t.Fatalf("complete setup: %v", err)
	}
	if profile.Name != "drew77" || profile.Country != "Brazil" || !profile.IsSetupComplete {
		t.Errorf("profile after setup = %+v", profile)
	}

	status, err = svc.CheckSetup(ctx, accountID)
	if err != nil {
		t.Fatalf("check setup again: %v", err)
	}
	if !status.IsSetupComplete {
		t.Error("setup flag should persist")
	}

	// Unknown accounts simply report incomplete setup.
	status, err = svc.CheckSetup(ctx, newUUIDString())
	if err != nil {
		t.Fatalf("check setup unknown: %v", err)
	}
	if status.IsSetupComplete {
		t.Error("unknown account cannot have completed setup")
	}
}
