package usecase

import (
	"context"
	"strings"

	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/auth"
	"condopay-srv/internal/model"
	"condopay-srv/pkg/encrypter"
	"condopay-srv/pkg/scope"
)

func (uc *implUseCase) AdminLogin(ctx context.Context, ip auth.AdminLoginInput) (auth.LoginOutput, error) {
	if ip.Username == "" || ip.Password == "" {
		return auth.LoginOutput{}, auth.ErrFieldRequired
	}

	if ip.Username != uc.cfg.AdminUsername ||
		!encrypter.CheckPasswordHash(ip.Password, uc.cfg.AdminPasswordHash) {
		uc.l.Warnf(ctx, "internal.auth.usecase.AdminLogin: rejected login for %q", ip.Username)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{Role: scope.RoleAdmin})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.AdminLogin.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token: token,
		Role:  scope.RoleAdmin,
	}, nil
}

func (uc *implUseCase) ResidentLogin(ctx context.Context, ip auth.ResidentLoginInput) (auth.LoginOutput, error) {
	email := model.NormalizeEmail(ip.Email)
	number := strings.TrimSpace(ip.ApartmentNumber)
	if email == "" || number == "" {
		return auth.LoginOutput{}, auth.ErrFieldRequired
	}

	apt, err := uc.aptRepo.GetByNumber(ctx, number)
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.ResidentLogin.GetByNumber: %v", err)
		return auth.LoginOutput{}, err
	}

	if apt.ResidentEmail == "" || apt.ResidentEmail != email {
		uc.l.Warnf(ctx, "internal.auth.usecase.ResidentLogin: rejected login for unit %q", number)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		Role:        scope.RoleResident,
		Email:       apt.ResidentEmail,
		ApartmentID: apt.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.ResidentLogin.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token:       token,
		Role:        scope.RoleResident,
		Email:       apt.ResidentEmail,
		ApartmentID: apt.ID,
	}, nil
}
