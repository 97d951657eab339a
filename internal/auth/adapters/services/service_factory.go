package services

import (
	"time"

	svc "notekeep/internal/auth/ports/services"
)

// ServiceFactory создает все сервисы, необходимые слою аутентификации.
type ServiceFactory struct {
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(secretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordSvc: NewBcrypt(bcryptCost),
		tokenSvc:    NewJWT(secretKey, tokenTTL),
	}
}

// PasswordService возвращает сервис работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordSvc
}

// TokenService возвращает сервис работы с токенами.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return f.tokenSvc
}
