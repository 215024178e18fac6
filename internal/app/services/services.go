package services

import (
	"github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/auth"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/email"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/filestorage"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/payment"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	ApplicationService  *ApplicationService
	PaymentService      *PaymentService
	ExamService         *ExamService
	BlogService         *BlogService
	GalleryService      *GalleryService
	SuccessStoryService *SuccessStoryService
}

// Dependencies carries the externally constructed collaborators the
// services need beyond the repositories.
type Dependencies struct {
	JWTService    *auth.JWTService
	EmailService  email.EmailService
	Storage       filestorage.Storage
	Gateway       payment.Gateway
	Verifier      payment.SignatureVerifier
	PaymentConfig PaymentConfig
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, deps Dependencies) *Services {
	assigner := NewDefaultCenterAssigner(repos.ExamCenterRepository)

	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, deps.JWTService),
		ApplicationService: NewApplicationService(repos.ApplicationRepository, deps.EmailService),
		PaymentService: NewPaymentService(
			repos.ApplicationRepository,
			deps.Gateway,
			deps.Verifier,
			assigner,
			deps.PaymentConfig,
		),
		ExamService: NewExamService(
			repos.ApplicationRepository,
			assigner,
			ExamConfig{
				RollPrefix: deps.PaymentConfig.RollPrefix,
				Year:       deps.PaymentConfig.Year,
			},
		),
		BlogService:         NewBlogService(repos.BlogRepository),
		GalleryService:      NewGalleryService(repos.GalleryRepository, deps.Storage),
		SuccessStoryService: NewSuccessStoryService(repos.SuccessStoryRepository, deps.Storage),
	}
}
