package controllers

import (
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/filestorage"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController        *AuthController
	ApplicationController *ApplicationController
	PaymentController     *PaymentController
	ExamController        *ExamController
	BlogController        *BlogController
	GalleryController     *GalleryController
	StoryController       *StoryController
	UploadController      *UploadController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services, storage filestorage.Storage) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svcs.AuthService),
		ApplicationController: NewApplicationController(svcs.ApplicationService),
		PaymentController:     NewPaymentController(svcs.PaymentService),
		ExamController:        NewExamController(svcs.ExamService),
		BlogController:        NewBlogController(svcs.BlogService),
		GalleryController:     NewGalleryController(svcs.GalleryService),
		StoryController:       NewStoryController(svcs.SuccessStoryService),
		UploadController:      NewUploadController(storage),
	}
}
