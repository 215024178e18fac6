package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/payment"
)

// paymentStore is the slice of the application repository the payment
// workflow depends on.
type paymentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	MarkPaid(ctx context.Context, id int64, paymentID, orderID string, centerID int64, rollNumber string) (*models.Application, bool, error)
}

// PaymentConfig carries the fixed fee and roll number settings
type PaymentConfig struct {
	KeyID      string
	FeeAmount  int64 // minor units (paise)
	Currency   string
	RollPrefix string
	Year       int
}

// PaymentService implements the application fee flow: order creation
// against the gateway and locally verified, idempotent payment capture.
type PaymentService struct {
	apps     paymentStore
	gateway  payment.Gateway
	verifier payment.SignatureVerifier
	assigner ExamCenterAssigner
	config   PaymentConfig
}

// NewPaymentService creates a new payment service
func NewPaymentService(apps paymentStore, gateway payment.Gateway, verifier payment.SignatureVerifier, assigner ExamCenterAssigner, config PaymentConfig) *PaymentService {
	return &PaymentService{
		apps:     apps,
		gateway:  gateway,
		verifier: verifier,
		assigner: assigner,
		config:   config,
	}
}

// CreateOrder opens a gateway order for the fixed application fee. Nothing
// is persisted; the order only matters once its payment verifies.
func (s *PaymentService) CreateOrder(ctx context.Context) (*dto.CreateOrderResponse, error) {
	order, err := s.gateway.CreateOrder(s.config.FeeAmount, s.config.Currency)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("orderId", order.ID).
		Int64("amount", order.Amount).
		Msg("Payment order created")

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.config.KeyID,
	}, nil
}

// VerifyPayment checks the gateway callback signature and, on first
// success, records the payment and issues the exam center and roll number.
// The operation is idempotent: repeats and racing duplicates converge on
// the state the first verification produced.
func (s *PaymentService) VerifyPayment(ctx context.Context, studentID int64, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	app, err := s.apps.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app.StudentID != studentID {
		return nil, apperrors.ErrPermissionDenied
	}

	// Already-processed applications short-circuit before the signature
	// check: a retry of a consumed callback must not fail on a signature
	// that was valid the first time.
	if app.PaymentStatus == enums.PaymentPaid || app.RollNumber != nil {
		return alreadyProcessedResponse(app), nil
	}

	if !s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature) {
		logger.Warn().
			Int64("applicationId", app.ID).
			Str("orderId", req.OrderID).
			Msg("Payment signature rejected")
		return nil, apperrors.ErrInvalidSignature
	}

	center, err := s.assigner.Assign(ctx, app)
	if err != nil {
		return nil, err
	}
	rollNumber := FormatRollNumber(s.config.RollPrefix, s.config.Year, app.ID)

	updated, won, err := s.apps.MarkPaid(ctx, app.ID, req.PaymentID, req.OrderID, center.ID, rollNumber)
	if err != nil {
		return nil, err
	}
	if !won {
		// A concurrent verification got there first; report its outcome.
		current, err := s.apps.GetByID(ctx, app.ID)
		if err != nil {
			return nil, err
		}
		return alreadyProcessedResponse(current), nil
	}

	logger.Info().
		Int64("applicationId", updated.ID).
		Str("rollNumber", rollNumber).
		Int64("examCenterId", center.ID).
		Msg("Payment verified, roll number issued")

	return &dto.VerifyPaymentResponse{
		Status:     "success",
		Message:    "Payment verified successfully",
		RollNumber: rollNumber,
	}, nil
}

func alreadyProcessedResponse(app *models.Application) *dto.VerifyPaymentResponse {
	resp := &dto.VerifyPaymentResponse{
		Status:  "success",
		Message: "Payment already processed",
	}
	if app.RollNumber != nil {
		resp.RollNumber = *app.RollNumber
	}
	return resp
}
