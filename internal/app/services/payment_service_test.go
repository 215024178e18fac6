package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/payment"
)

// fakePaymentStore keeps applications in memory and mimics the conditional
// MarkPaid update: only the first call for an application wins.
type fakePaymentStore struct {
	apps          map[int64]*models.Application
	markPaidCalls int

	// lostWinnerRoll simulates a concurrent verification committing first:
	// when set, MarkPaid installs this roll and reports that it lost.
	lostWinnerRoll string
}

func (f *fakePaymentStore) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakePaymentStore) MarkPaid(ctx context.Context, id int64, paymentID, orderID string, centerID int64, rollNumber string) (*models.Application, bool, error) {
	f.markPaidCalls++
	app, ok := f.apps[id]
	if !ok {
		return nil, false, apperrors.ErrApplicationNotFound
	}
	if f.lostWinnerRoll != "" {
		app.PaymentStatus = enums.PaymentPaid
		app.RollNumber = &f.lostWinnerRoll
		return nil, false, nil
	}
	if app.RollNumber != nil {
		return nil, false, nil
	}
	app.PaymentStatus = enums.PaymentPaid
	app.PaymentID = &paymentID
	app.OrderID = &orderID
	app.ExamCenterID = &centerID
	app.RollNumber = &rollNumber
	copied := *app
	return &copied, true, nil
}

type fakeGateway struct {
	order *payment.Order
	err   error
}

func (f *fakeGateway) CreateOrder(amount int64, currency string) (*payment.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Order{ID: f.order.ID, Amount: amount, Currency: currency}, nil
}

type fakeVerifier struct {
	ok    bool
	calls int
}

func (f *fakeVerifier) Verify(orderID, paymentID, signature string) bool {
	f.calls++
	return f.ok
}

type fakeAssigner struct {
	center *models.ExamCenter
	err    error
}

func (f *fakeAssigner) Assign(ctx context.Context, app *models.Application) (*models.ExamCenter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.center, nil
}

func testPaymentConfig() PaymentConfig {
	return PaymentConfig{
		KeyID:      "rzp_test_key",
		FeeAmount:  10000,
		Currency:   "INR",
		RollPrefix: "FV",
		Year:       2026,
	}
}

func unpaidApplication(id, studentID int64) *models.Application {
	return &models.Application{
		ID:            id,
		StudentID:     studentID,
		Status:        enums.StatusSubmitted,
		PaymentStatus: enums.PaymentUnpaid,
	}
}

func verifyRequest(appID int64) *dto.VerifyPaymentRequest {
	return &dto.VerifyPaymentRequest{
		OrderID:       "order_abc",
		PaymentID:     "pay_xyz",
		Signature:     "sig",
		ApplicationID: appID,
	}
}

func TestCreateOrder(t *testing.T) {
	svc := NewPaymentService(
		&fakePaymentStore{apps: map[int64]*models.Application{}},
		&fakeGateway{order: &payment.Order{ID: "order_123"}},
		&fakeVerifier{ok: true},
		&fakeAssigner{center: &models.ExamCenter{ID: 1}},
		testPaymentConfig(),
	)

	resp, err := svc.CreateOrder(context.Background())
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if resp.OrderID != "order_123" {
		t.Errorf("OrderID = %q, want %q", resp.OrderID, "order_123")
	}
	if resp.Amount != 10000 || resp.Currency != "INR" {
		t.Errorf("order amount/currency = %d/%s, want 10000/INR", resp.Amount, resp.Currency)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Errorf("KeyID = %q, want the configured public key", resp.KeyID)
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	svc := NewPaymentService(
		&fakePaymentStore{apps: map[int64]*models.Application{}},
		&fakeGateway{err: apperrors.ErrPaymentGateway},
		&fakeVerifier{ok: true},
		&fakeAssigner{center: &models.ExamCenter{ID: 1}},
		testPaymentConfig(),
	)

	if _, err := svc.CreateOrder(context.Background()); !errors.Is(err, apperrors.ErrPaymentGateway) {
		t.Errorf("CreateOrder() error = %v, want ErrPaymentGateway", err)
	}
}

func TestVerifyPaymentIssuesRollNumber(t *testing.T) {
	store := &fakePaymentStore{apps: map[int64]*models.Application{
		7: unpaidApplication(7, 42),
	}}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		&fakeVerifier{ok: true}, &fakeAssigner{center: &models.ExamCenter{ID: 3}}, testPaymentConfig())

	resp, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(7))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.RollNumber != "FV-2026-0007" {
		t.Errorf("RollNumber = %q, want FV-2026-0007", resp.RollNumber)
	}

	app := store.apps[7]
	if app.PaymentStatus != enums.PaymentPaid {
		t.Errorf("application payment status = %s, want paid", app.PaymentStatus)
	}
	if app.ExamCenterID == nil || *app.ExamCenterID != 3 {
		t.Error("exam center was not recorded together with the roll number")
	}
	if app.PaymentID == nil || *app.PaymentID != "pay_xyz" {
		t.Error("payment id was not recorded")
	}
}

func TestVerifyPaymentRepeatShortCircuits(t *testing.T) {
	store := &fakePaymentStore{apps: map[int64]*models.Application{
		7: unpaidApplication(7, 42),
	}}
	verifier := &fakeVerifier{ok: true}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		verifier, &fakeAssigner{center: &models.ExamCenter{ID: 3}}, testPaymentConfig())

	first, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(7))
	if err != nil {
		t.Fatalf("first VerifyPayment() error = %v", err)
	}

	// The retry must succeed even if the gateway would now reject the
	// signature: a consumed callback is answered from local state.
	verifier.ok = false
	verifierCallsBefore := verifier.calls

	second, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(7))
	if err != nil {
		t.Fatalf("repeat VerifyPayment() error = %v", err)
	}
	if second.Message != "Payment already processed" {
		t.Errorf("repeat message = %q, want already-processed", second.Message)
	}
	if second.RollNumber != first.RollNumber {
		t.Errorf("repeat returned roll %q, first issued %q", second.RollNumber, first.RollNumber)
	}
	if verifier.calls != verifierCallsBefore {
		t.Error("repeat verification ran the signature check; it must short-circuit first")
	}
	if store.markPaidCalls != 1 {
		t.Errorf("MarkPaid called %d times, want exactly once", store.markPaidCalls)
	}
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	store := &fakePaymentStore{apps: map[int64]*models.Application{
		7: unpaidApplication(7, 42),
	}}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		&fakeVerifier{ok: false}, &fakeAssigner{center: &models.ExamCenter{ID: 3}}, testPaymentConfig())

	_, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(7))
	if !errors.Is(err, apperrors.ErrInvalidSignature) {
		t.Fatalf("VerifyPayment() error = %v, want ErrInvalidSignature", err)
	}
	if store.markPaidCalls != 0 {
		t.Error("a rejected signature must not reach MarkPaid")
	}
	if store.apps[7].PaymentStatus != enums.PaymentUnpaid {
		t.Error("a rejected signature must leave the application unpaid")
	}
}

func TestVerifyPaymentForeignApplication(t *testing.T) {
	store := &fakePaymentStore{apps: map[int64]*models.Application{
		7: unpaidApplication(7, 42),
	}}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		&fakeVerifier{ok: true}, &fakeAssigner{center: &models.ExamCenter{ID: 3}}, testPaymentConfig())

	_, err := svc.VerifyPayment(context.Background(), 99, verifyRequest(7))
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("VerifyPayment() error = %v, want ErrPermissionDenied", err)
	}
}

func TestVerifyPaymentLostRace(t *testing.T) {
	// The conditional update reports zero rows; the service must re-read
	// and report the winner's outcome instead of failing.
	winnerRoll := "FV-2026-0007"
	store := &fakePaymentStore{
		apps: map[int64]*models.Application{
			7: unpaidApplication(7, 42),
		},
		lostWinnerRoll: winnerRoll,
	}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		&fakeVerifier{ok: true}, &fakeAssigner{center: &models.ExamCenter{ID: 3}}, testPaymentConfig())

	resp, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(7))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if resp.Message != "Payment already processed" {
		t.Errorf("message = %q, want already-processed", resp.Message)
	}
	if resp.RollNumber != winnerRoll {
		t.Errorf("RollNumber = %q, want the winner's %q", resp.RollNumber, winnerRoll)
	}
}

func TestVerifyPaymentUnknownApplication(t *testing.T) {
	store := &fakePaymentStore{apps: map[int64]*models.Application{}}
	svc := NewPaymentService(store, &fakeGateway{order: &payment.Order{ID: "o"}},
		&fakeVerifier{ok: true}, &fakeAssigner{center: &models.ExamCenter{ID: 1}}, testPaymentConfig())

	_, err := svc.VerifyPayment(context.Background(), 42, verifyRequest(404))
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("VerifyPayment() error = %v, want ErrApplicationNotFound", err)
	}
}
