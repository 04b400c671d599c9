package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/gateway"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPaymentService(gw CheckoutGateway) *PaymentService {
	return NewPaymentService(nil, gw, nil, config.GatewayConfig{
		Currency:   "USD",
		SuccessURL: "https://shop.example/payments/success",
		CancelURL:  "https://shop.example/payments/cancel",
	}, testLogger())
}

func TestPaymentService_PerformStartCheckout(t *testing.T) {
	t.Run("opens session with redirect parameters", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		productRepo := mocks.NewMockProductRepository(t)
		svc := newTestPaymentService(gw)
		ctx := context.Background()

		goal := newTestGoal(models.GoalStatusActive, "1000", "250")

		goalRepo.On("FindByID", ctx, goal.ID).Return(goal, nil)
		productRepo.On("FindByID", ctx, goal.ProductID).Return(&models.Product{ID: goal.ProductID, Name: "Bike"}, nil)

		var sent gateway.CheckoutRequest
		gw.On("CreateSession", ctx, mock.AnythingOfType("gateway.CheckoutRequest")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(gateway.CheckoutRequest) }).
			Return(&gateway.Session{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil)

		checkout, err := svc.performStartCheckout(ctx, goalRepo, productRepo, goal.UserID, goal.ID, dec("100"))

		require.NoError(t, err)
		assert.Equal(t, "cs_123", checkout.SessionID)
		assert.Equal(t, "https://pay.example/cs_123", checkout.URL)
		assert.Equal(t, "USD", sent.Currency)
		assert.Equal(t, "Layaway deposit toward Bike", sent.ProductDescription)
		assert.Equal(t, goal.ID.String(), sent.Metadata["goal_id"])
		assert.True(t, strings.HasSuffix(sent.SuccessURL, "&session_id={CHECKOUT_SESSION_ID}"))

		success, err := url.Parse(strings.TrimSuffix(sent.SuccessURL, "&session_id={CHECKOUT_SESSION_ID}"))
		require.NoError(t, err)
		assert.Equal(t, "100.00", success.Query().Get("amount"))
		assert.Equal(t, PaymentStatusSuccess, success.Query().Get("status"))
		assert.Contains(t, sent.CancelURL, "status="+PaymentStatusCancel)
	})

	t.Run("amount above remaining never reaches gateway", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		svc := newTestPaymentService(gw)
		ctx := context.Background()

		goal := newTestGoal(models.GoalStatusActive, "1000", "950")
		goalRepo.On("FindByID", ctx, goal.ID).Return(goal, nil)

		_, err := svc.performStartCheckout(ctx, goalRepo, mocks.NewMockProductRepository(t), goal.UserID, goal.ID, dec("100"))

		assertCode(t, err, ErrCodeExceedsRemaining)
	})

	t.Run("completed goal", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository(t)
		svc := newTestPaymentService(NewMockCheckoutGateway(t))
		ctx := context.Background()

		goal := newTestGoal(models.GoalStatusCompleted, "1000", "1000")
		goalRepo.On("FindByID", ctx, goal.ID).Return(goal, nil)

		_, err := svc.performStartCheckout(ctx, goalRepo, mocks.NewMockProductRepository(t), goal.UserID, goal.ID, dec("1"))

		assertCode(t, err, ErrCodeGoalAlreadyCompleted)
	})

	t.Run("gateway failure", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		productRepo := mocks.NewMockProductRepository(t)
		svc := newTestPaymentService(gw)
		ctx := context.Background()

		goal := newTestGoal(models.GoalStatusActive, "1000", "0")
		goalRepo.On("FindByID", ctx, goal.ID).Return(goal, nil)
		productRepo.On("FindByID", ctx, goal.ProductID).Return(nil, models.ErrNotFound)
		gw.On("CreateSession", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := svc.performStartCheckout(ctx, goalRepo, productRepo, goal.UserID, goal.ID, dec("10"))

		assertCode(t, err, ErrCodeGatewayUnavailable)
	})
}

func TestPaymentService_VerifySession(t *testing.T) {
	goalID := uuid.New()
	paid := func(amount string) *gateway.Session {
		return &gateway.Session{
			ID:       "cs_1",
			Status:   gateway.SessionStatusPaid,
			Amount:   dec(amount),
			Metadata: map[string]string{"goal_id": goalID.String()},
		}
	}
	conf := PaymentConfirmation{SessionID: "cs_1", Status: PaymentStatusSuccess, Amount: dec("100"), GoalID: goalID}

	t.Run("paid session matching amount", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		gw.On("GetSession", mock.Anything, "cs_1").Return(paid("100.00"), nil)

		assert.NoError(t, newTestPaymentService(gw).verifySession(context.Background(), conf))
	})

	t.Run("cancel redirect is not a payment", func(t *testing.T) {
		c := conf
		c.Status = PaymentStatusCancel

		err := newTestPaymentService(NewMockCheckoutGateway(t)).verifySession(context.Background(), c)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})

	t.Run("tampered amount", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		gw.On("GetSession", mock.Anything, "cs_1").Return(paid("10"), nil)

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodeAmountMismatch)
	})

	t.Run("unpaid session", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		session := paid("100")
		session.Status = gateway.SessionStatusOpen
		gw.On("GetSession", mock.Anything, "cs_1").Return(session, nil)

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})

	t.Run("session for another goal", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		session := paid("100")
		session.Metadata["goal_id"] = uuid.NewString()
		gw.On("GetSession", mock.Anything, "cs_1").Return(session, nil)

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})

	t.Run("session without goal binding", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		session := paid("100")
		session.Metadata = nil
		gw.On("GetSession", mock.Anything, "cs_1").Return(session, nil)

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})

	t.Run("unknown session", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		gw.On("GetSession", mock.Anything, "cs_1").Return(nil, gateway.ErrSessionNotFound)

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})

	t.Run("gateway down", func(t *testing.T) {
		gw := NewMockCheckoutGateway(t)
		gw.On("GetSession", mock.Anything, "cs_1").Return(nil, errors.New("timeout"))

		err := newTestPaymentService(gw).verifySession(context.Background(), conf)

		assertCode(t, err, ErrCodeGatewayUnavailable)
	})
}

func TestPaymentService_Replay(t *testing.T) {
	goal := newTestGoal(models.GoalStatusActive, "1000", "100")
	conf := PaymentConfirmation{SessionID: "cs_1", Status: PaymentStatusSuccess, Amount: dec("100"), GoalID: goal.ID, UserID: goal.UserID}
	key := PaymentIdempotencyKey(conf.SessionID, conf.Amount)

	t.Run("new payment", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(nil, models.ErrNotFound)

		result, err := newTestPaymentService(nil).replay(context.Background(), depositRepo, mocks.NewMockGoalRepository(t), key, conf)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("repeated confirmation returns original deposit", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		deposit := &models.Deposit{ID: uuid.New(), GoalID: goal.ID, UserID: goal.UserID, Amount: dec("100"), IdempotencyKey: &key}

		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(deposit, nil)
		goalRepo.On("FindByID", mock.Anything, goal.ID).Return(goal, nil)

		result, err := newTestPaymentService(nil).replay(context.Background(), depositRepo, goalRepo, key, conf)

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, deposit.ID, result.Deposit.ID)
		assert.True(t, dec("100").Equal(result.Goal.Saved))
	})

	t.Run("key used by another goal", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		deposit := &models.Deposit{ID: uuid.New(), GoalID: uuid.New(), UserID: goal.UserID}
		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(deposit, nil)

		_, err := newTestPaymentService(nil).replay(context.Background(), depositRepo, mocks.NewMockGoalRepository(t), key, conf)

		assertCode(t, err, ErrCodeDuplicatePayment)
	})
}

func TestPaymentService_PerformConfirmPayment(t *testing.T) {
	goal := newTestGoal(models.GoalStatusActive, "1000", "100")
	conf := PaymentConfirmation{SessionID: "cs_1", Status: PaymentStatusSuccess, Amount: dec("100"), GoalID: goal.ID, UserID: goal.UserID}
	key := PaymentIdempotencyKey(conf.SessionID, conf.Amount)

	paidGateway := func(t *testing.T) *MockCheckoutGateway {
		gw := NewMockCheckoutGateway(t)
		gw.On("GetSession", mock.Anything, "cs_1").Return(&gateway.Session{
			ID:       "cs_1",
			Status:   gateway.SessionStatusPaid,
			Amount:   dec("100"),
			Metadata: map[string]string{"goal_id": goal.ID.String()},
		}, nil)
		return gw
	}
	newService := func(gw CheckoutGateway, deposits Depositor) *PaymentService {
		svc := newTestPaymentService(gw)
		svc.deposits = deposits
		return svc
	}

	t.Run("new payment is recorded under the session key", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		deposits := NewMockDepositor(t)
		recorded := &DepositResult{Goal: goal, Deposit: &models.Deposit{ID: uuid.New(), GoalID: goal.ID, Amount: dec("100")}}

		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(nil, models.ErrNotFound)
		deposits.On("RecordDeposit", mock.Anything, mock.MatchedBy(func(req DepositRequest) bool {
			return req.GoalID == goal.ID &&
				req.UserID == goal.UserID &&
				req.Amount.Equal(dec("100")) &&
				req.PaymentMethod == models.PaymentMethodCard &&
				req.IdempotencyKey != nil && *req.IdempotencyKey == key
		})).Return(recorded, nil).Once()

		result, err := newService(paidGateway(t), deposits).performConfirmPayment(context.Background(), depositRepo, mocks.NewMockGoalRepository(t), conf)

		require.NoError(t, err)
		assert.False(t, result.Replayed)
		assert.Equal(t, recorded.Deposit.ID, result.Deposit.ID)
	})

	t.Run("repeated confirmation does not deposit again", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		deposit := &models.Deposit{ID: uuid.New(), GoalID: goal.ID, UserID: goal.UserID, Amount: dec("100"), IdempotencyKey: &key}

		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(deposit, nil)
		goalRepo.On("FindByID", mock.Anything, goal.ID).Return(goal, nil)

		result, err := newService(paidGateway(t), NewMockDepositor(t)).performConfirmPayment(context.Background(), depositRepo, goalRepo, conf)

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, deposit.ID, result.Deposit.ID)
	})

	t.Run("concurrent confirmation that committed first is replayed", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		deposits := NewMockDepositor(t)
		deposit := &models.Deposit{ID: uuid.New(), GoalID: goal.ID, UserID: goal.UserID, Amount: dec("100"), IdempotencyKey: &key}

		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(nil, models.ErrNotFound).Once()
		deposits.On("RecordDeposit", mock.Anything, mock.Anything).
			Return(nil, &ServiceError{Code: ErrCodeDuplicatePayment, Message: "payment was already applied"}).Once()
		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(deposit, nil).Once()
		goalRepo.On("FindByID", mock.Anything, goal.ID).Return(goal, nil)

		result, err := newService(paidGateway(t), deposits).performConfirmPayment(context.Background(), depositRepo, goalRepo, conf)

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, deposit.ID, result.Deposit.ID)
	})

	t.Run("duplicate without a stored deposit is reported", func(t *testing.T) {
		depositRepo := mocks.NewMockDepositRepository(t)
		deposits := NewMockDepositor(t)

		depositRepo.On("FindByIdempotencyKey", mock.Anything, key).Return(nil, models.ErrNotFound).Twice()
		deposits.On("RecordDeposit", mock.Anything, mock.Anything).
			Return(nil, &ServiceError{Code: ErrCodeDuplicatePayment, Message: "payment was already applied"}).Once()

		_, err := newService(paidGateway(t), deposits).performConfirmPayment(context.Background(), depositRepo, mocks.NewMockGoalRepository(t), conf)

		assertCode(t, err, ErrCodeDuplicatePayment)
	})

	t.Run("cancel redirect never reaches the depositor", func(t *testing.T) {
		c := conf
		c.Status = PaymentStatusCancel

		_, err := newService(NewMockCheckoutGateway(t), NewMockDepositor(t)).performConfirmPayment(
			context.Background(), mocks.NewMockDepositRepository(t), mocks.NewMockGoalRepository(t), c)

		assertCode(t, err, ErrCodePaymentNotConfirmed)
	})
}
