package repository

import (
	"context"
	"testing"

	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	goal := seedGoal(t, database, models.GoalStatusActive, "500.00", "0")
	repo := NewGoalRepository(database)

	found, err := repo.FindByID(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.UserID, found.UserID)
	assert.True(t, found.TargetAmount.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, models.GoalStatusActive, found.Status)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGoalRepository_OneLiveGoalPerProduct(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	first := seedGoal(t, database, models.GoalStatusSaved, "200.00", "0")
	repo := NewGoalRepository(database)

	second := *first
	second.ID = uuid.Nil
	second.Status = models.GoalStatusActive
	err := repo.Create(context.Background(), &second)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	first.Status = models.GoalStatusCancelled
	require.NoError(t, repo.Update(context.Background(), first))

	second.ID = uuid.Nil
	assert.NoError(t, repo.Create(context.Background(), &second))
}

func TestGoalRepository_RecomputeSaved(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	goal := seedGoal(t, database, models.GoalStatusActive, "100.00", "0")
	deposits := NewDepositRepository(database)
	for i, amount := range []string{"30.00", "45.50"} {
		err := deposits.Create(context.Background(), &models.Deposit{
			GoalID:        goal.ID,
			UserID:        goal.UserID,
			Amount:        decimal.RequireFromString(amount),
			PaymentMethod: models.PaymentMethodCard,
			Status:        models.DepositStatusCompleted,
			ReceiptNumber: "RCP-TEST-" + string(rune('A'+i)),
		})
		require.NoError(t, err)
	}

	saved, err := NewGoalRepository(database).RecomputeSaved(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.True(t, saved.Equal(decimal.RequireFromString("75.50")), "saved = %s", saved)
}

func TestGoalRepository_SavedCannotExceedTarget(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	goal := seedGoal(t, database, models.GoalStatusActive, "50.00", "0")
	err := NewDepositRepository(database).Create(context.Background(), &models.Deposit{
		GoalID:        goal.ID,
		UserID:        goal.UserID,
		Amount:        decimal.RequireFromString("50.01"),
		PaymentMethod: models.PaymentMethodWallet,
		Status:        models.DepositStatusCompleted,
		ReceiptNumber: "RCP-TEST-OVER",
	})
	require.NoError(t, err)

	_, err = NewGoalRepository(database).RecomputeSaved(context.Background(), goal.ID)
	assert.ErrorIs(t, err, models.ErrCheckViolation)
}
