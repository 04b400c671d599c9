//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "money is encoded as a string, got %T", v)
	return decimal.RequireFromString(s)
}

func field(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := body[key].(map[string]any)
	require.True(t, ok, "missing object %q in %v", key, body)
	return v
}

func targetDate() string {
	return time.Now().Add(60 * 24 * time.Hour).UTC().Format(time.RFC3339)
}

// pay opens a checkout for amount and confirms it, returning the confirmation body.
func pay(t *testing.T, c *Client, goalID, amount string) (int, map[string]any) {
	t.Helper()

	var checkout map[string]any
	status := c.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/checkout", map[string]any{"amount": amount}, "", &checkout)
	require.Equal(t, http.StatusCreated, status, "checkout: %v", checkout)

	var body map[string]any
	status = c.Do(http.MethodPost, "/api/v1/payments/confirmations", map[string]any{
		"goal_id":    goalID,
		"session_id": checkout["session_id"],
		"status":     "success",
		"amount":     amount,
	}, "", &body)
	return status, body
}

func TestGoalFundRedeemRelease(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	store := ts.As(auth.RoleStore)
	admin := ts.As(auth.RoleAdmin)
	product := ts.SeedProduct("1000.00")
	address := ts.SeedAddress(customer.UserID)

	var created map[string]any
	status := customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "1000.00",
		"target_date":   targetDate(),
	}, "", &created)
	require.Equal(t, http.StatusCreated, status, "create: %v", created)

	goal := field(t, created, "goal")
	goalID := goal["id"].(string)
	assert.Equal(t, "ACTIVE", goal["status"])
	assert.True(t, money(t, goal["remaining"]).Equal(decimal.NewFromInt(1000)))

	status, first := pay(t, customer, goalID, "380.00")
	require.Equal(t, http.StatusCreated, status, "first deposit: %v", first)
	assert.False(t, first["completed"].(bool))
	assert.True(t, money(t, field(t, first, "escrow")["amount"]).Equal(decimal.NewFromInt(380)))

	status, _ = pay(t, customer, goalID, "700.00")
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, last := pay(t, customer, goalID, "620.00")
	require.Equal(t, http.StatusCreated, status, "final deposit: %v", last)
	assert.True(t, last["completed"].(bool))
	assert.Equal(t, "COMPLETED", field(t, last, "goal")["status"])

	escrow := field(t, last, "escrow")
	escrowID := escrow["id"].(string)
	assert.Equal(t, "HELD", escrow["status"])
	assert.True(t, money(t, escrow["amount"]).Equal(decimal.NewFromInt(1000)))

	var deposits map[string]any
	require.Equal(t, http.StatusOK, customer.Do(http.MethodGet, "/api/v1/goals/"+goalID+"/deposits", nil, "", &deposits))
	assert.Len(t, deposits["deposits"], 2)

	var delivery map[string]any
	status = customer.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/redeem", map[string]any{
		"address_id": address.ID,
	}, "", &delivery)
	require.Equal(t, http.StatusCreated, status, "redeem: %v", delivery)
	deliveryID := delivery["id"].(string)
	assert.Equal(t, "PENDING", delivery["status"])
	assert.NotEmpty(t, delivery["tracking_number"])

	var releasable map[string]any
	require.Equal(t, http.StatusOK, admin.Do(http.MethodGet, "/api/v1/admin/escrows/releasable", nil, "", &releasable))
	assert.Empty(t, releasable["escrows"], "nothing is releasable before delivery")

	status = store.Do(http.MethodPatch, "/api/v1/admin/deliveries/"+deliveryID+"/status",
		map[string]any{"status": "IN_TRANSIT"}, "", nil)
	require.Equal(t, http.StatusOK, status)

	status = customer.Do(http.MethodPost, "/api/v1/deliveries/"+deliveryID+"/confirm", nil, "", &delivery)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "DELIVERED", delivery["status"])

	var tracking map[string]any
	require.Equal(t, http.StatusOK, customer.Do(http.MethodGet, "/api/v1/deliveries/"+deliveryID+"/tracking", nil, "", &tracking))
	assert.NotEmpty(t, tracking["tracking"])

	require.Equal(t, http.StatusOK, admin.Do(http.MethodGet, "/api/v1/admin/escrows/releasable", nil, "", &releasable))
	assert.Len(t, releasable["escrows"], 1)

	var released map[string]any
	status = admin.Do(http.MethodPost, "/api/v1/admin/escrows/"+escrowID+"/release", nil, "release-1", &released)
	require.Equal(t, http.StatusOK, status, "release: %v", released)
	assert.Equal(t, "RELEASED", released["status"])
	assert.True(t, money(t, released["platform_fee"]).Equal(decimal.NewFromInt(50)))
	assert.True(t, money(t, released["net_amount"]).Equal(decimal.NewFromInt(950)))

	status = admin.Do(http.MethodPost, "/api/v1/admin/escrows/"+escrowID+"/release", nil, "release-2", nil)
	assert.Equal(t, http.StatusConflict, status, "an escrow settles once")
}

func TestCancelFundedGoalAndApproveRefund(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	admin := ts.As(auth.RoleAdmin)
	product := ts.SeedProduct("250.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "250.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	status, _ := pay(t, customer, goalID, "100.00")
	require.Equal(t, http.StatusCreated, status)

	var cancelled map[string]any
	status = customer.Do(http.MethodDelete, "/api/v1/goals/"+goalID+"?reason=changed+my+mind", nil, "", &cancelled)
	require.Equal(t, http.StatusOK, status, "cancel: %v", cancelled)
	assert.False(t, cancelled["deleted"].(bool))
	assert.Equal(t, "CANCELLED", field(t, cancelled, "goal")["status"])

	request := field(t, cancelled, "refund_request")
	assert.Equal(t, "REQUESTED", request["status"])
	assert.Equal(t, "changed my mind", request["reason"])

	status = customer.Do(http.MethodDelete, "/api/v1/goals/"+goalID, nil, "", nil)
	assert.Equal(t, http.StatusConflict, status, "a second cancel is rejected")

	var pending map[string]any
	require.Equal(t, http.StatusOK, admin.Do(http.MethodGet, "/api/v1/admin/refund-requests?status=REQUESTED", nil, "", &pending))
	assert.Len(t, pending["refund_requests"], 1)

	var approved map[string]any
	status = admin.Do(http.MethodPost, "/api/v1/admin/refund-requests/"+request["id"].(string)+"/approve",
		map[string]any{"note": "approved"}, "", &approved)
	require.Equal(t, http.StatusOK, status, "approve: %v", approved)

	refund := field(t, approved, "refund")
	assert.True(t, money(t, refund["amount"]).Equal(decimal.NewFromInt(80)))
	assert.True(t, money(t, refund["platform_share"]).Equal(decimal.NewFromInt(10)))
	assert.True(t, money(t, refund["store_share"]).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "REFUNDED", field(t, approved, "escrow")["status"])
	assert.Equal(t, "REFUNDED", field(t, approved, "goal")["status"])

	status = admin.Do(http.MethodPost, "/api/v1/admin/refund-requests/"+request["id"].(string)+"/approve", nil, "", nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestCancelUnfundedGoalDeletesIt(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("40.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "40.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	var cancelled map[string]any
	require.Equal(t, http.StatusOK, customer.Do(http.MethodDelete, "/api/v1/goals/"+goalID, nil, "", &cancelled))
	assert.True(t, cancelled["deleted"].(bool))

	assert.Equal(t, http.StatusNotFound, customer.Do(http.MethodGet, "/api/v1/goals/"+goalID, nil, "", nil))
}

func TestGoalsAreVisibleOnlyToTheirOwner(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	owner := ts.As(auth.RoleCustomer)
	stranger := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("90.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, owner.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "90.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	assert.Equal(t, http.StatusForbidden, stranger.Do(http.MethodGet, "/api/v1/goals/"+goalID, nil, "", nil))
	assert.Equal(t, http.StatusForbidden, stranger.Do(http.MethodDelete, "/api/v1/goals/"+goalID, nil, "", nil))

	var list map[string]any
	require.Equal(t, http.StatusOK, stranger.Do(http.MethodGet, "/api/v1/goals", nil, "", &list))
	assert.Empty(t, list["goals"])

	assert.Equal(t, http.StatusForbidden, owner.Do(http.MethodGet, "/api/v1/admin/escrows", nil, "", nil))
}

func TestCreateGoalTwiceUpdatesTheLiveGoal(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("500.00")
	body := map[string]any{
		"product_id":    product.ID,
		"target_amount": "500.00",
		"target_date":   targetDate(),
	}

	var first, second map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", body, "", &first))

	body["target_amount"] = "450.00"
	require.Equal(t, http.StatusOK, customer.Do(http.MethodPost, "/api/v1/goals", body, "", &second))

	assert.Equal(t, field(t, first, "goal")["id"], field(t, second, "goal")["id"])
	assert.True(t, money(t, field(t, second, "goal")["target_amount"]).Equal(decimal.NewFromInt(450)))
}

func TestConfirmPaymentReplay(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("300.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "300.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	var checkout map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/checkout",
		map[string]any{"amount": "50.00"}, "", &checkout))

	confirm := map[string]any{
		"goal_id":    goalID,
		"session_id": checkout["session_id"],
		"status":     "success",
		"amount":     "50.00",
	}

	var first, second map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/payments/confirmations", confirm, "", &first))
	require.Equal(t, http.StatusOK, customer.Do(http.MethodPost, "/api/v1/payments/confirmations", confirm, "", &second))

	assert.True(t, second["replayed"].(bool))
	assert.Equal(t, field(t, first, "deposit")["id"], field(t, second, "deposit")["id"])
	assert.True(t, money(t, field(t, second, "goal")["saved"]).Equal(decimal.NewFromInt(50)))

	confirm["amount"] = "60.00"
	assert.Equal(t, http.StatusUnprocessableEntity,
		customer.Do(http.MethodPost, "/api/v1/payments/confirmations", confirm, "", nil))

	confirm["status"] = "cancel"
	assert.Equal(t, http.StatusPaymentRequired,
		customer.Do(http.MethodPost, "/api/v1/payments/confirmations", confirm, "", nil))
}

func TestConcurrentConfirmationsRecordOneDeposit(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("200.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "200.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	var checkout map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/checkout",
		map[string]any{"amount": "75.00"}, "", &checkout))

	const attempts = 8
	var wg sync.WaitGroup
	statuses := make(chan int, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses <- customer.Do(http.MethodPost, "/api/v1/payments/confirmations", map[string]any{
				"goal_id":    goalID,
				"session_id": checkout["session_id"],
				"status":     "success",
				"amount":     "75.00",
			}, "", nil)
		}()
	}
	wg.Wait()
	close(statuses)

	createdCount := 0
	for status := range statuses {
		switch status {
		case http.StatusCreated:
			createdCount++
		case http.StatusOK:
		default:
			t.Errorf("unexpected status %d", status)
		}
	}
	assert.Equal(t, 1, createdCount)

	var goal map[string]any
	require.Equal(t, http.StatusOK, customer.Do(http.MethodGet, "/api/v1/goals/"+goalID, nil, "", &goal))
	assert.True(t, money(t, goal["saved"]).Equal(decimal.NewFromInt(75)))
}

func TestIdempotencyKeyReplaysCheckout(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	customer := ts.As(auth.RoleCustomer)
	product := ts.SeedProduct("120.00")

	var created map[string]any
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals", map[string]any{
		"product_id":    product.ID,
		"target_amount": "120.00",
		"target_date":   targetDate(),
	}, "", &created))
	goalID := field(t, created, "goal")["id"].(string)

	var first, second map[string]any
	body := map[string]any{"amount": "20.00"}
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/checkout", body, "checkout-once", &first))
	require.Equal(t, http.StatusCreated, customer.Do(http.MethodPost, "/api/v1/goals/"+goalID+"/checkout", body, "checkout-once", &second))

	assert.Equal(t, first["session_id"], second["session_id"])
	assert.Equal(t, 1, ts.Gateway.seq, "the gateway is called once")
}
