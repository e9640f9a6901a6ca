package api

import (
	"net/http"
	"testing"

	"investment_tracker/internal/domain"
	"investment_tracker/internal/investing"

	"github.com/stretchr/testify/require"
)

func countInvestments(t *testing.T, env testEnv) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&domain.Investment{}).Count(&count).Error)
	return count
}

func TestCreateInvestmentSuccessfulOutcome(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": 1000})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)
	require.NotZero(t, inv.ID)
	require.Equal(t, u.ID, inv.UserID)
	require.Equal(t, s.ID, inv.StrategyID)
	require.True(t, inv.Successful)
	require.Equal(t, 1000.0, inv.Amount)
	require.Equal(t, 1500.0, inv.Returns)
	require.NotEmpty(t, inv.CreatedAt)

	// Show returns the persisted record
	w = httpDo(env.r, "GET", path("/api/investment", inv.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.InvestmentResource
	decodeData(t, w, &got)
	require.Equal(t, inv, got)
}

func TestCreateInvestmentFailedOutcome(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(false), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": 1000})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)
	require.False(t, inv.Successful)
	require.Equal(t, 800.0, inv.Returns)
}

func TestCreateInvestmentIgnoresClientOutcome(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(false), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{
		"user_id": u.ID, "strategy_id": s.ID, "amount": 1000, "successful": true, "returns": 999999,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)
	require.False(t, inv.Successful)
	require.Equal(t, 800.0, inv.Returns)

	var stored domain.Investment
	require.NoError(t, env.db.First(&stored, inv.ID).Error)
	require.False(t, stored.Successful)
	require.Equal(t, "800", stored.Returns.String())
}

func TestCreateInvestmentMissingData(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	payloads := []interface{}{
		map[string]interface{}{"$user_id": 3},
		map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID},
		map[string]interface{}{"user_id": u.ID, "amount": 10},
		map[string]interface{}{"strategy_id": s.ID, "amount": 10},
		map[string]interface{}{"user_id": nil, "strategy_id": s.ID, "amount": 10},
		nil,
	}
	for _, p := range payloads {
		msg := requireError(t, httpDo(env.r, "POST", "/api/investment", p), http.StatusBadRequest)
		require.Equal(t, investing.MissingFieldsMessage, msg)
	}
	require.Zero(t, countInvestments(t, env))
}

func TestCreateInvestmentUnknownReferences(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": 999999, "strategy_id": s.ID, "amount": 100}), http.StatusNotFound)
	requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": 999999, "amount": 100}), http.StatusNotFound)
	requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": 0, "strategy_id": 0, "amount": 100}), http.StatusNotFound)

	// Ids that cannot name a row are unknown references, not bad requests
	for _, id := range []interface{}{-1, "abc", 1.5, true} {
		msg := requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": id, "strategy_id": s.ID, "amount": 100}), http.StatusNotFound)
		require.Equal(t, "User not found", msg)
		msg = requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": id, "amount": 100}), http.StatusNotFound)
		require.Equal(t, "Strategy not found", msg)
	}
	require.Zero(t, countInvestments(t, env))

	// A quoted id names the same row
	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": jsonUint(u.ID), "strategy_id": jsonUint(s.ID), "amount": 100})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)
	require.Equal(t, u.ID, inv.UserID)
	require.Equal(t, s.ID, inv.StrategyID)
	require.EqualValues(t, 1, countInvestments(t, env))
}

func TestCreateInvestmentMalformedBody(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	for _, amount := range []interface{}{"xyz", map[string]interface{}{}, []int{1}} {
		msg := requireError(t, httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": amount}), http.StatusBadRequest)
		require.Equal(t, investing.InvalidRequestMessage, msg)
	}
	msg := requireError(t, httpDo(env.r, "POST", "/api/investment", []int{1, 2}), http.StatusBadRequest)
	require.Equal(t, investing.InvalidRequestMessage, msg)
	require.Zero(t, countInvestments(t, env))
}

func TestCreateInvestmentStoresFourPlaces(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)

	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": "10.00495"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)
	require.Equal(t, 10.01, inv.Amount)
	require.Equal(t, 15.01, inv.Returns)

	var stored domain.Investment
	require.NoError(t, env.db.First(&stored, inv.ID).Error)
	require.Equal(t, "10.005", stored.Amount.String())
	require.Equal(t, "15.0075", stored.Returns.String())

	w = httpDo(env.r, "GET", path("/api/investment", inv.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.InvestmentResource
	decodeData(t, w, &got)
	require.Equal(t, inv, got)
}

func TestInvestmentUpdateAndDeleteAlwaysRejected(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)
	w := httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": 10})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv domain.InvestmentResource
	decodeData(t, w, &inv)

	for _, p := range []string{path("/api/investment", inv.ID), "/api/investment/0", "/api/investment/424242", "/api/investment/nope"} {
		msg := requireError(t, httpDo(env.r, "PUT", p, map[string]interface{}{"amount": 1, "successful": false}), http.StatusUnauthorized)
		require.Equal(t, "You can't update an investment", msg)
		msg = requireError(t, httpDo(env.r, "DELETE", p, nil), http.StatusUnauthorized)
		require.Equal(t, "You can't delete an investment", msg)
	}

	// The ledger is untouched
	require.EqualValues(t, 1, countInvestments(t, env))
	w = httpDo(env.r, "GET", path("/api/investment", inv.ID), nil)
	var got domain.InvestmentResource
	decodeData(t, w, &got)
	require.Equal(t, inv, got)
}

func TestListAndShowInvestments(t *testing.T) {
	env := setupRouter(t, investing.FixedCoin(true), nil)
	w := httpDo(env.r, "GET", "/api/investment", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":[]}`, w.Body.String())

	u := createUser(t, env.r, "Alice")
	s := createStrategy(t, env.r)
	for _, amount := range []float64{10, 20.5, 30.255} {
		w = httpDo(env.r, "POST", "/api/investment", map[string]interface{}{"user_id": u.ID, "strategy_id": s.ID, "amount": amount})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = httpDo(env.r, "GET", "/api/investment", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.InvestmentResource
	decodeData(t, w, &list)
	require.Len(t, list, 3)
	amounts := map[float64]float64{}
	for _, inv := range list {
		amounts[inv.Amount] = inv.Returns
	}
	require.Equal(t, map[float64]float64{10: 15, 20.5: 30.75, 30.26: 45.38}, amounts)

	require.Equal(t, "Investment not found", requireError(t, httpDo(env.r, "GET", "/api/investment/0", nil), http.StatusNotFound))
	requireError(t, httpDo(env.r, "GET", "/api/investment/99", nil), http.StatusNotFound)
}
