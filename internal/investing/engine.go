// Package investing resolves the outcome of a new investment.
package investing

import (
	"context"

	"investment_tracker/internal/domain"
	"investment_tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// MissingFieldsMessage is returned when user_id, strategy_id or amount is absent
	MissingFieldsMessage = "User ID, Strategy ID and Amount are required"
	// InvalidRequestMessage is returned when the body or amount cannot be decoded
	InvalidRequestMessage = "Invalid request"
)

// storedPlaces is the scale of every persisted money column
const storedPlaces = 4

// Request is a client's investment order. Outcome fields are never accepted from clients.
type Request struct {
	UserID     Ref              `json:"user_id"`
	StrategyID Ref              `json:"strategy_id"`
	Amount     *decimal.Decimal `json:"amount"`
}

// Users is the lookup the engine needs from the user store
type Users interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// Strategies is the lookup the engine needs from the strategy store
type Strategies interface {
	FindBare(ctx context.Context, id uint) (domain.Strategy, error)
}

// Ledger persists new investments
type Ledger interface {
	Create(ctx context.Context, inv *domain.Investment) error
}

// Recorder observes resolved outcomes
type Recorder interface {
	ObserveOutcome(successful bool)
}

// Engine validates an order, draws its outcome and records it
type Engine struct {
	users      Users
	strategies Strategies
	ledger     Ledger
	coin       Coin
	recorder   Recorder
}

// NewEngine wires an Engine. recorder may be nil.
func NewEngine(users Users, strategies Strategies, ledger Ledger, coin Coin, recorder Recorder) *Engine {
	return &Engine{users: users, strategies: strategies, ledger: ledger, coin: coin, recorder: recorder}
}

// Returns is amount times yield on success and amount times relief on failure
func Returns(amount decimal.Decimal, strategy domain.Strategy, successful bool) decimal.Decimal {
	if successful {
		return amount.Mul(strategy.Yield)
	}
	return amount.Mul(strategy.Relief)
}

// Invest creates an investment for req. Nothing is persisted unless every check passes.
func (e *Engine) Invest(ctx context.Context, req Request) (domain.Investment, error) {
	if !req.UserID.Set || !req.StrategyID.Set || req.Amount == nil {
		return domain.Investment{}, &store.ValidationError{Msg: MissingFieldsMessage}
	}
	ok := false
	if req.UserID.ID != 0 {
		var err error
		if ok, err = e.users.Exists(ctx, req.UserID.ID); err != nil {
			return domain.Investment{}, err
		}
	}
	if !ok {
		return domain.Investment{}, &store.NotFoundError{Msg: "User not found"}
	}
	if req.StrategyID.ID == 0 {
		return domain.Investment{}, &store.NotFoundError{Msg: "Strategy not found"}
	}
	strategy, err := e.strategies.FindBare(ctx, req.StrategyID.ID)
	if err != nil {
		return domain.Investment{}, err
	}

	// Round to the stored scale so the response matches every later read
	amount := req.Amount.Round(storedPlaces)
	successful := e.coin.Flip()
	inv := domain.Investment{
		UserID:     req.UserID.ID,
		StrategyID: strategy.ID,
		Amount:     amount,
		Successful: successful,
		Returns:    Returns(amount, strategy, successful).Round(storedPlaces),
	}
	if err := e.ledger.Create(ctx, &inv); err != nil {
		return domain.Investment{}, err
	}
	if e.recorder != nil {
		e.recorder.ObserveOutcome(successful)
	}
	logrus.WithFields(logrus.Fields{
		"investment_id": inv.ID,
		"user_id":       inv.UserID,
		"strategy_id":   inv.StrategyID,
		"amount":        inv.Amount.String(),
		"successful":    inv.Successful,
		"returns":       inv.Returns.String(),
	}).Info("Investment created")
	return inv, nil
}

// Update always refuses: investments are an append-only ledger. Existence is never checked.
func (e *Engine) Update() error {
	return &store.AuthorizationError{Msg: "You can't update an investment"}
}

// Delete always refuses: investments are an append-only ledger. Existence is never checked.
func (e *Engine) Delete() error {
	return &store.AuthorizationError{Msg: "You can't delete an investment"}
}
