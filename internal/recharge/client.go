// Package recharge submits coin recharge orders to a remote endpoint and
// delivers the resulting credits to the game asynchronously. Without an
// endpoint configured the client runs in offline mode and grants a fixed
// credit, which is how local play works.
package recharge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/geo-shooter/internal/shooter"
)

// DefaultCreditCoins is the amount granted per successful offline order.
const DefaultCreditCoins = 100

const requestTimeout = 10 * time.Second

// Result is the terminal outcome of a submitted order, suitable for showing
// to the player.
type Result struct {
	OrderID string
	Success bool
	Message string
	Coins   int
}

// CreditSink receives credits once an order settles. *shooter.Game
// implements it; delivery may happen from any goroutine.
type CreditSink interface {
	Credit(shooter.CreditEvent)
}

// CreditStore records settled orders so a replayed order id cannot be
// credited twice. Optional; a nil store skips deduplication.
type CreditStore interface {
	SaveCredit(orderID string, amount int) (int64, error)
}

type rechargeRequest struct {
	Username  string `json:"username"`
	OrderID   string `json:"order_id"`
	Timestamp int64  `json:"timestamp"`
}

type rechargeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Coins   int    `json:"coins"`
}

// Client validates and submits recharge orders.
type Client struct {
	apiURL string
	http   *http.Client
	store  CreditStore
	sink   CreditSink

	// OnResult, when set, is called with the outcome of every submitted
	// order, after the credit (if any) has been delivered to the sink.
	OnResult func(Result)
}

// NewClient creates a client posting to apiURL. An empty apiURL selects
// offline mode.
func NewClient(apiURL string, store CreditStore, sink CreditSink) *Client {
	return &Client{
		apiURL: apiURL,
		http:   &http.Client{Timeout: requestTimeout},
		store:  store,
		sink:   sink,
	}
}

// NewOrderID generates a fresh order id acceptable to ValidateOrderID.
func NewOrderID() string {
	return uuid.NewString()
}

// Submit validates the order and settles it on a background goroutine.
// Validation failures are returned synchronously and nothing is submitted;
// everything after that arrives through the sink and OnResult.
func (c *Client) Submit(username, orderID string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if err := ValidateOrderID(orderID); err != nil {
		return err
	}

	go c.settle(username, orderID)
	return nil
}

func (c *Client) settle(username, orderID string) {
	res := c.perform(username, orderID)

	if res.Success && c.store != nil {
		if _, err := c.store.SaveCredit(orderID, res.Coins); err != nil {
			log.Warn("recharge: rejecting credit", "order", orderID, "err", err)
			res = Result{
				OrderID: orderID,
				Success: false,
				Message: "order already redeemed",
			}
		}
	}

	if res.Success {
		log.Info("recharge: order settled", "order", orderID, "coins", res.Coins)
	}

	c.sink.Credit(shooter.CreditEvent{
		OrderID: orderID,
		Amount:  res.Coins,
		Success: res.Success,
	})

	if c.OnResult != nil {
		c.OnResult(res)
	}
}

func (c *Client) perform(username, orderID string) Result {
	if c.apiURL == "" {
		// Offline mode: every valid order succeeds.
		return Result{
			OrderID: orderID,
			Success: true,
			Message: "recharge successful",
			Coins:   DefaultCreditCoins,
		}
	}

	body, err := json.Marshal(rechargeRequest{
		Username:  username,
		OrderID:   orderID,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return Result{OrderID: orderID, Message: "cannot encode request"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Result{OrderID: orderID, Message: "cannot build request"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("recharge: request failed", "order", orderID, "err", err)
		return Result{OrderID: orderID, Message: "recharge service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{
			OrderID: orderID,
			Message: fmt.Sprintf("recharge service returned %d", resp.StatusCode),
		}
	}

	var parsed rechargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{OrderID: orderID, Message: "cannot decode response"}
	}

	return Result{
		OrderID: orderID,
		Success: parsed.Success,
		Message: parsed.Message,
		Coins:   parsed.Coins,
	}
}
