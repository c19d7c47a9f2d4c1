package recharge

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vovakirdan/geo-shooter/internal/config"
	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/shooter"
)

func newSinkGame() *shooter.Game {
	g := shooter.New(config.DefaultShooterConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func emptyFrame() core.CommandFrame {
	return core.NewCommandFrame()
}

type captureSink struct {
	events chan shooter.CreditEvent
}

func newCaptureSink() *captureSink {
	return &captureSink{events: make(chan shooter.CreditEvent, 4)}
}

func (s *captureSink) Credit(ev shooter.CreditEvent) {
	s.events <- ev
}

func (s *captureSink) wait(t *testing.T) shooter.CreditEvent {
	t.Helper()
	select {
	case ev := <-s.events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no credit event delivered")
		return shooter.CreditEvent{}
	}
}

type fakeStore struct {
	seen map[string]bool
}

func (f *fakeStore) SaveCredit(orderID string, amount int) (int64, error) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	if f.seen[orderID] {
		return 0, errors.New("order already credited")
	}
	f.seen[orderID] = true
	return 1, nil
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "player_1", nil},
		{"empty", "", ErrUsernameEmpty},
		{"leading space", " alice", ErrUsernameSpaces},
		{"trailing space", "alice ", ErrUsernameSpaces},
		{"too short", "ab", ErrUsernameLength},
		{"too long", "abcdefghijklmnopqrstu", ErrUsernameLength},
		{"starts with digit", "1alice", ErrUsernameStart},
		{"bad character", "ali!ce", ErrUsernameChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateUsername(tt.username); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOrderID(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		orderID string
		wantErr error
	}{
		{"valid", "ORDER-123_abc", nil},
		{"uuid shaped", NewOrderID(), nil},
		{"empty", "", ErrOrderIDEmpty},
		{"surrounding space", " x ", ErrOrderIDSpaces},
		{"too long", string(long), ErrOrderIDLength},
		{"bad character", "order#1", ErrOrderIDChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateOrderID(tt.orderID); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateOrderID(%q) = %v, want %v", tt.orderID, err, tt.wantErr)
			}
		})
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	sink := newCaptureSink()
	client := NewClient("", nil, sink)

	if err := client.Submit("", "order-1"); err == nil {
		t.Error("Submit should reject empty username")
	}
	if err := client.Submit("alice", "bad order!"); err == nil {
		t.Error("Submit should reject invalid order id")
	}

	select {
	case ev := <-sink.events:
		t.Errorf("no credit should be delivered for invalid input, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmitOfflineMode(t *testing.T) {
	sink := newCaptureSink()
	client := NewClient("", nil, sink)

	if err := client.Submit("alice", "order-1"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	ev := sink.wait(t)
	if !ev.Success {
		t.Error("offline order should succeed")
	}
	if ev.Amount != DefaultCreditCoins {
		t.Errorf("credit amount = %d, want %d", ev.Amount, DefaultCreditCoins)
	}
	if ev.OrderID != "order-1" {
		t.Errorf("credit order id = %q", ev.OrderID)
	}
}

func TestSubmitRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rechargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("cannot decode request: %v", err)
		}
		if req.Username != "alice" || req.OrderID != "order-7" {
			t.Errorf("unexpected request payload: %+v", req)
		}
		json.NewEncoder(w).Encode(rechargeResponse{
			Success: true,
			Message: "ok",
			Coins:   250,
		})
	}))
	defer srv.Close()

	sink := newCaptureSink()
	client := NewClient(srv.URL, nil, sink)

	var result Result
	done := make(chan struct{})
	client.OnResult = func(r Result) {
		result = r
		close(done)
	}

	if err := client.Submit("alice", "order-7"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	ev := sink.wait(t)
	if !ev.Success || ev.Amount != 250 {
		t.Errorf("unexpected credit: %+v", ev)
	}

	<-done
	if !result.Success || result.Coins != 250 || result.Message != "ok" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSubmitRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rechargeResponse{
			Success: false,
			Message: "unknown order",
		})
	}))
	defer srv.Close()

	sink := newCaptureSink()
	client := NewClient(srv.URL, nil, sink)

	if err := client.Submit("alice", "order-9"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	ev := sink.wait(t)
	if ev.Success {
		t.Error("rejected order must deliver a failed credit")
	}
	if ev.Amount != 0 {
		t.Errorf("failed credit carries amount %d", ev.Amount)
	}
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := newCaptureSink()
	client := NewClient(srv.URL, nil, sink)

	if err := client.Submit("alice", "order-10"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	if ev := sink.wait(t); ev.Success {
		t.Error("server error must deliver a failed credit")
	}
}

func TestSubmitDeduplicatesOrders(t *testing.T) {
	sink := newCaptureSink()
	store := &fakeStore{}
	client := NewClient("", store, sink)

	if err := client.Submit("alice", "order-1"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if ev := sink.wait(t); !ev.Success {
		t.Fatal("first order should succeed")
	}

	// Replaying the same order settles as a failure.
	if err := client.Submit("alice", "order-1"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if ev := sink.wait(t); ev.Success {
		t.Error("replayed order must not be credited twice")
	}
}

func TestCreditFlowsIntoGameBalance(t *testing.T) {
	g := newSinkGame()
	client := NewClient("", nil, g)

	if err := client.Submit("alice", "order-1"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	// The game folds buffered credits in at its next step.
	deadline := time.After(5 * time.Second)
	for {
		st := g.Step(emptyFrame())
		if st.Status.Coins == DefaultCreditCoins {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("coins = %d, want %d", st.Status.Coins, DefaultCreditCoins)
		default:
			time.Sleep(time.Millisecond)
		}
	}
}
