// Package checkout drives the order flow: phone verification, order
// assembly, best-effort notification, and the purchase side effects on the
// cart and the loyalty board.
package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"coffeesaf/internal/cart"
	"coffeesaf/internal/domain"
	"coffeesaf/internal/loyalty"
	"coffeesaf/internal/notify"
	"coffeesaf/internal/order"
	"coffeesaf/internal/verification"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotVerified = errors.New("phone not verified")
)

// Service owns the verification flow of the current checkout attempt. One
// attempt is in flight at a time, matching the single-user storefront client
// this engine serves.
type Service struct {
	cart    *cart.Store
	loyalty *loyalty.Tracker

	notifier notify.Notifier
	logger   *log.Logger

	mu            sync.Mutex
	flow          *verification.Flow
	verifiedPhone string
}

func New(cartStore *cart.Store, tracker *loyalty.Tracker, notifier notify.Notifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		cart:     cartStore,
		loyalty:  tracker,
		notifier: notifier,
		logger:   logger,
		flow:     verification.NewFlow(),
	}
}

// BeginVerification starts a fresh verification attempt, discarding any
// previously verified phone.
func (s *Service) BeginVerification() verification.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = verification.NewFlow()
	s.verifiedPhone = ""
	s.flow.Show()
	return s.flow.State()
}

// CancelVerification dismisses the dialog without verifying anything.
func (s *Service) CancelVerification() verification.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.Cancel()
	s.verifiedPhone = ""
	return s.flow.State()
}

// VerificationState exposes the current dialog snapshot.
func (s *Service) VerificationState() verification.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow.State()
}

// SubmitPhone records the entered number and asks the flow to advance to the
// code step.
func (s *Service) SubmitPhone(number string) verification.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.UpdatePhone(number)
	s.flow.SubmitPhone()
	return s.flow.State()
}

// SubmitCode records the entered code and asks the flow to verify it. On
// success the verified phone is retained for the order submission and
// returned alongside the reset state.
func (s *Service) SubmitCode(code string) (verification.State, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.UpdateCode(code)

	verified := false
	phone := ""
	s.flow.SubmitCode(func(p string) {
		verified = true
		phone = p
	})
	if verified {
		s.verifiedPhone = phone
	}
	return s.flow.State(), phone, verified
}

// Input carries the delivery details collected after verification.
type Input struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	DeliveryType string `json:"deliveryType"`
	DeliveryTime string `json:"deliveryTime"`
}

// Submit finalizes the checkout: it assembles the order from the current
// cart, fires the notification without waiting for it, stamps the loyalty
// board once per line, and clears the cart. The notification outcome is
// never surfaced to the caller.
func (s *Service) Submit(ctx context.Context, in Input) (domain.Order, error) {
	if err := validate(in); err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	phone := s.verifiedPhone
	s.mu.Unlock()
	if phone == "" {
		return domain.Order{}, ErrNotVerified
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	o := order.Assemble(lines, in.FirstName, in.LastName, phone, in.Address, in.DeliveryType, in.DeliveryTime)
	s.notifyBestEffort(order.Message(o))

	s.loyalty.CompletePurchase(len(lines))
	s.cart.Clear()

	s.mu.Lock()
	s.verifiedPhone = ""
	s.mu.Unlock()

	return o, nil
}

func validate(in Input) error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return errors.New("first name required")
	case strings.TrimSpace(in.LastName) == "":
		return errors.New("last name required")
	case in.DeliveryType != domain.DeliveryCourier && in.DeliveryType != domain.DeliveryPickup:
		return errors.New("delivery type must be delivery or pickup")
	case in.DeliveryType == domain.DeliveryCourier && strings.TrimSpace(in.Address) == "":
		return errors.New("address required for delivery")
	case strings.TrimSpace(in.DeliveryTime) == "":
		return errors.New("delivery time required")
	}
	return nil
}

// notifyBestEffort dispatches the message on a background goroutine with its
// own deadline. The submit path does not block on delivery, does not retry,
// and only logs a failure.
func (s *Service) notifyBestEffort(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.Send(ctx, text); err != nil {
			s.logger.Printf("checkout: order notification failed: %v", err)
			return
		}
		s.logger.Printf("checkout: order notification sent")
	}()
}
