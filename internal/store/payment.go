package store

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

func (s *Store) AddPaymentMethod(m model.PaymentMethod) error {
	if err := validatePaymentMethod(m); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paymentMethodIndex(m.ID) >= 0 {
		return fmt.Errorf("payment method %s: %w", m.ID, model.ErrDuplicateID)
	}
	if other, ok := s.paymentMethodByName(m.Name); ok {
		return fmt.Errorf("payment method %q (%s): %w", m.Name, other.ID, model.ErrDuplicateName)
	}
	s.paymentMethods = append(s.paymentMethods, m)
	return nil
}

// UpdatePaymentMethod replaces a method by id. Cash keeps its name.
func (s *Store) UpdatePaymentMethod(m model.PaymentMethod) error {
	if err := validatePaymentMethod(m); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.paymentMethodIndex(m.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrPaymentMethodNotFound, m.ID)
	}
	if s.paymentMethods[idx].IsCash() && !m.IsCash() {
		return fmt.Errorf("payment method %s cannot be renamed: %w", m.ID, model.ErrProtectedPaymentMethod)
	}
	if other, ok := s.paymentMethodByName(m.Name); ok && other.ID != m.ID {
		return fmt.Errorf("payment method %q (%s): %w", m.Name, other.ID, model.ErrDuplicateName)
	}
	s.paymentMethods[idx] = m
	return nil
}

// RemovePaymentMethod deletes a method by id. Cash can only be disabled.
func (s *Store) RemovePaymentMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.paymentMethodIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrPaymentMethodNotFound, id)
	}
	if s.paymentMethods[idx].IsCash() {
		return fmt.Errorf("payment method %s: %w", id, model.ErrProtectedPaymentMethod)
	}
	s.paymentMethods = append(s.paymentMethods[:idx:idx], s.paymentMethods[idx+1:]...)
	return nil
}

func (s *Store) PaymentMethod(id string) (model.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.paymentMethodIndex(id)
	if idx < 0 {
		return model.PaymentMethod{}, fmt.Errorf("%w: %s", model.ErrPaymentMethodNotFound, id)
	}
	return s.paymentMethods[idx], nil
}

func (s *Store) PaymentMethods() []model.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.PaymentMethod{}, s.paymentMethods...)
}

func (s *Store) paymentMethodIndex(id string) int {
	for i := range s.paymentMethods {
		if s.paymentMethods[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) paymentMethodByName(name string) (model.PaymentMethod, bool) {
	name = strings.TrimSpace(name)
	for _, m := range s.paymentMethods {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return model.PaymentMethod{}, false
}

func validatePaymentMethod(m model.PaymentMethod) error {
	if m.ID == "" {
		return model.Invalidf("payment method id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return model.Invalidf("payment method name is required")
	}
	return nil
}
