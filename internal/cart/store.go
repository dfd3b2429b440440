// Package cart holds the client-local cart: a persistent mapping of
// product to desired quantity, independent of the session record.
// Every mutation reads the stored lines and rewrites them wholesale.
package cart

import (
	"errors"
	"fmt"

	"webshop-client/internal/storage"
)

type Store struct {
	storage *storage.Store
}

func NewStore(st *storage.Store) *Store {
	return &Store{storage: st}
}

func (s *Store) lines() ([]CartLine, error) {
	var lines []CartLine
	if _, err := s.storage.Get(storage.KeyCart, &lines); err != nil {
		return nil, errors.Join(ErrFailedReadCart, err)
	}
	return lines, nil
}

func (s *Store) save(lines []CartLine) error {
	if err := s.storage.Set(storage.KeyCart, lines); err != nil {
		return errors.Join(ErrFailedWriteCart, err)
	}
	return nil
}

// Get reconstructs the cart and its derived total from stored lines.
func (s *Store) Get() (Cart, error) {
	lines, err := s.lines()
	if err != nil {
		return Cart{}, err
	}
	return Cart{Lines: lines, TotalAmount: totalOf(lines)}, nil
}

// Add merges line into the cart: an existing line for the same
// product id has the quantities summed, otherwise line is appended.
func (s *Store) Add(line CartLine) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("invalid quantity %d for product %d", line.Quantity, line.ProductID)
	}

	lines, err := s.lines()
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	return s.save(lines)
}

// UpdateQuantity overwrites the quantity of an existing line with the
// caller-supplied value and is a no-op when the product is absent.
// No floor is enforced here: zero and negative values are stored
// verbatim, and rejecting them is the caller's policy decision.
func (s *Store) UpdateQuantity(productID uint, quantity int) error {
	lines, err := s.lines()
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return s.save(lines)
		}
	}
	return nil
}

// Remove drops the line for productID entirely.
func (s *Store) Remove(productID uint) error {
	lines, err := s.lines()
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	return s.save(kept)
}

// Clear empties the store. Called only after a confirmed successful
// checkout (or via the session store on logout).
func (s *Store) Clear() error {
	if err := s.storage.Remove(storage.KeyCart); err != nil {
		return errors.Join(ErrFailedClearCart, err)
	}
	return nil
}
