package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

// CustomerService manages guest records: registration, lookup and check-out.
type CustomerService struct {
	repo  *Repository
	store store.Store
	now   Clock
	log   logrus.FieldLogger
}

// Repository exposes the generic operations (get, list, update, delete).
func (s *CustomerService) Repository() *Repository {
	return s.repo
}

// FindByMobile returns the customer registered with mobile, or models.ErrNotFound.
func (s *CustomerService) FindByMobile(ctx context.Context, mobile string) (models.Document, error) {
	docs, err := s.store.Query(ctx, store.Customers, store.Query{Index: store.MobileIndex, Value: mobile})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, models.ErrNotFound
	}
	return docs[0], nil
}

// Create registers and checks in a new customer. A mobile number already on file yields a
// *models.ConflictError carrying the existing record.
//
// Uniqueness is checked with a lookup before the insert, not enforced by the store: two
// concurrent registrations of the same mobile can both pass the lookup and both be written.
func (s *CustomerService) Create(ctx context.Context, fields models.Document) (models.Document, error) {
	name := strings.TrimSpace(fields.String(models.FieldName))
	mobile := strings.TrimSpace(fields.String(models.FieldMobile))
	if name == "" || mobile == "" {
		return nil, fmt.Errorf("%w: name and mobile are required", models.ErrValidation)
	}

	existing, err := s.FindByMobile(ctx, mobile)
	switch {
	case err == nil:
		return nil, &models.ConflictError{Reason: "Customer with this mobile already exists", Existing: existing}
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	doc := models.Document{
		models.FieldName:   name,
		models.FieldMobile: mobile,
	}
	if v := fields[models.FieldWalletAmount]; v != nil {
		n, ok := models.ToNumber(v)
		if !ok {
			return nil, fmt.Errorf("%w: walletAmount must be a number", models.ErrValidation)
		}
		doc[models.FieldWalletAmount] = n
	}
	return s.repo.Create(ctx, doc)
}

// List returns all customers, most recent check-in first.
func (s *CustomerService) List(ctx context.Context) ([]models.Document, error) {
	return s.repo.List(ctx)
}

// Search matches the query case-insensitively against names and as a substring of mobile
// numbers. An empty query matches nothing.
func (s *CustomerService) Search(ctx context.Context, query string) ([]models.Document, error) {
	out := []models.Document{}
	if query == "" {
		return out, nil
	}
	docs, err := s.store.Scan(ctx, store.Customers)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(query)
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.String(models.FieldName)), lower) ||
			strings.Contains(d.String(models.FieldMobile), query) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Checkout marks the customer checked out now.
func (s *CustomerService) Checkout(ctx context.Context, id string) (models.Document, error) {
	u := store.NewUpdate().
		Set(models.FieldStatus, string(models.CustomerCheckedOut)).
		Set(models.FieldCheckoutTime, models.Timestamp(s.now()))
	return s.repo.Apply(ctx, id, u)
}
