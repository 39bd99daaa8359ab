package services

import (
	"context"
	"fmt"

	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
)

// In-memory store fakes. They mimic the persistence contracts closely
// enough for the workflow tests: ids are assigned on create, lookups return
// copies, and missing rows surface stores.ErrNotFound.

type fakeInvestmentStore struct {
	rows    map[uint]*models.Investment
	nextID  uint
	creates int
	lookups int

	createErr error
	appendErr error
}

func newFakeInvestmentStore() *fakeInvestmentStore {
	return &fakeInvestmentStore{rows: map[uint]*models.Investment{}, nextID: 1}
}

func (f *fakeInvestmentStore) Create(ctx context.Context, inv *models.Investment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	inv.ID = f.nextID
	f.nextID++
	cp := *inv
	cp.Transactions = append(models.IDList{}, inv.Transactions...)
	f.rows[inv.ID] = &cp
	return nil
}

func (f *fakeInvestmentStore) FindByID(ctx context.Context, id uint) (*models.Investment, error) {
	f.lookups++
	inv, ok := f.rows[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *inv
	cp.Transactions = append(models.IDList{}, inv.Transactions...)
	return &cp, nil
}

func (f *fakeInvestmentStore) ListByUser(ctx context.Context, userID uint) ([]models.Investment, error) {
	var out []models.Investment
	for _, inv := range f.rows {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvestmentStore) ListAll(ctx context.Context) ([]models.Investment, error) {
	var out []models.Investment
	for _, inv := range f.rows {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvestmentStore) AppendTransactionRef(ctx context.Context, investmentID uint, txID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	inv, ok := f.rows[investmentID]
	if !ok {
		return stores.ErrNotFound
	}
	inv.Transactions = append(inv.Transactions, txID)
	return nil
}

func (f *fakeInvestmentStore) RemoveTransactionRef(ctx context.Context, investmentID uint, txID string) error {
	inv, ok := f.rows[investmentID]
	if !ok {
		return stores.ErrNotFound
	}
	kept := models.IDList{}
	found := false
	for _, ref := range inv.Transactions {
		if ref == txID && !found {
			found = true
			continue
		}
		kept = append(kept, ref)
	}
	if !found {
		return stores.ErrNotFound
	}
	inv.Transactions = kept
	return nil
}

func (f *fakeInvestmentStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Investment, error) {
	inv, ok := f.rows[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			inv.Status = v.(string)
		case "currency":
			inv.Currency = v.(string)
		case "payment_ref":
			ref := v.(string)
			inv.PaymentRef = &ref
		default:
			return nil, fmt.Errorf("unexpected field %q", k)
		}
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvestmentStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return stores.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeTransactionStore struct {
	rows    map[uint]*models.Transaction
	nextID  uint
	creates int

	createErr error
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{rows: map[uint]*models.Transaction{}, nextID: 1}
}

func (f *fakeTransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	tx.ID = f.nextID
	f.nextID++
	cp := *tx
	f.rows[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionStore) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, ok := f.rows[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionStore) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.rows {
		if tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.rows {
		out = append(out, *tx)
	}
	return out, nil
}

func (f *fakeTransactionStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Transaction, error) {
	tx, ok := f.rows[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "type":
			tx.Type = v.(string)
		case "status":
			tx.Status = v.(string)
		case "amount":
			tx.Amount = v.(float64)
		case "provider":
			p := v.(string)
			tx.Provider = &p
		case "provider_ref":
			p := v.(string)
			tx.ProviderRef = &p
		case "meta":
			tx.Meta = v.(models.JSONMap)
		default:
			return nil, fmt.Errorf("unexpected field %q", k)
		}
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return stores.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeProjectStore struct {
	rows    map[uint]*models.Project
	lookups int
	batches int
}

func newFakeProjectStore(projects ...*models.Project) *fakeProjectStore {
	f := &fakeProjectStore{rows: map[uint]*models.Project{}}
	for _, p := range projects {
		f.rows[p.ID] = p
	}
	return f
}

func (f *fakeProjectStore) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	f.lookups++
	p, ok := f.rows[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectStore) FindByIDs(ctx context.Context, ids []uint) ([]models.Project, error) {
	f.batches++
	var out []models.Project
	for _, id := range ids {
		if p, ok := f.rows[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeNotificationWriter struct {
	sent []models.Notification
}

func (f *fakeNotificationWriter) Create(ctx context.Context, n *models.Notification) error {
	f.sent = append(f.sent, *n)
	return nil
}
