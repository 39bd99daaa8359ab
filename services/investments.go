package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
)

const fallbackCurrency = "NGN"

// InvestmentService runs the investment workflows: validated creation with a
// linked pending deposit transaction, listing with batched project
// enrichment, and owner/admin-guarded update and delete.
type InvestmentService struct {
	investments   InvestmentStore
	transactions  TransactionStore
	projects      ProjectLookup
	notifications NotificationWriter
	inTx          UnitOfWork
	now           func() time.Time
}

func NewInvestmentService(investments InvestmentStore, transactions TransactionStore, projects ProjectLookup, notifications NotificationWriter) *InvestmentService {
	s := &InvestmentService{
		investments:   investments,
		transactions:  transactions,
		projects:      projects,
		notifications: notifications,
		now:           time.Now,
	}
	s.inTx = func(ctx context.Context, fn func(InvestmentStore, TransactionStore) error) error {
		return fn(s.investments, s.transactions)
	}
	return s
}

// WithUnitOfWork binds the creation workflow's persistence steps to a real
// storage transaction.
func (s *InvestmentService) WithUnitOfWork(uow UnitOfWork) *InvestmentService {
	if uow != nil {
		s.inTx = uow
	}
	return s
}

// WithClock overrides the time source. Tests use this; production code never
// should.
func (s *InvestmentService) WithClock(now func() time.Time) *InvestmentService {
	s.now = now
	return s
}

type CreateInvestmentInput struct {
	ProjectID   string         `json:"project_id"`
	Amount      float64        `json:"amount"`
	Term        string         `json:"term"`
	Currency    string         `json:"currency"`
	PaymentRef  string         `json:"payment_ref"`
	Provider    string         `json:"provider"`
	ProviderRef string         `json:"provider_ref"`
	Meta        models.JSONMap `json:"meta"`
}

type CreateInvestmentResult struct {
	Investment  *models.Investment  `json:"investment"`
	Transaction *models.Transaction `json:"transaction"`
}

// CreateInvestment validates the request, computes the locked-in economics,
// then runs the persistence sequence — investment insert, re-fetch, pending
// deposit transaction insert, back-reference append — through the unit of
// work. All validation happens before the first write; with a real unit of
// work the writes commit or roll back together, otherwise failures after the
// investment commit are logged as partial failures.
func (s *InvestmentService) CreateInvestment(ctx context.Context, caller Identity, in CreateInvestmentInput) (*CreateInvestmentResult, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	projectID, err := models.ParseID(in.ProjectID)
	if err != nil {
		return nil, ErrInvalidInput("invalid project id")
	}
	if in.Amount <= 0 || math.IsInf(in.Amount, 0) || math.IsNaN(in.Amount) {
		return nil, ErrInvalidInput("invalid amount")
	}
	if !ValidTerm(in.Term) {
		return nil, ErrInvalidInput("invalid term (allowed: 4mo, 12mo)")
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("project not found")
		}
		return nil, ErrInternal(err)
	}
	if project.MinInvestment > 0 && in.Amount < project.MinInvestment {
		return nil, ErrInvalidInput("amount below minimum")
	}

	quote := ComputeQuote(project, in.Amount, in.Term, s.now())

	currency := in.Currency
	if currency == "" {
		currency = project.Currency
	}
	if currency == "" {
		currency = fallbackCurrency
	}

	inv := &models.Investment{
		UserID:         caller.UserID,
		ProjectID:      project.ID,
		Amount:         in.Amount,
		Currency:       currency,
		StartDate:      quote.StartDate,
		MaturityDate:   quote.MaturityDate,
		ROIPercent:     quote.ROIPercent,
		ExpectedPayout: quote.ExpectedPayout,
		Status:         models.InvestmentStatusActive,
		Transactions:   models.IDList{},
	}
	if in.PaymentRef != "" {
		inv.PaymentRef = &in.PaymentRef
	}

	var (
		saved *models.Investment
		tx    *models.Transaction
	)
	err = s.inTx(ctx, func(investments InvestmentStore, transactions TransactionStore) error {
		if err := investments.Create(ctx, inv); err != nil {
			return err
		}

		// Re-fetch so the caller sees the row as the store persisted it,
		// not the in-memory doc.
		var err error
		saved, err = investments.FindByID(ctx, inv.ID)
		if err != nil {
			log.Printf("[investments] investment %d created but re-fetch failed: %v", inv.ID, err)
			return err
		}

		tx = &models.Transaction{
			UserID:       saved.UserID,
			InvestmentID: saved.ID,
			Type:         models.TransactionTypeDeposit,
			Amount:       in.Amount,
			Status:       models.TransactionStatusPending,
			Meta:         in.Meta,
		}
		if in.Provider != "" {
			tx.Provider = &in.Provider
		}
		if in.ProviderRef != "" {
			tx.ProviderRef = &in.ProviderRef
		}
		if err := transactions.Create(ctx, tx); err != nil {
			log.Printf("[investments] deposit transaction for investment %d failed: %v", saved.ID, err)
			return err
		}

		txID := models.FormatID(tx.ID)
		if err := investments.AppendTransactionRef(ctx, saved.ID, txID); err != nil {
			log.Printf("[investments] back-reference append of transaction %s on investment %d failed: %v", txID, saved.ID, err)
			return err
		}
		saved.Transactions = append(saved.Transactions, txID)
		return nil
	})
	if err != nil {
		return nil, ErrInternal(err)
	}

	if s.notifications != nil {
		n := &models.Notification{
			UserID: saved.UserID,
			Type:   "investment_created",
			Title:  "Investment created",
			Body:   fmt.Sprintf("Your %s investment of %.2f %s was created. A deposit is pending.", in.Term, saved.Amount, saved.Currency),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			log.Printf("[investments] notification write failed for investment %d: %v", saved.ID, err)
		}
	}

	return &CreateInvestmentResult{Investment: saved, Transaction: tx}, nil
}

// ListInvestments returns the caller's investments, or every investment for
// admins, each enriched with its project via one batched lookup. A caller
// with no identity gets an empty list, not an error.
func (s *InvestmentService) ListInvestments(ctx context.Context, caller Identity) ([]models.Investment, error) {
	if caller.IsZero() {
		return []models.Investment{}, nil
	}

	var (
		rows []models.Investment
		err  error
	)
	if caller.IsAdmin() {
		rows, err = s.investments.ListAll(ctx)
	} else {
		rows, err = s.investments.ListByUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, ErrInternal(err)
	}
	if rows == nil {
		rows = []models.Investment{}
	}

	if err := s.attachProjects(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// attachProjects performs the manual populate: deduplicate project ids, one
// IN query, in-memory join. Investments whose project no longer resolves are
// returned without the enrichment.
func (s *InvestmentService) attachProjects(ctx context.Context, rows []models.Investment) error {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(rows))
	for _, inv := range rows {
		if inv.ProjectID == 0 {
			continue
		}
		if _, ok := seen[inv.ProjectID]; ok {
			continue
		}
		seen[inv.ProjectID] = struct{}{}
		ids = append(ids, inv.ProjectID)
	}
	if len(ids) == 0 {
		return nil
	}

	projects, err := s.projects.FindByIDs(ctx, ids)
	if err != nil {
		return ErrInternal(err)
	}
	byID := make(map[uint]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}
	for i := range rows {
		if p, ok := byID[rows[i].ProjectID]; ok {
			rows[i].Project = p
		}
	}
	return nil
}

// GetInvestment fetches one investment by id, enriched with its project when
// it still resolves.
func (s *InvestmentService) GetInvestment(ctx context.Context, caller Identity, id string) (*models.Investment, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	invID, err := models.ParseID(id)
	if err != nil {
		return nil, ErrInvalidInput("invalid id")
	}
	inv, err := s.investments.FindByID(ctx, invID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("investment not found")
		}
		return nil, ErrInternal(err)
	}
	if inv.ProjectID != 0 {
		if p, err := s.projects.FindByID(ctx, inv.ProjectID); err == nil {
			inv.Project = p
		}
	}
	return inv, nil
}

// UpdateInvestmentInput whitelists the mutable fields. Status may be set to
// any enumerated value; transition legality is deliberately not checked
// here.
type UpdateInvestmentInput struct {
	Status     *string `json:"status"`
	Currency   *string `json:"currency"`
	PaymentRef *string `json:"payment_ref"`
}

func (in UpdateInvestmentInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Status != nil {
		f["status"] = *in.Status
	}
	if in.Currency != nil {
		f["currency"] = *in.Currency
	}
	if in.PaymentRef != nil {
		f["payment_ref"] = *in.PaymentRef
	}
	return f
}

var validInvestmentStatus = map[string]bool{
	models.InvestmentStatusActive:     true,
	models.InvestmentStatusMatured:    true,
	models.InvestmentStatusWithdrawn:  true,
	models.InvestmentStatusReinvested: true,
}

// UpdateInvestment merges the given fields after the authorization ladder:
// unauthenticated beats not-found beats forbidden.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, caller Identity, id string, in UpdateInvestmentInput) (*models.Investment, error) {
	inv, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && !validInvestmentStatus[*in.Status] {
		return nil, ErrInvalidInput("invalid status")
	}
	updated, err := s.investments.Update(ctx, inv.ID, in.fields())
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("investment not found")
		}
		return nil, ErrInternal(err)
	}
	return updated, nil
}

// DeleteInvestment removes an investment after the same authorization
// ladder as update.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, caller Identity, id string) error {
	inv, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.investments.Delete(ctx, inv.ID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrNotFound("investment not found")
		}
		return ErrInternal(err)
	}
	return nil
}

// authorizeOwner resolves the investment and enforces the owner-or-admin
// rule with canonical string id comparison.
func (s *InvestmentService) authorizeOwner(ctx context.Context, caller Identity, id string) (*models.Investment, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	invID, err := models.ParseID(id)
	if err != nil {
		return nil, ErrInvalidInput("invalid id")
	}
	inv, err := s.investments.FindByID(ctx, invID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("investment not found")
		}
		return nil, ErrInternal(err)
	}
	if !caller.IsAdmin() && !caller.owns(inv.UserID) {
		return nil, ErrForbidden()
	}
	return inv, nil
}
