package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrPartNotFound      = errors.New("part not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrInvalidItemID     = errors.New("invalid item id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidStatusName = errors.New("invalid budget status")
)

// CreateBudgetInput is what a caller supplies to open a budget. The operator is the
// acting user.
type CreateBudgetInput struct {
	ClientID        string
	Motor           entities.Motor
	Items           []ItemInput
	DiscountPercent *decimal.Decimal
	TechnicalReport string
	Notes           string
	Date            time.Time
}

// ItemInput references a catalog part. A nil UnitPrice takes the catalog price.
// With Merge set, an existing item for the same part has its quantity increased
// instead of a second item being inserted.
type ItemInput struct {
	PartID    string
	Quantity  int
	UnitPrice *decimal.Decimal
	Merge     bool
}

type ItemUpdateInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// DetailsInput edits the free-text fields and the motor. Nil fields are left as they are.
type DetailsInput struct {
	TechnicalReport *string
	Notes           *string
	Date            *time.Time
	Motor           *entities.Motor
}

// BudgetSummary backs the admin dashboard. Revenue is the sum of closed budget totals.
type BudgetSummary struct {
	Clients  int
	Parts    int
	Budgets  int
	ByStatus map[entities.BudgetStatus]int
	Revenue  decimal.Decimal
	Recent   []entities.Budget
}

const recentBudgets = 5

// IBudgetUseCase is the only entry point that mutates budgets.
//
// Every mutating method loads the stored snapshot, applies the pure operation from
// budgeting.Engine on a copy, persists it and returns the new snapshot. When a store
// call fails the error is returned together with the zero Budget.
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, actor entities.Actor, in CreateBudgetInput) (entities.Budget, error)
	GetBudget(ctx context.Context, id string) (entities.Budget, error)
	ListBudgets(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	AddItem(ctx context.Context, actor entities.Actor, budgetID string, in ItemInput) (entities.Budget, error)
	UpdateItem(ctx context.Context, actor entities.Actor, budgetID, itemID string, in ItemUpdateInput) (entities.Budget, error)
	RemoveItem(ctx context.Context, actor entities.Actor, budgetID, itemID string) (entities.Budget, error)
	SetDiscount(ctx context.Context, actor entities.Actor, budgetID string, percent *decimal.Decimal) (entities.Budget, error)
	TransitionStatus(ctx context.Context, actor entities.Actor, budgetID string, target entities.BudgetStatus) (entities.Budget, error)
	ConvertDraftToQuote(ctx context.Context, actor entities.Actor, budgetID string) (entities.Budget, error)
	AllowedStatuses(ctx context.Context, actor entities.Actor, budgetID string) ([]entities.BudgetStatus, error)
	UpdateDetails(ctx context.Context, actor entities.Actor, budgetID string, in DetailsInput) (entities.Budget, error)
	DeleteBudget(ctx context.Context, actor entities.Actor, budgetID string) error
	Summary(ctx context.Context, actor entities.Actor) (BudgetSummary, error)
}

type BudgetUseCase struct {
	budgets interfaces.IBudgetRepository
	items   interfaces.IBudgetItemRepository
	motors  interfaces.IMotorRepository
	clients interfaces.IClientRepository
	parts   interfaces.IPartRepository
	engine  budgeting.Engine
	logger  zerolog.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	items interfaces.IBudgetItemRepository,
	motors interfaces.IMotorRepository,
	clients interfaces.IClientRepository,
	parts interfaces.IPartRepository,
	engine budgeting.Engine,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgets: budgets,
		items:   items,
		motors:  motors,
		clients: clients,
		parts:   parts,
		engine:  engine,
		logger:  log.With().Str("component", "budget_usecase").Logger(),
	}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, actor entities.Actor, in CreateBudgetInput) (entities.Budget, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Budget{}, ErrInvalidClientID
	}
	if err := u.engine.Discounts.Validate(actor.Role, in.DiscountPercent); err != nil {
		return entities.Budget{}, err
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Budget{}, budgeting.WrapStoreError("clients.get", err)
	}
	if client.ID == "" {
		return entities.Budget{}, ErrClientNotFound
	}

	specs := make([]budgeting.ItemSpec, 0, len(in.Items))
	for _, item := range in.Items {
		spec, err := u.resolveItem(ctx, item)
		if err != nil {
			return entities.Budget{}, err
		}
		specs = append(specs, spec)
	}

	b, err := u.engine.NewBudget(actor.Role, budgeting.NewBudgetInput{
		ClientID:        clientID,
		OperatorID:      actor.ID,
		Motor:           in.Motor,
		Items:           specs,
		DiscountPercent: in.DiscountPercent,
		TechnicalReport: in.TechnicalReport,
		Notes:           in.Notes,
		Date:            in.Date,
	})
	if err != nil {
		return entities.Budget{}, err
	}

	// motor -> budget row -> item rows
	if _, err := u.motors.Create(ctx, b.Motor); err != nil {
		return entities.Budget{}, u.storeFailure("motors.create", b.ID, err)
	}
	if _, err := u.budgets.Create(ctx, b); err != nil {
		return entities.Budget{}, u.storeFailure("budgets.create", b.ID, err)
	}
	for _, it := range b.Items {
		if _, err := u.items.Create(ctx, it); err != nil {
			return entities.Budget{}, u.storeFailure("budget_items.create", b.ID, err)
		}
	}

	u.logger.Info().
		Str("budget_id", b.ID).
		Str("actor_id", actor.ID).
		Str("status", string(b.Status)).
		Int("items", len(b.Items)).
		Str("total", b.Total.StringFixed(2)).
		Msg("budget created")
	return b, nil
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.load(ctx, id)
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	filter.ClientID = strings.TrimSpace(filter.ClientID)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatusName
	}
	out, err := u.budgets.List(ctx, filter)
	if err != nil {
		return nil, budgeting.WrapStoreError("budgets.list", err)
	}
	return out, nil
}

func (u *BudgetUseCase) AddItem(ctx context.Context, actor entities.Actor, budgetID string, in ItemInput) (entities.Budget, error) {
	b, err := u.loadEditable(ctx, actor, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	spec, err := u.resolveItem(ctx, in)
	if err != nil {
		return entities.Budget{}, err
	}

	if in.Merge {
		if existing, ok := budgeting.NewLedger(b.ID, b.Items).FindByPart(spec.PartID); ok {
			if in.Quantity <= 0 {
				return entities.Budget{}, budgeting.ErrInvalidQuantity
			}
			qty := existing.Quantity + in.Quantity
			next, it, err := u.engine.UpdateItem(b, existing.ID, &qty, in.UnitPrice)
			if err != nil {
				return entities.Budget{}, err
			}
			if err := u.updateItem(ctx, it); err != nil {
				return entities.Budget{}, err
			}
			return u.save(ctx, next)
		}
	}

	next, it, err := u.engine.AddItem(b, spec.PartID, spec.PartName, spec.Quantity, spec.UnitPrice)
	if err != nil {
		return entities.Budget{}, err
	}
	if _, err := u.items.Create(ctx, it); err != nil {
		return entities.Budget{}, u.storeFailure("budget_items.create", b.ID, err)
	}
	return u.save(ctx, next)
}

func (u *BudgetUseCase) UpdateItem(ctx context.Context, actor entities.Actor, budgetID, itemID string, in ItemUpdateInput) (entities.Budget, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Budget{}, ErrInvalidItemID
	}
	b, err := u.loadEditable(ctx, actor, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	next, it, err := u.engine.UpdateItem(b, itemID, in.Quantity, in.UnitPrice)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.updateItem(ctx, it); err != nil {
		return entities.Budget{}, err
	}
	return u.save(ctx, next)
}

func (u *BudgetUseCase) RemoveItem(ctx context.Context, actor entities.Actor, budgetID, itemID string) (entities.Budget, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Budget{}, ErrInvalidItemID
	}
	b, err := u.loadEditable(ctx, actor, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	next, err := u.engine.RemoveItem(b, itemID)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.items.Delete(ctx, itemID); err != nil {
		return entities.Budget{}, u.storeFailure("budget_items.delete", b.ID, err)
	}
	return u.save(ctx, next)
}

func (u *BudgetUseCase) SetDiscount(ctx context.Context, actor entities.Actor, budgetID string, percent *decimal.Decimal) (entities.Budget, error) {
	b, err := u.loadEditable(ctx, actor, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	next, err := u.engine.SetDiscount(b, actor.Role, percent)
	if err != nil {
		u.logger.Debug().Err(err).Str("budget_id", b.ID).Str("role", string(actor.Role)).Msg("discount rejected")
		return entities.Budget{}, err
	}
	return u.save(ctx, next)
}

func (u *BudgetUseCase) TransitionStatus(ctx context.Context, actor entities.Actor, budgetID string, target entities.BudgetStatus) (entities.Budget, error) {
	b, err := u.load(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	next, err := u.engine.TransitionStatus(b, actor.Role, target)
	if err != nil {
		u.logger.Debug().
			Err(err).
			Str("budget_id", b.ID).
			Str("role", string(actor.Role)).
			Str("from", string(b.Status)).
			Str("to", string(target)).
			Msg("transition rejected")
		return entities.Budget{}, err
	}
	saved, err := u.save(ctx, next)
	if err != nil {
		return entities.Budget{}, err
	}
	u.logger.Info().
		Str("budget_id", b.ID).
		Str("actor_id", actor.ID).
		Str("from", string(b.Status)).
		Str("to", string(saved.Status)).
		Msg("budget status changed")
	return saved, nil
}

func (u *BudgetUseCase) ConvertDraftToQuote(ctx context.Context, actor entities.Actor, budgetID string) (entities.Budget, error) {
	b, err := u.load(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	next, err := u.engine.ConvertDraftToQuote(b, actor.Role)
	if err != nil {
		return entities.Budget{}, err
	}
	return u.save(ctx, next)
}

func (u *BudgetUseCase) AllowedStatuses(ctx context.Context, actor entities.Actor, budgetID string) ([]entities.BudgetStatus, error) {
	if !actor.Role.Valid() {
		return nil, budgeting.ErrForbidden
	}
	b, err := u.load(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return u.engine.Statuses.AllowedTargets(b.Status, actor.Role, len(b.Items)), nil
}

func (u *BudgetUseCase) UpdateDetails(ctx context.Context, actor entities.Actor, budgetID string, in DetailsInput) (entities.Budget, error) {
	b, err := u.loadEditable(ctx, actor, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	next := b.Clone()
	if in.TechnicalReport != nil {
		next.TechnicalReport = *in.TechnicalReport
	}
	if in.Notes != nil {
		next.Notes = *in.Notes
	}
	if in.Date != nil && !in.Date.IsZero() {
		next.Date = in.Date.UTC()
	}
	if in.Motor != nil {
		m := *in.Motor
		m.ID = b.Motor.ID
		m.CreatedAt = b.Motor.CreatedAt
		if m.ID == "" {
			m.ID = uuid.NewString()
			m.CreatedAt = time.Now().UTC()
			if _, err := u.motors.Create(ctx, m); err != nil {
				return entities.Budget{}, u.storeFailure("motors.create", b.ID, err)
			}
		} else if _, err := u.motors.Update(ctx, m); err != nil {
			return entities.Budget{}, u.storeFailure("motors.update", b.ID, err)
		}
		next.Motor = m
	}
	next.UpdatedAt = time.Now().UTC()
	return u.save(ctx, next)
}

// DeleteBudget removes the budget with its items and motor. Admin only.
func (u *BudgetUseCase) DeleteBudget(ctx context.Context, actor entities.Actor, budgetID string) error {
	if !actor.IsAdmin() {
		return budgeting.ErrForbidden
	}
	b, err := u.load(ctx, budgetID)
	if err != nil {
		return err
	}

	for _, it := range b.Items {
		if err := u.items.Delete(ctx, it.ID); err != nil {
			return u.storeFailure("budget_items.delete", b.ID, err)
		}
	}
	if err := u.budgets.Delete(ctx, b.ID); err != nil {
		return u.storeFailure("budgets.delete", b.ID, err)
	}
	if b.Motor.ID != "" {
		if err := u.motors.Delete(ctx, b.Motor.ID); err != nil {
			return u.storeFailure("motors.delete", b.ID, err)
		}
	}

	u.logger.Info().Str("budget_id", b.ID).Str("actor_id", actor.ID).Int("items", len(b.Items)).Msg("budget deleted")
	return nil
}

func (u *BudgetUseCase) Summary(ctx context.Context, actor entities.Actor) (BudgetSummary, error) {
	if !actor.IsAdmin() {
		return BudgetSummary{}, budgeting.ErrForbidden
	}

	all, err := u.budgets.List(ctx, entities.BudgetFilter{})
	if err != nil {
		return BudgetSummary{}, budgeting.WrapStoreError("budgets.list", err)
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return BudgetSummary{}, budgeting.WrapStoreError("clients.list", err)
	}
	parts, err := u.parts.List(ctx)
	if err != nil {
		return BudgetSummary{}, budgeting.WrapStoreError("parts.list", err)
	}

	out := BudgetSummary{
		Clients:  len(clients),
		Parts:    len(parts),
		Budgets:  len(all),
		ByStatus: make(map[entities.BudgetStatus]int, len(entities.BudgetStatuses)),
		Revenue:  decimal.Zero,
	}
	for _, s := range entities.BudgetStatuses {
		out.ByStatus[s] = 0
	}
	for _, b := range all {
		out.ByStatus[b.Status]++
		if b.Status == entities.BudgetStatusClosed {
			out.Revenue = out.Revenue.Add(b.Total)
		}
	}

	recent := make([]entities.Budget, len(all))
	copy(recent, all)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentBudgets {
		recent = recent[:recentBudgets]
	}
	out.Recent = recent
	return out, nil
}

// load assembles the snapshot from the budget row, its item rows and its motor. Totals
// are recomputed from the items so every read surface sees consistent numbers.
func (u *BudgetUseCase) load(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, u.storeFailure("budgets.get", id, err)
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	items, err := u.items.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return entities.Budget{}, u.storeFailure("budget_items.list", b.ID, err)
	}
	b.Items = budgeting.NewLedger(b.ID, items).Items()

	if b.Motor.ID != "" {
		m, err := u.motors.GetByID(ctx, b.Motor.ID)
		if err != nil {
			return entities.Budget{}, u.storeFailure("motors.get", b.ID, err)
		}
		if m.ID != "" {
			b.Motor = m
		}
	}

	budgeting.Recalculate(&b)
	return b, nil
}

func (u *BudgetUseCase) loadEditable(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.engine.CanEdit(b, actor.Role); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (u *BudgetUseCase) save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	saved, err := u.budgets.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, u.storeFailure("budgets.update", b.ID, err)
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) updateItem(ctx context.Context, it entities.LineItem) error {
	saved, err := u.items.Update(ctx, it)
	if err != nil {
		return u.storeFailure("budget_items.update", it.BudgetID, err)
	}
	if saved.ID == "" {
		return budgeting.ErrItemNotFound
	}
	return nil
}

// resolveItem looks the part up in the catalog, taking its name and, when the caller
// gave none, its price. An empty part id is left for the ledger to reject.
func (u *BudgetUseCase) resolveItem(ctx context.Context, in ItemInput) (budgeting.ItemSpec, error) {
	spec := budgeting.ItemSpec{PartID: strings.TrimSpace(in.PartID), Quantity: in.Quantity}
	if in.UnitPrice != nil {
		spec.UnitPrice = *in.UnitPrice
	}
	if spec.PartID == "" {
		return budgeting.ItemSpec{}, budgeting.ErrMissingPart
	}

	part, err := u.parts.GetByID(ctx, spec.PartID)
	if err != nil {
		return budgeting.ItemSpec{}, budgeting.WrapStoreError("parts.get", err)
	}
	if part.ID == "" {
		return budgeting.ItemSpec{}, ErrPartNotFound
	}
	spec.PartName = part.Name
	if in.UnitPrice == nil {
		spec.UnitPrice = part.Price
	}
	return spec, nil
}

func (u *BudgetUseCase) storeFailure(op, budgetID string, err error) error {
	wrapped := budgeting.WrapStoreError(op, err)
	u.logger.Error().Err(err).Str("op", op).Str("budget_id", budgetID).Msg("store call failed")
	return wrapped
}
