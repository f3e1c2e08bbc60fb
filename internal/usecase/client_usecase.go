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
)

var (
	ErrInvalidClientName = errors.New("invalid client name")
	ErrClientHasBudgets  = errors.New("client has budgets")
)

// IClientUseCase manages the client registry. List with a non-empty query matches the
// name case-insensitively and the phone or mobile number as typed.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, query string) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo    interfaces.IClientRepository
	budgets interfaces.IBudgetRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, budgets interfaces.IBudgetRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, budgets: budgets}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c = normalizeClient(c)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, budgeting.WrapStoreError("clients.create", err)
	}
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, budgeting.WrapStoreError("clients.get", err)
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, query string) ([]entities.Client, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, budgeting.WrapStoreError("clients.list", err)
	}

	query = strings.TrimSpace(query)
	out := make([]entities.Client, 0, len(all))
	for _, c := range all {
		if query == "" || clientMatches(c, query) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c = normalizeClient(c)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	c.CreatedAt = current.CreatedAt

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, budgeting.WrapStoreError("clients.update", err)
	}
	return updated, nil
}

// Delete refuses to remove a client that still has budgets.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	owned, err := u.budgets.List(ctx, entities.BudgetFilter{ClientID: c.ID})
	if err != nil {
		return budgeting.WrapStoreError("budgets.list", err)
	}
	if len(owned) > 0 {
		return ErrClientHasBudgets
	}

	if err := u.repo.Delete(ctx, c.ID); err != nil {
		return budgeting.WrapStoreError("clients.delete", err)
	}
	return nil
}

func normalizeClient(c entities.Client) entities.Client {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Mobile = strings.TrimSpace(c.Mobile)
	c.Notes = strings.TrimSpace(c.Notes)
	return c
}

func clientMatches(c entities.Client, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
		return true
	}
	return strings.Contains(c.Phone, query) || strings.Contains(c.Mobile, query)
}
