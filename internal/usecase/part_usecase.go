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
	ErrInvalidPartID    = errors.New("invalid part id")
	ErrInvalidPartName  = errors.New("invalid part name")
	ErrInvalidPartPrice = errors.New("invalid part price")
)

const defaultPartUnit = "un"

// IPartUseCase manages the parts and labor catalog. Everyone reads it; only admins
// change it.
type IPartUseCase interface {
	Create(ctx context.Context, actor entities.Actor, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context, query string) ([]entities.Part, error)
	Update(ctx context.Context, actor entities.Actor, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type PartUseCase struct {
	repo interfaces.IPartRepository
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

func (u *PartUseCase) Create(ctx context.Context, actor entities.Actor, p entities.Part) (entities.Part, error) {
	if !actor.IsAdmin() {
		return entities.Part{}, budgeting.ErrForbidden
	}
	p, err := validatePart(p)
	if err != nil {
		return entities.Part{}, err
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Part{}, budgeting.WrapStoreError("parts.create", err)
	}
	return created, nil
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, budgeting.WrapStoreError("parts.get", err)
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

// List returns the catalog ordered by type then name. A query matches name or type,
// case-insensitively.
func (u *PartUseCase) List(ctx context.Context, query string) ([]entities.Part, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, budgeting.WrapStoreError("parts.list", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entities.Part, 0, len(all))
	for _, p := range all {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Type), q) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (u *PartUseCase) Update(ctx context.Context, actor entities.Actor, p entities.Part) (entities.Part, error) {
	if !actor.IsAdmin() {
		return entities.Part{}, budgeting.ErrForbidden
	}
	p, err := validatePart(p)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Part{}, err
	}
	p.CreatedAt = current.CreatedAt

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Part{}, budgeting.WrapStoreError("parts.update", err)
	}
	return updated, nil
}

// Delete removes a catalog entry. Existing line items keep the name and price they
// captured when they were added.
func (u *PartUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return budgeting.ErrForbidden
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		return budgeting.WrapStoreError("parts.delete", err)
	}
	return nil
}

func validatePart(p entities.Part) (entities.Part, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Type = strings.TrimSpace(p.Type)
	p.Unit = strings.TrimSpace(p.Unit)
	p.Notes = strings.TrimSpace(p.Notes)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidPartName
	}
	if !p.Price.IsPositive() {
		return entities.Part{}, ErrInvalidPartPrice
	}
	if p.Unit == "" {
		p.Unit = defaultPartUnit
	}
	return p, nil
}
