package usecase

import (
	"context"
	"errors"
	"testing"

	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	mock_interfaces "rebobinagem/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPartUseCase(t *testing.T) (*PartUseCase, *mock_interfaces.MockIPartRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPartRepository(ctrl)
	return NewPartUseCase(repo), repo
}

func TestPartUseCase_Create(t *testing.T) {
	t.Run("operator is forbidden", func(t *testing.T) {
		uc, _ := newPartUseCase(t)
		_, err := uc.Create(context.Background(), operatorActor, entities.Part{Name: "x", Price: dec("1")})
		if !errors.Is(err, budgeting.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newPartUseCase(t)
		if _, err := uc.Create(context.Background(), adminActor, entities.Part{Name: " ", Price: dec("1")}); !errors.Is(err, ErrInvalidPartName) {
			t.Fatalf("expected ErrInvalidPartName, got %v", err)
		}
		if _, err := uc.Create(context.Background(), adminActor, entities.Part{Name: "x", Price: dec("0")}); !errors.Is(err, ErrInvalidPartPrice) {
			t.Fatalf("expected ErrInvalidPartPrice, got %v", err)
		}
	})

	t.Run("success defaults the unit", func(t *testing.T) {
		uc, repo := newPartUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.ID == "" || p.Unit != "un" || !p.Price.Equal(dec("45.9")) {
					t.Fatalf("unexpected part: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), adminActor, entities.Part{Name: "Rolamento 6205", Type: "rolamento", Price: dec("45.90")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPartUseCase_List(t *testing.T) {
	uc, repo := newPartUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Part{
		{ID: "3", Name: "Verniz", Type: "material"},
		{ID: "1", Name: "Rolamento 6205", Type: "rolamento"},
		{ID: "2", Name: "Fio 18 AWG", Type: "material"},
	}, nil).Times(2)

	all, err := uc.List(context.Background(), "")
	if err != nil || len(all) != 3 || all[0].ID != "2" || all[1].ID != "3" || all[2].ID != "1" {
		t.Fatalf("unexpected ordering err=%v res=%+v", err, all)
	}

	byType, err := uc.List(context.Background(), "MATERIAL")
	if err != nil || len(byType) != 2 {
		t.Fatalf("unexpected filter result err=%v res=%+v", err, byType)
	}
}

func TestPartUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("update not found", func(t *testing.T) {
		uc, repo := newPartUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{}, nil)

		_, err := uc.Update(context.Background(), adminActor, entities.Part{ID: "p-1", Name: "x", Price: dec("2")})
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("operator cannot delete", func(t *testing.T) {
		uc, _ := newPartUseCase(t)
		if err := uc.Delete(context.Background(), operatorActor, "p-1"); !errors.Is(err, budgeting.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin deletes", func(t *testing.T) {
		uc, repo := newPartUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), adminActor, "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
