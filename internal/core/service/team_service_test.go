package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type stubTeamRepository struct {
	teams  map[string]*domain.Team
	nextID int
}

func newStubTeamRepository() *stubTeamRepository {
	return &stubTeamRepository{teams: map[string]*domain.Team{}, nextID: 1}
}

func (r *stubTeamRepository) Create(_ context.Context, team *domain.Team) error {
	team.ID = fmt.Sprintf("team-%d", r.nextID)
	r.nextID++
	stored := *team
	r.teams[stored.ID] = &stored
	return nil
}

func (r *stubTeamRepository) FindByID(_ context.Context, id string) (*domain.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *stubTeamRepository) List(_ context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		out = append(out, *team)
	}
	return out, nil
}

func (r *stubTeamRepository) Update(_ context.Context, team *domain.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return domain.ErrTeamNotFound
	}
	stored := *team
	r.teams[stored.ID] = &stored
	return nil
}

func (r *stubTeamRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.teams[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func newTeamFixture(t *testing.T) (ports.TeamService, *stubUserRepository) {
	t.Helper()
	users := newStubUserRepository()
	seedUser := func(username string, role domain.Role) {
		if _, err := users.Create(context.Background(), &domain.User{Username: username, Role: role}); err != nil {
			t.Fatalf("seed %s: %v", username, err)
		}
	}
	seedUser("gestor1", domain.RoleGestor)   // id 1
	seedUser("agente1", domain.RoleAgente)   // id 2
	seedUser("cliente1", domain.RoleCliente) // id 3
	seedUser("admin1", domain.RoleAdmin)     // id 4

	return NewTeamService(newStubTeamRepository(), users, zerolog.Nop()), users
}

func TestTeamService_Create(t *testing.T) {
	svc, _ := newTeamFixture(t)

	team, err := svc.Create(context.Background(), ports.TeamInput{
		Name:      "norte",
		ManagerID: 1,
		AgentIDs:  []int64{2},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if team.ID == "" {
		t.Fatal("expected assigned id")
	}
	if team.ManagerID != 1 {
		t.Fatalf("expected manager 1, got %d", team.ManagerID)
	}
}

func TestTeamService_Create_AdminManagerAllowed(t *testing.T) {
	svc, _ := newTeamFixture(t)

	// Manager id 4 is an admin; admins can manage teams alongside gestores.
	team, err := svc.Create(context.Background(), ports.TeamInput{Name: "centro", ManagerID: 4})
	if err != nil {
		t.Fatalf("create with admin manager: %v", err)
	}
	if team.ManagerID != 4 {
		t.Fatalf("expected manager 4, got %d", team.ManagerID)
	}
}

func TestTeamService_Create_ManagerMustBeGestorOrAdmin(t *testing.T) {
	svc, _ := newTeamFixture(t)
	ctx := context.Background()

	// Manager id 3 is a cliente.
	_, err := svc.Create(ctx, ports.TeamInput{Name: "sul", ManagerID: 3})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("cliente manager: expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "gestor or admin") {
		t.Fatalf("rejection should name the accepted roles, got %q", err.Error())
	}

	// Nonexistent manager.
	_, err = svc.Create(ctx, ports.TeamInput{Name: "sul", ManagerID: 99})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing manager: expected ErrInvalidInput, got %v", err)
	}

	// Empty name.
	_, err = svc.Create(ctx, ports.TeamInput{Name: "", ManagerID: 1})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Update(t *testing.T) {
	svc, _ := newTeamFixture(t)
	ctx := context.Background()

	team, err := svc.Create(ctx, ports.TeamInput{Name: "norte", ManagerID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, team.ID, ports.TeamInput{Name: "norte-litoral", ManagerID: 1, AgentIDs: []int64{2}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "norte-litoral" || len(updated.AgentIDs) != 1 {
		t.Fatalf("unexpected team: %+v", updated)
	}

	if _, err := svc.Update(ctx, "missing", ports.TeamInput{Name: "x", ManagerID: 1}); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
