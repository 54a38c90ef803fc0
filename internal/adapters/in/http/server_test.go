package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpin "gasdelivery/internal/adapters/in/http"
	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/ports"
	"gasdelivery/internal/notifications"
	"gasdelivery/internal/pkg/errs"
)

type stubActorRepository struct {
	added []*actor.Actor
}

func (r *stubActorRepository) Add(_ context.Context, aggregate *actor.Actor) error {
	r.added = append(r.added, aggregate)
	return nil
}

func (r *stubActorRepository) Update(_ context.Context, _ *actor.Actor) error {
	return nil
}

func (r *stubActorRepository) Get(_ context.Context, id kernel.UUID) (*actor.Actor, error) {
	return nil, errs.NewObjectNotFoundError("actor_id", id.String())
}

func (r *stubActorRepository) GetAllByRole(_ context.Context, _ actor.Role) ([]*actor.Actor, error) {
	return nil, nil
}

type stubActorUoW struct {
	actors *stubActorRepository
}

func (u *stubActorUoW) Begin(_ context.Context) error    { return nil }
func (u *stubActorUoW) Commit(_ context.Context) error   { return nil }
func (u *stubActorUoW) Rollback(_ context.Context) error { return nil }

func (u *stubActorUoW) ActorRepository() ports.ActorRepository { return u.actors }

type stubActorUoWFactory struct {
	uow *stubActorUoW
}

func (f stubActorUoWFactory) Create() commands.ActorUoW { return f.uow }

func newRegistrationServer(repo *stubActorRepository) *echo.Echo {
	registerHandler := commands.NewRegisterActorCommandHandler(
		stubActorUoWFactory{uow: &stubActorUoW{actors: repo}},
	)

	server := httpin.NewServer(
		commands.CreateOrderCommandHandler{},
		commands.AssignOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		registerHandler,
		commands.UpdateProfileCommandHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetOrdersByOwnerQueryHandler{},
		queries.GetAssignedOrdersQueryHandler{},
		queries.GetDeliveryPersonnelQueryHandler{},
		notifications.NewRegistry(notifications.DefaultBuffer),
		nil,
		product.DefaultCatalog(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func TestRegisterAlwaysCreatesCustomer(t *testing.T) {
	repo := &stubActorRepository{}
	e := newRegistrationServer(repo)

	// A requested staff role must not survive sign-up.
	body := `{"role":"admin","full_name":"Eve Adams","phone_number":"+34600000001"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var resp struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, actor.RoleCustomer.String(), resp.Role)

	require.Len(t, repo.added, 1)
	assert.Equal(t, actor.RoleCustomer, repo.added[0].Role())
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	repo := &stubActorRepository{}
	e := newRegistrationServer(repo)

	body := `{"full_name":"","phone_number":"+34600000001"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.added)
}
