package queries

import (
	"errors"

	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/pkg/guard"
)

var ErrListRegionsQueryIsNotConstructed = errors.New(
	"ListRegionsQuery must be created via NewListRegionsQuery constructor",
)

// ListRegionsQuery asks for every region in directory order.
type ListRegionsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRegionsQuery() ListRegionsQuery {
	return ListRegionsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRegionsQuery) Validate() error {
	return q.guard.Validate(ErrListRegionsQueryIsNotConstructed)
}

type ListRegionsQueryHandler struct {
	directory region.Directory
}

func NewListRegionsQueryHandler(directory region.Directory) ListRegionsQueryHandler {
	return ListRegionsQueryHandler{directory: directory}
}

func (h ListRegionsQueryHandler) Handle(query ListRegionsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.directory.Regions(), nil
}
