package queries

import (
	"errors"
	"strings"

	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/pkg/errs"
	"vizoshop/internal/pkg/guard"
)

var ErrGetSubRegionsQueryIsNotConstructed = errors.New(
	"GetSubRegionsQuery must be created via NewGetSubRegionsQuery constructor",
)

// GetSubRegionsQuery asks for the sub-regions of one region.
type GetSubRegionsQuery struct {
	region string
	guard  guard.ConstructorGuard
}

func NewGetSubRegionsQuery(regionName string) (GetSubRegionsQuery, error) {
	regionName = strings.TrimSpace(regionName)
	if regionName == "" {
		return GetSubRegionsQuery{}, errs.NewValueIsRequiredError("region")
	}
	return GetSubRegionsQuery{region: regionName, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSubRegionsQuery) Validate() error {
	return q.guard.Validate(ErrGetSubRegionsQueryIsNotConstructed)
}

func (q GetSubRegionsQuery) Region() string {
	return q.region
}

// GetSubRegionsQueryResponse carries the canonical region name with its
// sub-regions in directory order.
type GetSubRegionsQueryResponse struct {
	Region     string
	SubRegions []string
}

type GetSubRegionsQueryHandler struct {
	directory region.Directory
}

func NewGetSubRegionsQueryHandler(directory region.Directory) GetSubRegionsQueryHandler {
	return GetSubRegionsQueryHandler{directory: directory}
}

// Handle returns an errs.ObjectNotFoundError for a region outside the
// directory.
func (h GetSubRegionsQueryHandler) Handle(query GetSubRegionsQuery) (GetSubRegionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSubRegionsQueryResponse{}, err
	}

	canonical, ok := h.directory.Lookup(query.Region())
	if !ok {
		return GetSubRegionsQueryResponse{}, errs.NewObjectNotFoundError("region", query.Region())
	}

	return GetSubRegionsQueryResponse{
		Region:     canonical,
		SubRegions: h.directory.SubRegionsOf(canonical),
	}, nil
}
