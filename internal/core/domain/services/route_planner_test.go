package services_test

import (
	"testing"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/domain/services"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNetwork is a three-region arena: two provinces with ward posts and
// warehouses in regions 1 and 2, and a bare hub in region 3 usable as a
// detour.
type testNetwork struct {
	hub1, hub2, hub3 *office.Office
	warehouse1       *office.Office
	warehouse2       *office.Office
	wardPost1        *office.Office
	wardPost2        *office.Office
	routeHub1Hub2    *transfer.Route
	routeHub2Hub1    *transfer.Route
	routeHub1Hub3    *transfer.Route
	routeHub3Hub2    *transfer.Route
	offices          []*office.Office
	routes           []*transfer.Route
}

func buildHub(t *testing.T, name string, regionID int) *office.Office {
	t.Helper()

	region, err := kernel.NewRegionID(regionID)
	require.NoError(t, err)

	hub, err := office.NewOffice(kernel.NewUUID(), name, office.Hub, region, nil, nil, nil)
	require.NoError(t, err)
	return hub
}

func buildWarehouse(t *testing.T, name string, regionID int, provinceCode string, parentID kernel.UUID) *office.Office {
	t.Helper()

	region, err := kernel.NewRegionID(regionID)
	require.NoError(t, err)
	province, err := kernel.NewProvinceCode(provinceCode)
	require.NoError(t, err)

	warehouse, err := office.NewOffice(kernel.NewUUID(), name, office.ProvinceWarehouse,
		region, &province, nil, &parentID)
	require.NoError(t, err)
	return warehouse
}

func buildWardPost(t *testing.T, name string, regionID int, provinceCode, wardCode string, parentID kernel.UUID) *office.Office {
	t.Helper()

	region, err := kernel.NewRegionID(regionID)
	require.NoError(t, err)
	province, err := kernel.NewProvinceCode(provinceCode)
	require.NoError(t, err)
	ward, err := kernel.NewWardCode(wardCode)
	require.NoError(t, err)

	post, err := office.NewOffice(kernel.NewUUID(), name, office.WardPost,
		region, &province, &ward, &parentID)
	require.NoError(t, err)
	return post
}

func buildTransferRoute(t *testing.T, from, to *office.Office, distanceKm, transitHours float64) *transfer.Route {
	t.Helper()

	r, err := transfer.NewRoute(kernel.NewUUID(), from.ID(), to.ID(), distanceKm, transitHours, 1)
	require.NoError(t, err)
	return r
}

func buildTestNetwork(t *testing.T) *testNetwork {
	t.Helper()

	n := &testNetwork{}
	n.hub1 = buildHub(t, "Hub South", 1)
	n.hub2 = buildHub(t, "Hub North", 2)
	n.hub3 = buildHub(t, "Hub Central", 3)
	n.warehouse1 = buildWarehouse(t, "HCM Warehouse", 1, "HCM", n.hub1.ID())
	n.warehouse2 = buildWarehouse(t, "HN Warehouse", 2, "HN", n.hub2.ID())
	n.wardPost1 = buildWardPost(t, "District 1 Post", 1, "HCM", "D1001", n.warehouse1.ID())
	n.wardPost2 = buildWardPost(t, "Hoan Kiem Post", 2, "HN", "H1001", n.warehouse2.ID())

	n.routeHub1Hub2 = buildTransferRoute(t, n.hub1, n.hub2, 320, 6)
	n.routeHub2Hub1 = buildTransferRoute(t, n.hub2, n.hub1, 320, 6)
	n.routeHub1Hub3 = buildTransferRoute(t, n.hub1, n.hub3, 200, 4)
	n.routeHub3Hub2 = buildTransferRoute(t, n.hub3, n.hub2, 250, 4)

	n.offices = []*office.Office{
		n.hub1, n.hub2, n.hub3,
		n.warehouse1, n.warehouse2,
		n.wardPost1, n.wardPost2,
	}
	n.routes = []*transfer.Route{
		n.routeHub1Hub2, n.routeHub2Hub1, n.routeHub1Hub3, n.routeHub3Hub2,
	}
	return n
}

func stopIDs(plan services.RoutePlan) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(plan.Stops))
	for _, stop := range plan.Stops {
		ids = append(ids, stop.OfficeID)
	}
	return ids
}

func TestRoutePlanner_ComputeRoute(t *testing.T) {
	planner := services.NewRoutePlanner()

	t.Run("cross_region_uses_direct_hub_edge", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		plan, err := planner.ComputeRoute(network, tn.wardPost1.ID(), *tn.wardPost2.WardCode())

		// Then
		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{
			tn.wardPost1.ID(),
			tn.warehouse1.ID(),
			tn.hub1.ID(),
			tn.hub2.ID(),
			tn.warehouse2.ID(),
			tn.wardPost2.ID(),
		}, stopIDs(plan))
		assert.Equal(t, 6, plan.TotalStops)
		// 2h warehouse + 4h hub + 6h transit + 2h warehouse + 2h final leg
		assert.Equal(t, float64(16), plan.EstimatedHours)
		assert.Equal(t, float64(320), plan.TotalDistanceKm)
		assert.False(t, plan.SameRegion)
		assert.False(t, plan.SameProvince)

		// Stop ordering is 1-based and cumulative hours never decrease
		for i, stop := range plan.Stops {
			assert.Equal(t, i+1, stop.StopOrder)
			if i > 0 {
				assert.GreaterOrEqual(t, stop.HoursFromStart, plan.Stops[i-1].HoursFromStart)
			}
		}
	})

	t.Run("disabled_edge_reroutes_through_intermediate_hub", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		require.NoError(t, tn.routeHub1Hub2.Disable())
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		plan, err := planner.ComputeRoute(network, tn.wardPost1.ID(), *tn.wardPost2.WardCode())

		// Then
		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{
			tn.wardPost1.ID(),
			tn.warehouse1.ID(),
			tn.hub1.ID(),
			tn.hub3.ID(),
			tn.hub2.ID(),
			tn.warehouse2.ID(),
			tn.wardPost2.ID(),
		}, stopIDs(plan))
		assert.Equal(t, float64(18), plan.EstimatedHours)
		assert.Equal(t, float64(450), plan.TotalDistanceKm)
	})

	t.Run("no_path_between_regions_is_unroutable", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		require.NoError(t, tn.routeHub1Hub2.Disable())
		require.NoError(t, tn.routeHub1Hub3.Disable())
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		_, err := planner.ComputeRoute(network, tn.wardPost1.ID(), *tn.wardPost2.WardCode())

		// Then
		assert.ErrorIs(t, err, services.ErrNoRouteAvailable)
	})

	t.Run("same_province_stays_inside_region", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		other := buildWardPost(t, "District 3 Post", 1, "HCM", "D3001", tn.warehouse1.ID())
		network := services.NewNetwork(append(tn.offices, other), tn.routes)

		// When
		plan, err := planner.ComputeRoute(network, tn.wardPost1.ID(), *other.WardCode())

		// Then
		require.NoError(t, err)
		assert.True(t, plan.SameRegion)
		assert.True(t, plan.SameProvince)
		assert.Zero(t, plan.TotalDistanceKm)
		assert.Equal(t, []kernel.UUID{
			tn.wardPost1.ID(),
			tn.warehouse1.ID(),
			tn.hub1.ID(),
			other.ID(),
		}, stopIDs(plan))
	})

	t.Run("unknown_origin_office_is_not_found", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		_, err := planner.ComputeRoute(network, kernel.NewUUID(), *tn.wardPost2.WardCode())

		// Then
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown_ward_is_not_found", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)
		unserved, err := kernel.NewWardCode("X9999")
		require.NoError(t, err)

		// When
		_, err = planner.ComputeRoute(network, tn.wardPost1.ID(), unserved)

		// Then
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("ward_without_delivery_office_ends_at_warehouse", func(t *testing.T) {
		// Given a ward anchored to its province but served by no office
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)
		ward, err := kernel.NewWardCode("H2001")
		require.NoError(t, err)
		province, err := kernel.NewProvinceCode("HN")
		require.NoError(t, err)
		network.RegisterWard(ward, province)

		// When
		plan, err := planner.ComputeRoute(network, tn.wardPost1.ID(), ward)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{
			tn.wardPost1.ID(),
			tn.warehouse1.ID(),
			tn.hub1.ID(),
			tn.hub2.ID(),
			tn.warehouse2.ID(),
		}, stopIDs(plan))
		assert.False(t, plan.SameProvince)
	})

	t.Run("inactive_ward_office_still_anchors_its_ward", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		tn.wardPost2.Deactivate()
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		plan, err := planner.ComputeRoute(network, tn.wardPost1.ID(), *tn.wardPost2.WardCode())

		// Then
		require.NoError(t, err)
		require.NotEmpty(t, plan.Stops)
		last := plan.Stops[len(plan.Stops)-1]
		assert.True(t, last.OfficeID.IsEqual(tn.warehouse2.ID()))
	})
}

func TestRoutePlanner_HubPath(t *testing.T) {
	planner := services.NewRoutePlanner()

	t.Run("same_region_returns_single_hub", func(t *testing.T) {
		// Given
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		path, err := planner.HubPath(network, tn.hub1.RegionID(), tn.hub1.RegionID())

		// Then
		require.NoError(t, err)
		require.Len(t, path, 1)
		assert.True(t, path[0].IsEqual(tn.hub1))
	})

	t.Run("prefers_fewest_hops", func(t *testing.T) {
		// Given both the direct edge and the detour exist
		tn := buildTestNetwork(t)
		network := services.NewNetwork(tn.offices, tn.routes)

		// When
		path, err := planner.HubPath(network, tn.hub1.RegionID(), tn.hub2.RegionID())

		// Then
		require.NoError(t, err)
		require.Len(t, path, 2)
		assert.True(t, path[0].IsEqual(tn.hub1))
		assert.True(t, path[1].IsEqual(tn.hub2))
	})
}
