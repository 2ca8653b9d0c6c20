package services

import (
	"errors"
	"sort"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/pkg/errs"
)

// Processing delays added when a parcel passes through a facility.
const (
	// WarehouseProcessingHours is added at every warehouse stop.
	WarehouseProcessingHours = 2.0

	// HubProcessingHours is added at every hub stop, and used as the
	// per-hop default when a hub pair has no transfer route record.
	HubProcessingHours = 4.0
)

// ErrNoRouteAvailable is returned when the active transfer graph holds no
// path between the origin and destination regions.
var ErrNoRouteAvailable = errors.New("no route available between regions")

// RouteStop is one stop of a computed route with its 1-based position and
// the cumulative travel time from the origin.
type RouteStop struct {
	OfficeID       kernel.UUID
	OfficeName     string
	OfficeType     office.Type
	StopOrder      int
	HoursFromStart float64
}

// RoutePlan is the full computed route for a parcel.
type RoutePlan struct {
	Stops           []RouteStop
	TotalStops      int
	EstimatedHours  float64
	TotalDistanceKm float64
	SameRegion      bool
	SameProvince    bool
}

// EstimatedDeliveryTime returns the forecast arrival given a departure time.
func (p RoutePlan) EstimatedDeliveryTime(departure time.Time) time.Time {
	return departure.Add(time.Duration(p.EstimatedHours * float64(time.Hour)))
}

// Network is an in-memory arena of offices and active transfer routes that
// the route planner searches over. Callers load the relevant aggregates and
// build a Network per computation; the planner itself holds no state.
type Network struct {
	officesByID        map[kernel.UUID]*office.Office
	provinceWarehouses map[string]*office.Office
	wardOffices        map[string]*office.Office
	hubsByRegion       map[int]*office.Office
	wardProvinces      map[string]kernel.ProvinceCode
	provinceRegions    map[string]kernel.RegionID

	// adjacency holds the active outgoing edges per hub, ordered by
	// priority for deterministic expansion.
	adjacency map[kernel.UUID][]*transfer.Route
}

// NewNetwork builds the search arena from loaded offices and transfer
// routes. Inactive offices and inactive routes are left out of the graph.
func NewNetwork(offices []*office.Office, routes []*transfer.Route) *Network {
	n := &Network{
		officesByID:        make(map[kernel.UUID]*office.Office, len(offices)),
		provinceWarehouses: make(map[string]*office.Office),
		wardOffices:        make(map[string]*office.Office),
		hubsByRegion:       make(map[int]*office.Office),
		wardProvinces:      make(map[string]kernel.ProvinceCode),
		provinceRegions:    make(map[string]kernel.RegionID),
		adjacency:          make(map[kernel.UUID][]*transfer.Route),
	}

	for _, o := range offices {
		n.officesByID[o.ID()] = o

		// Geography is indexed over every office row, active or not: an
		// office going dark does not move its ward to another province.
		if o.ProvinceCode() != nil {
			code := o.ProvinceCode().String()
			if _, ok := n.provinceRegions[code]; !ok {
				n.provinceRegions[code] = o.RegionID()
			}
			if o.WardCode() != nil {
				if _, ok := n.wardProvinces[o.WardCode().String()]; !ok {
					n.wardProvinces[o.WardCode().String()] = *o.ProvinceCode()
				}
			}
		}

		if !o.IsActive() {
			continue
		}

		switch o.Type() {
		case office.ProvinceWarehouse:
			code := o.ProvinceCode().String()
			if _, ok := n.provinceWarehouses[code]; !ok {
				n.provinceWarehouses[code] = o
			}
		case office.Hub:
			region := o.RegionID().Int()
			if _, ok := n.hubsByRegion[region]; !ok {
				n.hubsByRegion[region] = o
			}
		case office.WardPost, office.WardWarehouse:
			code := o.WardCode().String()
			existing, ok := n.wardOffices[code]
			// Ward posts take precedence over ward warehouses as the
			// final delivery stop.
			if !ok || (existing.Type() != office.WardPost && o.Type() == office.WardPost) {
				n.wardOffices[code] = o
			}
		}
	}

	for _, r := range routes {
		if !r.IsActive() {
			continue
		}
		n.adjacency[r.FromHubID()] = append(n.adjacency[r.FromHubID()], r)
	}

	for hubID := range n.adjacency {
		edges := n.adjacency[hubID]
		sort.SliceStable(edges, func(i, j int) bool {
			if edges[i].Priority() != edges[j].Priority() {
				return edges[i].Priority() < edges[j].Priority()
			}
			return edges[i].ToHubID().String() < edges[j].ToHubID().String()
		})
	}

	return n
}

// Office returns the office with the given id, nil if unknown.
func (n *Network) Office(id kernel.UUID) *office.Office {
	return n.officesByID[id]
}

// ProvinceWarehouse returns the consolidation warehouse of a province, nil
// if the province has none.
func (n *Network) ProvinceWarehouse(provinceCode kernel.ProvinceCode) *office.Office {
	return n.provinceWarehouses[provinceCode.String()]
}

// WardOffice returns the delivery office serving a ward, nil if the ward
// has none.
func (n *Network) WardOffice(wardCode kernel.WardCode) *office.Office {
	return n.wardOffices[wardCode.String()]
}

// RegisterWard anchors a ward to a province for destination resolution.
// Consolidation route stop lists feed this for wards that have no office of
// their own; office rows take precedence over registered entries.
func (n *Network) RegisterWard(wardCode kernel.WardCode, provinceCode kernel.ProvinceCode) {
	if _, ok := n.wardProvinces[wardCode.String()]; !ok {
		n.wardProvinces[wardCode.String()] = provinceCode
	}
}

// WardGeography resolves the province and region a ward belongs to. The
// lookup does not require the ward to have an office of its own.
func (n *Network) WardGeography(wardCode kernel.WardCode) (kernel.ProvinceCode, kernel.RegionID, bool) {
	province, ok := n.wardProvinces[wardCode.String()]
	if !ok {
		return kernel.ProvinceCode{}, kernel.RegionID{}, false
	}
	region, ok := n.provinceRegions[province.String()]
	if !ok {
		return kernel.ProvinceCode{}, kernel.RegionID{}, false
	}
	return province, region, true
}

// HubForRegion returns the hub serving a region, nil if the region has none.
func (n *Network) HubForRegion(regionID kernel.RegionID) *office.Office {
	return n.hubsByRegion[regionID.Int()]
}

// HubForOffice resolves the hub serving an office by walking parent links,
// falling back to the region lookup when the chain does not reach a hub.
func (n *Network) HubForOffice(o *office.Office) *office.Office {
	current := o
	for current != nil {
		if current.IsHub() {
			return current
		}
		if current.ParentID() == nil {
			break
		}
		current = n.officesByID[*current.ParentID()]
	}
	return n.hubsByRegion[o.RegionID().Int()]
}

// edge returns the active transfer route from one hub to another, nil when
// no record exists.
func (n *Network) edge(fromHubID, toHubID kernel.UUID) *transfer.Route {
	for _, r := range n.adjacency[fromHubID] {
		if r.ToHubID().IsEqual(toHubID) {
			return r
		}
	}
	return nil
}

// RoutePlanner is a domain service that computes the path a parcel takes
// through the postal network, from its origin office to the office serving
// its destination ward.
//
// Key responsibilities:
//   - Resolving the origin and destination legs within their provinces
//   - Finding the shortest hub-to-hub path across regions with BFS
//   - Accumulating processing delays and transit times per stop
//
// Business rules:
//   - Warehouses add two hours of processing, hubs add four
//   - Only active transfer routes participate in the hub graph
//   - A hub pair without a route record costs the default hub delay
//   - Unroutable region pairs are an error, not a partial plan
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// ComputeRoute builds the ordered stop list from an origin office to the
// ward a parcel is addressed to.
//
// The route always follows the hierarchy: post offices forward to their
// province warehouse, warehouses to their regional hub, hubs to the
// destination region over the transfer graph, and back down to the
// destination ward. Legs already covered are not repeated: a parcel posted
// at a warehouse skips the warehouse leg, and a same-region parcel never
// enters the hub graph beyond its own hub.
func (p RoutePlanner) ComputeRoute(
	network *Network,
	originOfficeID kernel.UUID,
	destinationWardCode kernel.WardCode,
) (RoutePlan, error) {
	origin := network.Office(originOfficeID)
	if origin == nil {
		return RoutePlan{}, errs.NewObjectNotFoundError("originOffice", originOfficeID.String())
	}

	destProvince, destRegion, known := network.WardGeography(destinationWardCode)
	if !known {
		return RoutePlan{}, errs.NewObjectNotFoundError("destinationWard", destinationWardCode.String())
	}

	// The delivery office is optional: a ward without one is still served,
	// with its province warehouse as the final stop.
	destination := network.WardOffice(destinationWardCode)

	sameRegion := origin.RegionID().IsEqual(destRegion)
	sameProvince := origin.ProvinceCode() != nil && origin.ProvinceCode().IsEqual(destProvince)

	plan := RoutePlan{SameRegion: sameRegion, SameProvince: sameProvince}
	cumulativeHours := 0.0
	totalDistanceKm := 0.0

	appendStop := func(o *office.Office) {
		plan.Stops = append(plan.Stops, RouteStop{
			OfficeID:       o.ID(),
			OfficeName:     o.Name(),
			OfficeType:     o.Type(),
			StopOrder:      len(plan.Stops) + 1,
			HoursFromStart: cumulativeHours,
		})
	}
	visited := func(o *office.Office) bool {
		for _, stop := range plan.Stops {
			if stop.OfficeID.IsEqual(o.ID()) {
				return true
			}
		}
		return false
	}

	appendStop(origin)

	// Post offices hand their parcels to the province warehouse first.
	if origin.Type() == office.WardPost || origin.Type() == office.ProvincePost {
		if warehouse := network.ProvinceWarehouse(*origin.ProvinceCode()); warehouse != nil {
			cumulativeHours += WarehouseProcessingHours
			appendStop(warehouse)
		}
	}

	originHub := network.HubForOffice(origin)
	if originHub != nil && !visited(originHub) {
		cumulativeHours += HubProcessingHours
		appendStop(originHub)
	}

	if !sameRegion && originHub != nil {
		hubPath, err := p.hubPath(network, origin.RegionID(), destRegion)
		if err != nil {
			return RoutePlan{}, err
		}

		for i := 1; i < len(hubPath); i++ {
			if r := network.edge(hubPath[i-1].ID(), hubPath[i].ID()); r != nil {
				cumulativeHours += r.TransitHours()
				totalDistanceKm += r.DistanceKm()
			} else {
				cumulativeHours += HubProcessingHours
			}
			appendStop(hubPath[i])
		}
	}

	if warehouse := network.ProvinceWarehouse(destProvince); warehouse != nil && !visited(warehouse) {
		cumulativeHours += WarehouseProcessingHours
		appendStop(warehouse)
	}

	if destination != nil && !visited(destination) {
		cumulativeHours += WarehouseProcessingHours
		appendStop(destination)
	}

	plan.TotalStops = len(plan.Stops)
	plan.EstimatedHours = cumulativeHours
	plan.TotalDistanceKm = totalDistanceKm
	return plan, nil
}

// HubPath returns the hub sequence between two regions: the single serving
// hub when the regions match, the shortest path over the active transfer
// graph otherwise.
func (p RoutePlanner) HubPath(
	network *Network,
	fromRegionID, toRegionID kernel.RegionID,
) ([]*office.Office, error) {
	return p.hubPath(network, fromRegionID, toRegionID)
}

func (p RoutePlanner) hubPath(
	network *Network,
	fromRegionID, toRegionID kernel.RegionID,
) ([]*office.Office, error) {
	startHub := network.HubForRegion(fromRegionID)
	endHub := network.HubForRegion(toRegionID)
	if startHub == nil || endHub == nil {
		return nil, ErrNoRouteAvailable
	}

	if fromRegionID.IsEqual(toRegionID) {
		return []*office.Office{startHub}, nil
	}

	// BFS over the active adjacency list. Edges expand in priority order,
	// so among equal-length paths the highest-priority one wins.
	queue := []kernel.UUID{startHub.ID()}
	parent := map[kernel.UUID]*kernel.UUID{startHub.ID(): nil}
	visited := map[kernel.UUID]bool{startHub.ID(): true}

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if currentID.IsEqual(endHub.ID()) {
			return p.reconstructPath(network, parent, endHub.ID()), nil
		}

		for _, r := range network.adjacency[currentID] {
			neighborID := r.ToHubID()
			if visited[neighborID] {
				continue
			}
			visited[neighborID] = true
			current := currentID
			parent[neighborID] = &current
			queue = append(queue, neighborID)
		}
	}

	return nil, ErrNoRouteAvailable
}

func (p RoutePlanner) reconstructPath(
	network *Network,
	parent map[kernel.UUID]*kernel.UUID,
	endID kernel.UUID,
) []*office.Office {
	var path []*office.Office
	for currentID := &endID; currentID != nil; currentID = parent[*currentID] {
		path = append([]*office.Office{network.Office(*currentID)}, path...)
	}
	return path
}
