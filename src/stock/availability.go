package stock

import (
	"sort"

	"asset-stock/src/models"
)

// AvailabilityRequest asks how much of a model a new outbound transaction
// could allocate right now.
type AvailabilityRequest struct {
	Name  string
	Brand string
	Qty   float64
	Unit  string
}

// Availability separates what is physically present from what is already
// earmarked, so a caller can detect a reservation race after its own commit
// step and re-check.
type Availability struct {
	// AvailableSmart is the allocatable quantity in the requested unit:
	// containers in container mode, content in content mode. Never negative,
	// never more than the unreserved in-storage stock holds.
	AvailableSmart float64 `json:"available_smart"`

	// PhysicalCount is the raw in-storage container count, before reservations.
	PhysicalCount int `json:"physical_count"`

	// ReservedCount is the number of containers committed to other pending
	// requests.
	ReservedCount int `json:"reserved_count"`

	// Fragmented signals that the requested content amount is satisfiable,
	// but only by drawing from more than one container. Fulfillment will
	// need a content split; it is not a failure.
	Fragmented bool `json:"fragmented"`
}

// CheckAvailability computes allocatable stock for one model from a snapshot
// of the registry and the pending-reservation ledger. An unknown (name, brand)
// yields zero availability, identical to "none available".
//
// The reservation snapshot must be no older than the asset snapshot or the
// result can overstate availability; serializing the check-then-commit
// sequence is the caller's job.
func CheckAvailability(catalog []models.StandardItem, assets []models.Asset, pending []models.Reservation, req AvailabilityRequest) Availability {
	var def *models.StandardItem
	for i := range catalog {
		if catalog[i].Name == req.Name && catalog[i].Brand == req.Brand {
			def = &catalog[i]
			break
		}
	}
	if def == nil {
		return Availability{}
	}

	key := def.Key()
	balances := make([]float64, 0)
	for _, a := range assets {
		if a.Status != models.StatusInStorage || a.ModelKey() != key {
			continue
		}
		balances = append(balances, clamp(a.EffectiveBalance(), 0, a.InitialBalance))
	}
	physical := len(balances)

	reservedContainers := 0
	reservedContent := 0.0
	for _, r := range pending {
		if r.Status != models.ReservationPending || models.ModelKey(r.Name, r.Brand) != key {
			continue
		}
		if def.IsMeasurement() && def.BaseUnitOfMeasure != nil && r.Unit == *def.BaseUnitOfMeasure {
			reservedContent += r.Qty
		} else {
			reservedContainers += int(r.Qty)
		}
	}

	out := Availability{PhysicalCount: physical, ReservedCount: reservedContainers}

	contentMode := def.IsMeasurement() && def.BaseUnitOfMeasure != nil && req.Unit == *def.BaseUnitOfMeasure
	if !contentMode {
		available := physical - reservedContainers
		if available < 0 {
			available = 0
		}
		out.AvailableSmart = float64(available)
		return out
	}

	// Content mode. A pending container-level reservation will take a whole
	// drum, and which one is not decided until fulfillment; assume the
	// largest so availability is never overstated.
	sort.Sort(sort.Reverse(sort.Float64Slice(balances)))
	if reservedContainers > len(balances) {
		reservedContainers = len(balances)
	}
	remaining := balances[reservedContainers:]

	total := 0.0
	largest := 0.0
	for _, b := range remaining {
		total += b
		if b > largest {
			largest = b
		}
	}
	total -= reservedContent
	if total < 0 {
		total = 0
	}

	out.AvailableSmart = total
	out.Fragmented = req.Qty > 0 && total >= req.Qty && largest < req.Qty
	return out
}
