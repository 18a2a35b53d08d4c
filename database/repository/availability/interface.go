package availabilityRepo

import "pawhub/models"

// AvailabilityRepository defines data access for contractor-declared
// unavailable periods.
type AvailabilityRepository interface {
	// ListUnavailable retrieves a contractor's declared unavailable periods
	// whose date range intersects [startDate, endDate].
	ListUnavailable(contractorID, startDate, endDate string) ([]models.UnavailablePeriod, error)
	// Declare persists a new unavailable period.
	Declare(period *models.UnavailablePeriod) error
	// Clear removes a declared unavailable period by id.
	Clear(periodID string) error
	// EnsureIndexes creates the indexes for the query patterns above.
	EnsureIndexes() error
}
