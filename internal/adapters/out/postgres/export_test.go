package postgres

// TrackedCount reports how many aggregates were written and not rolled back.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
