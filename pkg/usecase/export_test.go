package usecase

// CachedAssessments returns the number of memoized results
func (uc *AssessmentUseCase) CachedAssessments() int {
	if uc.cache == nil {
		return 0
	}
	return uc.cache.Len()
}
