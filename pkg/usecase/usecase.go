package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
	"github.com/secmon-lab/riskquant/pkg/service/quant"
)

const (
	// DefaultCacheSize is the number of assessments memoized by default
	DefaultCacheSize = 256

	// DefaultSignupRole is granted by the signup webhook when no role is configured
	DefaultSignupRole = "viewer"
)

type UseCases struct {
	catalog    *config.Catalog
	cacheSize  int
	signupRole string
	registerer prometheus.Registerer

	Assessment *AssessmentUseCase
	Signup     *SignupUseCase
}

type Option func(*UseCases)

// WithCatalog replaces the default catalog
func WithCatalog(catalog *config.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

// WithCacheSize sets the number of memoized assessments. Zero or less disables the cache.
func WithCacheSize(size int) Option {
	return func(uc *UseCases) {
		uc.cacheSize = size
	}
}

// WithSignupRole sets the role granted by the signup webhook
func WithSignupRole(role string) Option {
	return func(uc *UseCases) {
		uc.signupRole = role
	}
}

// WithRegisterer registers use case metrics on reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(uc *UseCases) {
		uc.registerer = reg
	}
}

func New(opts ...Option) (*UseCases, error) {
	uc := &UseCases{
		cacheSize:  DefaultCacheSize,
		signupRole: DefaultSignupRole,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.signupRole == "" {
		return nil, goerr.Wrap(ErrEmptySignupRole, "failed to create use cases")
	}

	engine, err := quant.New(uc.catalog)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment engine")
	}

	metrics := newMetrics(uc.registerer)

	assessment, err := newAssessmentUseCase(engine, uc.cacheSize, metrics)
	if err != nil {
		return nil, err
	}
	uc.Assessment = assessment
	uc.Signup = newSignupUseCase(uc.signupRole, metrics)

	return uc, nil
}
