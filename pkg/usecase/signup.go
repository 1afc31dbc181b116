package usecase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
)

// SignupUseCase grants a fixed role to newly registered users
type SignupUseCase struct {
	role    string
	metrics *metrics
}

func newSignupUseCase(role string, m *metrics) *SignupUseCase {
	return &SignupUseCase{
		role:    role,
		metrics: m,
	}
}

// Role returns the role granted on signup
func (uc *SignupUseCase) Role() string {
	return uc.role
}

// Grant parses a signup payload, either `{"user": {...}}` or the user object itself, and
// returns the role grant. Any parse failure is returned as ErrInvalidSignup.
func (uc *SignupUseCase) Grant(ctx context.Context, body []byte) (*model.SignupGrant, *model.SignupEvent, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		uc.metrics.signups.WithLabelValues("rejected").Inc()
		return nil, nil, goerr.Wrap(ErrInvalidSignup, "failed to decode signup payload", goerr.V("cause", err.Error()))
	}
	if payload == nil {
		uc.metrics.signups.WithLabelValues("rejected").Inc()
		return nil, nil, goerr.Wrap(ErrInvalidSignup, "signup payload is not an object")
	}

	userData := json.RawMessage(body)
	if user, ok := payload["user"]; ok {
		if string(user) == "null" {
			uc.metrics.signups.WithLabelValues("rejected").Inc()
			return nil, nil, goerr.Wrap(ErrInvalidSignup, "signup user is null")
		}
		userData = user
	}

	var event model.SignupEvent
	if err := json.Unmarshal(userData, &event); err != nil {
		uc.metrics.signups.WithLabelValues("rejected").Inc()
		return nil, nil, goerr.Wrap(ErrInvalidSignup, "failed to decode signup user", goerr.V("cause", err.Error()))
	}

	uc.metrics.signups.WithLabelValues("granted").Inc()
	grant := &model.SignupGrant{
		AppMetadata: model.SignupAppMetadata{
			Roles: []string{uc.role},
		},
	}

	logging.From(ctx).Debug("signup role granted", "role", uc.role)
	return grant, &event, nil
}

// Audit records a granted signup. Events without any user identifier are reported as errors.
func (uc *SignupUseCase) Audit(ctx context.Context, event *model.SignupEvent) error {
	if event == nil || event.Identifier() == "" {
		return goerr.Wrap(ErrInvalidSignup, "signup event has no user identifier", goerr.V("role", uc.role))
	}

	logging.From(ctx).Info("user signed up",
		"user_id", event.Identifier(),
		"event", event,
		"role", uc.role,
	)
	return nil
}
