package config

import (
	"log/slog"

	"github.com/secmon-lab/riskquant/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Server holds the webhook server flags
type Server struct {
	addr       string
	signupRole string
}

// Flags returns CLI flags for the webhook server
func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKQUANT_ADDR"),
			Destination: &x.addr,
		},
		&cli.StringFlag{
			Name:        "signup-role",
			Usage:       "Role granted to new users by the signup webhook",
			Value:       usecase.DefaultSignupRole,
			Sources:     cli.EnvVars("RISKQUANT_SIGNUP_ROLE"),
			Destination: &x.signupRole,
		},
	}
}

// LogValue implements slog.LogValuer
func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.String("signup_role", x.signupRole),
	)
}

func (x *Server) Addr() string {
	return x.addr
}

func (x *Server) SignupRole() string {
	return x.signupRole
}
