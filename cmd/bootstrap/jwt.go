package bootstrap

import (
	"time"

	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/pkg/jwt"
	"campus-reserve/internal/pkg/qrtoken"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewQRIssuer,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}

func NewQRIssuer(cfg config.Config) *qrtoken.Issuer {
	return qrtoken.NewIssuer(cfg.QR.Secret)
}
