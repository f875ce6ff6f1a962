package config

import "time"

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Ledger      struct {
		EscrowAddress   string        `env:"ESCROW_ADDRESS" flag:"escrow-address" desc:"identity holding escrowed collateral" validate:"required,eth_addr"`
		PeriodDuration  time.Duration `env:"MORTGAGE_PERIOD_DURATION" flag:"mortgage-period-duration" validate:"duration"`
		GraceDuration   time.Duration `env:"MORTGAGE_GRACE_DURATION" flag:"mortgage-grace-duration" validate:"duration"`
		JournalCapacity int           `env:"EVENT_JOURNAL_CAPACITY" flag:"event-journal-capacity" validate:"omitempty,numeric"`
	}
	Admin struct {
		Mnemonic         string `env:"ADMIN_MNEMONIC" validate:"required_without=WalletPrivateKey"`
		AccountIndex     int    `env:"ADMIN_ACCOUNT_INDEX"`
		WalletPrivateKey string `env:"ADMIN_WALLET_PRIVATE_KEY" validate:"required_without=Mnemonic"`
	}
	Log struct {
		LogToFile bool   `env:"LOG_TO_FILE" flag:"log-to-file"`
		Color     bool   `env:"LOG_COLOR" flag:"log-color"`
		IsJSON    bool   `env:"LOG_JSON" flag:"log-json"`
		Level     string `env:"LOG_LEVEL" flag:"log-level" validate:"oneof=debug info warn error dpanic panic fatal"`
	}
	Web struct {
		Address   string `env:"WEB_ADDRESS" flag:"web-address" desc:"http server address host:port" validate:"required,hostname_port"`
		PublicUrl string `env:"WEB_PUBLIC_URL" flag:"web-public-url" desc:"public url of the ledger api, falls back to web-address if empty" validate:"omitempty,url"`
	}
}
