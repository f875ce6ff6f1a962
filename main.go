/*
Escrow ledger node for peer-to-peer NFT-collateralized mortgages.
*/

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/ch1ch0gz/NFTMortgage/api"
	"github.com/ch1ch0gz/NFTMortgage/config"
	"github.com/ch1ch0gz/NFTMortgage/custody"
	"github.com/ch1ch0gz/NFTMortgage/interop"
	"github.com/ch1ch0gz/NFTMortgage/lib"
	"github.com/ch1ch0gz/NFTMortgage/mortgage"
	"github.com/ch1ch0gz/NFTMortgage/mortgagemanager"
	"github.com/ch1ch0gz/NFTMortgage/payments"
	"github.com/ch1ch0gz/NFTMortgage/settlement"
	"github.com/ch1ch0gz/NFTMortgage/wallet"
)

func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func start() error {
	_ = godotenv.Load(".env")

	cfg := &config.Config{}
	if err := config.LoadConfig(cfg, nil); err != nil {
		return err
	}

	log, err := lib.NewLogger(cfg.Log.Level, cfg.Log.Color, cfg.Environment == "production", cfg.Log.IsJSON, logFilePath(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	adminWallet, err := loadAdminWallet(cfg)
	if err != nil {
		return err
	}

	escrow := interop.AddressStringToSlice(cfg.Ledger.EscrowAddress)

	registry := custody.NewMemoryRegistry()
	bank := settlement.NewMemoryBank()
	settlers := settlement.NewFactory(bank, escrow)
	journal := mortgage.NewJournal(cfg.Ledger.JournalCapacity)
	schedule := payments.NewSchedule(cfg.Ledger.PeriodDuration, cfg.Ledger.GraceDuration)

	ledger := mortgagemanager.NewLedger(
		registry,
		settlers,
		journal,
		schedule,
		escrow,
		adminWallet.GetAccountAddress(),
		log.Named("ledger"),
	)

	log.Infof("escrow ledger starting, escrow %s admin %s period %s grace %s",
		lib.AddrShort(escrow.Hex()),
		lib.AddrShort(adminWallet.GetAccountAddress().Hex()),
		schedule.Period,
		schedule.Grace,
	)

	server := &http.Server{
		Addr:    cfg.Web.Address,
		Handler: api.NewApiController(ledger, log.Named("api")),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("http server is listening: http://%s", cfg.Web.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	log.Info("escrow ledger stopped")
	return err
}

func loadAdminWallet(cfg *config.Config) (*wallet.EthereumWallet, error) {
	if cfg.Admin.Mnemonic != "" {
		return wallet.NewEthereumWalletFromMnemonic(cfg.Admin.Mnemonic, cfg.Admin.AccountIndex)
	}
	return wallet.NewEthereumWalletFromPrivateKey(cfg.Admin.WalletPrivateKey)
}

func logFilePath(cfg *config.Config) string {
	if cfg.Log.LogToFile {
		return "ledger.log"
	}
	return ""
}
