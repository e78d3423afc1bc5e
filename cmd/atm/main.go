package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lime5005/atm/internal/bank"
	"github.com/lime5005/atm/internal/cli"
	"github.com/lime5005/atm/internal/tellerservice"
	"github.com/lime5005/atm/pkg/configpkg"
	"github.com/lime5005/atm/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)
	ctx := logger.WithContext(context.Background())

	b := bank.New(config.BankName)
	teller := tellerservice.New(b)

	// Seed the demo user. Without a working PIN digest the bank cannot
	// authenticate anyone, so a failure here is fatal.
	user, err := teller.Onboard(ctx, tellerservice.OnboardParams{
		FirstName: config.DemoUserFirstName,
		LastName:  config.DemoUserLastName,
		Pin:       config.DemoUserPin,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot onboard demo user")
	}

	teller.OpenAccount(ctx, user, "Checking")

	ui := cli.New(teller, os.Stdin, os.Stdout)
	ui.Run(ctx)
}
