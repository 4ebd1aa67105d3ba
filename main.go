package main

import (
	"flag"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnb-chain/ens-claim-input/config"
	"github.com/bnb-chain/ens-claim-input/generator"
	"github.com/bnb-chain/ens-claim-input/logging"
)

func initFlags() {
	flag.String(config.FlagLogLevel, "", "log level, one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG")
	flag.String(config.FlagLogFile, "", "also write logs to this file, rotated")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
	if err = viper.BindEnv(config.FlagLogLevel, config.EnvVarLogLevel); err != nil {
		panic(err)
	}
	if err = viper.BindEnv(config.FlagLogFile, config.EnvVarLogFile); err != nil {
		panic(err)
	}
}

func main() {
	initFlags()
	cfg := config.ParseConfigFromViper(viper.GetViper())
	cfg.Validate()
	logging.InitLogger(&cfg.LogConfig)

	g := generator.NewGenerator(&cfg.GeneratorConfig)
	if err := g.Print(os.Stdout); err != nil {
		panic(err)
	}
}
